// SPDX-License-Identifier: MIT

// Command algodata inspects, projects and reduces annotated CSV matrices.
//
//	algodata inspect iris.csv --schema iris.yaml
//	algodata select iris.csv --cols role:Parameter --rows 0:10
//	algodata reduce iris.csv --components 2
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
