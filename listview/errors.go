// SPDX-License-Identifier: MIT

package listview

import "errors"

var (
	// ErrReadOnlyField is returned when writing the synthetic row-name slot (index 0).
	ErrReadOnlyField = errors.New("listview: row name is read-only")

	// ErrNilMatrix is returned when a view is requested over a nil matrix.
	ErrNilMatrix = errors.New("listview: nil matrix")
)
