// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/tags"
)

// ErrBadExpression is returned for selector text that cannot be parsed.
var ErrBadExpression = errors.New("bad selector expression")

const (
	rolePrefix = "role:"
	namePrefix = "name:"
)

// parseColumns turns flag text into a column expression.
//
//	""                 all columns
//	"2"                position
//	"1:5", "::2"       slice
//	"role:Parameter"   role
//	"sepal_length"     name
//	"name:2017"        name, even when it reads as a position or slice
//	"0,role:Result,id" list of positions, roles and names
//
// A slice cannot be part of a list.
func parseColumns(s string) (annotated.Index, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return annotated.All(), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		return parseColumnAtom(parts[0], true)
	}
	list := make(annotated.List, 0, len(parts))
	for _, p := range parts {
		idx, err := parseColumnAtom(p, false)
		if err != nil {
			return nil, err
		}
		list = append(list, idx)
	}

	return list, nil
}

func parseColumnAtom(s string, sliceOK bool) (annotated.Index, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, fmt.Errorf("empty column selector: %w", ErrBadExpression)
	case strings.HasPrefix(strings.ToLower(s), namePrefix):
		name := strings.TrimSpace(s[len(namePrefix):])
		if name == "" {
			return nil, fmt.Errorf("%q: empty name: %w", s, ErrBadExpression)
		}
		return annotated.Name(name), nil
	case strings.HasPrefix(strings.ToLower(s), rolePrefix):
		r, err := tags.ParseFieldRole(strings.TrimSpace(s[len(rolePrefix):]))
		if err != nil {
			return nil, fmt.Errorf("%q: %w: %w", s, ErrBadExpression, err)
		}
		return annotated.Role(r), nil
	case strings.Contains(s, ":"):
		if !sliceOK {
			return nil, fmt.Errorf("%q: slice inside a list: %w", s, ErrBadExpression)
		}
		return parseSlice(s)
	}
	if p, err := strconv.Atoi(s); err == nil {
		return annotated.Pos(p), nil
	}

	return annotated.Name(s), nil
}

// parseRows turns flag text into a data-row expression: "", a position,
// a slice or a comma separated list of positions.
func parseRows(s string) (annotated.Index, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return annotated.All(), nil
	}
	if strings.Contains(s, ":") {
		if strings.Contains(s, ",") {
			return nil, fmt.Errorf("%q: slice inside a list: %w", s, ErrBadExpression)
		}
		return parseSlice(s)
	}

	parts := strings.Split(s, ",")
	ps := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, ErrBadExpression)
		}
		ps[i] = n
	}
	if len(ps) == 1 {
		return annotated.Pos(ps[0]), nil
	}

	return annotated.Positions(ps...), nil
}

// parseSlice reads "start:stop[:step]"; any part may be empty.
func parseSlice(s string) (annotated.Slice, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return annotated.Slice{}, fmt.Errorf("%q: %w", s, ErrBadExpression)
	}

	var vals [3]int
	var set [3]bool
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return annotated.Slice{}, fmt.Errorf("%q: %w", s, ErrBadExpression)
		}
		vals[i], set[i] = n, true
	}

	var sl annotated.Slice
	switch {
	case set[0] && set[1]:
		sl = annotated.Span(vals[0], vals[1])
	case set[0]:
		sl = annotated.From(vals[0])
	case set[1]:
		sl = annotated.To(vals[1])
	default:
		sl = annotated.All()
	}
	if set[2] {
		if vals[2] == 0 {
			return annotated.Slice{}, fmt.Errorf("%q: zero step: %w", s, ErrBadExpression)
		}
		sl = sl.By(vals[2])
	}

	return sl, nil
}
