package main

import (
	"testing"

	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumns(t *testing.T) {
	cases := []struct {
		in   string
		want annotated.Index
	}{
		{"", annotated.All()},
		{"2", annotated.Pos(2)},
		{"-1", annotated.Pos(-1)},
		{"1:5", annotated.Span(1, 5)},
		{"::2", annotated.All().By(2)},
		{"3:", annotated.From(3)},
		{":-1", annotated.To(-1)},
		{"role:Result", annotated.Role(tags.Result)},
		{"sepal_length", annotated.Name("sepal_length")},
		{"name:2017", annotated.Name("2017")},
		{"Name: a:b ", annotated.Name("a:b")},
		{"2017,name:1:2", annotated.Many(annotated.Pos(2017), annotated.Name("1:2"))},
		{"0, role:Parameter ,id", annotated.Many(annotated.Pos(0), annotated.Role(tags.Parameter), annotated.Name("id"))},
	}
	for _, tc := range cases {
		got, err := parseColumns(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseColumnsErrors(t *testing.T) {
	for _, in := range []string{"1:2,3", "0,,1", "role:Boss", "1:2:3:4", "a:b", "::0", "name:", "name: ,0"} {
		_, err := parseColumns(in)
		assert.ErrorIs(t, err, ErrBadExpression, in)
	}
}

func TestParseRows(t *testing.T) {
	got, err := parseRows("")
	require.NoError(t, err)
	assert.Equal(t, annotated.All(), got)

	got, err = parseRows("4")
	require.NoError(t, err)
	assert.Equal(t, annotated.Pos(4), got)

	got, err = parseRows("2, 0")
	require.NoError(t, err)
	assert.Equal(t, annotated.Positions(2, 0), got)

	got, err = parseRows("::-1")
	require.NoError(t, err)
	assert.Equal(t, annotated.All().By(-1), got)

	for _, in := range []string{"x", "0:2,4", "1,TargetMin"} {
		_, err = parseRows(in)
		assert.ErrorIs(t, err, ErrBadExpression, in)
	}
}
