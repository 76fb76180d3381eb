package annotated_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/algodata/annotated"
	"github.com/katalvlaran/algodata/matrix"
	"github.com/katalvlaran/algodata/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColsByRole(t *testing.T) {
	m := sample(t)

	p, err := m.Cols(annotated.Role(tags.Parameter))
	require.NoError(t, err)
	requireHeaderLen(t, p)
	assert.Equal(t, [][]float64{{1, 2}, {4, 5}, {7, 8}}, p.Data().RawRows())
	assert.Equal(t, []tags.FieldRole{tags.Parameter, tags.Parameter}, p.Header().Roles)
	assert.Equal(t, []string{"a", "b"}, p.Header().Names)

	// source untouched
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m.Data().RawRows())
}

func TestColsRoundTrip(t *testing.T) {
	m := sample(t)
	require.NoError(t, m.ObserveSourceRange(annotated.All()))

	back, err := m.Cols(annotated.Positions(2, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, m.Data().RawRows(), back.Data().RawRows())
	assert.Equal(t, m.Header(), back.Header())

	back, err = m.Cols(annotated.All())
	require.NoError(t, err)
	assert.Equal(t, m.Header(), back.Header())
}

func TestColsDropsOutOfRange(t *testing.T) {
	m := sample(t)

	c, err := m.Cols(annotated.Positions(-1, 1, 7))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}, {5}, {8}}, c.Data().RawRows())

	none, err := m.Cols(annotated.Role(tags.StepResult))
	require.NoError(t, err)
	requireHeaderLen(t, none)
	r, cols := none.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 0, cols)

	_, err = m.Cols(annotated.Field(tags.Names))
	require.ErrorIs(t, err, annotated.ErrUnsupportedIndexKind)
}

func TestRowsDropsOutOfRange(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}}, annotated.WithNames("p", "q"))

	got, err := m.Rows(annotated.Positions(0, 1, 100))
	require.NoError(t, err)
	want, err := m.Rows(annotated.Positions(0, 1))
	require.NoError(t, err)
	assert.Equal(t, want.Data().RawRows(), got.Data().RawRows())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, got.Data().RawRows())
	requireHeaderLen(t, got)
	assert.Equal(t, []string{"p", "q"}, got.Header().Names)
}

func TestRowsOrderAndErrors(t *testing.T) {
	m := mustNew(t, [][]float64{{1}, {2}, {3}})

	rev, err := m.Rows(annotated.All().By(-1))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3}, {2}, {1}}, rev.Data().RawRows())

	dup, err := m.Rows(annotated.Positions(2, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {3}, {3}}, dup.Data().RawRows())

	_, err = m.Rows(annotated.Field(tags.Names))
	require.ErrorIs(t, err, annotated.ErrUnsupportedIndexKind)
	_, err = m.Rows(annotated.Many(annotated.Field(tags.Names), annotated.Pos(0)))
	require.ErrorIs(t, err, annotated.ErrUnsupportedIndexKind)
	_, err = m.Rows(annotated.Role(tags.Parameter))
	require.ErrorIs(t, err, annotated.ErrUnsupportedIndexKind)
}

func TestHStackOrderAndShape(t *testing.T) {
	a := mustNew(t, [][]float64{{1}, {2}}, annotated.WithNames("a"))
	b := mustNew(t, [][]float64{{3, 4}, {5, 6}}, annotated.WithNames("b0", "b1"),
		annotated.WithRoles(tags.Result, tags.Other))

	ab, err := annotated.HStack(a, b)
	require.NoError(t, err)
	requireHeaderLen(t, ab)
	r, c := ab.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, [][]float64{{1, 3, 4}, {2, 5, 6}}, ab.Data().RawRows())
	assert.Equal(t, []string{"a", "b0", "b1"}, ab.Header().Names)
	assert.Equal(t, []tags.FieldRole{tags.Parameter, tags.Result, tags.Other}, ab.Header().Roles)

	ba, err := annotated.HStack(b, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"b0", "b1", "a"}, ba.Header().Names)

	// operands stay independent of the result
	require.NoError(t, ab.SetAt(0, 0, -1))
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestHStackErrors(t *testing.T) {
	_, err := annotated.HStack()
	require.ErrorIs(t, err, annotated.ErrShape)

	a := mustNew(t, [][]float64{{1}, {2}})
	b := mustNew(t, [][]float64{{1}})
	_, err = annotated.HStack(a, b)
	require.ErrorIs(t, err, annotated.ErrShapeMismatch)
	_, err = annotated.HStack(a, nil)
	require.ErrorIs(t, err, annotated.ErrShape)
}

func TestHStackThenRoleFill(t *testing.T) {
	p := mustNew(t, [][]float64{{1}, {2}}, annotated.WithRoles(tags.Parameter))
	r := mustNew(t, [][]float64{{3}, {4}}, annotated.WithRoles(tags.Result))

	out, err := annotated.HStack(p, r)
	require.NoError(t, err)
	require.NoError(t, out.Fill(annotated.Role(tags.StepResult), -1))
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, out.Data().RawRows())

	step := mustNew(t, [][]float64{{0}, {0}}, annotated.WithRoles(tags.StepResult))
	out, err = annotated.HStack(out, step)
	require.NoError(t, err)
	require.NoError(t, out.Fill(annotated.Role(tags.StepResult), -1))
	assert.Equal(t, [][]float64{{1, 3, -1}, {2, 4, -1}}, out.Data().RawRows())
}

func TestFillIdempotent(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2}, {3, 4}}, annotated.WithRoles(tags.Parameter, tags.StepResult))

	once := m.Clone()
	require.NoError(t, once.Fill(annotated.Role(tags.StepResult), -1))
	twice := m.Clone()
	require.NoError(t, twice.Fill(annotated.Role(tags.StepResult), -1))
	require.NoError(t, twice.Fill(annotated.Role(tags.StepResult), -1))

	assert.Equal(t, once.Data().RawRows(), twice.Data().RawRows())
	assert.Equal(t, [][]float64{{1, -1}, {3, -1}}, once.Data().RawRows())
}

func TestFillErrorsDoNotMutate(t *testing.T) {
	m := sample(t)
	before := m.Data().RawRows()

	require.ErrorIs(t, m.Fill(annotated.Positions(0, 5), 0), annotated.ErrIndexOutOfRange)
	require.ErrorIs(t, m.Fill(annotated.Pos(0), math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(annotated.Field(tags.Names), 0), annotated.ErrUnsupportedIndexKind)
	assert.Equal(t, before, m.Data().RawRows())
}

func TestProjectionsKeepNumericPolicy(t *testing.T) {
	m := mustNew(t, [][]float64{{1, math.NaN()}, {3, 4}}, annotated.WithValidateNaNInf(false))

	c, err := m.Cols(annotated.Pos(1))
	require.NoError(t, err)
	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
	require.NoError(t, c.SetAt(1, 0, math.Inf(1)))

	r, err := m.Rows(annotated.Pos(1))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 4}}, r.Data().RawRows())
	require.NoError(t, r.SetAt(0, 0, math.NaN()))

	// projections own their storage
	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	require.NoError(t, m.Fill(annotated.Pos(0), math.NaN()))
	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	strict, err := sample(t).Cols(annotated.Pos(0))
	require.NoError(t, err)
	require.ErrorIs(t, strict.SetAt(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestCopyTo(t *testing.T) {
	m := sample(t)

	require.NoError(t, m.CopyTo([][]float64{{10, 20}, {30, 40}}, annotated.Positions(2, 0), annotated.Role(tags.Parameter)))
	assert.Equal(t, [][]float64{{10, 20, 3}, {4, 5, 6}, {30, 40, 9}}, m.Data().RawRows())

	// nil columns means every column
	require.NoError(t, m.CopyTo([][]float64{{0, 0, 0}}, annotated.Pos(1), nil))
	assert.Equal(t, [][]float64{{10, 20, 3}, {0, 0, 0}, {30, 40, 9}}, m.Data().RawRows())

	// numeric header rows are bulk-writable
	require.NoError(t, m.CopyTo([][]float64{{-1, -1, -1}, {5, 5, 5}},
		annotated.Many(annotated.Field(tags.SourceMax), annotated.Field(tags.SourceMin)), annotated.All()))
	assert.Equal(t, []float64{-1, -1, -1}, m.Header().SourceMin)
	assert.Equal(t, []float64{5, 5, 5}, m.Header().SourceMax)
}

func TestCopyToValidatesBeforeWriting(t *testing.T) {
	m := sample(t)
	before := m.Data().RawRows()
	header := m.Header()

	tests := []struct {
		name string
		src  [][]float64
		rows annotated.Index
		cols annotated.Index
		err  error
	}{
		{"too few rows", [][]float64{{1, 1}}, annotated.Positions(0, 1), annotated.Role(tags.Parameter), annotated.ErrShapeMismatch},
		{"ragged source", [][]float64{{1, 1}, {1}}, annotated.Positions(0, 1), annotated.Role(tags.Parameter), annotated.ErrShapeMismatch},
		{"row out of range", [][]float64{{1, 1}, {1, 1}}, annotated.Positions(0, 3), annotated.Role(tags.Parameter), annotated.ErrIndexOutOfRange},
		{"column out of range", [][]float64{{1, 1}}, annotated.Pos(0), annotated.Positions(0, 3), annotated.ErrIndexOutOfRange},
		{"text header row", [][]float64{{1, 1, 1}, {1, 1, 1}}, annotated.Many(annotated.Field(tags.Names), annotated.Pos(0)), annotated.All(), annotated.ErrTypeMismatch},
		{"non-finite", [][]float64{{1, 1}, {1, math.NaN()}}, annotated.Positions(0, 1), annotated.Role(tags.Parameter), matrix.ErrNaNInf},
		{"bad row kind", [][]float64{{1}}, annotated.Role(tags.Result), annotated.Pos(0), annotated.ErrUnsupportedIndexKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, m.CopyTo(tc.src, tc.rows, tc.cols), tc.err)
			assert.Equal(t, before, m.Data().RawRows())
			assert.Equal(t, header.Names, m.Header().Names)
		})
	}
}

func TestCopyRowTo(t *testing.T) {
	m := sample(t)

	require.NoError(t, m.CopyRowTo([]float64{7, 7}, annotated.Pos(1), annotated.Role(tags.Parameter)))
	assert.Equal(t, [][]float64{{1, 2, 3}, {7, 7, 6}, {7, 8, 9}}, m.Data().RawRows())

	require.ErrorIs(t, m.CopyRowTo([]float64{1, 2, 3}, annotated.Positions(0, 1), nil), annotated.ErrShapeMismatch)
	require.ErrorIs(t, m.CopyRowTo([]float64{1, 2}, annotated.Pos(0), nil), annotated.ErrShapeMismatch)
}

func TestRoleLookupIgnoresPhysicalOrder(t *testing.T) {
	// same columns, permuted: a(P) r(R) b(P)  vs  r(R) a(P) b(P)
	m1 := mustNew(t, [][]float64{{1, 9, 2}, {3, 8, 4}},
		annotated.WithRoles(tags.Parameter, tags.Result, tags.Parameter))
	m2 := mustNew(t, [][]float64{{9, 1, 2}, {8, 3, 4}},
		annotated.WithRoles(tags.Result, tags.Parameter, tags.Parameter))

	p1, err := m1.Cols(annotated.Role(tags.Parameter))
	require.NoError(t, err)
	p2, err := m2.Cols(annotated.Role(tags.Parameter))
	require.NoError(t, err)
	assert.Equal(t, p1.Data().RawRows(), p2.Data().RawRows())
	assert.NotEqual(t, m1.ColumnsOf(tags.Parameter), m2.ColumnsOf(tags.Parameter))

	r1, err := m1.Get(annotated.All(), annotated.Role(tags.Result))
	require.NoError(t, err)
	r2, err := m2.Get(annotated.All(), annotated.Role(tags.Result))
	require.NoError(t, err)
	assert.Equal(t, r1.Values(), r2.Values())
}

func TestHeaderLengthInvariant(t *testing.T) {
	m := sample(t)
	requireHeaderLen(t, m)

	views := []func() (*annotated.Matrix, error){
		func() (*annotated.Matrix, error) { return m.Cols(annotated.Role(tags.Result)) },
		func() (*annotated.Matrix, error) { return m.Cols(annotated.Span(0, 0)) },
		func() (*annotated.Matrix, error) { return m.Rows(annotated.To(1)) },
		func() (*annotated.Matrix, error) { return annotated.HStack(m, m, m) },
	}
	for _, build := range views {
		out, err := build()
		require.NoError(t, err)
		requireHeaderLen(t, out)
	}
}
