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

func TestGetShapes(t *testing.T) {
	m := sample(t)

	s, err := m.Get(annotated.Pos(1), annotated.Pos(2))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Dim())
	assert.Equal(t, 6.0, s.Scalar())

	s, err = m.Get(annotated.Pos(0), annotated.Role(tags.Parameter))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Dim())
	fs, err := s.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, fs)

	s, err = m.Get(annotated.All(), annotated.Role(tags.Result))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Dim())
	fs, err = s.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6, 9}, fs)

	s, err = m.Get(annotated.Positions(2, 0), annotated.Positions(2, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Dim())
	r, c := s.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	v, err := s.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	_, err = s.At(2, 0)
	require.ErrorIs(t, err, annotated.ErrIndexOutOfRange)
}

func TestGetHeaderRows(t *testing.T) {
	m := sample(t)

	s, err := m.Get(annotated.Field(tags.Names), annotated.All())
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "c"}, s.Values())
	assert.False(t, s.Textual())
	_, err = s.Floats()
	require.ErrorIs(t, err, annotated.ErrTypeMismatch)

	s, err = m.Get(annotated.Field(tags.Role), annotated.Pos(2))
	require.NoError(t, err)
	assert.Equal(t, tags.Result, s.Scalar())

	// header text mixed with data: everything becomes a string
	s, err = m.Get(annotated.Many(annotated.Pos(0), annotated.Field(tags.Names)), annotated.Positions(0, 1))
	require.NoError(t, err)
	assert.True(t, s.Textual())
	assert.Equal(t, []any{"a", "b", "1", "2"}, s.Values())
	assert.Equal(t, []string{"a", "b", "1", "2"}, s.Strings())

	// numeric header rows mixed with data stay numeric
	s, err = m.Get(annotated.Many(annotated.Field(tags.TargetMax), annotated.Pos(2)), annotated.Positions(0, 1))
	require.NoError(t, err)
	assert.False(t, s.Textual())
	fs, err := s.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 7, 8}, fs)
}

func TestGetErrors(t *testing.T) {
	m := sample(t)

	_, err := m.Get(annotated.Pos(5), annotated.Pos(0))
	require.ErrorIs(t, err, annotated.ErrIndexOutOfRange)
	_, err = m.Get(annotated.Pos(-1), annotated.Pos(0))
	require.ErrorIs(t, err, annotated.ErrIndexOutOfRange)
	_, err = m.Get(annotated.Field(tags.Type), annotated.Pos(3))
	require.ErrorIs(t, err, annotated.ErrIndexOutOfRange)
	_, err = m.Get(annotated.Name("a"), annotated.Pos(0))
	require.ErrorIs(t, err, annotated.ErrUnsupportedIndexKind)
	_, err = m.Get(annotated.Pos(0), annotated.Field(tags.Role))
	require.ErrorIs(t, err, annotated.ErrUnsupportedIndexKind)
	_, err = m.Get(annotated.Pos(0), nil)
	require.ErrorIs(t, err, annotated.ErrUnsupportedIndexKind)
}

func TestSetAmbiguousColumnLeavesDataUntouched(t *testing.T) {
	m := sample(t)
	before := m.Data().RawRows()

	err := m.Set(annotated.Pos(0), annotated.Role(tags.Parameter), 5)
	require.ErrorIs(t, err, annotated.ErrAmbiguousColumn)
	err = m.Set(annotated.Pos(0), annotated.Role(tags.StepResult), 5)
	require.ErrorIs(t, err, annotated.ErrAmbiguousColumn)
	err = m.Set(annotated.Positions(0, 1), annotated.Pos(0), 5)
	require.ErrorIs(t, err, annotated.ErrAmbiguousRow)

	assert.Equal(t, before, m.Data().RawRows())
}

func TestSetData(t *testing.T) {
	m := sample(t)

	require.NoError(t, m.Set(annotated.Pos(0), annotated.Role(tags.Result), 42))
	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	require.NoError(t, m.Set(annotated.Pos(2), annotated.Name("b"), float32(0.5)))
	v, err = m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	require.ErrorIs(t, m.Set(annotated.Pos(9), annotated.Pos(0), 1.0), annotated.ErrIndexOutOfRange)
	require.ErrorIs(t, m.Set(annotated.Pos(0), annotated.Pos(9), 1.0), annotated.ErrIndexOutOfRange)
	require.ErrorIs(t, m.Set(annotated.Pos(0), annotated.Pos(0), "x"), annotated.ErrTypeMismatch)
	require.ErrorIs(t, m.Set(annotated.Pos(0), annotated.Pos(0), math.NaN()), matrix.ErrNaNInf)
}

func TestSetHeader(t *testing.T) {
	m := sample(t)

	require.ErrorIs(t, m.Set(annotated.Field(tags.Names), annotated.Pos(0), 3.0), annotated.ErrTypeMismatch)
	require.NoError(t, m.Set(annotated.Field(tags.Names), annotated.Pos(0), "alpha"))
	assert.Equal(t, "alpha", m.Header().Names[0])

	require.ErrorIs(t, m.Set(annotated.Field(tags.Role), annotated.Pos(0), tags.Nominal), annotated.ErrTypeMismatch)
	require.ErrorIs(t, m.Set(annotated.Field(tags.Role), annotated.Pos(0), tags.FieldRole(50)), annotated.ErrInvalidTag)
	require.NoError(t, m.Set(annotated.Field(tags.Role), annotated.Pos(0), tags.Other))
	assert.Equal(t, []int{1}, m.ColumnsOf(tags.Parameter))

	// any number fits a numeric header row
	require.NoError(t, m.Set(annotated.Field(tags.TargetMin), annotated.Pos(1), -1))
	assert.Equal(t, -1.0, m.Header().TargetMin[1])

	require.ErrorIs(t, m.Set(annotated.Field(tags.Method), annotated.Pos(0), tags.OneOfN), annotated.ErrInvalidTag)
	require.NoError(t, m.Set(annotated.Field(tags.Type), annotated.Pos(0), tags.Nominal))
	assert.Equal(t, tags.OneOfN, m.Header().Methods[0])
	require.NoError(t, m.Set(annotated.Field(tags.Method), annotated.Pos(0), tags.EquilateralEncoding))
	assert.Equal(t, tags.EquilateralEncoding, m.Header().Methods[0])

	require.ErrorIs(t, m.Set(annotated.Field(tags.Names), annotated.Pos(3), "x"), annotated.ErrIndexOutOfRange)
}

func TestFormatCell(t *testing.T) {
	m := sample(t)
	s, err := m.FormatCell(annotated.HeaderRow(tags.Type), 0)
	require.NoError(t, err)
	assert.Equal(t, "Ratio", s)

	s, err = m.FormatCell(annotated.DataRow(1), 1)
	require.NoError(t, err)
	assert.Equal(t, "5", s)

	_, err = m.FormatCell(annotated.DataRow(3), 0)
	require.ErrorIs(t, err, annotated.ErrIndexOutOfRange)
}
