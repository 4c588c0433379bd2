package compress_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/katalvlaran/rectilinear/compress"
	"github.com/katalvlaran/rectilinear/polygon"
	"github.com/katalvlaran/rectilinear/vertex"
)

func mustGrid(t *testing.T, vs []vertex.Vertex) *compress.Grid {
	t.Helper()
	p, err := polygon.New(vs)
	require.NoError(t, err)
	g, err := compress.NewGrid(p)
	require.NoError(t, err)

	return g
}

func sample() []vertex.Vertex {
	return []vertex.Vertex{
		{X: 7, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: 7}, {X: 9, Y: 7},
		{X: 9, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 3}, {X: 7, Y: 3},
	}
}

//----------------------------------------------------------------------------//
// NewGrid
//----------------------------------------------------------------------------//

func TestNewGrid_Nil(t *testing.T) {
	g, err := compress.NewGrid(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, compress.ErrNilPolygon)
}

func TestNewGrid_Lines(t *testing.T) {
	g := mustGrid(t, sample())

	assert.Equal(t, []int64{2, 7, 9, 11}, g.Xs())
	assert.Equal(t, []int64{1, 3, 5, 7}, g.Ys())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 3, g.Rows())
}

func TestNewGrid_Classification(t *testing.T) {
	g := mustGrid(t, sample())

	want := [][]bool{
		{false, true, true},
		{true, true, true},
		{false, false, true},
	}
	for row := range want {
		for col := range want[row] {
			assert.Equal(t, want[row][col], g.Inside(col, row), "cell (%d,%d)", col, row)
		}
	}
	assert.Equal(t, 6, g.InteriorCells())
	assert.True(t, g.InteriorArea().Equals64(30))
}

func TestCell(t *testing.T) {
	g := mustGrid(t, sample())

	c, err := g.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, compress.Cell{Col: 0, Row: 1, X0: 2, X1: 7, Y0: 3, Y1: 5, Inside: true, Area: uint128.From64(10)}, c)

	c, err = g.Cell(1, 2)
	require.NoError(t, err)
	assert.False(t, c.Inside)
	assert.True(t, c.Area.IsZero())

	_, err = g.Cell(3, 0)
	assert.ErrorIs(t, err, compress.ErrCellIndex)
	_, err = g.Cell(0, -1)
	assert.ErrorIs(t, err, compress.ErrCellIndex)
	assert.True(t, g.Area(-1, 0).IsZero())
}

func TestLookup(t *testing.T) {
	g := mustGrid(t, sample())

	i, ok := g.ColumnOf(9)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = g.ColumnOf(8)
	assert.False(t, ok)

	j, ok := g.RowOf(7)
	assert.True(t, ok)
	assert.Equal(t, 3, j)
}

func TestNewGrid_SingleVertex(t *testing.T) {
	g := mustGrid(t, []vertex.Vertex{{X: 0, Y: 0}, {X: 0, Y: 0}})

	assert.Equal(t, 0, g.Cols())
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.InteriorCells())
	assert.True(t, g.InteriorArea().IsZero())
	assert.Empty(t, g.Regions())
}

func TestNewGrid_ExtremeCoordinates(t *testing.T) {
	g := mustGrid(t, []vertex.Vertex{
		{X: math.MinInt64, Y: math.MinInt64}, {X: math.MaxInt64, Y: math.MinInt64},
		{X: math.MaxInt64, Y: math.MaxInt64}, {X: math.MinInt64, Y: math.MaxInt64},
	})

	want := uint128.From64(math.MaxUint64).Mul64(math.MaxUint64)
	assert.True(t, g.InteriorArea().Equals(want))
	assert.True(t, g.Contains(vertex.Vertex{X: 0, Y: 0}))
	assert.True(t, g.Contains(vertex.Vertex{X: math.MaxInt64, Y: 0}))
}

//----------------------------------------------------------------------------//
// Contains
//----------------------------------------------------------------------------//

func TestContains(t *testing.T) {
	g := mustGrid(t, sample())

	cases := []struct {
		v    vertex.Vertex
		want bool
	}{
		{vertex.Vertex{X: 8, Y: 2}, true},
		{vertex.Vertex{X: 3, Y: 4}, true},
		{vertex.Vertex{X: 10, Y: 6}, true},
		{vertex.Vertex{X: 3, Y: 2}, false},
		{vertex.Vertex{X: 8, Y: 6}, false},
		{vertex.Vertex{X: 12, Y: 4}, false},
		{vertex.Vertex{X: 1, Y: 1}, false},
		{vertex.Vertex{X: 2, Y: 4}, true},
		{vertex.Vertex{X: 5, Y: 3}, true},
		{vertex.Vertex{X: 9, Y: 5}, true},
		{vertex.Vertex{X: 11, Y: 0}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, g.Contains(tc.v), "Contains(%v)", tc.v)
	}
}

// TestContains_AgreesWithFloat checks the exact lattice test against the
// float64 classifier on every lattice point around the sample.
func TestContains_AgreesWithFloat(t *testing.T) {
	p, err := polygon.New(sample())
	require.NoError(t, err)
	g, err := compress.NewGrid(p)
	require.NoError(t, err)

	for y := int64(0); y <= 8; y++ {
		for x := int64(0); x <= 12; x++ {
			v := vertex.Vertex{X: x, Y: y}
			assert.Equal(t, p.ContainsPoint(float64(x), float64(y)), g.Contains(v), "point %v", v)
		}
	}
}

//----------------------------------------------------------------------------//
// Regions
//----------------------------------------------------------------------------//

func TestRegions_Single(t *testing.T) {
	g := mustGrid(t, sample())

	regions := g.Regions()
	require.Len(t, regions, 1)
	assert.Equal(t, []int{1, 2, 4, 5, 3, 8}, regions[0])

	col, row := g.Coordinate(8)
	assert.Equal(t, 2, col)
	assert.Equal(t, 2, row)
}

func TestRegions_CornerTouch(t *testing.T) {
	// Two squares that share only the corner (2,2).
	g := mustGrid(t, []vertex.Vertex{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 2},
		{X: 4, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 2},
	})

	assert.Equal(t, [][]int{{0}, {3}}, g.Regions())
}
