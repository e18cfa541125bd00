package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexSingleRank(t *testing.T) {
	gs, err := NewGridSpec("hex", 4, 4, 1.0, 1.0, 1)
	require.NoError(t, err)
	g, err := NewGenerator(gs, 0)
	require.NoError(t, err)
	lm, err := g.Generate()
	require.NoError(t, err)
	require.NoError(t, lm.Validate())

	// boundary rows are single points, interior rows double all but the
	// two boundary columns
	wantPoints := 2*(gs.NzonesX+1) + (gs.NzonesY-1)*2*gs.NzonesX
	assert.Equal(t, wantPoints, lm.NumPoints())
	assert.Equal(t, 16, lm.NumZones())

	// interior zones are hexagons; zones on a domain edge lose one point,
	// and the bottom-right and top-left corner zones lose two
	for z, size := range lm.ZoneSize {
		gi := z % gs.NzonesX
		gj := z / gs.NzonesX
		var want int
		switch {
		case gj == 0:
			want = 5
			if gi == gs.NzonesX-1 {
				want = 4
			}
		case gj == gs.NzonesY-1:
			want = 5
			if gi == 0 {
				want = 4
			}
		case gi == 0 || gi == gs.NzonesX-1:
			want = 5
		default:
			want = 6
		}
		assert.Equal(t, want, size, "zone %d at (%d,%d)", z, gi, gj)
	}
	h, err := g.GenerateHaloPoints()
	require.NoError(t, err)
	assert.Empty(t, h.Slaved)
	assert.Empty(t, h.Mastered)
}

// two ranks split along x: the shared column carries one point on the
// boundary rows and the doubled pair on every interior row
func TestHexTwoRankHalo(t *testing.T) {
	gs, err := NewGridSpec("hex", 4, 4, 1.0, 1.0, 2)
	require.NoError(t, err)

	g0, err := NewGenerator(gs, 0)
	require.NoError(t, err)
	require.Equal(t, 2, g0.Grid.NumProcX)
	require.Equal(t, 1, g0.Grid.NumProcY)

	lm0, err := g0.Generate()
	require.NoError(t, err)
	require.NoError(t, lm0.Validate())
	assert.Equal(t, 21, lm0.NumPoints())

	h0, err := g0.GenerateHaloPoints()
	require.NoError(t, err)
	require.Len(t, h0.Mastered, 1)
	right := h0.MasteredFor(1)
	require.NotNil(t, right)
	assert.Equal(t, []int{2, 6, 7, 11, 12, 16, 17, 20}, right.Points)

	g1, err := NewGenerator(gs, 1)
	require.NoError(t, err)
	h1, err := g1.GenerateHaloPoints()
	require.NoError(t, err)
	require.Len(t, h1.Slaved, 1)
	left := h1.SlavedTo(0)
	require.NotNil(t, left)
	assert.Equal(t, []int{0, 3, 4, 8, 9, 13, 14, 18}, left.Points)

	for k := range left.Points {
		assert.Equal(t, g0.PointLocalToGlobalID(right.Points[k]),
			g1.PointLocalToGlobalID(left.Points[k]),
			"shared point %d", k)
	}
}

// four ranks: every mirror relation agrees on length, including the
// two-point corner relations between diagonal neighbors
func TestHexFourRankHalo(t *testing.T) {
	gs, err := NewGridSpec("hex", 4, 4, 1.0, 1.0, 4)
	require.NoError(t, err)
	checkMirrorLengths(t, gs)

	g0, err := NewGenerator(gs, 0)
	require.NoError(t, err)
	require.Equal(t, 2, g0.Grid.NumProcX)
	h0, err := g0.GenerateHaloPoints()
	require.NoError(t, err)
	corner := h0.MasteredFor(3)
	require.NotNil(t, corner)
	assert.Len(t, corner.Points, 2)

	g3, err := NewGenerator(gs, 3)
	require.NoError(t, err)
	h3, err := g3.GenerateHaloPoints()
	require.NoError(t, err)
	mirror := h3.SlavedTo(0)
	require.NotNil(t, mirror)
	assert.Equal(t, []int{0, 1}, mirror.Points)

	// the diagonal pair resolves to the same global identities
	for k := range corner.Points {
		assert.Equal(t, g0.PointLocalToGlobalID(corner.Points[k]),
			g3.PointLocalToGlobalID(mirror.Points[k]))
	}
}

func TestHexCoordinatesClamped(t *testing.T) {
	gs, err := NewGridSpec("hex", 4, 4, 1.0, 1.0, 1)
	require.NoError(t, err)
	g, err := NewGenerator(gs, 0)
	require.NoError(t, err)
	lm, err := g.Generate()
	require.NoError(t, err)

	// all points stay inside the physical extents
	for i, pt := range lm.PointPos {
		assert.GreaterOrEqual(t, pt.X, 0.0, "point %d", i)
		assert.LessOrEqual(t, pt.X, gs.LenX, "point %d", i)
		assert.GreaterOrEqual(t, pt.Y, 0.0, "point %d", i)
		assert.LessOrEqual(t, pt.Y, gs.LenY, "point %d", i)
	}
}
