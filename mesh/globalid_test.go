package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalGlobalPoints(gs *GridSpec) int {
	switch gs.Meshtype {
	case Rect:
		return (gs.NzonesX + 1) * (gs.NzonesY + 1)
	case Pie:
		// the collapsed first row contributes the origin alone
		return gs.NzonesY*(gs.NzonesX+1) + 1
	case Hex:
		// single points on the two boundary rows, doubled interiors elsewhere
		return 2*(gs.NzonesX+1) + (gs.NzonesY-1)*2*gs.NzonesX
	}
	return -1
}

// Every rank maps its local points to unique global IDs, the IDs of all
// ranks together cover [0, total) exactly, and both sides of every halo
// relation agree on the identity of each shared point position by
// position
func TestGlobalIDAgreement(t *testing.T) {
	cases := []struct {
		meshtype string
		nzx, nzy int
		p        int
	}{
		{"rect", 4, 4, 4},
		{"rect", 8, 4, 4},
		{"rect", 4, 4, 2},
		{"pie", 8, 4, 2},
		{"pie", 8, 4, 4},
		{"pie", 4, 8, 2},
		{"pie", 8, 8, 4},
		{"hex", 4, 4, 2},
		{"hex", 4, 4, 4},
	}
	for _, tc := range cases {
		gs, err := NewGridSpec(tc.meshtype, tc.nzx, tc.nzy, 1.0, 1.0, tc.p)
		require.NoError(t, err)

		gens := make(map[int]*Generator)
		halos := make(map[int]*Halo)
		union := make(map[int64]bool)
		for color := 0; color < tc.p; color++ {
			g, err := NewGenerator(gs, color)
			require.NoError(t, err)
			lm, err := g.Generate()
			require.NoError(t, err)
			require.NoError(t, lm.Validate())
			h, err := g.GenerateHaloPoints()
			require.NoError(t, err)
			gens[color] = g
			halos[color] = h

			local := make(map[int64]bool)
			for p := 0; p < lm.NumPoints(); p++ {
				id := g.PointLocalToGlobalID(p)
				require.GreaterOrEqual(t, id, int64(0),
					"%s rank %d point %d", tc.meshtype, color, p)
				require.False(t, local[id],
					"%s rank %d: global ID %d assigned twice", tc.meshtype, color, id)
				local[id] = true
				union[id] = true
			}
		}

		// union covers the full domain exactly
		total := totalGlobalPoints(gs)
		assert.Equal(t, total, len(union), "%s %dx%d p=%d union size",
			tc.meshtype, tc.nzx, tc.nzy, tc.p)
		for id := int64(0); id < int64(total); id++ {
			require.True(t, union[id], "%s: global ID %d unassigned", tc.meshtype, id)
		}

		// mirror relations resolve identical identities per position
		for color, h := range halos {
			for _, rel := range h.Slaved {
				mirror := halos[rel.Color].MasteredFor(color)
				require.NotNil(t, mirror, "%s: ranks %d/%d", tc.meshtype, color, rel.Color)
				require.Equal(t, len(mirror.Points), len(rel.Points),
					"%s: ranks %d/%d", tc.meshtype, color, rel.Color)
				for k := range rel.Points {
					assert.Equal(t,
						gens[rel.Color].PointLocalToGlobalID(mirror.Points[k]),
						gens[color].PointLocalToGlobalID(rel.Points[k]),
						"%s: ranks %d/%d shared point %d", tc.meshtype, color, rel.Color, k)
				}
			}
		}
	}
}

// For rect, global IDs invert: recovering the local logical coordinate
// from the global ID must match the de-permuted storage index
func TestRectGlobalIDRoundTrip(t *testing.T) {
	gs, err := NewGridSpec("rect", 4, 4, 1.0, 1.0, 4)
	require.NoError(t, err)
	for color := 0; color < 4; color++ {
		g, err := NewGenerator(gs, color)
		require.NoError(t, err)
		f := g.Frame
		for s := 0; s < f.NumPointsX*f.NumPointsY; s++ {
			p := f.LocalPerm.Deperm[s]
			wantJ := p / f.NumPointsX
			wantI := p - wantJ*f.NumPointsX
			i, j := g.rectGlobalToLocal(g.PointLocalToGlobalID(s))
			assert.Equal(t, wantI, i)
			assert.Equal(t, wantJ, j)
		}
	}
}

// an unknown mesh type yields a negative sentinel, never the origin
func TestGlobalIDUnknownType(t *testing.T) {
	gs, err := NewGridSpec("rect", 4, 4, 1.0, 1.0, 1)
	require.NoError(t, err)
	g, err := NewGenerator(gs, 0)
	require.NoError(t, err)
	g.Spec.Meshtype = MeshType(99)
	assert.Negative(t, g.PointLocalToGlobalID(0))
	_, err = g.Generate()
	assert.Error(t, err)
	_, err = g.GenerateHaloPoints()
	assert.Error(t, err)
}
