package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The local zone slices of all ranks must tile the global zone grid with
// no overlap and no gap
func TestLocalFrameTiling(t *testing.T) {
	cases := []struct {
		nzx, nzy, p int
	}{
		{4, 4, 1}, {4, 4, 4}, {8, 4, 4}, {120, 120, 16}, {6, 12, 4},
	}
	for _, tc := range cases {
		gs, err := NewGridSpec("rect", tc.nzx, tc.nzy, 1.0, 1.0, tc.p)
		require.NoError(t, err)
		pg := NewProcessGrid(gs)

		covered := make([]int, tc.nzx*tc.nzy)
		for color := 0; color < tc.p; color++ {
			lf, err := NewLocalFrame(color, gs, pg)
			require.NoError(t, err)
			assert.Equal(t, color%pg.NumProcX, lf.ProcIndexX)
			assert.Equal(t, color/pg.NumProcX, lf.ProcIndexY)
			assert.Equal(t, lf.NzonesX+1, lf.NumPointsX)
			assert.Equal(t, lf.NzonesY+1, lf.NumPointsY)
			for j := 0; j < lf.NzonesY; j++ {
				for i := 0; i < lf.NzonesX; i++ {
					gi := i + lf.ZoneXOffset
					gj := j + lf.ZoneYOffset
					covered[gj*tc.nzx+gi]++
				}
			}
		}
		for k, c := range covered {
			assert.Equal(t, 1, c, "zone %d covered %d times (nzx=%d nzy=%d p=%d)",
				k, c, tc.nzx, tc.nzy, tc.p)
		}
	}
}

func TestLocalFramePermutations(t *testing.T) {
	gs, err := NewGridSpec("rect", 4, 4, 1.0, 1.0, 4)
	require.NoError(t, err)
	pg := NewProcessGrid(gs)
	lf, err := NewLocalFrame(0, gs, pg)
	require.NoError(t, err)

	require.Equal(t, (gs.NzonesX+1)*(gs.NzonesY+1), len(lf.GlobalPerm.Perm))
	require.Equal(t, lf.NumPointsX*lf.NumPointsY, len(lf.LocalPerm.Perm))
	for i, s := range lf.GlobalPerm.Perm {
		assert.Equal(t, i, lf.GlobalPerm.Deperm[s])
	}
	for i, s := range lf.LocalPerm.Perm {
		assert.Equal(t, i, lf.LocalPerm.Deperm[s])
	}
}

func TestLocalFrameErrors(t *testing.T) {
	// process grid must evenly divide the zone grid
	gs, err := NewGridSpec("rect", 5, 5, 1.0, 1.0, 4)
	require.NoError(t, err)
	pg := NewProcessGrid(gs)
	_, err = NewLocalFrame(0, gs, pg)
	assert.Error(t, err)

	// color out of range
	gs, err = NewGridSpec("rect", 4, 4, 1.0, 1.0, 4)
	require.NoError(t, err)
	pg = NewProcessGrid(gs)
	_, err = NewLocalFrame(4, gs, pg)
	assert.Error(t, err)
	_, err = NewLocalFrame(-1, gs, pg)
	assert.Error(t, err)
}
