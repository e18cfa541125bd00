package mesh

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessGrid(t *testing.T) {
	cases := []struct {
		nzx, nzy, p  int
		wantX, wantY int
	}{
		{4, 4, 4, 2, 2},
		{4, 4, 1, 1, 1},
		{4, 4, 2, 2, 1},
		{8, 4, 2, 2, 1},
		{8, 4, 4, 4, 1},
		{4, 8, 4, 1, 4},
		{120, 120, 16, 4, 4},
		{120, 60, 8, 4, 2},
	}
	for _, tc := range cases {
		gs, err := NewGridSpec("rect", tc.nzx, tc.nzy, 1.0, 1.0, tc.p)
		require.NoError(t, err)
		pg := NewProcessGrid(gs)
		assert.Equal(t, tc.wantX, pg.NumProcX,
			"nzx=%d nzy=%d p=%d", tc.nzx, tc.nzy, tc.p)
		assert.Equal(t, tc.wantY, pg.NumProcY,
			"nzx=%d nzy=%d p=%d", tc.nzx, tc.nzy, tc.p)
	}
}

// The chosen factor pair must minimize the worst-case subdomain long side
// over all admissible factorizations
func TestProcessGridOptimality(t *testing.T) {
	longside := func(nzx, nzy, px, py int) float64 {
		return math.Max(float64(nzx)/float64(px), float64(nzy)/float64(py))
	}
	for _, dims := range [][2]int{{4, 4}, {8, 4}, {6, 12}, {30, 10}} {
		for p := 1; p <= 12; p++ {
			gs, err := NewGridSpec("rect", dims[0], dims[1], 1.0, 1.0, p)
			require.NoError(t, err)
			pg := NewProcessGrid(gs)
			require.Equal(t, p, pg.NumProcX*pg.NumProcY)
			got := longside(dims[0], dims[1], pg.NumProcX, pg.NumProcY)
			for px := 1; px <= p; px++ {
				if p%px != 0 {
					continue
				}
				best := longside(dims[0], dims[1], px, p/px)
				assert.LessOrEqual(t, got, best+1e-12,
					fmt.Sprintf("dims=%v p=%d: chose %dx%d but %dx%d is shorter",
						dims, p, pg.NumProcX, pg.NumProcY, px, p/px))
			}
		}
	}
}

func TestGridSpecValidation(t *testing.T) {
	_, err := NewGridSpec("triangles", 4, 4, 1.0, 1.0, 1)
	assert.Error(t, err)
	_, err = NewGridSpec("rect", 0, 4, 1.0, 1.0, 1)
	assert.Error(t, err)
	_, err = NewGridSpec("rect", 4, 4, -1.0, 1.0, 1)
	assert.Error(t, err)
	_, err = NewGridSpec("rect", 4, 4, 1.0, 1.0, 0)
	assert.Error(t, err)
	// hex point spacing is undefined with a single zone along either axis
	_, err = NewGridSpec("hex", 1, 4, 1.0, 1.0, 1)
	assert.Error(t, err)
	_, err = NewGridSpec("hex", 4, 1, 1.0, 1.0, 1)
	assert.Error(t, err)
	_, err = NewGridSpec("rect", 1, 1, 1.0, 1.0, 1)
	assert.NoError(t, err)

	gs, err := NewGridSpec("hex", 4, 4, 1.0, 1.0, 2)
	require.NoError(t, err)
	assert.Equal(t, Hex, gs.Meshtype)
	assert.Equal(t, "hex", gs.Meshtype.String())
}
