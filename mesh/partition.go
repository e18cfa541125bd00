package mesh

import "math"

// ProcessGrid is the 2D arrangement of ranks over the zone grid,
// NumProcX*NumProcY == NumSubregions
type ProcessGrid struct {
	NumProcX, NumProcY int
}

// NewProcessGrid picks NumProcX, NumProcY such that local subregions are
// close to square, i.e. NzonesX/NumProcX == NzonesY/NumProcY, where
// NumProcX*NumProcY = NumSubregions. This solves to
// NumProcX = sqrt(NumSubregions * NzonesX / NzonesY); we compute it
// assuming NzonesX <= NzonesY and swap if necessary.
func NewProcessGrid(gs *GridSpec) (pg ProcessGrid) {
	nx := float64(gs.NzonesX)
	ny := float64(gs.NzonesY)
	swapflag := nx > ny
	if swapflag {
		nx, ny = ny, nx
	}
	n := math.Sqrt(float64(gs.NumSubregions) * nx / ny)
	// constrain n to an integer divisor of NumSubregions,
	// trying rounding both down and up
	n1 := int(math.Floor(n + 1.e-12))
	if n1 < 1 {
		n1 = 1
	}
	for gs.NumSubregions%n1 != 0 {
		n1--
	}
	n2 := int(math.Ceil(n - 1.e-12))
	for gs.NumSubregions%n2 != 0 {
		n2++
	}
	// pick whichever of n1 and n2 gives blocks closest to square,
	// i.e. gives the shortest long side
	longside1 := math.Max(nx/float64(n1), ny/float64(gs.NumSubregions/n1))
	longside2 := math.Max(nx/float64(n2), ny/float64(gs.NumSubregions/n2))
	if longside1 <= longside2 {
		pg.NumProcX = n1
	} else {
		pg.NumProcX = n2
	}
	pg.NumProcY = gs.NumSubregions / pg.NumProcX
	if swapflag {
		pg.NumProcX, pg.NumProcY = pg.NumProcY, pg.NumProcX
	}
	return
}
