package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// IncidenceMatrix returns the zone-to-point adjacency as a CSR incidence
// matrix (NumZones x NumPoints, entries 1). The CRS arrays are reused
// directly as the sparse row pointers.
func (lm *LocalMesh) IncidenceMatrix() *sparse.CSR {
	data := make([]float64, len(lm.ZonePoints))
	for i := range data {
		data[i] = 1
	}
	ia := make([]int, len(lm.ZoneStart))
	copy(ia, lm.ZoneStart)
	ja := make([]int, len(lm.ZonePoints))
	copy(ja, lm.ZonePoints)
	return sparse.NewCSR(lm.NumZones(), lm.NumPoints(), ia, ja, data)
}

// PointDegrees counts, for each local point, the zones adjacent to it
func (lm *LocalMesh) PointDegrees() (degrees []int) {
	degrees = make([]int, lm.NumPoints())
	for _, p := range lm.ZonePoints {
		degrees[p]++
	}
	return
}

// ZoneNeighbors derives the zone-to-zone adjacency through shared points
// as the product A*Aᵀ of the incidence matrix: entry (z1,z2) counts
// shared points, so zones sharing an edge have entries >= 2.
func (lm *LocalMesh) ZoneNeighbors() *sparse.CSR {
	a := lm.IncidenceMatrix()
	prod := &sparse.CSR{}
	prod.Mul(a, a.T())
	return prod
}

// Validate checks the CRS structure invariants: monotonic non-decreasing
// ZoneStart with terminal sentinel, sizes consistent with starts, and all
// point indices in range. A failure here is a programmer error in the
// generator, not a runtime condition.
func (lm *LocalMesh) Validate() error {
	if len(lm.ZoneStart) != len(lm.ZoneSize)+1 {
		return fmt.Errorf("ZoneStart length %d != ZoneSize length %d + sentinel",
			len(lm.ZoneStart), len(lm.ZoneSize))
	}
	for z, size := range lm.ZoneSize {
		if lm.ZoneStart[z+1]-lm.ZoneStart[z] != size {
			return fmt.Errorf("zone %d: start delta %d != size %d",
				z, lm.ZoneStart[z+1]-lm.ZoneStart[z], size)
		}
		if size < 3 || size > 6 {
			return fmt.Errorf("zone %d has %d points, expected 3-6", z, size)
		}
	}
	if lm.ZoneStart[len(lm.ZoneStart)-1] != len(lm.ZonePoints) {
		return fmt.Errorf("ZoneStart sentinel %d != ZonePoints length %d",
			lm.ZoneStart[len(lm.ZoneStart)-1], len(lm.ZonePoints))
	}
	for k, p := range lm.ZonePoints {
		if p < 0 || p >= lm.NumPoints() {
			return fmt.Errorf("ZonePoints[%d] = %d out of range [0,%d)",
				k, p, lm.NumPoints())
		}
	}
	return nil
}
