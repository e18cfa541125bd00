package mesh

import "fmt"

// Point is a 2D mesh vertex position
type Point struct {
	X, Y float64
}

// LocalMesh is one rank's share of the mesh: point positions in permuted
// storage order and zone-to-point adjacency in CRS form. ZoneStart carries
// a terminal sentinel so zone z always spans
// ZonePoints[ZoneStart[z]:ZoneStart[z+1]].
type LocalMesh struct {
	PointPos   []Point
	ZoneStart  []int // len NumZones+1 including the sentinel
	ZoneSize   []int // 3-6 points per zone depending on topology
	ZonePoints []int
}

// NumPoints returns the number of local points
func (lm *LocalMesh) NumPoints() int {
	return len(lm.PointPos)
}

// NumZones returns the number of local zones
func (lm *LocalMesh) NumZones() int {
	return len(lm.ZoneSize)
}

// Generator derives one rank's mesh, halo topology and global point IDs
// from the grid spec alone. Ranks never communicate: a rank computes its
// neighbors' shared-point lists with the same formulas the neighbor uses
// for itself, so the construction must stay bit-exact between the master
// and slave sides of every relation.
type Generator struct {
	Spec  *GridSpec
	Grid  ProcessGrid
	Frame *LocalFrame
}

// NewGenerator fixes the process grid and this rank's local frame
func NewGenerator(gs *GridSpec, color int) (g *Generator, err error) {
	pg := NewProcessGrid(gs)
	lf, err := NewLocalFrame(color, gs, pg)
	if err != nil {
		return
	}
	g = &Generator{
		Spec:  gs,
		Grid:  pg,
		Frame: lf,
	}
	return
}

// Generate produces the local mesh for this rank's zone slice
func (g *Generator) Generate() (lm *LocalMesh, err error) {
	switch g.Spec.Meshtype {
	case Pie:
		lm = g.generatePie()
	case Rect:
		lm = g.generateRect()
	case Hex:
		lm = g.generateHex()
	default:
		err = fmt.Errorf("unrecognized mesh type %d", g.Spec.Meshtype)
		return
	}
	// terminal pointer makes later logic uniform for all zones
	lm.ZoneStart = append(lm.ZoneStart,
		lm.ZoneStart[len(lm.ZoneStart)-1]+lm.ZoneSize[len(lm.ZoneSize)-1])
	return
}

// GenerateHaloPoints enumerates, per geometric neighbor, the ordered local
// point indices this rank is slaved to and the ones it masters for that
// neighbor. A rank with no neighbor in a direction contributes nothing for
// that direction; a single-subregion run has an empty halo.
func (g *Generator) GenerateHaloPoints() (h *Halo, err error) {
	switch g.Spec.Meshtype {
	case Pie:
		h = g.generateHaloPointsPie()
	case Rect:
		h = g.generateHaloPointsRect()
	case Hex:
		h = g.generateHaloPointsHex()
	default:
		err = fmt.Errorf("unrecognized mesh type %d", g.Spec.Meshtype)
	}
	return
}

// PointLocalToGlobalID maps a local (storage-order) point index to a
// globally unique ID consistent across ranks. An unknown mesh type yields
// a negative sentinel, distinguishing "not computed" from the origin ID 0.
func (g *Generator) PointLocalToGlobalID(p int) (globalID int64) {
	globalID = -1
	switch g.Spec.Meshtype {
	case Pie:
		globalID = g.pointLocalToGlobalIDPie(p)
	case Rect:
		globalID = g.pointLocalToGlobalIDRect(p)
	case Hex:
		globalID = g.pointLocalToGlobalIDHex(p)
	}
	return
}
