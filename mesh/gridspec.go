// Package mesh generates the per-rank portion of a partitioned 2D
// structured mesh: local point coordinates, zone adjacency in CRS form,
// the halo point lists shared with neighboring ranks, and globally unique
// point IDs. Every quantity is derived purely from (color, GridSpec), so
// two neighboring ranks agree on their shared boundary without exchanging
// any data.
package mesh

import "fmt"

// MeshType identifies the topology variant of the structured grid
type MeshType uint8

const (
	Pie MeshType = iota // Polar grid collapsing to a single origin point
	Rect                // Uniform Cartesian grid of quads
	Hex                 // Hexagonal zones from split interior points
)

func NewMeshType(label string) (mt MeshType, err error) {
	switch label {
	case "pie":
		mt = Pie
	case "rect":
		mt = Rect
	case "hex":
		mt = Hex
	default:
		err = fmt.Errorf("unrecognized mesh type %q, must be one of: pie, rect, hex", label)
	}
	return
}

func (mt MeshType) String() string {
	switch mt {
	case Pie:
		return "pie"
	case Rect:
		return "rect"
	case Hex:
		return "hex"
	}
	return "unknown"
}

// GridSpec holds the global mesh description, fixed for the life of a run
type GridSpec struct {
	Meshtype      MeshType
	NzonesX       int     // Global zone count along X
	NzonesY       int     // Global zone count along Y
	LenX          float64 // Physical extent along X (angle span for pie)
	LenY          float64 // Physical extent along Y (radius for pie)
	NumSubregions int     // Total number of ranks sharing the mesh
}

func NewGridSpec(meshtype string, nzonesX, nzonesY int, lenX, lenY float64,
	numSubregions int) (gs *GridSpec, err error) {
	mt, err := NewMeshType(meshtype)
	if err != nil {
		return
	}
	if nzonesX <= 0 || nzonesY <= 0 {
		err = fmt.Errorf("zone counts must be positive: nzonesX = %d, nzonesY = %d",
			nzonesX, nzonesY)
		return
	}
	if lenX <= 0 || lenY <= 0 {
		err = fmt.Errorf("mesh extents must be positive: lenX = %v, lenY = %v",
			lenX, lenY)
		return
	}
	if numSubregions <= 0 {
		err = fmt.Errorf("number of subregions must be positive: %d", numSubregions)
		return
	}
	// hex spacing divides by NzonesX-1/NzonesY-1
	if mt == Hex && (nzonesX < 2 || nzonesY < 2) {
		err = fmt.Errorf("hex meshes need at least 2 zones per axis: nzonesX = %d, nzonesY = %d",
			nzonesX, nzonesY)
		return
	}
	gs = &GridSpec{
		Meshtype:      mt,
		NzonesX:       nzonesX,
		NzonesY:       nzonesY,
		LenX:          lenX,
		LenY:          lenY,
		NumSubregions: numSubregions,
	}
	return
}
