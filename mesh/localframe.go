package mesh

import "fmt"

// LocalFrame locates one rank within the process grid: its 2D process
// coordinate, its contiguous slice of the global zone grid, and the
// point-reindexing permutations used by the generators. All fields are
// fixed at construction.
type LocalFrame struct {
	Color                  int // Linear rank id, 0-based
	ProcIndexX, ProcIndexY int
	ZoneXOffset, NzonesX   int
	ZoneYOffset, NzonesY   int
	NumZones               int
	NumPointsX, NumPointsY int

	// GlobalPerm covers the full domain point grid blocked by the process
	// grid; LocalPerm covers this rank's own point grid with a single block.
	GlobalPerm, LocalPerm *Permutation
}

// NewLocalFrame computes the zone slice and permutations for a rank.
// The slice arithmetic uses floor division so it tiles the global grid
// exactly for any process grid, but the halo and global-ID formulas
// additionally require the process grid to evenly divide the global zone
// counts; that precondition is checked here rather than silently handled.
func NewLocalFrame(color int, gs *GridSpec, pg ProcessGrid) (lf *LocalFrame, err error) {
	if color < 0 || color >= gs.NumSubregions {
		err = fmt.Errorf("color %d out of range [0,%d)", color, gs.NumSubregions)
		return
	}
	if gs.NzonesX%pg.NumProcX != 0 || gs.NzonesY%pg.NumProcY != 0 {
		err = fmt.Errorf("process grid %dx%d must evenly divide zone grid %dx%d",
			pg.NumProcX, pg.NumProcY, gs.NzonesX, gs.NzonesY)
		return
	}

	lf = &LocalFrame{
		Color:      color,
		ProcIndexX: color % pg.NumProcX,
		ProcIndexY: color / pg.NumProcX,
	}
	lf.ZoneXOffset = xStart(lf.ProcIndexX, gs, pg)
	lf.NzonesX = xStart(lf.ProcIndexX+1, gs, pg) - lf.ZoneXOffset
	lf.ZoneYOffset = yStart(lf.ProcIndexY, gs, pg)
	lf.NzonesY = yStart(lf.ProcIndexY+1, gs, pg) - lf.ZoneYOffset

	lf.NumZones = lf.NzonesX * lf.NzonesY
	lf.NumPointsX = lf.NzonesX + 1
	lf.NumPointsY = lf.NzonesY + 1

	if lf.GlobalPerm, err = NewMuPermutation(gs.NzonesX+1, gs.NzonesY+1,
		pg.NumProcX, pg.NumProcY); err != nil {
		return nil, err
	}
	if lf.LocalPerm, err = NewMuPermutation(lf.NumPointsX, lf.NumPointsY,
		1, 1); err != nil {
		return nil, err
	}
	return
}

// xStart is the first global zone column owned by process column pix;
// remainder zones accrue to lower-indexed ranks.
func xStart(pix int, gs *GridSpec, pg ProcessGrid) int {
	return pix * gs.NzonesX / pg.NumProcX
}

func yStart(piy int, gs *GridSpec, pg ProcessGrid) int {
	return piy * gs.NzonesY / pg.NumProcY
}
