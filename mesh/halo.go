package mesh

// HaloRelation is the ordered list of local point indices shared with one
// neighbor rank. The ordering is significant: the slave side of a relation
// lines up position-for-position with the master side computed
// independently by the neighbor, since both walk the shared edge in the
// same geometric direction.
type HaloRelation struct {
	Color  int   // The neighbor rank
	Points []int // Local storage-order point indices on the shared boundary
}

// Halo is the complete communication topology of one rank. Relations
// appear in a fixed direction order: slaved to lower-left corner, below,
// left; mastered for right, above, upper-right corner. The pie topology
// additionally fans the origin point out from rank (0,0) to every rank
// along process row 0 with process-x index >= 2.
type Halo struct {
	Slaved   []HaloRelation // This rank's copies owned by earlier neighbors
	Mastered []HaloRelation // This rank's points replicated on later neighbors
}

// NumSlavedPoints counts points across all slaved relations
func (h *Halo) NumSlavedPoints() (n int) {
	for _, r := range h.Slaved {
		n += len(r.Points)
	}
	return
}

// NumMasteredPoints counts points across all mastered relations
func (h *Halo) NumMasteredPoints() (n int) {
	for _, r := range h.Mastered {
		n += len(r.Points)
	}
	return
}

// SlavedTo returns the relation for which master is the authoritative
// rank, or nil when no such relation exists
func (h *Halo) SlavedTo(master int) *HaloRelation {
	for i := range h.Slaved {
		if h.Slaved[i].Color == master {
			return &h.Slaved[i]
		}
	}
	return nil
}

// MasteredFor returns the relation owed to slave, or nil
func (h *Halo) MasteredFor(slave int) *HaloRelation {
	for i := range h.Mastered {
		if h.Mastered[i].Color == slave {
			return &h.Mastered[i]
		}
	}
	return nil
}
