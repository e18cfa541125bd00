package mesh

// generateRect builds a uniform Cartesian grid of quad zones over this
// rank's slice. Point storage order is the local mu permutation.
func (g *Generator) generateRect() (lm *LocalMesh) {
	var (
		gs   = g.Spec
		f    = g.Frame
		perm = f.LocalPerm.Perm
	)
	lm = &LocalMesh{}

	// point coordinates
	lm.PointPos = make([]Point, f.NumPointsX*f.NumPointsY)
	dx := gs.LenX / float64(gs.NzonesX)
	dy := gs.LenY / float64(gs.NzonesY)
	for j := 0; j < f.NumPointsY; j++ {
		y := dy * float64(j+f.ZoneYOffset)
		for i := 0; i < f.NumPointsX; i++ {
			x := dx * float64(i+f.ZoneXOffset)
			lm.PointPos[perm[j*f.NumPointsX+i]] = Point{x, y}
		}
	}

	// zone adjacency lists
	lm.ZoneStart = make([]int, 0, f.NumZones)
	lm.ZoneSize = make([]int, 0, f.NumZones)
	lm.ZonePoints = make([]int, 0, 4*f.NumZones)
	for j := 0; j < f.NzonesY; j++ {
		for i := 0; i < f.NzonesX; i++ {
			lm.ZoneStart = append(lm.ZoneStart, len(lm.ZonePoints))
			lm.ZoneSize = append(lm.ZoneSize, 4)
			p0 := j*f.NumPointsX + i
			lm.ZonePoints = append(lm.ZonePoints,
				perm[p0],
				perm[p0+1],
				perm[p0+f.NumPointsX+1],
				perm[p0+f.NumPointsX])
		}
	}
	return
}

// generateHaloPointsRect walks the four shared edges plus the two shared
// corners. Corner points are attributed to exactly one relation: a corner
// shared with the lower-left neighbor is excluded from the "below" and
// "left" lists, and mirrored on the master side.
func (g *Generator) generateHaloPointsRect() (h *Halo) {
	var (
		f    = g.Frame
		pg   = g.Grid
		perm = f.LocalPerm.Perm
	)
	h = &Halo{}
	if g.Spec.NumSubregions == 1 {
		return
	}

	// slave point with master at lower left
	if f.ProcIndexX > 0 && f.ProcIndexY > 0 {
		h.Slaved = append(h.Slaved, HaloRelation{
			Color:  f.Color - pg.NumProcX - 1,
			Points: []int{perm[0]},
		})
	}
	// slave points with master below
	if f.ProcIndexY > 0 {
		rel := HaloRelation{Color: f.Color - pg.NumProcX}
		p := 0
		for i := 0; i < f.NumPointsX; i++ {
			if i == 0 && f.ProcIndexX != 0 {
				p++
				continue
			}
			rel.Points = append(rel.Points, perm[p])
			p++
		}
		h.Slaved = append(h.Slaved, rel)
	}
	// slave points with master to left
	if f.ProcIndexX > 0 {
		rel := HaloRelation{Color: f.Color - 1}
		p := 0
		for j := 0; j < f.NumPointsY; j++ {
			if j == 0 && f.ProcIndexY != 0 {
				p += f.NumPointsX
				continue
			}
			rel.Points = append(rel.Points, perm[p])
			p += f.NumPointsX
		}
		h.Slaved = append(h.Slaved, rel)
	}

	// master points with slave to right
	if f.ProcIndexX < pg.NumProcX-1 {
		rel := HaloRelation{Color: f.Color + 1}
		p := f.NumPointsX - 1
		for j := 0; j < f.NumPointsY; j++ {
			if j == 0 && f.ProcIndexY != 0 {
				p += f.NumPointsX
				continue
			}
			rel.Points = append(rel.Points, perm[p])
			p += f.NumPointsX
		}
		h.Mastered = append(h.Mastered, rel)
	}
	// master points with slave above
	if f.ProcIndexY < pg.NumProcY-1 {
		rel := HaloRelation{Color: f.Color + pg.NumProcX}
		p := (f.NumPointsY - 1) * f.NumPointsX
		for i := 0; i < f.NumPointsX; i++ {
			if i == 0 && f.ProcIndexX > 0 {
				p++
				continue
			}
			rel.Points = append(rel.Points, perm[p])
			p++
		}
		h.Mastered = append(h.Mastered, rel)
	}
	// master point with slave at upper right
	if f.ProcIndexX < pg.NumProcX-1 && f.ProcIndexY < pg.NumProcY-1 {
		h.Mastered = append(h.Mastered, HaloRelation{
			Color:  f.Color + pg.NumProcX + 1,
			Points: []int{perm[f.NumPointsX*f.NumPointsY-1]},
		})
	}
	return
}

// pointLocalToGlobalIDRect de-permutes the storage index to the local
// logical grid, then re-permutes the global logical coordinate through the
// global permutation.
func (g *Generator) pointLocalToGlobalIDRect(s int) int64 {
	var (
		f = g.Frame
		p = f.LocalPerm.Deperm[s]
	)
	py := p / f.NumPointsX
	px := p - py*f.NumPointsX
	return int64(f.GlobalPerm.Perm[(g.Spec.NzonesX+1)*(py+f.ZoneYOffset)+
		px+f.ZoneXOffset])
}

// rectGlobalToLocal recovers the local logical coordinate (i,j) of a
// global ID owned by this rank's point grid; the inverse of
// pointLocalToGlobalIDRect up to the local permutation.
func (g *Generator) rectGlobalToLocal(globalID int64) (i, j int) {
	glog := g.Frame.GlobalPerm.Deperm[globalID]
	gy := glog / (g.Spec.NzonesX + 1)
	gx := glog - gy*(g.Spec.NzonesX+1)
	return gx - g.Frame.ZoneXOffset, gy - g.Frame.ZoneYOffset
}
