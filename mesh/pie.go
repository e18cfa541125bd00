package mesh

import "math"

// generatePie builds a polar grid. Global row 0 collapses to a single
// point at the origin, so every rank whose zone slice starts at radius 0
// stores the origin once and its first full point row begins at index 1.
// Pie points are stored in raster order; the local permutation is
// intentionally not applied.
func (g *Generator) generatePie() (lm *LocalMesh) {
	var (
		gs = g.Spec
		f  = g.Frame
	)
	lm = &LocalMesh{}

	np := f.NumPointsX * f.NumPointsY
	if f.ProcIndexY == 0 {
		np = f.NumPointsX*(f.NumPointsY-1) + 1
	}

	// point coordinates
	lm.PointPos = make([]Point, 0, np)
	dth := gs.LenX / float64(gs.NzonesX)
	dr := gs.LenY / float64(gs.NzonesY)
	for j := 0; j < f.NumPointsY; j++ {
		if j+f.ZoneYOffset == 0 {
			lm.PointPos = append(lm.PointPos, Point{0., 0.})
			continue
		}
		r := dr * float64(j+f.ZoneYOffset)
		for i := 0; i < f.NumPointsX; i++ {
			th := dth * float64(gs.NzonesX-(i+f.ZoneXOffset))
			lm.PointPos = append(lm.PointPos,
				Point{r * math.Cos(th), r * math.Sin(th)})
		}
	}

	// zone adjacency lists: triangles against the origin, quads elsewhere
	lm.ZoneStart = make([]int, 0, f.NumZones)
	lm.ZoneSize = make([]int, 0, f.NumZones)
	lm.ZonePoints = make([]int, 0, 4*f.NumZones)
	for j := 0; j < f.NzonesY; j++ {
		for i := 0; i < f.NzonesX; i++ {
			lm.ZoneStart = append(lm.ZoneStart, len(lm.ZonePoints))
			p0 := j*f.NumPointsX + i
			if f.ProcIndexY == 0 {
				p0 -= f.NumPointsX - 1
			}
			if j+f.ZoneYOffset == 0 {
				lm.ZoneSize = append(lm.ZoneSize, 3)
				lm.ZonePoints = append(lm.ZonePoints, 0)
			} else {
				lm.ZoneSize = append(lm.ZoneSize, 4)
				lm.ZonePoints = append(lm.ZonePoints, p0, p0+1)
			}
			lm.ZonePoints = append(lm.ZonePoints, p0+f.NumPointsX+1, p0+f.NumPointsX)
		}
	}
	return
}

// generateHaloPointsPie follows the rect edge walks in raster index space,
// with extra handling at the origin: the origin belongs to rank (0,0)
// alone, which masters it separately for every process-row-0 rank with
// process-x index >= 2, while rank (1,0) receives it within its ordinary
// left relation.
func (g *Generator) generateHaloPointsPie() (h *Halo) {
	var (
		f  = g.Frame
		pg = g.Grid
	)
	h = &Halo{}
	if g.Spec.NumSubregions == 1 {
		return
	}

	// slave point with master at lower left
	if f.ProcIndexX != 0 && f.ProcIndexY != 0 {
		h.Slaved = append(h.Slaved, HaloRelation{
			Color:  f.Color - pg.NumProcX - 1,
			Points: []int{0},
		})
	}
	// slave points with master below
	if f.ProcIndexY != 0 {
		rel := HaloRelation{Color: f.Color - pg.NumProcX}
		p := 0
		for i := 0; i < f.NumPointsX; i++ {
			if i == 0 && f.ProcIndexX != 0 {
				p++
				continue
			}
			rel.Points = append(rel.Points, p)
			p++
		}
		h.Slaved = append(h.Slaved, rel)
	}
	// slave points with master to left
	if f.ProcIndexX != 0 {
		rel := HaloRelation{Color: f.Color - 1}
		if f.ProcIndexY == 0 {
			// special case:
			// slave point at origin, master not to immediate left
			if f.ProcIndexX > 1 {
				h.Slaved = append(h.Slaved, HaloRelation{
					Color:  0,
					Points: []int{0},
				})
			} else {
				rel.Points = append(rel.Points, 0)
			}
		}
		p := f.NumPointsX
		if f.ProcIndexY == 0 {
			p = 1
		}
		for j := 1; j < f.NumPointsY; j++ {
			rel.Points = append(rel.Points, p)
			p += f.NumPointsX
		}
		h.Slaved = append(h.Slaved, rel)
	}

	// master points with slave to right
	if f.ProcIndexX != pg.NumProcX-1 {
		rel := HaloRelation{Color: f.Color + 1}
		// special case: origin as master for the slave on process 1
		if f.ProcIndexX == 0 && f.ProcIndexY == 0 {
			rel.Points = append(rel.Points, 0)
		}
		p := 2*f.NumPointsX - 1
		if f.ProcIndexY == 0 {
			p = f.NumPointsX
		}
		for j := 1; j < f.NumPointsY; j++ {
			rel.Points = append(rel.Points, p)
			p += f.NumPointsX
		}
		h.Mastered = append(h.Mastered, rel)
		// special case: origin as master for slaves on processes > 1
		if f.ProcIndexX == 0 && f.ProcIndexY == 0 {
			for slaveProc := 2; slaveProc < pg.NumProcX; slaveProc++ {
				h.Mastered = append(h.Mastered, HaloRelation{
					Color:  slaveProc,
					Points: []int{0},
				})
			}
		}
	}
	// master points with slave above
	if f.ProcIndexY != pg.NumProcY-1 {
		rel := HaloRelation{Color: f.Color + pg.NumProcX}
		p := (f.NumPointsY - 1) * f.NumPointsX
		if f.ProcIndexY == 0 {
			p -= f.NumPointsX - 1
		}
		for i := 0; i < f.NumPointsX; i++ {
			if i == 0 && f.ProcIndexX != 0 {
				p++
				continue
			}
			rel.Points = append(rel.Points, p)
			p++
		}
		h.Mastered = append(h.Mastered, rel)
	}
	// master point with slave at upper right
	if f.ProcIndexX != pg.NumProcX-1 && f.ProcIndexY != pg.NumProcY-1 {
		p := f.NumPointsX*f.NumPointsY - 1
		if f.ProcIndexY == 0 {
			p -= f.NumPointsX - 1
		}
		h.Mastered = append(h.Mastered, HaloRelation{
			Color:  f.Color + pg.NumProcX + 1,
			Points: []int{p},
		})
	}
	return
}

// pointLocalToGlobalIDPie assigns the origin global ID 0; every other
// point gets a closed-form offset over (NzonesX+1)-wide rows, with the
// row decode shifted by one on ranks whose slice includes the collapsed
// first row.
func (g *Generator) pointLocalToGlobalIDPie(p int) int64 {
	var (
		f      = g.Frame
		px, py int
	)
	if f.ZoneYOffset == 0 && p == 0 {
		return 0
	}
	if f.ZoneYOffset == 0 {
		py = (p-1)/f.NumPointsX + 1
		px = p - (py-1)*f.NumPointsX - 1
	} else {
		py = p / f.NumPointsX
		px = p - py*f.NumPointsX
	}
	return int64(g.Spec.NzonesX+1)*int64(py+f.ZoneYOffset-1) + 1 +
		int64(px+f.ZoneXOffset)
}
