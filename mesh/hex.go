package mesh

import "math"

// generateHex builds hexagonal zones by splitting each interior logical
// grid point into two physical points offset by (-dx/6,+dy/6) and
// (+dx/6,-dy/6). Points on the global domain boundary stay single, as do
// the two split corners a rank shares with its lower-right and upper-left
// neighbors (each rank keeps exactly one of the pair). Zone point counts
// run 4-6 depending on which global edges the zone touches; the edge and
// corner cases are enumerated explicitly rather than derived from a
// generic rule.
func (g *Generator) generateHex() (lm *LocalMesh) {
	var (
		gs = g.Spec
		f  = g.Frame
	)
	lm = &LocalMesh{}

	// point coordinates
	lm.PointPos = make([]Point, 0, 2*f.NumPointsX*f.NumPointsY) // upper bound
	dx := gs.LenX / float64(gs.NzonesX-1)
	dy := gs.LenY / float64(gs.NzonesY-1)

	pbase := make([]int, f.NumPointsY)
	for j := 0; j < f.NumPointsY; j++ {
		pbase[j] = len(lm.PointPos)
		gj := j + f.ZoneYOffset
		y := dy * (float64(gj) - 0.5)
		y = math.Max(0., math.Min(gs.LenY, y))
		for i := 0; i < f.NumPointsX; i++ {
			gi := i + f.ZoneXOffset
			x := dx * (float64(gi) - 0.5)
			x = math.Max(0., math.Min(gs.LenX, x))
			switch {
			case gi == 0 || gi == gs.NzonesX || gj == 0 || gj == gs.NzonesY:
				lm.PointPos = append(lm.PointPos, Point{x, y})
			case i == f.NzonesX && j == 0:
				lm.PointPos = append(lm.PointPos, Point{x - dx/6., y + dy/6.})
			case i == 0 && j == f.NzonesY:
				lm.PointPos = append(lm.PointPos, Point{x + dx/6., y - dy/6.})
			default:
				lm.PointPos = append(lm.PointPos,
					Point{x - dx/6., y + dy/6.},
					Point{x + dx/6., y - dy/6.})
			}
		}
	}

	// zone adjacency lists
	lm.ZoneStart = make([]int, 0, f.NumZones)
	lm.ZoneSize = make([]int, 0, f.NumZones)
	lm.ZonePoints = make([]int, 0, 6*f.NumZones) // upper bound
	for j := 0; j < f.NzonesY; j++ {
		gj := j + f.ZoneYOffset
		pbasel := pbase[j]
		pbaseh := pbase[j+1]
		if f.ProcIndexX > 0 {
			if gj > 0 {
				pbasel++
			}
			if j < f.NzonesY-1 {
				pbaseh++
			}
		}
		for i := 0; i < f.NzonesX; i++ {
			gi := i + f.ZoneXOffset
			v := make([]int, 6)
			v[1] = pbasel + 2*i
			v[0] = v[1] - 1
			v[2] = v[1] + 1
			v[5] = pbaseh + 2*i
			v[4] = v[5] + 1
			v[3] = v[4] + 1
			if gj == 0 {
				v[0] = pbasel + i
				v[2] = v[0] + 1
				if gi == gs.NzonesX-1 {
					v = removeAt(v, 3)
				}
				v = removeAt(v, 1)
			} else if gj == gs.NzonesY-1 {
				v[5] = pbaseh + i
				v[3] = v[5] + 1
				v = removeAt(v, 4)
				if gi == 0 {
					v = removeAt(v, 0)
				}
			} else if gi == 0 {
				v = removeAt(v, 0)
			} else if gi == gs.NzonesX-1 {
				v = removeAt(v, 3)
			}
			lm.ZoneStart = append(lm.ZoneStart, len(lm.ZonePoints))
			lm.ZoneSize = append(lm.ZoneSize, len(v))
			lm.ZonePoints = append(lm.ZonePoints, v...)
		}
	}
	return
}

func removeAt(v []int, i int) []int {
	return append(v[:i], v[i+1:]...)
}

// hexNumPoints recomputes the point layout of generateHex without storing
// coordinates: the total point count and the storage index starting each
// point row.
func (g *Generator) hexNumPoints() (np int, pbase []int) {
	var (
		gs = g.Spec
		f  = g.Frame
	)
	pbase = make([]int, f.NumPointsY)
	for j := 0; j < f.NumPointsY; j++ {
		pbase[j] = np
		gj := j + f.ZoneYOffset
		for i := 0; i < f.NumPointsX; i++ {
			gi := i + f.ZoneXOffset
			switch {
			case gi == 0 || gi == gs.NzonesX || gj == 0 || gj == gs.NzonesY:
				np++
			case i == f.NzonesX && j == 0:
				np++
			case i == 0 && j == f.NzonesY:
				np++
			default:
				np += 2
			}
		}
	}
	return
}

// generateHaloPointsHex walks shared edges like the rect variant, but each
// interior boundary column or row carries the doubled point pair; only the
// single-point rows at the domain boundary and the split corners
// contribute one index.
func (g *Generator) generateHaloPointsHex() (h *Halo) {
	var (
		f  = g.Frame
		pg = g.Grid
	)
	h = &Halo{}
	if g.Spec.NumSubregions == 1 {
		return
	}

	np, pbase := g.hexNumPoints()

	// slave points with master at lower left
	if f.ProcIndexX != 0 && f.ProcIndexY != 0 {
		h.Slaved = append(h.Slaved, HaloRelation{
			Color:  f.Color - pg.NumProcX - 1,
			Points: []int{0, 1},
		})
	}
	// slave points with master below
	if f.ProcIndexY != 0 {
		rel := HaloRelation{Color: f.Color - pg.NumProcX}
		p := 0
		for i := 0; i < f.NumPointsX; i++ {
			if i == 0 && f.ProcIndexX != 0 {
				p += 2
				continue
			}
			if i == 0 || i == f.NzonesX {
				rel.Points = append(rel.Points, p)
				p++
			} else {
				rel.Points = append(rel.Points, p, p+1)
				p += 2
			}
		}
		h.Slaved = append(h.Slaved, rel)
	}
	// slave points with master to left
	if f.ProcIndexX != 0 {
		rel := HaloRelation{Color: f.Color - 1}
		for j := 0; j < f.NumPointsY; j++ {
			if j == 0 && f.ProcIndexY != 0 {
				continue
			}
			p := pbase[j]
			if j == 0 || j == f.NzonesY {
				rel.Points = append(rel.Points, p)
			} else {
				rel.Points = append(rel.Points, p, p+1)
			}
		}
		h.Slaved = append(h.Slaved, rel)
	}

	// master points with slave to right
	if f.ProcIndexX != pg.NumProcX-1 {
		rel := HaloRelation{Color: f.Color + 1}
		for j := 0; j < f.NumPointsY; j++ {
			if j == 0 && f.ProcIndexY != 0 {
				continue
			}
			p := np
			if j != f.NzonesY {
				p = pbase[j+1]
			}
			if j == 0 || j == f.NzonesY {
				rel.Points = append(rel.Points, p-1)
			} else {
				rel.Points = append(rel.Points, p-2, p-1)
			}
		}
		h.Mastered = append(h.Mastered, rel)
	}
	// master points with slave above
	if f.ProcIndexY != pg.NumProcY-1 {
		rel := HaloRelation{Color: f.Color + pg.NumProcX}
		p := pbase[f.NzonesY]
		for i := 0; i < f.NumPointsX; i++ {
			if i == 0 && f.ProcIndexX != 0 {
				p++
				continue
			}
			if i == 0 || i == f.NzonesX {
				rel.Points = append(rel.Points, p)
				p++
			} else {
				rel.Points = append(rel.Points, p, p+1)
				p += 2
			}
		}
		h.Mastered = append(h.Mastered, rel)
	}
	// master points with slave at upper right
	if f.ProcIndexX != pg.NumProcX-1 && f.ProcIndexY != pg.NumProcY-1 {
		h.Mastered = append(h.Mastered, HaloRelation{
			Color:  f.Color + pg.NumProcX + 1,
			Points: []int{np - 2, np - 1},
		})
	}
	return
}

// hexPointsBeforeRow counts every physical point in global rows strictly
// below row gj >= 1: the single-point boundary row 0 plus 2*NzonesX per
// interior row (doubled interior columns, single boundary columns).
func (g *Generator) hexPointsBeforeRow(gj int) int64 {
	return int64(g.Spec.NzonesX+1) + int64(gj-1)*int64(2*g.Spec.NzonesX)
}

// pointLocalToGlobalIDHex decodes the storage index into its local point
// row, then offsets by the physical points in all lower global rows plus
// the columns to the left within the row. A rank whose slice starts at an
// interior column holds only the second point of its upper-left split
// pair, hence the final correction.
func (g *Generator) pointLocalToGlobalIDHex(p int) int64 {
	var (
		gs = g.Spec
		f  = g.Frame
	)
	zoneYStart := yStart(f.ProcIndexY, gs, g.Grid)
	zoneYStop := yStart(f.ProcIndexY+1, gs, g.Grid)
	zoneXStart := xStart(f.ProcIndexX, gs, g.Grid)
	zoneXStop := xStart(f.ProcIndexX+1, gs, g.Grid)

	firstRowNpts := 2 * f.NumPointsX
	midRowsNpts := 2 * f.NumPointsX

	if zoneYStart == 0 {
		firstRowNpts = f.NumPointsX
	} else {
		if zoneXStart == 0 {
			firstRowNpts--
		}
		// lower right corner
		firstRowNpts--
	}
	if zoneXStart == 0 {
		midRowsNpts--
	}
	if zoneXStop == gs.NzonesX {
		midRowsNpts--
	}

	var i, j int
	if p < firstRowNpts {
		j = 0
		i = p
	} else {
		j = (p-firstRowNpts)/midRowsNpts + 1
		i = p - firstRowNpts - (j-1)*midRowsNpts
	}

	gj := j + f.ZoneYOffset

	var globalID int64
	if gj != 0 {
		globalID = g.hexPointsBeforeRow(gj)
	}

	if gj == 0 || gj == gs.NzonesY {
		globalID += int64(f.ZoneXOffset)
	} else if f.ZoneXOffset != 0 {
		globalID += int64(2*f.ZoneXOffset - 1)
	}
	globalID += int64(i)

	// upper left corner skips a point
	if gj == zoneYStop && zoneXStart != 0 && gj != 0 && gj != gs.NzonesY {
		globalID++
	}
	return globalID
}
