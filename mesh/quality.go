package mesh

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// QualityStats summarizes zone areas for a generated local mesh
type QualityStats struct {
	NumPoints, NumZones int
	MinArea, MaxArea    float64
	MeanArea            float64
	StdDevArea          float64
	TotalArea           float64
}

// ZoneAreas computes the signed shoelace area of every zone. Zone point
// lists are stored in a fixed rotational order, so areas come out with a
// consistent sign per topology.
func (lm *LocalMesh) ZoneAreas() (areas []float64) {
	areas = make([]float64, lm.NumZones())
	for z := 0; z < lm.NumZones(); z++ {
		pts := lm.ZonePoints[lm.ZoneStart[z]:lm.ZoneStart[z+1]]
		var sum float64
		for k, p := range pts {
			q := pts[(k+1)%len(pts)]
			sum += lm.PointPos[p].X*lm.PointPos[q].Y -
				lm.PointPos[q].X*lm.PointPos[p].Y
		}
		areas[z] = 0.5 * sum
	}
	return
}

// Quality computes area statistics over the local zones
func (lm *LocalMesh) Quality() (qs QualityStats) {
	areas := lm.ZoneAreas()
	for i, a := range areas {
		if a < 0 {
			areas[i] = -a
		}
	}
	qs = QualityStats{
		NumPoints:  lm.NumPoints(),
		NumZones:   lm.NumZones(),
		MinArea:    floats.Min(areas),
		MaxArea:    floats.Max(areas),
		MeanArea:   stat.Mean(areas, nil),
		StdDevArea: stat.StdDev(areas, nil),
		TotalArea:  floats.Sum(areas),
	}
	return
}

func (qs QualityStats) Print(w io.Writer) {
	fmt.Fprintf(w, "%8d\t= points\n", qs.NumPoints)
	fmt.Fprintf(w, "%8d\t= zones\n", qs.NumZones)
	fmt.Fprintf(w, "%8.5g\t= min zone area\n", qs.MinArea)
	fmt.Fprintf(w, "%8.5g\t= max zone area\n", qs.MaxArea)
	fmt.Fprintf(w, "%8.5g\t= mean zone area\n", qs.MeanArea)
	fmt.Fprintf(w, "%8.5g\t= stddev zone area\n", qs.StdDevArea)
	fmt.Fprintf(w, "%8.5g\t= total area\n", qs.TotalArea)
}

// WriteTo dumps points and zone adjacency as plain text for inspection
func (lm *LocalMesh) WriteTo(w io.Writer) (n int64, err error) {
	var c int
	c, err = fmt.Fprintf(w, "points %d\n", lm.NumPoints())
	n += int64(c)
	if err != nil {
		return
	}
	for i, pt := range lm.PointPos {
		c, err = fmt.Fprintf(w, "%d %.12g %.12g\n", i, pt.X, pt.Y)
		n += int64(c)
		if err != nil {
			return
		}
	}
	c, err = fmt.Fprintf(w, "zones %d\n", lm.NumZones())
	n += int64(c)
	if err != nil {
		return
	}
	for z := 0; z < lm.NumZones(); z++ {
		c, err = fmt.Fprintf(w, "%d %v\n", z,
			lm.ZonePoints[lm.ZoneStart[z]:lm.ZoneStart[z+1]])
		n += int64(c)
		if err != nil {
			return
		}
	}
	return
}
