package raster

import "github.com/gokinema/kinema"

// edge is a line segment prepared for scanline rasterization, stored with
// y0 < y1 and the pre-swap direction kept for the winding rule.
type edge struct {
	x0, y0 float32
	x1, y1 float32
	dxdy   float32
	dir    int
}

// newEdge creates an edge from two points, normalizing orientation.
func newEdge(p0, p1 kinema.Point) edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	dy := p1.Y - p0.Y
	var dxdy float32
	if dy != 0 {
		dxdy = (p1.X - p0.X) / dy
	}

	return edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: dxdy,
		dir:  dir,
	}
}

// buildEdges converts polylines into a flat edge list, dropping horizontal
// edges (they never cross a scanline).
func buildEdges(polys [][]kinema.Point) []edge {
	var edges []edge
	for _, poly := range polys {
		for i := 0; i+1 < len(poly); i++ {
			if poly[i].Y == poly[i+1].Y {
				continue
			}
			edges = append(edges, newEdge(poly[i], poly[i+1]))
		}
	}
	return edges
}

// crossing is one edge intersection with a sub-scanline.
type crossing struct {
	x   float32
	dir int
}

// crossingsAt appends to out the x positions where edges cross the
// horizontal line at y. The half-open interval [y0, y1) keeps shared
// vertices from being counted twice.
func crossingsAt(edges []edge, y float32, out []crossing) []crossing {
	for i := range edges {
		e := &edges[i]
		if e.y0 <= y && y < e.y1 {
			out = append(out, crossing{
				x:   e.x0 + (y-e.y0)*e.dxdy,
				dir: e.dir,
			})
		}
	}
	return out
}
