package geo

import "math"

// Polygon is a closed outline; the last point connects back to the first.
type Polygon []Point

// Contains reports whether p lies inside the polygon (even-odd rule).
func (poly Polygon) Contains(p Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			x := (b.Lon-a.Lon)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
			if p.Lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds is a lon/lat bounding box.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// BoundsOf returns the box enclosing the outline and every location.
func BoundsOf(outline Polygon, locations []Location) Bounds {
	b := Bounds{
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
	}
	grow := func(p Point) {
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
	}
	for _, p := range outline {
		grow(p)
	}
	for _, l := range locations {
		grow(l.Coordinates)
	}
	return b
}

// Cell is a grid position.
type Cell struct {
	Col, Row int
}

// Marker ties a location index to its grid cell.
type Marker struct {
	Index int
	Cell  Cell
}

// Grid is an equirectangular raster of the outline with marker cells.
type Grid struct {
	Width, Height int
	Land          [][]bool // [row][col]
	Markers       []Marker
	bounds        Bounds
}

// Rasterize projects the outline and locations onto a width x height grid.
// Grids smaller than 2x2 are clamped up to 2x2.
func Rasterize(outline Polygon, locations []Location, width, height int) Grid {
	width = max(width, 2)
	height = max(height, 2)
	g := Grid{
		Width:  width,
		Height: height,
		Land:   make([][]bool, height),
		bounds: BoundsOf(outline, locations),
	}
	for row := range g.Land {
		g.Land[row] = make([]bool, width)
		for col := range g.Land[row] {
			g.Land[row][col] = len(outline) > 2 && outline.Contains(g.unproject(col, row))
		}
	}
	for i, l := range locations {
		g.Markers = append(g.Markers, Marker{Index: i, Cell: g.Project(l.Coordinates)})
	}
	return g
}

// Project maps a point to its grid cell, clamped to the grid.
func (g Grid) Project(p Point) Cell {
	b := g.bounds
	fx, fy := 0.5, 0.5
	if span := b.MaxLon - b.MinLon; span > 0 {
		fx = (p.Lon - b.MinLon) / span
	}
	if span := b.MaxLat - b.MinLat; span > 0 {
		fy = (b.MaxLat - p.Lat) / span
	}
	col := int(math.Round(fx * float64(g.Width-1)))
	row := int(math.Round(fy * float64(g.Height-1)))
	return Cell{
		Col: min(max(col, 0), g.Width-1),
		Row: min(max(row, 0), g.Height-1),
	}
}

// unproject returns the point at the centre of a cell.
func (g Grid) unproject(col, row int) Point {
	b := g.bounds
	return Point{
		Lon: b.MinLon + (float64(col)+0.5)/float64(g.Width)*(b.MaxLon-b.MinLon),
		Lat: b.MaxLat - (float64(row)+0.5)/float64(g.Height)*(b.MaxLat-b.MinLat),
	}
}

// MarkerAt returns the location index of the marker at or adjacent to c.
// An exact hit wins over a neighbouring one.
func (g Grid) MarkerAt(c Cell) (int, bool) {
	best, bestDist := -1, 3
	for _, m := range g.Markers {
		dc, dr := abs(m.Cell.Col-c.Col), abs(m.Cell.Row-c.Row)
		if dc > 1 || dr > 1 {
			continue
		}
		if d := dc + dr; d < bestDist {
			best, bestDist = m.Index, d
		}
	}
	return best, best >= 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
