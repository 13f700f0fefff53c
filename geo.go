package flyover

// BoundingBox is the geographic rectangle the scene plane represents.
type BoundingBox struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// Projector maps geographic coordinates into scene-plane coordinates with a
// linear (equirectangular) transform. Width and Height are the realized
// extents of the imported basemap geometry; the plane is centered on the
// origin, so projected points land on top of the basemap.
//
// There is no clamping: coordinates outside Bounds project off the plane.
// Callers are expected to feed coordinates inside the configured box.
type Projector struct {
	Bounds        BoundingBox
	Width, Height float64
}

// Project converts (lat, lon) to a plane position. The transform is strictly
// monotonic: increasing lon increases X, increasing lat increases Y.
func (p Projector) Project(lat, lon float64) Point {
	x := (lon-p.Bounds.LonMin)/(p.Bounds.LonMax-p.Bounds.LonMin)*p.Width - p.Width/2
	y := (lat-p.Bounds.LatMin)/(p.Bounds.LatMax-p.Bounds.LatMin)*p.Height - p.Height/2
	return Point{X: x, Y: y}
}
