package flyover

import (
	"errors"
	"fmt"
	"os"
	"strings"

	geojson "github.com/paulmach/go.geojson"
)

// Error kinds for scene composition. Both are fatal: the pipeline aborts
// before any entity is created, so a partial scene is never persisted.
var (
	// ErrMissingAsset reports an absent basemap or dataset file.
	ErrMissingAsset = errors.New("flyover: missing asset")
	// ErrEmptyImport reports a basemap import that yielded no geometry.
	ErrEmptyImport = errors.New("flyover: basemap import produced no geometry")
)

// BasemapRegion is one imported region: an identifier plus its outline rings
// in plane coordinates.
type BasemapRegion struct {
	ID    string
	Rings [][]Point
}

// Basemap is the imported base geometry: regions in plane coordinates centered
// on the origin, plus the realized plane extents. The placement pipeline reads
// its Width/Height rather than assuming a nominal size, mirroring an engine
// "query realized bounds of imported geometry" step.
type Basemap struct {
	Regions       []BasemapRegion
	Width, Height float64
}

// LoadBasemap imports a GeoJSON feature collection as the map base.
// Each feature becomes one region; its identifier is taken from the feature
// id, falling back to an "id" then "name" property. Geographic coordinates
// are centered on their combined extents and multiplied by scale, so the
// realized Width/Height are (lonSpan*scale, latSpan*scale).
func LoadBasemap(path string, scale float64) (*Basemap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("read basemap: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse basemap: %w", err)
	}

	type rawRegion struct {
		id    string
		rings [][][]float64
	}

	var raws []rawRegion
	minX, minY := 1e18, 1e18
	maxX, maxY := -1e18, -1e18
	for i, f := range fc.Features {
		var rings [][][]float64
		switch {
		case f.Geometry == nil:
			continue
		case f.Geometry.IsPolygon():
			rings = f.Geometry.Polygon
		case f.Geometry.IsMultiPolygon():
			for _, poly := range f.Geometry.MultiPolygon {
				rings = append(rings, poly...)
			}
		default:
			continue
		}
		for _, ring := range rings {
			for _, c := range ring {
				if len(c) < 2 {
					continue
				}
				if c[0] < minX {
					minX = c[0]
				}
				if c[0] > maxX {
					maxX = c[0]
				}
				if c[1] < minY {
					minY = c[1]
				}
				if c[1] > maxY {
					maxY = c[1]
				}
			}
		}
		raws = append(raws, rawRegion{id: regionID(f, i), rings: rings})
	}

	if len(raws) == 0 || maxX <= minX || maxY <= minY {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImport, path)
	}

	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	bm := &Basemap{
		Width:  (maxX - minX) * scale,
		Height: (maxY - minY) * scale,
	}
	for _, r := range raws {
		region := BasemapRegion{ID: r.id}
		for _, ring := range r.rings {
			pts := make([]Point, 0, len(ring))
			for _, c := range ring {
				if len(c) < 2 {
					continue
				}
				pts = append(pts, Point{X: (c[0] - cx) * scale, Y: (c[1] - cy) * scale})
			}
			region.Rings = append(region.Rings, pts)
		}
		bm.Regions = append(bm.Regions, region)
	}
	return bm, nil
}

// regionID picks the identifier for an imported feature.
func regionID(f *geojson.Feature, index int) string {
	if s, ok := f.ID.(string); ok && s != "" {
		return s
	}
	if s, err := f.PropertyString("id"); err == nil && s != "" {
		return s
	}
	if s, err := f.PropertyString("name"); err == nil && s != "" {
		return s
	}
	return fmt.Sprintf("region_%03d", index)
}

// FindRegion resolves an identifier against the imported regions with a
// three-tier match policy: exact, then prefix (the importer may append
// suffixes such as ".001"), then substring. Within each tier the first region
// in import order wins, so ambiguous identifiers resolve deterministically.
func (b *Basemap) FindRegion(id string) (*BasemapRegion, bool) {
	for i := range b.Regions {
		if b.Regions[i].ID == id {
			return &b.Regions[i], true
		}
	}
	for i := range b.Regions {
		if strings.HasPrefix(b.Regions[i].ID, id+".") {
			return &b.Regions[i], true
		}
	}
	for i := range b.Regions {
		if strings.Contains(b.Regions[i].ID, id) {
			return &b.Regions[i], true
		}
	}
	return nil, false
}
