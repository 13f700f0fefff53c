package flyover

import "math"

// Vertical offsets above the map surface. Markers float slightly above the
// extruded base, routes arc above markers, pulse rings sit between.
const (
	markerLift    = 0.22
	routeLift     = 0.30
	pulseLift     = 0.24
	highlightLift = 0.02

	highlightScale  = 1.002 // overlay scaled up a hair to avoid z-fighting
	pulseRingRadius = 0.22
)

// BuildCatalog turns the geocoded dataset and static configuration into
// typed scene entities: one marker per placeable record, one route curve per
// connection whose endpoints both resolved, one highlight overlay per matched
// region, and one pulse ring per hub marker.
//
// Unresolvable inputs are skipped, never fatal: a record with null
// coordinates, a connection with a missing endpoint, or a highlight naming a
// region absent from the basemap each bump a skip counter and the build
// continues. All traversal follows input order, so repeated builds of the
// same input produce an identical catalog.
func BuildCatalog(ds Dataset, bm *Basemap, proj Projector, cfg Config, pal *Palette) *Catalog {
	cat := NewCatalog()
	cat.buildHighlights(bm, cfg, pal)
	cat.buildMarkers(ds, proj, cfg, pal)
	cat.buildRoutes(cfg, pal)
	cat.buildPulses(cfg, pal)
	return cat
}

func (c *Catalog) buildMarkers(ds Dataset, proj Projector, cfg Config, pal *Palette) {
	for _, group := range ds {
		for _, rec := range group.Records {
			if !rec.Placeable() {
				c.SkippedLocations++
				continue
			}
			key := group.Key(rec)
			pos := proj.Project(*rec.Lat, *rec.Lon)
			hub := cfg.IsHub(key)

			style := pal.Marker
			if hub {
				style = pal.Hub
			}
			m := &Entity{
				Kind:     KindMarker,
				Name:     c.uniqueName("pin_" + group.State + "_" + rec.City),
				Key:      key,
				Hub:      hub,
				Position: Vec3{X: pos.X, Y: pos.Y, Z: cfg.MapThickness + markerLift},
				Scale:    1,
				Style:    style,
			}
			c.Markers = append(c.Markers, m)
			c.markersByKey[key] = m
		}
	}
}

func (c *Catalog) buildRoutes(cfg Config, pal *Palette) {
	for _, conn := range cfg.Connections {
		from, okA := c.markersByKey[conn.From]
		to, okB := c.markersByKey[conn.To]
		if !okA || !okB {
			c.SkippedRoutes++
			continue
		}
		a := Point{X: from.Position.X, Y: from.Position.Y}
		b := Point{X: to.Position.X, Y: to.Position.Y}
		dist := math.Hypot(a.X-b.X, a.Y-b.Y)
		c.Routes = append(c.Routes, &Entity{
			Kind:     KindRouteCurve,
			Name:     c.uniqueName("route_" + conn.From.City + "_to_" + conn.To.City),
			Position: Vec3{Z: cfg.MapThickness + routeLift},
			Scale:    1,
			Style:    pal.Route,
			From:     a,
			To:       b,
			Bulge:    math.Max(cfg.MinBulge, dist*cfg.BulgeFactor),
		})
	}
}

func (c *Catalog) buildHighlights(bm *Basemap, cfg Config, pal *Palette) {
	for _, h := range cfg.Highlights {
		region, ok := bm.FindRegion(h.RegionID)
		if !ok {
			c.SkippedHighlights++
			continue
		}
		// The overlay references the matched region's geometry; it carries
		// its own style so its glow timing is independent.
		c.Highlights = append(c.Highlights, &Entity{
			Kind:         KindRegion,
			Name:         c.uniqueName(h.RegionID + "_HIGHLIGHT"),
			Position:     Vec3{Z: highlightLift},
			Scale:        highlightScale,
			Style:        pal.GlowStyle(h.RegionID),
			SourceRegion: region.ID,
		})
	}
}

// buildPulses creates one ring per hub, walking markers in creation order so
// the pulse schedule is reproducible.
func (c *Catalog) buildPulses(cfg Config, pal *Palette) {
	for _, m := range c.Markers {
		if !m.Hub {
			continue
		}
		c.Pulses = append(c.Pulses, &Entity{
			Kind:     KindPulseRing,
			Name:     c.uniqueName("pulse_" + m.Key.City),
			Key:      m.Key,
			Hub:      true,
			Position: Vec3{X: m.Position.X, Y: m.Position.Y, Z: cfg.MapThickness + pulseLift},
			Scale:    1,
			Size:     pulseRingRadius,
			Style:    pal.PulseStyle(m.Key),
		})
	}
}
