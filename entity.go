package flyover

import "fmt"

// Handle identifies one engine-side object. Handles are opaque: the pipeline
// assumes nothing beyond "one handle, one entity". Zero is never a valid
// handle.
type Handle uint32

// Entity is a placed, styleable, optionally animated object in the composed
// scene. A single flat struct covers all kinds; only the fields relevant to
// an entity's kind are set. Entities are created by the catalog builder (and,
// for camera rig and lights, by scene assembly), keyframed by the scheduler,
// and committed to the engine by scene assembly.
type Entity struct {
	Kind EntityKind
	Name string

	// Engine binding, assigned at assembly time.
	Handle Handle

	Position Vec3
	Scale    float64
	Rotation Vec3
	Style    *Style

	// Marker and pulse ring fields.
	Key LocationKey
	Hub bool

	// Route curve fields: projected endpoints and the midpoint arc height.
	From, To Point
	Bulge    float64

	// Highlight overlay field: the matched imported region identifier.
	SourceRegion string

	// Light fields.
	LightKind string // "sun" or "area"
	Energy    float64
	Size      float64

	// Camera rig fields.
	Lens  float64
	FStop float64
}

// Catalog owns the scene entities in creation order, plus the marker index
// used for connection and story-beat lookups. The skip counters make the
// non-fatal "best effort assembly" conditions observable without logging.
type Catalog struct {
	Markers    []*Entity
	Routes     []*Entity
	Highlights []*Entity
	Pulses     []*Entity

	markersByKey map[LocationKey]*Entity
	usedNames    map[string]int

	// Diagnostics: inputs excluded during the build.
	SkippedLocations  int // records with null coordinates
	SkippedRoutes     int // connections with an unresolved endpoint
	SkippedHighlights int // highlight entries matching no imported region
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		markersByKey: make(map[LocationKey]*Entity),
		usedNames:    make(map[string]int),
	}
}

// Marker returns the marker entity for a location key.
func (c *Catalog) Marker(key LocationKey) (*Entity, bool) {
	e, ok := c.markersByKey[key]
	return e, ok
}

// uniqueName derives an entity name, suffixing duplicates so names stay
// unique within their collection.
func (c *Catalog) uniqueName(base string) string {
	base = sanitizeName(base)
	n := c.usedNames[base]
	c.usedNames[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s_%03d", base, n)
}
