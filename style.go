package flyover

import "strings"

// Style is the visual parameterization of an entity: either an emission-only
// look (markers, routes, glows) or a principled surface (the map base).
// Styles are compared by pointer: entities sharing one *Style share one
// engine-side material, so a class-wide tone change needs a single edit.
type Style struct {
	Name     string
	Color    Color
	Strength float64

	// Principled surface fields. Zero for emission-only styles.
	Principled bool
	BaseColor  Color
	Roughness  float64
	Metallic   float64
}

// EmissionStyle returns an emission-only style.
func EmissionStyle(name string, color Color, strength float64) *Style {
	return &Style{Name: name, Color: color, Strength: strength}
}

// PrincipledStyle returns a principled surface style with an emission tint.
func PrincipledStyle(name string, base Color, roughness, metallic float64, emission Color, strength float64) *Style {
	return &Style{
		Name:       name,
		Principled: true,
		BaseColor:  base,
		Roughness:  roughness,
		Metallic:   metallic,
		Color:      emission,
		Strength:   strength,
	}
}

// Palette holds the shared class-wide style instances plus constructors for
// the per-entity ones. Markers, hub markers, and routes share one instance
// per class; highlight glows and pulse rings get one instance per entity so
// their emission can be keyframed on independent timings.
type Palette struct {
	MapBase *Style
	Marker  *Style
	Hub     *Style
	Route   *Style
}

// NewPalette returns the production look: a dark premium map base, warm
// marker pins, alert-red hub pins, and cool cyan routes and glows.
func NewPalette() *Palette {
	return &Palette{
		MapBase: PrincipledStyle("MapBase",
			Color{0.05, 0.09, 0.14, 1.0}, 0.65, 0.10,
			Color{0.01, 0.05, 0.09, 1.0}, 0.35),
		Marker: EmissionStyle("PinNormal", Color{0.95, 0.78, 0.25, 1.0}, 5.5),
		Hub:    EmissionStyle("PinHub", Color{1.0, 0.25, 0.18, 1.0}, 9.0),
		Route:  EmissionStyle("RouteLine", Color{0.20, 0.75, 1.0, 1.0}, 3.5),
	}
}

// GlowStyle returns a fresh highlight overlay style for one region.
// Strength starts at zero; the scheduler animates it.
func (p *Palette) GlowStyle(regionID string) *Style {
	return EmissionStyle("StateGlow_"+sanitizeName(regionID), Color{0.12, 0.65, 1.0, 1.0}, 0)
}

// PulseStyle returns a fresh pulse ring style for one hub.
func (p *Palette) PulseStyle(key LocationKey) *Style {
	return EmissionStyle("PulseRing_"+sanitizeName(key.State+"_"+key.City), Color{0.20, 0.75, 1.0, 1.0}, 0)
}

// sanitizeName makes a derived name safe for engine object identifiers.
func sanitizeName(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
