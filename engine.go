package flyover

// PrimitiveKind selects the mesh or object template an engine instantiates.
type PrimitiveKind uint8

const (
	PrimitivePin    PrimitiveKind = iota // marker pin (stem + head)
	PrimitiveRing                        // torus for pulse ripples
	PrimitiveCurve                       // beveled arc between two points
	PrimitiveEmpty                       // invisible focus/track target
	PrimitiveCamera                      // camera body
	PrimitiveLight                       // sun or area light
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitivePin:
		return "pin"
	case PrimitiveRing:
		return "ring"
	case PrimitiveCurve:
		return "curve"
	case PrimitiveEmpty:
		return "empty"
	case PrimitiveCamera:
		return "camera"
	case PrimitiveLight:
		return "light"
	default:
		return "primitive"
	}
}

// PrimitiveParams carries the creation parameters for a primitive. Like
// Entity, it is a single flat struct; engines read the fields their kind
// needs and ignore the rest.
type PrimitiveParams struct {
	Name     string
	Position Vec3
	Rotation Vec3
	Scale    float64

	// Pin and ring geometry.
	Radius float64
	Height float64

	// Curve geometry: endpoints on the plane, arc height, bevel depth.
	From, To Point
	Z        float64
	Bulge    float64
	Bevel    float64

	// Camera optics.
	Lens  float64
	FStop float64

	// Light parameters.
	LightKind string
	Energy    float64
	Size      float64
}

// WorldSettings is the global look: background, bloom, and color management.
type WorldSettings struct {
	Background         Color
	BackgroundStrength float64
	Bloom              bool
	BloomIntensity     float64
	ViewTransform      string
	Look               string
}

// CodecConfig parameterizes the final video encode.
type CodecConfig struct {
	Container string
	Codec     string
	Quality   string
	Preset    string
	GOPSize   int
}

// DefaultCodec returns the web-friendly H.264 encode settings.
func DefaultCodec() CodecConfig {
	return CodecConfig{Container: "mp4", Codec: "h264", Quality: "high", Preset: "good", GOPSize: 12}
}

// Engine is the capability surface of the external 3D content engine. The
// pipeline drives it through opaque handles and never assumes anything about
// the engine's internal representation; scene assembly is the only component
// that touches it.
//
// ImportBasemap and RealizedSize exist because the placement pipeline depends
// on the realized extents of the imported geometry, not on a nominal asset
// size: engines report the bounds they actually produced.
type Engine interface {
	// ImportBasemap imports the base geometry, returning the imported
	// regions plus one handle per region, in import order. Returns an error
	// wrapping ErrMissingAsset or ErrEmptyImport on the fatal conditions.
	ImportBasemap(path string, scale float64) (*Basemap, []Handle, error)

	// CreatePrimitive instantiates an object and returns its handle.
	CreatePrimitive(kind PrimitiveKind, params PrimitiveParams) Handle

	// DeriveOverlay creates a new entity sharing an imported region's
	// geometry, lifted and scaled per params, with independent style and
	// keyframe bindings.
	DeriveOverlay(regionID string, params PrimitiveParams) Handle

	// ConvertToSolid converts imported flat geometry to a solid of the given
	// thickness.
	ConvertToSolid(h Handle, thickness float64)

	// SetStyle assigns a style to an object. Objects given the same *Style
	// share one engine-side material.
	SetStyle(h Handle, style *Style)

	// GroupInto links an object into a named collection, creating the
	// collection on first use. Resolution is by name and idempotent.
	GroupInto(collection string, h Handle)

	// SetKeyframe binds (frame, value) on a scalar attribute.
	SetKeyframe(h Handle, attr Attr, frame int, value float64)

	// SetLocationKeyframe binds (frame, position) on the location attribute.
	SetLocationKeyframe(h Handle, frame int, loc Vec3)

	// TrackTo constrains one object to always face another.
	TrackTo(h, target Handle)

	SetWorld(w WorldSettings)
	SetRenderRange(start, end int)
	SetFrameRate(fps int)
	SetOutputResolution(w, h int)

	// Save persists the composed scene to path.
	Save(path string) error

	// RenderAnimation renders the saved scene's frame range to a video file.
	RenderAnimation(path string, codec CodecConfig) error
}
