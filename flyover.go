package flyover

import "fmt"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec3 is a 3D vector used for scene-space positions, offsets, and rotations.
type Vec3 struct {
	X, Y, Z float64
}

// Point is a 2D position on the scene plane, produced by projection.
// The plane is centered on the origin: x grows east, y grows north.
type Point struct {
	X, Y float64
}

// LocationKey identifies a geocoded location. (State, City) pairs are the
// stable identity used for hub membership, connections, and story beats.
type LocationKey struct {
	State string
	City  string
}

func (k LocationKey) String() string {
	return k.State + "/" + k.City
}

// EntityKind distinguishes the scene entity variants.
type EntityKind uint8

const (
	KindRegion     EntityKind = iota // basemap region or highlight overlay
	KindMarker                       // location pin
	KindRouteCurve                   // animated connection arc
	KindPulseRing                    // expanding ripple on a hub
	KindCameraRig                    // camera body or its focus target
	KindLight                        // key/rim/fill light
)

func (k EntityKind) String() string {
	switch k {
	case KindRegion:
		return "region"
	case KindMarker:
		return "marker"
	case KindRouteCurve:
		return "route"
	case KindPulseRing:
		return "pulse"
	case KindCameraRig:
		return "camera"
	case KindLight:
		return "light"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Attr identifies an animatable attribute of a scene entity.
type Attr uint8

const (
	AttrScale          Attr = iota // uniform object scale
	AttrEmission                   // material emission strength
	AttrBevelFactorEnd             // curve draw-in completion, 0..1
	AttrLocation                   // object position (Vec3 value)
)

func (a Attr) String() string {
	switch a {
	case AttrScale:
		return "scale"
	case AttrEmission:
		return "emission_strength"
	case AttrBevelFactorEnd:
		return "bevel_factor_end"
	case AttrLocation:
		return "location"
	default:
		return fmt.Sprintf("attr(%d)", uint8(a))
	}
}
