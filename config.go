package flyover

// Connection is a directed pair of location keys that gets an animated route
// curve, drawn from From to To.
type Connection struct {
	From, To LocationKey
}

// Highlight names a basemap region that receives a glowing overlay.
// DisplayName is informational; RegionID is matched against imported region
// identifiers (tolerantly, see Basemap.FindRegion).
type Highlight struct {
	DisplayName string
	RegionID    string
}

// StoryBeat is one camera stop: the marker to frame and the beat's frame
// offset from the timeline start. Beats are hand-tuned, so each carries its
// own offset instead of a computed spacing.
type StoryBeat struct {
	Key    LocationKey
	Offset int
}

// Timing holds the per-class scheduling constants: base offsets from the
// timeline start, the stride each class cursor advances by per scheduled
// entity, and the fixed keyframe shape of each animation.
type Timing struct {
	// Marker pop-in: scale 0 at the cursor, overshoot, then settle.
	MarkerStride   int
	PopOvershootAt int     // frames after the cursor
	PopSettleAt    int     // frames after the cursor
	PopOvershoot   float64 // overshoot scale, > 1

	// Route reveal: bevel_factor_end 0 -> 1.
	RouteOffset   int // first route cursor position, from frame start
	RouteStride   int
	RouteDuration int

	// Region highlight glow: emission 0 -> peak -> 0.
	HighlightStride int
	HighlightPeakAt int
	HighlightEndAt  int
	HighlightPeak   float64

	// Hub pulse ring: synchronized scale and emission pulse, repeated.
	PulseOffset   int // first pulse cursor position, from frame start
	PulseStride   int
	PulseRepeats  int
	PulseGap      int // frames between repeats of the same ring
	PulseDuration int
	PulseMinScale float64
	PulseMaxScale float64
	PulsePeak     float64 // emission strength at pulse start
}

// Config is the full static configuration of a composition run.
type Config struct {
	// Assets and outputs.
	BasemapPath   string
	LocationsPath string
	ScenePath     string // persisted scene document
	VideoPath     string // render target, used with Engine.RenderAnimation

	// Geography and plane geometry.
	GeoBounds    BoundingBox
	MapScale     float64
	MapThickness float64
	PinHeight    float64
	PinRadius    float64
	MinBulge     float64 // minimum route arc height
	BulgeFactor  float64 // arc height per unit of endpoint distance
	CurveBevel   float64 // route curve bevel depth

	// Render settings.
	FPS             int
	DurationSeconds int
	FrameStart      int
	ResX, ResY      int

	// Network content.
	Hubs        []LocationKey
	Connections []Connection
	Highlights  []Highlight
	StoryBeats  []StoryBeat

	Timing Timing
}

// FrameEnd returns the last frame of the timeline.
func (c Config) FrameEnd() int {
	return c.FrameStart + c.FPS*c.DurationSeconds
}

// IsHub reports whether a location key is in the configured hub set.
func (c Config) IsHub(k LocationKey) bool {
	for _, h := range c.Hubs {
		if h == k {
			return true
		}
	}
	return false
}

// DefaultTiming returns the production choreography constants.
func DefaultTiming() Timing {
	return Timing{
		MarkerStride:   3,
		PopOvershootAt: 8,
		PopSettleAt:    14,
		PopOvershoot:   1.12,

		RouteOffset:   20,
		RouteStride:   22,
		RouteDuration: 28,

		HighlightStride: 60,
		HighlightPeakAt: 12,
		HighlightEndAt:  44,
		HighlightPeak:   9.0,

		PulseOffset:   10,
		PulseStride:   12,
		PulseRepeats:  3,
		PulseGap:      140,
		PulseDuration: 24,
		PulseMinScale: 0.2,
		PulseMaxScale: 2.2,
		PulsePeak:     18.0,
	}
}

// DefaultConfig returns the India logistics network configuration the
// pipeline ships with: hero hubs, hub-to-hub connections, highlighted states,
// and the five-beat camera tour.
func DefaultConfig() Config {
	return Config{
		BasemapPath:   "assets/india_states.geojson",
		LocationsPath: "locations_geocoded.json",
		ScenePath:     "india_network_scene.json",
		VideoPath:     "india_network.mp4",

		GeoBounds:    BoundingBox{LatMin: 6.0, LatMax: 37.5, LonMin: 68.0, LonMax: 97.5},
		MapScale:     22.0,
		MapThickness: 0.35,
		PinHeight:    0.85,
		PinRadius:    0.075,
		MinBulge:     0.4,
		BulgeFactor:  0.08,
		CurveBevel:   0.03,

		FPS:             30,
		DurationSeconds: 16,
		FrameStart:      1,
		ResX:            1920,
		ResY:            1080,

		Hubs: []LocationKey{
			{"Maharashtra", "Mumbai"},
			{"Maharashtra", "Pune"},
			{"Delhi", "Kashmere Gate"},
			{"Chhattisgarh", "Raipur"},
			{"Gujarat", "Rajkot"},
			{"Punjab", "Ludhiana"},
			{"Uttar Pradesh", "Noida"},
		},
		Connections: []Connection{
			{LocationKey{"Maharashtra", "Mumbai"}, LocationKey{"Maharashtra", "Pune"}},
			{LocationKey{"Maharashtra", "Mumbai"}, LocationKey{"Chhattisgarh", "Raipur"}},
			{LocationKey{"Maharashtra", "Mumbai"}, LocationKey{"Delhi", "Kashmere Gate"}},
			{LocationKey{"Delhi", "Kashmere Gate"}, LocationKey{"Punjab", "Ludhiana"}},
			{LocationKey{"Delhi", "Kashmere Gate"}, LocationKey{"Uttar Pradesh", "Noida"}},
			{LocationKey{"Maharashtra", "Mumbai"}, LocationKey{"Gujarat", "Rajkot"}},
		},
		Highlights: []Highlight{
			{"Maharashtra", "INMH"},
			{"Chhattisgarh", "INCT"},
			{"Delhi", "INDL"},
			{"Punjab", "INPB"},
			{"Uttar Pradesh", "INUP"},
			{"Haryana", "INHR"},
			{"Gujarat", "INGJ"},
		},
		StoryBeats: []StoryBeat{
			{LocationKey{"Maharashtra", "Mumbai"}, 0},
			{LocationKey{"Chhattisgarh", "Raipur"}, 90},
			{LocationKey{"Delhi", "Kashmere Gate"}, 180},
			{LocationKey{"Punjab", "Ludhiana"}, 270},
			{LocationKey{"Gujarat", "Rajkot"}, 340},
		},

		Timing: DefaultTiming(),
	}
}
