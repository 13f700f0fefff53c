package flyover

// CameraBeat is one stop on the camera path: at Frame, the focus target sits
// on Focus and the camera body at Focus plus Offset (Offset.Z is absolute
// height above the plane).
type CameraBeat struct {
	Frame  int
	Focus  Point
	Offset Vec3
}

// Camera rig constants: a 42mm lens with a wide aperture for shallow focus,
// tracking a focus empty.
const (
	cameraLens  = 42.0
	cameraFStop = 2.2
)

// closeOffset is the tilted-down, pulled-back framing used for story beats;
// farOffset is the high wide framing of the closing zoom-out. Both scale with
// the realized plane height so the framing survives basemap changes.
func closeOffset(planeHeight float64) Vec3 {
	return Vec3{X: 0, Y: -planeHeight * 0.38, Z: planeHeight * 0.28}
}

func farOffset(planeHeight float64) Vec3 {
	return Vec3{X: 0, Y: -planeHeight * 0.92, Z: planeHeight * 0.70}
}

// BuildCameraPath derives the fly-through: one close beat per configured
// story beat, in order, then exactly two closing beats that pull back to the
// scene center, one 40 frames before the end and one on the last frame. A
// story beat whose key has no marker in the catalog falls back to the scene
// center rather than failing.
func BuildCameraPath(cat *Catalog, cfg Config, planeHeight float64) []CameraBeat {
	near := closeOffset(planeHeight)
	far := farOffset(planeHeight)

	beats := make([]CameraBeat, 0, len(cfg.StoryBeats)+2)
	for _, sb := range cfg.StoryBeats {
		focus := Point{}
		if m, ok := cat.Marker(sb.Key); ok {
			focus = Point{X: m.Position.X, Y: m.Position.Y}
		}
		beats = append(beats, CameraBeat{
			Frame:  cfg.FrameStart + sb.Offset,
			Focus:  focus,
			Offset: near,
		})
	}

	end := cfg.FrameEnd()
	beats = append(beats,
		CameraBeat{Frame: end - 40, Focus: Point{}, Offset: far},
		CameraBeat{Frame: end, Focus: Point{}, Offset: far},
	)
	return beats
}
