package flyover

import "fmt"

// Keyframe is one instruction: at Frame, set Attr of Entity to Value (or Loc
// for location keyframes). Instructions are emitted in scheduling order and
// submitted to the engine unchanged.
type Keyframe struct {
	Entity *Entity
	Attr   Attr
	Frame  int
	Value  float64
	Loc    Vec3
}

// Cursors are the four per-class frame cursors. Each advances by its class
// stride after every scheduled entity, staggering the class's animations
// across the timeline. Cursors are plain scheduler state, reset with each
// Scheduler, never shared across runs.
type Cursors struct {
	Marker    int
	Route     int
	Pulse     int
	Highlight int
}

type attrKey struct {
	entity *Entity
	attr   Attr
}

// Scheduler assigns every catalog entity its keyframe window on the shared
// discrete timeline. It is deterministic: no randomness, no clock reads, and
// a fixed traversal order, so re-running on the same catalog yields an
// identical instruction sequence.
//
// Each (entity, attribute) track must be keyed in strictly increasing frame
// order; emitting out of order is a scheduling bug and panics.
type Scheduler struct {
	timing  Timing
	cursors Cursors
	keys    []Keyframe
	last    map[attrKey]int
}

// NewScheduler returns a scheduler with class cursors positioned at their
// configured base frames.
func NewScheduler(cfg Config) *Scheduler {
	return &Scheduler{
		timing: cfg.Timing,
		cursors: Cursors{
			Marker:    cfg.FrameStart,
			Route:     cfg.FrameStart + cfg.Timing.RouteOffset,
			Pulse:     cfg.FrameStart + cfg.Timing.PulseOffset,
			Highlight: cfg.FrameStart,
		},
		last: make(map[attrKey]int),
	}
}

// Keyframes returns the instructions emitted so far, in order.
func (s *Scheduler) Keyframes() []Keyframe {
	return s.keys
}

// Cursors returns a copy of the current cursor positions.
func (s *Scheduler) Cursors() Cursors {
	return s.cursors
}

// ScheduleCatalog schedules every entity of the catalog: highlights, then
// markers, then routes, then pulse rings, each class in catalog order.
func (s *Scheduler) ScheduleCatalog(cat *Catalog) {
	for _, e := range cat.Highlights {
		s.ScheduleHighlight(e)
	}
	for _, e := range cat.Markers {
		s.ScheduleMarker(e)
	}
	for _, e := range cat.Routes {
		s.ScheduleRoute(e)
	}
	for _, e := range cat.Pulses {
		s.SchedulePulse(e)
	}
}

// ScheduleMarker emits the pop-in: zero scale at the marker cursor, an
// overshoot above unit scale, then the settle. Reads as a spring without an
// easing engine.
func (s *Scheduler) ScheduleMarker(e *Entity) {
	f := s.cursors.Marker
	s.emit(e, AttrScale, f, 0)
	s.emit(e, AttrScale, f+s.timing.PopOvershootAt, s.timing.PopOvershoot)
	s.emit(e, AttrScale, f+s.timing.PopSettleAt, 1.0)
	s.cursors.Marker += s.timing.MarkerStride
}

// ScheduleRoute emits the draw-in reveal on the curve's bevel completion.
func (s *Scheduler) ScheduleRoute(e *Entity) {
	f := s.cursors.Route
	s.emit(e, AttrBevelFactorEnd, f, 0)
	s.emit(e, AttrBevelFactorEnd, f+s.timing.RouteDuration, 1.0)
	s.cursors.Route += s.timing.RouteStride
}

// ScheduleHighlight emits the glow: off, peak, off. The highlight stride is
// long enough that no two regions glow in synchrony.
func (s *Scheduler) ScheduleHighlight(e *Entity) {
	f := s.cursors.Highlight
	s.emit(e, AttrEmission, f, 0)
	s.emit(e, AttrEmission, f+s.timing.HighlightPeakAt, s.timing.HighlightPeak)
	s.emit(e, AttrEmission, f+s.timing.HighlightEndAt, 0)
	s.cursors.Highlight += s.timing.HighlightStride
}

// SchedulePulse emits the ripple, repeated across the timeline at fixed gaps.
// Scale and emission share the same two frames per repeat so the ring reads
// as one event.
func (s *Scheduler) SchedulePulse(e *Entity) {
	base := s.cursors.Pulse
	for i := 0; i < s.timing.PulseRepeats; i++ {
		f := base + i*s.timing.PulseGap
		s.emit(e, AttrScale, f, s.timing.PulseMinScale)
		s.emit(e, AttrScale, f+s.timing.PulseDuration, s.timing.PulseMaxScale)
		s.emit(e, AttrEmission, f, s.timing.PulsePeak)
		s.emit(e, AttrEmission, f+s.timing.PulseDuration, 0)
	}
	s.cursors.Pulse += s.timing.PulseStride
}

// ScheduleCameraBeats emits one location keyframe pair per beat: the focus
// target moves to the beat's focus point and the camera body to focus plus
// offset. The offset Z is absolute height, not relative to the focus.
func (s *Scheduler) ScheduleCameraBeats(focus, camera *Entity, beats []CameraBeat, surfaceZ float64) {
	for _, b := range beats {
		s.emitLoc(focus, b.Frame, Vec3{X: b.Focus.X, Y: b.Focus.Y, Z: surfaceZ})
		s.emitLoc(camera, b.Frame, Vec3{
			X: b.Focus.X + b.Offset.X,
			Y: b.Focus.Y + b.Offset.Y,
			Z: b.Offset.Z,
		})
	}
}

func (s *Scheduler) emit(e *Entity, attr Attr, frame int, value float64) {
	s.record(e, attr, frame)
	s.keys = append(s.keys, Keyframe{Entity: e, Attr: attr, Frame: frame, Value: value})
}

func (s *Scheduler) emitLoc(e *Entity, frame int, loc Vec3) {
	s.record(e, AttrLocation, frame)
	s.keys = append(s.keys, Keyframe{Entity: e, Attr: AttrLocation, Frame: frame, Loc: loc})
}

// record enforces the ordering invariant for one track.
func (s *Scheduler) record(e *Entity, attr Attr, frame int) {
	k := attrKey{entity: e, attr: attr}
	if prev, ok := s.last[k]; ok && frame <= prev {
		panic(fmt.Sprintf("flyover: keyframe out of order on %s/%s: frame %d after %d",
			e.Name, attr, frame, prev))
	}
	s.last[k] = frame
}
