package flyover

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// track is one (entity, attribute) keyframe sequence in frame order.
type track struct {
	keys []Keyframe
}

// Sampler evaluates a scheduled keyframe sequence at arbitrary frames,
// easing between adjacent keyframes the way the render engine's interpolator
// would. Used by the preview player; the engine itself receives the raw
// instructions.
type Sampler struct {
	tracks map[attrKey]*track
}

// NewSampler indexes the instruction sequence by (entity, attribute).
// Instructions arrive in strictly increasing frame order per track, so no
// sorting happens here.
func NewSampler(keys []Keyframe) *Sampler {
	s := &Sampler{tracks: make(map[attrKey]*track)}
	for _, k := range keys {
		id := attrKey{entity: k.Entity, attr: k.Attr}
		tr := s.tracks[id]
		if tr == nil {
			tr = &track{}
			s.tracks[id] = tr
		}
		tr.keys = append(tr.keys, k)
	}
	return s
}

// Value samples a scalar attribute at the given frame. Before the first
// keyframe it holds the first value, after the last the last value. The
// second return is false if the track has no keyframes.
func (s *Sampler) Value(e *Entity, attr Attr, frame float64) (float64, bool) {
	tr := s.tracks[attrKey{entity: e, attr: attr}]
	if tr == nil || len(tr.keys) == 0 {
		return 0, false
	}
	k0, k1, t := tr.segment(frame)
	if k1 == nil {
		return k0.Value, true
	}
	return lerpEased(k0.Value, k1.Value, t), true
}

// Location samples the location attribute at the given frame.
func (s *Sampler) Location(e *Entity, frame float64) (Vec3, bool) {
	tr := s.tracks[attrKey{entity: e, attr: AttrLocation}]
	if tr == nil || len(tr.keys) == 0 {
		return Vec3{}, false
	}
	k0, k1, t := tr.segment(frame)
	if k1 == nil {
		return k0.Loc, true
	}
	return Vec3{
		X: lerpEased(k0.Loc.X, k1.Loc.X, t),
		Y: lerpEased(k0.Loc.Y, k1.Loc.Y, t),
		Z: lerpEased(k0.Loc.Z, k1.Loc.Z, t),
	}, true
}

// segment finds the keyframe pair bracketing frame and the normalized
// position within it. k1 is nil when the frame is clamped to a single key.
func (tr *track) segment(frame float64) (k0 *Keyframe, k1 *Keyframe, t float64) {
	first := &tr.keys[0]
	if frame <= float64(first.Frame) {
		return first, nil, 0
	}
	for i := 1; i < len(tr.keys); i++ {
		next := &tr.keys[i]
		if frame <= float64(next.Frame) {
			prev := &tr.keys[i-1]
			span := float64(next.Frame - prev.Frame)
			return prev, next, (frame - float64(prev.Frame)) / span
		}
	}
	return &tr.keys[len(tr.keys)-1], nil, 0
}

// lerpEased interpolates with the same smooth-step feel as the engine's
// default keyframe interpolation.
func lerpEased(from, to, t float64) float64 {
	tw := gween.New(float32(from), float32(to), 1, ease.InOutQuad)
	v, _ := tw.Update(float32(t))
	return float64(v)
}
