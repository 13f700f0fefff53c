package flyover

import (
	"math"
	"testing"
)

func popInKeys(e *Entity) []Keyframe {
	return []Keyframe{
		{Entity: e, Attr: AttrScale, Frame: 10, Value: 0},
		{Entity: e, Attr: AttrScale, Frame: 18, Value: 1.12},
		{Entity: e, Attr: AttrScale, Frame: 24, Value: 1.0},
	}
}

func TestSamplerHitsKeyframesExactly(t *testing.T) {
	e := &Entity{Kind: KindMarker, Name: "pin"}
	s := NewSampler(popInKeys(e))

	for _, tt := range []struct {
		frame float64
		want  float64
	}{{10, 0}, {18, 1.12}, {24, 1.0}} {
		got, ok := s.Value(e, AttrScale, tt.frame)
		if !ok {
			t.Fatalf("no value at frame %f", tt.frame)
		}
		if math.Abs(got-tt.want) > 1e-3 {
			t.Errorf("frame %f = %f, want %f", tt.frame, got, tt.want)
		}
	}
}

func TestSamplerClampsOutsideTrack(t *testing.T) {
	e := &Entity{Kind: KindMarker, Name: "pin"}
	s := NewSampler(popInKeys(e))

	if v, _ := s.Value(e, AttrScale, 0); v != 0 {
		t.Errorf("before track = %f, want first value", v)
	}
	if v, _ := s.Value(e, AttrScale, 500); math.Abs(v-1.0) > 1e-9 {
		t.Errorf("after track = %f, want last value", v)
	}
}

func TestSamplerEasesBetweenKeys(t *testing.T) {
	e := &Entity{Kind: KindRouteCurve, Name: "route"}
	s := NewSampler([]Keyframe{
		{Entity: e, Attr: AttrBevelFactorEnd, Frame: 20, Value: 0},
		{Entity: e, Attr: AttrBevelFactorEnd, Frame: 48, Value: 1},
	})

	// Reveal progress never decreases across the segment.
	prev := -1.0
	for f := 20.0; f <= 48.0; f++ {
		v, ok := s.Value(e, AttrBevelFactorEnd, f)
		if !ok {
			t.Fatal("missing value")
		}
		if v < prev-1e-6 {
			t.Fatalf("reveal regressed at frame %f: %f < %f", f, v, prev)
		}
		prev = v
	}
	if mid, _ := s.Value(e, AttrBevelFactorEnd, 34); mid <= 0.05 || mid >= 0.95 {
		t.Errorf("midpoint = %f, want a partial reveal", mid)
	}
}

func TestSamplerUnknownTrack(t *testing.T) {
	e := &Entity{Kind: KindMarker, Name: "pin"}
	s := NewSampler(nil)
	if _, ok := s.Value(e, AttrScale, 1); ok {
		t.Error("expected no value for empty sampler")
	}
}

func TestSamplerLocation(t *testing.T) {
	focus := &Entity{Kind: KindCameraRig, Name: "CAM_FOCUS"}
	s := NewSampler([]Keyframe{
		{Entity: focus, Attr: AttrLocation, Frame: 1, Loc: Vec3{X: 0, Y: 0, Z: 0.35}},
		{Entity: focus, Attr: AttrLocation, Frame: 91, Loc: Vec3{X: 10, Y: -4, Z: 0.35}},
	})

	loc, ok := s.Location(focus, 91)
	if !ok || math.Abs(loc.X-10) > 1e-3 || math.Abs(loc.Y+4) > 1e-3 {
		t.Errorf("location at key = %+v", loc)
	}
	mid, _ := s.Location(focus, 46)
	if mid.X <= 0 || mid.X >= 10 {
		t.Errorf("mid X = %f, want between endpoints", mid.X)
	}
	if math.Abs(mid.Z-0.35) > 1e-3 {
		t.Errorf("Z should stay constant, got %f", mid.Z)
	}
}
