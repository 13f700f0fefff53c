package flyover

import (
	"math"
	"testing"
)

func testBounds() BoundingBox {
	return BoundingBox{LatMin: 6.0, LatMax: 37.5, LonMin: 68.0, LonMax: 97.5}
}

func TestProjectCenterOfBoxIsOrigin(t *testing.T) {
	b := testBounds()
	p := Projector{Bounds: b, Width: 40, Height: 50}

	got := p.Project((b.LatMin+b.LatMax)/2, (b.LonMin+b.LonMax)/2)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("center projected to (%f, %f), want origin", got.X, got.Y)
	}
}

func TestProjectCorners(t *testing.T) {
	b := testBounds()
	p := Projector{Bounds: b, Width: 40, Height: 50}

	sw := p.Project(b.LatMin, b.LonMin)
	if sw.X != -20 || sw.Y != -25 {
		t.Errorf("south-west corner = (%f, %f), want (-20, -25)", sw.X, sw.Y)
	}
	ne := p.Project(b.LatMax, b.LonMax)
	if ne.X != 20 || ne.Y != 25 {
		t.Errorf("north-east corner = (%f, %f), want (20, 25)", ne.X, ne.Y)
	}
}

func TestProjectMonotonic(t *testing.T) {
	b := testBounds()
	p := Projector{Bounds: b, Width: 40, Height: 50}

	// Increasing longitude strictly increases X at every latitude sampled,
	// and vice versa.
	for lat := b.LatMin; lat <= b.LatMax; lat += 3.5 {
		prev := p.Project(lat, b.LonMin)
		for lon := b.LonMin + 0.5; lon <= b.LonMax; lon += 0.5 {
			cur := p.Project(lat, lon)
			if cur.X <= prev.X {
				t.Fatalf("X not strictly increasing at lat=%f lon=%f: %f <= %f", lat, lon, cur.X, prev.X)
			}
			prev = cur
		}
	}
	for lon := b.LonMin; lon <= b.LonMax; lon += 3.5 {
		prev := p.Project(b.LatMin, lon)
		for lat := b.LatMin + 0.5; lat <= b.LatMax; lat += 0.5 {
			cur := p.Project(lat, lon)
			if cur.Y <= prev.Y {
				t.Fatalf("Y not strictly increasing at lat=%f lon=%f: %f <= %f", lat, lon, cur.Y, prev.Y)
			}
			prev = cur
		}
	}
}

func TestProjectNoClamping(t *testing.T) {
	b := testBounds()
	p := Projector{Bounds: b, Width: 40, Height: 50}

	out := p.Project(b.LatMax+5, b.LonMax+5)
	if out.X <= 20 || out.Y <= 25 {
		t.Errorf("out-of-box coordinate was clamped: (%f, %f)", out.X, out.Y)
	}
}
