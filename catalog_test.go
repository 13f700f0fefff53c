package flyover

import (
	"math"
	"strings"
	"testing"
)

func f(v float64) *float64 { return &v }

func testDataset() Dataset {
	return Dataset{
		{State: "Maharashtra", Records: []LocationRecord{
			{City: "Mumbai", Lat: f(19.076), Lon: f(72.8777), Status: StatusOK},
			{City: "Pune", Lat: f(18.5204), Lon: f(73.8567), Status: StatusOK},
			{City: "Ghost Town", Status: StatusNotFound},
		}},
		{State: "Delhi", Records: []LocationRecord{
			{City: "Kashmere Gate", Lat: f(28.6675), Lon: f(77.2274), Status: StatusCache},
		}},
	}
}

func testCatalogConfig() Config {
	cfg := DefaultConfig()
	cfg.Hubs = []LocationKey{{"Maharashtra", "Mumbai"}, {"Delhi", "Kashmere Gate"}}
	cfg.Connections = []Connection{
		{LocationKey{"Maharashtra", "Mumbai"}, LocationKey{"Maharashtra", "Pune"}},
		{LocationKey{"Maharashtra", "Mumbai"}, LocationKey{"Delhi", "Kashmere Gate"}},
	}
	cfg.Highlights = []Highlight{{"Maharashtra", "INMH"}, {"Delhi", "INDL"}}
	return cfg
}

func testBasemap() *Basemap {
	return &Basemap{
		Width:  40,
		Height: 50,
		Regions: []BasemapRegion{
			{ID: "INMH", Rings: [][]Point{{{-5, -5}, {5, -5}, {5, 5}}}},
			{ID: "INDL.001", Rings: [][]Point{{{1, 10}, {2, 10}, {2, 11}}}},
		},
	}
}

func testProjector() Projector {
	return Projector{Bounds: testBounds(), Width: 40, Height: 50}
}

func TestBuildCatalogMarkers(t *testing.T) {
	cfg := testCatalogConfig()
	cat := BuildCatalog(testDataset(), testBasemap(), testProjector(), cfg, NewPalette())

	if len(cat.Markers) != 3 {
		t.Fatalf("got %d markers, want 3", len(cat.Markers))
	}
	if cat.SkippedLocations != 1 {
		t.Errorf("SkippedLocations = %d, want 1", cat.SkippedLocations)
	}

	mumbai, ok := cat.Marker(LocationKey{"Maharashtra", "Mumbai"})
	if !ok {
		t.Fatal("Mumbai marker not indexed")
	}
	if !mumbai.Hub {
		t.Error("Mumbai should be classified as a hub")
	}
	if mumbai.Name != "pin_Maharashtra_Mumbai" {
		t.Errorf("name = %q", mumbai.Name)
	}
	want := testProjector().Project(19.076, 72.8777)
	if mumbai.Position.X != want.X || mumbai.Position.Y != want.Y {
		t.Errorf("position = %+v, want projection %+v", mumbai.Position, want)
	}
	if math.Abs(mumbai.Position.Z-(cfg.MapThickness+markerLift)) > 1e-12 {
		t.Errorf("marker Z = %f", mumbai.Position.Z)
	}

	pune, _ := cat.Marker(LocationKey{"Maharashtra", "Pune"})
	if pune.Hub {
		t.Error("Pune should not be a hub")
	}
	if pune.Style == mumbai.Style {
		t.Error("hub and ordinary markers must not share a style")
	}
}

func TestBuildCatalogRoutes(t *testing.T) {
	cfg := testCatalogConfig()
	cfg.Connections = append(cfg.Connections,
		Connection{LocationKey{"Maharashtra", "Mumbai"}, LocationKey{"Goa", "Panaji"}})
	cat := BuildCatalog(testDataset(), testBasemap(), testProjector(), cfg, NewPalette())

	if len(cat.Routes) != 2 {
		t.Fatalf("got %d routes, want 2 (dangling connection skipped)", len(cat.Routes))
	}
	if cat.SkippedRoutes != 1 {
		t.Errorf("SkippedRoutes = %d, want 1", cat.SkippedRoutes)
	}

	r := cat.Routes[1] // Mumbai -> Kashmere Gate, the long edge
	dist := math.Hypot(r.From.X-r.To.X, r.From.Y-r.To.Y)
	if math.Abs(r.Bulge-math.Max(cfg.MinBulge, dist*cfg.BulgeFactor)) > 1e-12 {
		t.Errorf("bulge = %f for distance %f", r.Bulge, dist)
	}
	if r.Style != cat.Routes[0].Style {
		t.Error("routes must share the class-wide style")
	}

	short := cat.Routes[0] // Mumbai -> Pune, short edge clamps to MinBulge
	if short.Bulge != cfg.MinBulge {
		t.Errorf("short edge bulge = %f, want MinBulge %f", short.Bulge, cfg.MinBulge)
	}
}

func TestBuildCatalogHighlights(t *testing.T) {
	cfg := testCatalogConfig()
	cfg.Highlights = append(cfg.Highlights, Highlight{"Atlantis", "INXX"})
	cat := BuildCatalog(testDataset(), testBasemap(), testProjector(), cfg, NewPalette())

	if len(cat.Highlights) != 2 {
		t.Fatalf("got %d highlights, want 2 (unmatched entry skipped)", len(cat.Highlights))
	}
	if cat.SkippedHighlights != 1 {
		t.Errorf("SkippedHighlights = %d, want 1", cat.SkippedHighlights)
	}

	dl := cat.Highlights[1]
	if dl.SourceRegion != "INDL.001" {
		t.Errorf("tolerant match resolved %q, want INDL.001", dl.SourceRegion)
	}
	if !strings.HasSuffix(dl.Name, "_HIGHLIGHT") {
		t.Errorf("name = %q", dl.Name)
	}
	if cat.Highlights[0].Style == cat.Highlights[1].Style {
		t.Error("highlight overlays must have per-entity styles")
	}
}

func TestBuildCatalogPulses(t *testing.T) {
	cfg := testCatalogConfig()
	cat := BuildCatalog(testDataset(), testBasemap(), testProjector(), cfg, NewPalette())

	if len(cat.Pulses) != 2 {
		t.Fatalf("got %d pulse rings, want 2 (one per hub)", len(cat.Pulses))
	}
	// Pulses follow marker creation order, not hub config order.
	if cat.Pulses[0].Key != (LocationKey{"Maharashtra", "Mumbai"}) {
		t.Errorf("first pulse = %v", cat.Pulses[0].Key)
	}
	if cat.Pulses[1].Key != (LocationKey{"Delhi", "Kashmere Gate"}) {
		t.Errorf("second pulse = %v", cat.Pulses[1].Key)
	}
	if cat.Pulses[0].Style == cat.Pulses[1].Style {
		t.Error("pulse rings must have per-entity styles")
	}
}

func TestCatalogDuplicateNamesStayUnique(t *testing.T) {
	ds := Dataset{
		{State: "Maharashtra", Records: []LocationRecord{
			{City: "Mumbai", Lat: f(19.0), Lon: f(72.8), Status: StatusOK},
			{City: "Mumbai", Lat: f(19.1), Lon: f(72.9), Status: StatusCache},
		}},
	}
	cfg := testCatalogConfig()
	cfg.Connections = nil
	cat := BuildCatalog(ds, testBasemap(), testProjector(), cfg, NewPalette())

	if len(cat.Markers) != 2 {
		t.Fatal("expected both records placed")
	}
	if cat.Markers[0].Name == cat.Markers[1].Name {
		t.Errorf("duplicate entity names: %q", cat.Markers[0].Name)
	}
}
