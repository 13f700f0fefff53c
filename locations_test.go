package flyover

import (
	"strings"
	"testing"
)

const testDatasetJSON = `{
  "Maharashtra": [
    {"city": "Mumbai", "lat": 19.076, "lon": 72.8777, "status": "ok"},
    {"city": "Pune", "lat": 18.5204, "lon": 73.8567, "status": "cache"},
    {"city": "Ghost Town", "lat": null, "lon": null, "status": "not_found"}
  ],
  "Delhi": [
    {"city": "Kashmere Gate", "lat": 28.6675, "lon": 77.2274, "status": "manual_override"}
  ],
  "Punjab": [
    {"city": "Ludhiana", "lat": 30.901, "lon": 75.8573, "status": "ok"}
  ]
}`

func TestParseDatasetPreservesOrder(t *testing.T) {
	ds, err := ParseDataset(strings.NewReader(testDatasetJSON))
	if err != nil {
		t.Fatal(err)
	}

	wantStates := []string{"Maharashtra", "Delhi", "Punjab"}
	if len(ds) != len(wantStates) {
		t.Fatalf("got %d states, want %d", len(ds), len(wantStates))
	}
	for i, w := range wantStates {
		if ds[i].State != w {
			t.Errorf("state[%d] = %q, want %q", i, ds[i].State, w)
		}
	}
	if ds[0].Records[0].City != "Mumbai" || ds[0].Records[1].City != "Pune" {
		t.Errorf("Maharashtra records out of order: %+v", ds[0].Records)
	}
}

func TestParseDatasetNullCoordinates(t *testing.T) {
	ds, err := ParseDataset(strings.NewReader(testDatasetJSON))
	if err != nil {
		t.Fatal(err)
	}

	ghost := ds[0].Records[2]
	if ghost.Placeable() {
		t.Error("record with null coordinates reported Placeable")
	}
	if ghost.Status != StatusNotFound {
		t.Errorf("status = %v, want not_found", ghost.Status)
	}
	if !ds[0].Records[0].Placeable() {
		t.Error("record with coordinates reported not Placeable")
	}
}

func TestParseDatasetStatuses(t *testing.T) {
	ds, err := ParseDataset(strings.NewReader(testDatasetJSON))
	if err != nil {
		t.Fatal(err)
	}
	if got := ds[0].Records[1].Status; got != StatusCache {
		t.Errorf("Pune status = %v, want cache", got)
	}
	if got := ds[1].Records[0].Status; got != StatusManualOverride {
		t.Errorf("Kashmere Gate status = %v, want manual_override", got)
	}
}

func TestParseDatasetRejectsUnknownStatus(t *testing.T) {
	_, err := ParseDataset(strings.NewReader(`{"X": [{"city": "Y", "status": "maybe"}]}`))
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestParseDatasetRejectsNonObject(t *testing.T) {
	_, err := ParseDataset(strings.NewReader(`[1, 2]`))
	if err == nil {
		t.Fatal("expected error for non-object input")
	}
}

func TestStateGroupKey(t *testing.T) {
	g := StateGroup{State: "Punjab", Records: []LocationRecord{{City: "Ludhiana"}}}
	k := g.Key(g.Records[0])
	if k != (LocationKey{State: "Punjab", City: "Ludhiana"}) {
		t.Errorf("key = %v", k)
	}
}
