package flyover

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Status reports how a location's coordinates were resolved by the geocoding
// collaborator.
type Status uint8

const (
	StatusOK             Status = iota // resolved by live lookup
	StatusCache                        // served from the geocode cache
	StatusManualOverride               // pinned by a manual override entry
	StatusNotFound                     // unresolved; record has no coordinates
)

var statusNames = map[Status]string{
	StatusOK:             "ok",
	StatusCache:          "cache",
	StatusManualOverride: "manual_override",
	StatusNotFound:       "not_found",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// UnmarshalJSON parses the wire names used by the geocoded dataset.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for st, n := range statusNames {
		if n == name {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown geocode status %q", name)
}

// MarshalJSON emits the wire name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// LocationRecord is one geocoded city. Lat and Lon are pointers because the
// collaborator emits null coordinates for unresolved places; such records are
// tolerated and excluded from placement rather than treated as errors.
type LocationRecord struct {
	City   string   `json:"city"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Status Status   `json:"status"`
}

// Placeable reports whether the record carries usable coordinates.
func (r LocationRecord) Placeable() bool {
	return r.Lat != nil && r.Lon != nil
}

// StateGroup holds one state's records in dataset order.
type StateGroup struct {
	State   string
	Records []LocationRecord
}

// Dataset is the geocoded input: states in file order, cities in file order
// within each state. Order is preserved on parse because the scheduler walks
// the dataset front to back and must produce the same timeline on every run.
type Dataset []StateGroup

// Key returns the identity key for a record within a state group.
func (g StateGroup) Key(r LocationRecord) LocationKey {
	return LocationKey{State: g.State, City: r.City}
}

// LoadDataset reads a geocoded dataset file.
func LoadDataset(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ParseDataset(f)
}

// ParseDataset decodes `{state: [record, ...], ...}` JSON. A plain map
// decode would lose the object's key order, so the outer object is walked
// with a token decoder instead.
func ParseDataset(r io.Reader) (Dataset, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parse dataset: want object, got %v", tok)
	}

	var ds Dataset
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse dataset: %w", err)
		}
		state, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parse dataset: want state name, got %v", keyTok)
		}
		var records []LocationRecord
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse dataset: state %q: %w", state, err)
		}
		ds = append(ds, StateGroup{State: state, Records: records})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return ds, nil
}
