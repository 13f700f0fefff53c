package flyover

import (
	"encoding/json"
	"fmt"
	"sort"
)

// captureShot is a single scripted still.
type captureShot struct {
	Frame int    `json:"frame"`
	Label string `json:"label"`
}

// capturePlanDoc is the top-level JSON structure for a capture plan.
type capturePlanDoc struct {
	Shots []captureShot `json:"shots"`
}

// CapturePlan fires preview captures at scripted frames, so look-dev stills
// of specific timeline moments come out of an unattended playback run.
// Attach to a Preview via SetCapturePlan.
type CapturePlan struct {
	shots  []captureShot
	cursor int
}

// LoadCapturePlan parses a JSON capture plan. Shots are sorted by frame;
// frames before the timeline start are rejected.
func LoadCapturePlan(jsonData []byte) (*CapturePlan, error) {
	var doc capturePlanDoc
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("parse capture plan: %w", err)
	}
	if len(doc.Shots) == 0 {
		return nil, fmt.Errorf("parse capture plan: no shots")
	}
	for _, s := range doc.Shots {
		if s.Frame < 0 {
			return nil, fmt.Errorf("parse capture plan: negative frame %d", s.Frame)
		}
	}
	shots := make([]captureShot, len(doc.Shots))
	copy(shots, doc.Shots)
	sort.SliceStable(shots, func(i, j int) bool { return shots[i].Frame < shots[j].Frame })
	return &CapturePlan{shots: shots}, nil
}

// SetCapturePlan attaches a capture plan to the preview. The plan's step
// method runs from Preview.Update each frame.
func (pv *Preview) SetCapturePlan(plan *CapturePlan) {
	pv.capturePlan = plan
}

// Done reports whether every shot in the plan has fired.
func (p *CapturePlan) Done() bool {
	return p.cursor >= len(p.shots)
}

// step queues captures for every shot at or before the current frame.
// Called from Preview.Update.
func (p *CapturePlan) step(pv *Preview, frame int) {
	for p.cursor < len(p.shots) && p.shots[p.cursor].Frame <= frame {
		pv.Capture(p.shots[p.cursor].Label)
		p.cursor++
	}
}
