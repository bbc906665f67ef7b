package vignette

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a walkthrough script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// walkthroughScript is the top-level JSON structure.
type walkthroughScript struct {
	Steps []scriptStep `json:"steps"`
}

// Walkthrough sequences scripted input across frames for automated
// playthrough testing: clicks are injected through the same queue as
// InjectClick, "back" and "clear" drive the navigator directly. Attach to
// a Stage via SetWalkthrough.
//
// Supported actions: "click" (x, y), "back", "clear", "wait" (frames).
type Walkthrough struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadWalkthrough parses a JSON walkthrough script.
func LoadWalkthrough(jsonData []byte) (*Walkthrough, error) {
	var script walkthroughScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse walkthrough script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse walkthrough script: no steps")
	}
	return &Walkthrough{steps: script.Steps}, nil
}

// SetWalkthrough attaches a walkthrough to the stage. The walkthrough is
// advanced once per Update, before input processing.
func (s *Stage) SetWalkthrough(w *Walkthrough) {
	s.walkthrough = w
}

// Done reports whether every step has been executed and drained.
func (w *Walkthrough) Done() bool {
	return w.done
}

// step advances the walkthrough by one frame.
func (w *Walkthrough) step(s *Stage) {
	if w.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if w.waitCount > 0 {
		w.waitCount--
		return
	}
	if w.cursor >= len(w.steps) {
		w.done = true
		return
	}

	st := w.steps[w.cursor]
	w.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "back":
		s.nav.GoBack()
	case "clear":
		s.nav.Clear()
	case "wait":
		if st.Frames > 0 {
			w.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		warnf("walkthrough: unknown action %q", st.Action)
	}

	if w.cursor >= len(w.steps) && w.waitCount == 0 && len(s.injectQueue) == 0 {
		w.done = true
	}
}
