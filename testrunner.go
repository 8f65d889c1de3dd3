package canopy

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Button string  `json:"button,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across ticks for
// automated testing.
// Attach to a Scene via SetTestRunner. A script looks like:
//
//	{"steps": [
//	  {"action": "move", "x": 40, "y": 40},
//	  {"action": "click", "x": 40, "y": 40},
//	  {"action": "press", "x": 90, "y": 10, "button": "right"},
//	  {"action": "wait", "frames": 3},
//	  {"action": "screenshot", "label": "menu-open"},
//	  {"action": "release", "x": 90, "y": 10, "button": "right"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("canopy: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("canopy: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "click", "wait", "screenshot":
		case "press", "release":
			if _, err := parseButton(st.Button); err != nil {
				return nil, fmt.Errorf("canopy: parse test script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("canopy: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input is handled each tick.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending events to drain before advancing.
	if s.queue.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "press":
		b, _ := parseButton(st.Button)
		s.InjectMove(st.X, st.Y)
		s.InjectButton(ButtonPressed, b)
	case "release":
		b, _ := parseButton(st.Button)
		s.InjectMove(st.X, st.Y)
		s.InjectButton(ButtonReleased, b)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
