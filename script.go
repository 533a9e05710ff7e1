package kinetype

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a frame script.
type scriptStep struct {
	Action string  `json:"action"`
	Target string  `json:"target,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a frame script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON frame script against a Scene: it waits a number
// of frames, places nodes, pushes them (sets velocity), or removes them.
// Attach it with Scene.SetScript; it runs at the start of each Update, before
// behaviours. Targets are node names, resolved with FindChild from the root.
//
//	{"steps": [
//		{"action": "push", "target": "ball", "x": 120, "y": 0},
//		{"action": "wait", "frames": 30},
//		{"action": "place", "target": "ball", "x": 10, "y": 10},
//		{"action": "remove", "target": "ball"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	missing   []string
}

// LoadScript parses a JSON frame script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "wait", "place", "push", "remove":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action != "wait" && st.Target == "" {
			return nil, fmt.Errorf("parse script: step %d: %s needs a target", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner to the scene. Pass nil to detach.
func (s *Scene) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Missing returns the targets that could not be found when their step ran.
func (r *ScriptRunner) Missing() []string {
	return r.missing
}

// step advances the runner by one frame. Consecutive non-wait steps run in
// the same frame.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}

	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		if st.Action == "wait" {
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
			break
		}

		n := s.root.FindChild(st.Target)
		if n == nil {
			r.missing = append(r.missing, st.Target)
			continue
		}
		switch st.Action {
		case "place":
			n.SetPosition(st.X, st.Y)
		case "push":
			n.SetVelocity(st.X, st.Y)
		case "remove":
			n.Dispose()
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
