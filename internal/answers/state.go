package answers

import (
	"encoding/json"
	"fmt"
	"strings"
)

// State is the persisted answer state of a canvas session.
type State struct {
	Answers   map[string]string `json:"answers"`
	Completed []string          `json:"completed"`
}

// Empty returns a state with no answers and nothing completed.
func Empty() State {
	return State{
		Answers:   map[string]string{},
		Completed: []string{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Answers:   make(map[string]string, len(s.Answers)),
		Completed: make([]string, len(s.Completed)),
	}
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	copy(out.Completed, s.Completed)
	return out
}

// Answer returns the raw answer for id; absent means "".
func (s State) Answer(id string) string {
	return s.Answers[id]
}

// IsCompleted reports whether id was explicitly marked complete.
func (s State) IsCompleted(id string) bool {
	for _, c := range s.Completed {
		if c == id {
			return true
		}
	}
	return false
}

// VisuallyComplete is true when the block is marked complete or has a
// non-blank answer.
func (s State) VisuallyComplete(id string) bool {
	return s.IsCompleted(id) || strings.TrimSpace(s.Answers[id]) != ""
}

// SetAnswer replaces the answer for id. The text is stored untrimmed.
func SetAnswer(s State, id, text string) State {
	next := s.Clone()
	next.Answers[id] = text
	return next
}

// ClearAnswer empties the answer for id and leaves the completed flag alone.
func ClearAnswer(s State, id string) State {
	return SetAnswer(s, id, "")
}

// ToggleComplete removes id from the completed list when present and
// appends it otherwise.
func ToggleComplete(s State, id string) State {
	next := s.Clone()
	if !next.IsCompleted(id) {
		next.Completed = append(next.Completed, id)
		return next
	}

	kept := next.Completed[:0]
	for _, c := range next.Completed {
		if c != id {
			kept = append(kept, c)
		}
	}
	next.Completed = kept
	return next
}

// Marshal encodes s in the persisted JSON shape.
func Marshal(s State) ([]byte, error) {
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	if s.Completed == nil {
		s.Completed = []string{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal answer state: %w", err)
	}
	return data, nil
}

// Unmarshal decodes persisted JSON. Missing fields become empty defaults
// and duplicate completed ids are dropped.
func Unmarshal(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return Empty(), fmt.Errorf("unmarshal answer state: %w", err)
	}
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}

	seen := make(map[string]bool, len(s.Completed))
	completed := make([]string, 0, len(s.Completed))
	for _, id := range s.Completed {
		if !seen[id] {
			seen[id] = true
			completed = append(completed, id)
		}
	}
	s.Completed = completed
	return s, nil
}
