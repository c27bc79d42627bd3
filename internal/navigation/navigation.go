// Package navigation maps key presses to canvas actions and tracks which
// block has focus.
package navigation

import "strings"

// Action is something a key press asks the canvas to do.
type Action int

const (
	ActionNone Action = iota
	ActionMoveDown
	ActionMoveUp
	ActionToggleComplete
	ActionExport
	ActionClearAnswer
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveDown:
		return "move-down"
	case ActionMoveUp:
		return "move-up"
	case ActionToggleComplete:
		return "toggle-complete"
	case ActionExport:
		return "export"
	case ActionClearAnswer:
		return "clear-answer"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Binding ties one or more key names to an action. Key names follow
// bubbletea's tea.KeyMsg.String() format.
type Binding struct {
	Keys   []string
	Action Action
	Help   string
}

// DefaultBindings is the global shortcut table. ctrl+t stands in for
// ctrl+enter on terminals that cannot report it.
var DefaultBindings = []Binding{
	{Keys: []string{"down"}, Action: ActionMoveDown, Help: "siguiente"},
	{Keys: []string{"up"}, Action: ActionMoveUp, Help: "anterior"},
	{Keys: []string{"ctrl+enter", "cmd+enter", "ctrl+t"}, Action: ActionToggleComplete, Help: "completar"},
	{Keys: []string{"alt+e", "alt+x"}, Action: ActionExport, Help: "exportar"},
	{Keys: []string{"ctrl+r"}, Action: ActionClearAnswer, Help: "borrar"},
	{Keys: []string{"ctrl+c", "esc"}, Action: ActionQuit, Help: "salir"},
}

// Dispatcher resolves key names against a binding table.
type Dispatcher struct {
	table    map[string]Action
	bindings []Binding
}

// NewDispatcher builds a dispatcher. Later bindings win on duplicate keys.
func NewDispatcher(bindings []Binding) *Dispatcher {
	d := &Dispatcher{
		table:    make(map[string]Action),
		bindings: bindings,
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			d.table[normalize(k)] = b.Action
		}
	}
	return d
}

// Resolve returns the action bound to key.
func (d *Dispatcher) Resolve(key string) (Action, bool) {
	a, ok := d.table[normalize(key)]
	return a, ok
}

// Bindings returns the table the dispatcher was built from.
func (d *Dispatcher) Bindings() []Binding {
	return d.bindings
}

// normalize lower-cases the final letter of modifier combos so that
// alt+E and alt+e resolve the same way.
func normalize(key string) string {
	i := strings.LastIndex(key, "+")
	if i < 0 || i == len(key)-1 {
		return key
	}
	return key[:i+1] + strings.ToLower(key[i+1:])
}

// Focus is the focused position in an ordered id list. The zero value is
// not usable; build it with NewFocus.
type Focus struct {
	ids   []string
	index int
}

// NewFocus focuses the first id.
func NewFocus(ids []string) Focus {
	cp := make([]string, len(ids))
	copy(cp, ids)
	return Focus{ids: cp}
}

// ID returns the focused id, or "" when the list is empty.
func (f Focus) ID() string {
	if len(f.ids) == 0 {
		return ""
	}
	return f.ids[f.index]
}

// Index returns the focused position.
func (f Focus) Index() int {
	return f.index
}

// Next moves one step down, stopping at the last id.
func (f Focus) Next() Focus {
	if f.index < len(f.ids)-1 {
		f.index++
	}
	return f
}

// Prev moves one step up, stopping at the first id.
func (f Focus) Prev() Focus {
	if f.index > 0 {
		f.index--
	}
	return f
}

// Set focuses id. Unknown ids leave focus unchanged.
func (f Focus) Set(id string) Focus {
	for i, candidate := range f.ids {
		if candidate == id {
			f.index = i
			return f
		}
	}
	return f
}

// Apply runs the focus part of an action. Actions that do not move focus
// return f unchanged.
func (f Focus) Apply(a Action) Focus {
	switch a {
	case ActionMoveDown:
		return f.Next()
	case ActionMoveUp:
		return f.Prev()
	default:
		return f
	}
}
