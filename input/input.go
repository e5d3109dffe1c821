// SPDX-License-Identifier: GPL-2.0-or-later

// package input handles key state tracking and bindings
package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	kc "gocube/keycode"
)

// State is the set of keys currently held down.
type State struct {
	down map[kc.KeyCode]struct{}
}

func NewState() *State {
	return &State{
		down: make(map[kc.KeyCode]struct{}),
	}
}

func (s *State) Press(k kc.KeyCode) {
	s.down[k] = struct{}{}
}

func (s *State) Release(k kc.KeyCode) {
	delete(s.down, k)
}

func (s *State) Pressed(k kc.KeyCode) bool {
	_, ok := s.down[k]
	return ok
}

func (s *State) Len() int {
	return len(s.down)
}

// Each calls f for every held key in no particular order.
func (s *State) Each(f func(k kc.KeyCode)) {
	for k := range s.down {
		f(k)
	}
}

// Clear releases all keys, e.g. after the window lost focus.
func (s *State) Clear() {
	clear(s.down)
}

type Action int

const (
	None Action = iota
	Forward
	Back
	MoveLeft
	MoveRight
	Up
	Down
	MixUp
	MixDown
	Screenshot
	Exit
	Wireframe
)

var actionNames = map[Action]string{
	Forward:    "forward",
	Back:       "back",
	MoveLeft:   "moveleft",
	MoveRight:  "moveright",
	Up:         "moveup",
	Down:       "movedown",
	MixUp:      "mixup",
	MixDown:    "mixdown",
	Screenshot: "screenshot",
	Exit:       "quit",
	Wireframe:  "wireframe",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "none"
}

// Continuous actions act every frame while their key is held, the others
// once per key press.
func (a Action) Continuous() bool {
	return a >= Forward && a <= MixDown
}

func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimPrefix(name, "+"))
	for a, s := range actionNames {
		if s == n {
			return a, nil
		}
	}
	return None, errors.Errorf("unknown action %q", name)
}

// Bindings maps keys to actions.
type Bindings map[kc.KeyCode]Action

func DefaultBindings() Bindings {
	return Bindings{
		'w':          Forward,
		's':          Back,
		'a':          MoveLeft,
		'd':          MoveRight,
		kc.SPACE:     Up,
		kc.SHIFT:     Down,
		kc.UPARROW:   MixUp,
		kc.DOWNARROW: MixDown,
		kc.F12:       Screenshot,
		kc.ESCAPE:    Exit,
		kc.TAB:       Wireframe,
	}
}

// Bind binds the named key to the named action. Other keys bound to the
// same action stay bound.
func (b Bindings) Bind(key, action string) error {
	k := kc.StringToKey(key)
	if k == kc.NONE {
		return errors.Errorf("unknown key %q", key)
	}
	a, err := ParseAction(action)
	if err != nil {
		return err
	}
	b[k] = a
	return nil
}

// Unbind removes every key bound to a.
func (b Bindings) Unbind(a Action) {
	for k, v := range b {
		if v == a {
			delete(b, k)
		}
	}
}

// Apply rebinds actions from an action -> key name table, as found in the
// configuration file. A rebound action loses its default keys. A key that
// is still owned by another action is not taken over.
func (b Bindings) Apply(m map[string]string) error {
	names := make([]string, 0, len(m))
	for a := range m {
		names = append(names, a)
	}
	sort.Strings(names)
	actions := make([]Action, len(names))
	for i, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return err
		}
		actions[i] = a
	}
	for _, a := range actions {
		b.Unbind(a)
	}
	for i, name := range names {
		k := kc.StringToKey(m[name])
		if old := b.Lookup(k); k != kc.NONE && old != None && old != actions[i] {
			return errors.Errorf("binding %s: key %s already bound to %s", name, m[name], old)
		}
		if err := b.Bind(m[name], name); err != nil {
			return errors.Wrapf(err, "binding %s", name)
		}
	}
	return nil
}

// Lookup returns the action bound to k.
func (b Bindings) Lookup(k kc.KeyCode) Action {
	return b[k]
}

func (b Bindings) String() string {
	lines := make([]string, 0, len(b))
	for k, a := range b {
		lines = append(lines, fmt.Sprintf("%s=%s", a, kc.KeyToString(k)))
	}
	sort.Strings(lines)
	return strings.Join(lines, " ")
}
