package animation

import (
	"fmt"
	"image"
)

// Transition moves the machine from one clip to another when Input is fed.
type Transition struct {
	From  string
	To    string
	Input string
}

// StateMachine selects between named clips. Current and Start record the
// active clip and the tick it began on.
type StateMachine struct {
	Clips       map[string]*Clip
	Transitions []Transition
	Current     string
	Start       int
}

func NewStateMachine(clips map[string]*Clip, transitions []Transition, initial string) (*StateMachine, error) {
	if _, ok := clips[initial]; !ok {
		return nil, fmt.Errorf("animation: initial clip %q not defined", initial)
	}
	for _, tr := range transitions {
		if _, ok := clips[tr.From]; !ok {
			return nil, fmt.Errorf("animation: transition %q from unknown clip %q", tr.Input, tr.From)
		}
		if _, ok := clips[tr.To]; !ok {
			return nil, fmt.Errorf("animation: transition %q to unknown clip %q", tr.Input, tr.To)
		}
	}
	return &StateMachine{
		Clips:       clips,
		Transitions: append([]Transition(nil), transitions...),
		Current:     initial,
	}, nil
}

// Input follows the first transition out of the current clip that matches
// name and restarts timing at now. It reports whether a transition fired.
func (m *StateMachine) Input(name string, now int) bool {
	for _, tr := range m.Transitions {
		if tr.From != m.Current || tr.Input != name {
			continue
		}
		m.Current = tr.To
		m.Start = now
		return true
	}
	return false
}

func (m *StateMachine) Clip() *Clip {
	return m.Clips[m.Current]
}

func (m *StateMachine) Frame(now int) image.Rectangle {
	c := m.Clip()
	if c == nil {
		return image.Rectangle{}
	}
	return c.Frame(m.Start, now)
}

// Clone copies the machine so entities built from one prefab animate
// independently. Clips are shared.
func (m *StateMachine) Clone() *StateMachine {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Transitions = append([]Transition(nil), m.Transitions...)
	return &cp
}
