// Package fsm provides a small generic finite-state machine with named
// states, enter/exit hooks and guarded transitions. The machine is a pure
// signal dispatcher: transitions involving states that were never registered
// are permitted, their hooks are simply absent.
package fsm

import (
	orderedmap "github.com/elliotchance/orderedmap/v2"
)

// Guard decides whether a transition fires. It is evaluated against the
// elapsed time of the current tick and the caller's input snapshot.
type Guard[T any] func(dt float32, input T) bool

// EnterFunc runs when a state is entered. The name of the state being left
// is passed in.
type EnterFunc func(from string)

// ExitFunc runs when a state is left.
type ExitFunc func()

type state struct {
	onEnter EnterFunc
	onExit  ExitFunc
}

// Machine is a finite-state machine evaluated once per tick. T is the input
// snapshot type passed to guards.
type Machine[T any] struct {
	states      map[string]*state
	transitions map[string]*orderedmap.OrderedMap[string, Guard[T]]

	current string
	started bool
}

// NewMachine creates an empty machine.
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		states:      make(map[string]*state),
		transitions: make(map[string]*orderedmap.OrderedMap[string, Guard[T]]),
	}
}

// AddState registers a state with optional enter/exit hooks. Registering the
// same name again overwrites the hooks.
func (m *Machine[T]) AddState(name string, onEnter EnterFunc, onExit ExitFunc) {
	m.states[name] = &state{onEnter: onEnter, onExit: onExit}
}

// AddTransition registers a guarded transition from source to target.
// Transitions sharing a source are evaluated in registration order;
// re-registering the same source/target pair replaces the guard but keeps
// the original position in that order.
func (m *Machine[T]) AddTransition(source, target string, guard Guard[T]) {
	tbl, ok := m.transitions[source]
	if !ok {
		tbl = orderedmap.NewOrderedMap[string, Guard[T]]()
		m.transitions[source] = tbl
	}
	tbl.Set(target, guard)
}

// Startup sets the initial state. No enter hook fires for the initial
// assignment.
func (m *Machine[T]) Startup(initial string) {
	m.current = initial
	m.started = true
}

// State returns the current state name, or the empty string before Startup.
func (m *Machine[T]) State() string {
	return m.current
}

// Update evaluates the transitions registered for the state that is current
// on entry, in registration order. Every guard in that list is evaluated,
// even after one has already fired: firings apply sequentially, each
// building on the state left by the previous one, so a multi-step chain can
// complete within a single call. A transition to the currently-active state
// is a no-op.
func (m *Machine[T]) Update(dt float32, input T) {
	if !m.started {
		return
	}
	tbl, ok := m.transitions[m.current]
	if !ok {
		return
	}
	for el := tbl.Front(); el != nil; el = el.Next() {
		if el.Value(dt, input) {
			m.transitionTo(el.Key)
		}
	}
}

func (m *Machine[T]) transitionTo(target string) {
	if target == m.current {
		return
	}
	prev := m.current
	if s, ok := m.states[prev]; ok && s.onExit != nil {
		s.onExit()
	}
	m.current = target
	if s, ok := m.states[target]; ok && s.onEnter != nil {
		s.onEnter(prev)
	}
}
