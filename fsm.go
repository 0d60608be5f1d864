// Package tickfsm provides a minimal tick-driven finite state machine built
// with types from the github.com/enetx/g library. A machine owns a fixed set
// of numerically identified states, each carrying an optional "stay" callback
// and an optional "enter" callback. Transitions are requested with GoTo and
// applied on the next Run call, so an external driver loop controls exactly
// when side effects occur: one tick, at most one transition.
package tickfsm

import "github.com/enetx/g"

// NewMachine creates a machine with stateCount placeholder states, densely identified
// 0..stateCount-1, and positions it at initial. Placeholder states have no
// callbacks and no outgoing transitions until configured with AddState and
// AddTransition. The data value is opaque to the machine and retrievable with
// Data. Fails with ErrInvalidIdentity when initial is outside
// [0, stateCount), which also covers a non-positive stateCount.
func NewMachine(stateCount, initial StateID, data any) (*Machine, error) {
	if initial < 0 || initial >= stateCount {
		return nil, &ErrInvalidIdentity{ID: initial, Limit: stateCount}
	}

	states := make(g.Slice[*state], stateCount)
	for i := range states {
		states[i] = &state{id: StateID(i), targets: g.NewSet[StateID]()}
	}

	return &Machine{
		states:  states,
		initial: initial,
		current: states[initial],
		target:  initial,
		history: g.Slice[StateID]{initial},
		data:    data,
	}, nil
}

// limit returns the exclusive upper bound of valid identities.
func (m *Machine) limit() StateID { return StateID(len(m.states)) }

func (m *Machine) valid(id StateID) bool { return id >= 0 && id < m.limit() }

// AddState fixes the callbacks for the given identity and marks it
// registered. Either callback may be nil, in which case the corresponding
// tick is silent for that state. A state's callbacks are fixed exactly once:
// a second call for the same identity fails with ErrAlreadyRegistered and
// leaves the first registration untouched.
func (m *Machine) AddState(id StateID, stay StayFunc, enter EnterFunc) error {
	if m == nil {
		return &ErrInvalidMachine{Op: "AddState"}
	}

	if !m.valid(id) {
		return &ErrInvalidIdentity{ID: id, Limit: m.limit()}
	}

	s := m.states[id]
	if s.enabled {
		return &ErrAlreadyRegistered{ID: id}
	}

	s.enabled = true
	s.stay = stay
	s.enter = enter

	return nil
}

// AddTransition permits a direct transition from one identity to another.
// Adding an edge that already exists is a no-op success. Edges are
// independent of AddState: a transition may point at a state that never
// receives callbacks, in which case entering it invokes nothing.
func (m *Machine) AddTransition(from, to StateID) error {
	if m == nil {
		return &ErrInvalidMachine{Op: "AddTransition"}
	}

	if !m.valid(from) {
		return &ErrInvalidIdentity{ID: from, Limit: m.limit()}
	}

	if !m.valid(to) {
		return &ErrInvalidIdentity{ID: to, Limit: m.limit()}
	}

	m.states[from].targets.Insert(to)

	return nil
}

// GoTo schedules a transition to the given identity. The move is validated
// against the current state's allowed targets and, on success, applied by the
// next Run call, not by GoTo itself. An illegal request fails with
// ErrIllegalTransition and leaves the pending target unchanged.
func (m *Machine) GoTo(target StateID) error {
	if m == nil {
		return &ErrInvalidMachine{Op: "GoTo"}
	}

	if !m.valid(target) {
		return &ErrInvalidIdentity{ID: target, Limit: m.limit()}
	}

	if !m.current.targets.Contains(target) {
		return &ErrIllegalTransition{From: m.current.id, To: target}
	}

	m.target = target

	return nil
}

// Run advances the machine by one tick and returns the identity it occupies
// afterwards. With no transition pending the current state's stay callback is
// invoked with arg and the position is unchanged. With a transition pending
// the machine moves to the target state and invokes that state's enter
// callback with the identity of the state just left. A pending transition is
// applied in full on a single call.
func (m *Machine) Run(arg any) (StateID, error) {
	if m == nil {
		return 0, &ErrInvalidMachine{Op: "Run"}
	}

	if m.current.id == m.target {
		if m.current.stay != nil {
			m.current.stay(arg)
		}

		return m.current.id, nil
	}

	previous := m.current.id
	m.current = m.states[m.target]

	if m.current.enter != nil {
		m.current.enter(previous, arg)
	}

	m.history.Push(m.current.id)

	return m.current.id, nil
}

// Current returns the identity of the state the machine occupies.
func (m *Machine) Current() StateID { return m.current.id }

// Target returns the identity the machine will occupy after the next Run.
// It equals Current when no transition is pending.
func (m *Machine) Target() StateID { return m.target }

// Pending reports whether a transition is scheduled for the next Run.
func (m *Machine) Pending() bool { return m.current.id != m.target }

// StateCount returns the fixed number of states the machine was created with.
func (m *Machine) StateCount() g.Int { return m.states.Len() }

// Data returns the opaque value supplied at construction.
func (m *Machine) Data() any { return m.data }

// States returns the identities registered via AddState, in ascending order.
func (m *Machine) States() g.Slice[StateID] {
	ids := g.NewSlice[StateID]()
	for _, s := range m.states {
		if s.enabled {
			ids.Push(s.id)
		}
	}

	return ids
}

// History returns a copy of the identities the machine has occupied, starting
// with the initial state and appended on every applied transition.
func (m *Machine) History() g.Slice[StateID] { return m.history.Clone() }

// Reset moves the machine back to its initial state and clears the history.
// Registered states, callbacks and transitions are kept; no callbacks fire.
func (m *Machine) Reset() {
	m.current = m.states[m.initial]
	m.target = m.initial
	m.history = g.Slice[StateID]{m.initial}
}

// SetState forcefully positions the machine at the given identity without
// invoking any callbacks and cancels any pending transition.
// WARNING: This is a low-level method intended for state restoration. For all
// standard operations, use GoTo followed by Run.
func (m *Machine) SetState(id StateID) error {
	if m == nil {
		return &ErrInvalidMachine{Op: "SetState"}
	}

	if !m.valid(id) {
		return &ErrInvalidIdentity{ID: id, Limit: m.limit()}
	}

	m.current = m.states[id]
	m.target = id

	return nil
}

// Clone creates a machine with a deep copy of the configuration (states,
// callbacks, transitions, data) positioned at the initial state with a fresh
// history. Later AddState or AddTransition calls on either machine do not
// affect the other.
func (m *Machine) Clone() *Machine {
	states := make(g.Slice[*state], len(m.states))
	for i, s := range m.states {
		states[i] = &state{
			id:      s.id,
			targets: g.SetOf(s.targets.ToSlice()...),
			enabled: s.enabled,
			stay:    s.stay,
			enter:   s.enter,
		}
	}

	return &Machine{
		states:  states,
		initial: m.initial,
		current: states[m.initial],
		target:  m.initial,
		history: g.Slice[StateID]{m.initial},
		data:    m.data,
	}
}
