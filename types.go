package tickfsm

import "github.com/enetx/g"

type (
	// StateID is the numeric identity of a state. Identities are assigned
	// densely at construction time: a machine with N states owns exactly the
	// identities 0..N-1.
	StateID g.Int

	// StayFunc is the callback invoked on a tick while the machine remains in
	// the state it is attached to.
	StayFunc func(arg any)
	// EnterFunc is the callback invoked once when the machine transitions into
	// the state it is attached to. It receives the identity of the state being
	// left.
	EnterFunc func(previous StateID, arg any)

	// state is the internal record for one identity: its transition legality
	// set, its registration flag and its two optional callbacks.
	state struct {
		id      StateID
		targets g.Set[StateID]
		enabled bool
		stay    StayFunc
		enter   EnterFunc
	}

	// Machine is a tick-driven finite state machine. It owns a fixed set of
	// states, tracks the current and the target identity, and advances by
	// exactly one step per Run call. A Machine provides no internal locking:
	// it is meant to be driven by a single loop.
	Machine struct {
		states  g.Slice[*state]
		initial StateID
		current *state
		target  StateID
		history g.Slice[StateID]
		data    any
	}
)
