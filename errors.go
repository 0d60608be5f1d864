package tickfsm

import "fmt"

// ErrInvalidMachine is returned when an operation is invoked on a nil machine.
type ErrInvalidMachine struct {
	// Op is the name of the operation that was attempted.
	Op string
}

func (e *ErrInvalidMachine) Error() string {
	return fmt.Sprintf("tickfsm: %s called on nil machine", e.Op)
}

// ErrInvalidIdentity is returned when a state identity outside the machine's
// range [0, StateCount) is supplied to a registration or request call.
type ErrInvalidIdentity struct {
	ID    StateID
	Limit StateID
}

func (e *ErrInvalidIdentity) Error() string {
	return fmt.Sprintf("tickfsm: state identity %d out of range [0, %d)", e.ID, e.Limit)
}

// ErrAlreadyRegistered is returned when AddState is called for an identity
// whose callbacks have already been fixed. The first registration stays in
// effect; the failing call mutates nothing.
type ErrAlreadyRegistered struct {
	ID StateID
}

func (e *ErrAlreadyRegistered) Error() string {
	return fmt.Sprintf("tickfsm: state %d already registered", e.ID)
}

// ErrIllegalTransition is returned when GoTo requests a target that is not in
// the current state's set of allowed targets. The pending target is left
// unchanged.
type ErrIllegalTransition struct {
	From StateID
	To   StateID
}

func (e *ErrIllegalTransition) Error() string {
	return fmt.Sprintf("tickfsm: no transition from state %d to state %d", e.From, e.To)
}
