package squidward

import "errors"

var (
	// ErrAlreadyEnabled is returned by Enable when the automaton has
	// already been enabled. Enabling is a one-way, one-time operation.
	ErrAlreadyEnabled = errors.New("automaton already enabled")

	// ErrNotEnabled is returned by Post when the automaton has not been
	// enabled yet.
	ErrNotEnabled = errors.New("automaton not enabled")

	// ErrNilEvent is returned by Post when the event is nil.
	ErrNilEvent = errors.New("event must not be nil")

	// ErrNilState is returned when a nil state is passed to a builder.
	ErrNilState = errors.New("state must not be nil")

	// ErrNilTransition is returned when a nil transition is passed to a
	// builder.
	ErrNilTransition = errors.New("transition must not be nil")

	// ErrFieldAlreadySet is returned by Build when a single-assignment
	// builder field was assigned twice.
	ErrFieldAlreadySet = errors.New("field already set")

	// ErrMissingField is returned by Build when a required builder field
	// was never assigned.
	ErrMissingField = errors.New("required field not set")

	// ErrUnknownState is returned when a transition or initial state
	// references a state that has not been registered with the builder,
	// or, defensively, when a taken transition's destination is not in
	// the frozen state set.
	ErrUnknownState = errors.New("state not in automaton state set")

	// ErrNoCurrentState signals that event dispatch began while the
	// current state was undefined. This means the executor ran two
	// dispatch units concurrently or out of order; see the Executor
	// contract.
	ErrNoCurrentState = errors.New("current state undefined, cannot process event")
)
