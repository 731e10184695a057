package squidward

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Guard is a predicate over an event value that must hold for its
// transition to be eligible.
type Guard[E any] func(event E) bool

// Effect is a side effect executed with the triggering event when a
// transition is taken.
type Effect[E any] func(event E)

// Transition is an edge of an Automaton: it is eligible when the
// automaton's current state is its source state, the posted event is an
// instance of its event type, and its guard (if any) passes. Transitions
// are identity-compared and frozen once built.
//
// The typed guard and effect supplied through TransitionBuilder are
// erased here; dispatch only invokes them after the event-type filter
// matched, so they always observe events of their declared type.
type Transition struct {
	id        uuid.UUID
	source    *State
	dest      *State
	eventType string
	matches   func(event any) bool
	guard     func(event any) bool
	action    func(event any)
}

// ID returns the opaque identity token of the transition.
func (t *Transition) ID() uuid.UUID { return t.id }

// Source returns the source state of the transition.
func (t *Transition) Source() *State { return t.source }

// Destination returns the destination state of the transition.
func (t *Transition) Destination() *State { return t.dest }

// EventType returns the name of the event type that may trigger this
// transition, "any" if the transition matches every event.
func (t *Transition) EventType() string { return t.eventType }

func (t *Transition) String() string {
	return fmt.Sprintf("transition(%s -> %s on %s)", t.source, t.dest, t.eventType)
}

// is reports whether two transitions are the same transition. Nil-safe.
func (t *Transition) is(other *Transition) bool {
	return t != nil && other != nil && t.id == other.id
}

// TransitionBuilder accumulates the fields of a Transition. The type
// parameter E is the event-type filter: the built transition matches an
// event iff the event is assignable to E, so an interface E also matches
// every implementation. Instantiate with E = any for a transition that
// matches every event.
//
// Every setter is single-assignment; violations and missing required
// fields are reported by Build.
type TransitionBuilder[E any] struct {
	source *State
	dest   *State
	guard  Guard[E]
	action Effect[E]
	err    error
}

// NewTransition creates an empty TransitionBuilder for events of type E.
func NewTransition[E any]() *TransitionBuilder[E] {
	return &TransitionBuilder[E]{}
}

// From sets the source state. Required, may only be set once.
func (b *TransitionBuilder[E]) From(state *State) *TransitionBuilder[E] {
	switch {
	case b.source != nil:
		b.fail(fmt.Errorf("%w: source state", ErrFieldAlreadySet))
	case state == nil:
		b.fail(fmt.Errorf("%w: source state", ErrNilState))
	default:
		b.source = state
	}
	return b
}

// To sets the destination state. Required, may only be set once. A
// destination identical to the source makes the built transition a
// same-state transition: taking it fires only the transition effect,
// never the state's entry/exit actions.
func (b *TransitionBuilder[E]) To(state *State) *TransitionBuilder[E] {
	switch {
	case b.dest != nil:
		b.fail(fmt.Errorf("%w: destination state", ErrFieldAlreadySet))
	case state == nil:
		b.fail(fmt.Errorf("%w: destination state", ErrNilState))
	default:
		b.dest = state
	}
	return b
}

// Check sets the guard. Optional, may only be set once. An absent guard
// counts as always satisfied.
func (b *TransitionBuilder[E]) Check(guard Guard[E]) *TransitionBuilder[E] {
	if b.guard != nil {
		b.fail(fmt.Errorf("%w: guard", ErrFieldAlreadySet))
		return b
	}
	b.guard = guard
	return b
}

// Execute sets the effect run with the triggering event when the
// transition is taken. Optional, may only be set once.
func (b *TransitionBuilder[E]) Execute(action Effect[E]) *TransitionBuilder[E] {
	if b.action != nil {
		b.fail(fmt.Errorf("%w: action", ErrFieldAlreadySet))
		return b
	}
	b.action = action
	return b
}

// Build freezes the transition. Source and destination must have been
// set.
func (b *TransitionBuilder[E]) Build() (*Transition, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.source == nil {
		return nil, fmt.Errorf("%w: source state", ErrMissingField)
	}
	if b.dest == nil {
		return nil, fmt.Errorf("%w: destination state", ErrMissingField)
	}
	t := &Transition{
		id:        uuid.New(),
		source:    b.source,
		dest:      b.dest,
		eventType: eventTypeName[E](),
		matches: func(event any) bool {
			_, ok := event.(E)
			return ok
		},
	}
	if b.guard != nil {
		guard := b.guard
		t.guard = func(event any) bool { return guard(event.(E)) }
	}
	if b.action != nil {
		action := b.action
		t.action = func(event any) { action(event.(E)) }
	}
	return t, nil
}

func (b *TransitionBuilder[E]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func eventTypeName[E any]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 {
		return "any"
	}
	return t.String()
}
