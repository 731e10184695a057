package squidward

import (
	"fmt"

	"github.com/google/uuid"
)

// Action is a zero-argument side effect executed when a state is entered
// or exited.
type Action func()

// State is a node of an Automaton, optionally carrying an entry and an
// exit action. States are identity-compared: two states built from two
// builders are never the same state, even with equivalent actions.
// Frozen once built.
type State struct {
	id    uuid.UUID
	name  string
	entry Action
	exit  Action
}

// ID returns the opaque identity token of the state.
func (s *State) ID() uuid.UUID { return s.id }

// Name returns the optional human-readable name. Empty if never named.
func (s *State) Name() string { return s.name }

// EntryAction returns the entry action, or nil if the state has none.
func (s *State) EntryAction() Action { return s.entry }

// ExitAction returns the exit action, or nil if the state has none.
func (s *State) ExitAction() Action { return s.exit }

func (s *State) String() string {
	if s.name != "" {
		return fmt.Sprintf("state(%s)", s.name)
	}
	return fmt.Sprintf("state(%s)", shortID(s.id))
}

// is reports whether two states are the same state. Nil-safe.
func (s *State) is(other *State) bool {
	return s != nil && other != nil && s.id == other.id
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// StateBuilder accumulates the fields of a State. Every setter is
// single-assignment; a second assignment is a programmer error reported
// by Build. The zero value is not usable, call NewState.
type StateBuilder struct {
	name  string
	entry Action
	exit  Action
	err   error
}

// NewState creates an empty StateBuilder.
func NewState() *StateBuilder {
	return &StateBuilder{}
}

// Named sets a debug name for the state. May only be set once.
func (b *StateBuilder) Named(name string) *StateBuilder {
	if b.name != "" {
		b.fail(fmt.Errorf("%w: name", ErrFieldAlreadySet))
		return b
	}
	b.name = name
	return b
}

// WhenEntered sets the entry action of the state. May only be set once.
// The action runs only when an owning automaton actually enters the
// state, never during building.
func (b *StateBuilder) WhenEntered(action Action) *StateBuilder {
	if b.entry != nil {
		b.fail(fmt.Errorf("%w: entry action", ErrFieldAlreadySet))
		return b
	}
	b.entry = action
	return b
}

// WhenExited sets the exit action of the state. May only be set once.
func (b *StateBuilder) WhenExited(action Action) *StateBuilder {
	if b.exit != nil {
		b.fail(fmt.Errorf("%w: exit action", ErrFieldAlreadySet))
		return b
	}
	b.exit = action
	return b
}

// Build freezes the state. Both actions are optional; Build fails only
// if a setter was misused.
func (b *StateBuilder) Build() (*State, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &State{
		id:    uuid.New(),
		name:  b.name,
		entry: b.entry,
		exit:  b.exit,
	}, nil
}

// fail records the first violation; later ones would only repeat it.
func (b *StateBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
