package squidward

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Builder accumulates states and transitions and freezes them into an
// Automaton. States must be registered before any transition or initial
// state referencing them; violations are recorded and reported by Build.
type Builder struct {
	states        []*State
	stateSet      map[uuid.UUID]struct{}
	transitions   []*Transition
	transitionSet map[uuid.UUID]struct{}
	initial       *State
	executor      Executor
	logger        *slog.Logger
	onFailure     func(error)
	err           error
}

// NewBuilder creates an empty automaton Builder.
func NewBuilder() *Builder {
	return &Builder{
		stateSet:      make(map[uuid.UUID]struct{}),
		transitionSet: make(map[uuid.UUID]struct{}),
	}
}

// AddState registers a state. Re-adding the same state is a no-op; the
// state set has set semantics by identity.
func (b *Builder) AddState(state *State) *Builder {
	if state == nil {
		b.fail(ErrNilState)
		return b
	}
	if _, ok := b.stateSet[state.id]; ok {
		return b
	}
	b.stateSet[state.id] = struct{}{}
	b.states = append(b.states, state)
	return b
}

// AddStates registers each of the provided states.
func (b *Builder) AddStates(states ...*State) *Builder {
	for _, s := range states {
		b.AddState(s)
	}
	return b
}

// AddTransition registers a transition. Its source and destination must
// already be registered states. Transitions are kept in insertion order,
// which is the order dispatch scans them in; re-adding the identical
// transition is a no-op.
func (b *Builder) AddTransition(t *Transition) *Builder {
	if t == nil {
		b.fail(ErrNilTransition)
		return b
	}
	if _, ok := b.transitionSet[t.id]; ok {
		return b
	}
	if _, ok := b.stateSet[t.source.id]; !ok {
		b.fail(fmt.Errorf("%w: source %s of %s", ErrUnknownState, t.source, t))
		return b
	}
	if _, ok := b.stateSet[t.dest.id]; !ok {
		b.fail(fmt.Errorf("%w: destination %s of %s", ErrUnknownState, t.dest, t))
		return b
	}
	b.transitionSet[t.id] = struct{}{}
	b.transitions = append(b.transitions, t)
	return b
}

// AddTransitions registers each of the provided transitions.
func (b *Builder) AddTransitions(transitions ...*Transition) *Builder {
	for _, t := range transitions {
		b.AddTransition(t)
	}
	return b
}

// InitialState sets the state the automaton enters when enabled. The
// state must already be registered. May only be set once.
func (b *Builder) InitialState(state *State) *Builder {
	switch {
	case b.initial != nil:
		b.fail(fmt.Errorf("%w: initial state", ErrFieldAlreadySet))
	case state == nil:
		b.fail(fmt.Errorf("%w: initial state", ErrNilState))
	default:
		if _, ok := b.stateSet[state.id]; !ok {
			b.fail(fmt.Errorf("%w: initial %s", ErrUnknownState, state))
			return b
		}
		b.initial = state
	}
	return b
}

// Executor sets the executor that runs entry actions and event dispatch.
// May only be set once. Without one the automaton uses Immediate().
func (b *Builder) Executor(executor Executor) *Builder {
	switch {
	case b.executor != nil:
		b.fail(fmt.Errorf("%w: executor", ErrFieldAlreadySet))
	case executor == nil:
		b.fail(errors.New("executor must not be nil"))
	default:
		b.executor = executor
	}
	return b
}

// Logger sets the logger for dispatch debug output. May only be set
// once. Without one the automaton logs to slog.Default.
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	switch {
	case b.logger != nil:
		b.fail(fmt.Errorf("%w: logger", ErrFieldAlreadySet))
	case logger == nil:
		b.fail(errors.New("logger must not be nil"))
	default:
		b.logger = logger
	}
	return b
}

// OnFailure sets the handler for fatal errors raised inside executor
// work units (ErrNoCurrentState, frozen-set violations), which have no
// synchronous caller to report to. May only be set once. The default
// handler panics.
func (b *Builder) OnFailure(handler func(error)) *Builder {
	switch {
	case b.onFailure != nil:
		b.fail(fmt.Errorf("%w: failure handler", ErrFieldAlreadySet))
	case handler == nil:
		b.fail(errors.New("failure handler must not be nil"))
	default:
		b.onFailure = handler
	}
	return b
}

// Build freezes the automaton. An initial state is required.
func (b *Builder) Build() (*Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.initial == nil {
		return nil, fmt.Errorf("%w: initial state", ErrMissingField)
	}
	a := &Automaton{
		executor:    b.executor,
		initial:     b.initial,
		states:      b.states,
		stateSet:    make(map[uuid.UUID]*State, len(b.states)),
		transitions: b.transitions,
		logger:      b.logger,
		onFailure:   b.onFailure,
	}
	for _, s := range b.states {
		a.stateSet[s.id] = s
	}
	if a.executor == nil {
		a.executor = Immediate()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.onFailure == nil {
		a.onFailure = func(err error) { panic(err) }
	}
	return a, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
