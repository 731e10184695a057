package squidward

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
)

// Automaton is the runtime: a frozen set of states, a frozen
// insertion-ordered sequence of transitions, and a mutable current-state
// cell driven by Enable and Post. The state set, transition sequence and
// initial state never change once built; only the current-state cell and
// the enabled flag do.
type Automaton struct {
	executor    Executor
	initial     *State
	states      []*State
	stateSet    map[uuid.UUID]*State
	transitions []*Transition
	logger      *slog.Logger
	onFailure   func(error)

	current atomic.Pointer[State]
	enabled atomic.Bool
}

// Initial returns the state the automaton enters when first enabled.
func (a *Automaton) Initial() *State { return a.initial }

// States returns the automaton's states. Membership is what matters;
// the returned order is the registration order.
func (a *Automaton) States() []*State {
	out := make([]*State, len(a.states))
	copy(out, a.states)
	return out
}

// Transitions returns the automaton's transitions in insertion order,
// which is the order dispatch scans them in.
func (a *Automaton) Transitions() []*Transition {
	out := make([]*Transition, len(a.transitions))
	copy(out, a.transitions)
	return out
}

// Enabled reports whether Enable has been called. It may return true
// before the initial state's entry action has run.
func (a *Automaton) Enabled() bool { return a.enabled.Load() }

// Current returns the current state. ok is false while the automaton is
// not enabled yet or a transition is in flight (between exiting the old
// state and entering the new one).
func (a *Automaton) Current() (*State, bool) {
	s := a.current.Load()
	return s, s != nil
}

// Enable sets the current state to the initial state and schedules the
// initial state's entry action on the executor. The entry action runs
// asynchronously relative to the caller unless the executor is
// immediate. Enable may only be called once; there is no disable.
func (a *Automaton) Enable() error {
	if !a.enabled.CompareAndSwap(false, true) {
		return ErrAlreadyEnabled
	}
	a.current.Store(a.initial)
	a.logger.Debug("automaton enabled", "initial", a.initial)
	a.executor.Execute(func() {
		if a.initial.entry != nil {
			a.initial.entry()
		}
	})
	return nil
}

// Post schedules a dispatch unit for event on the executor and returns
// without waiting for the event to be processed. The automaton must have
// been enabled and the event must not be nil.
func (a *Automaton) Post(event any) error {
	if !a.enabled.Load() {
		return ErrNotEnabled
	}
	if event == nil {
		return ErrNilEvent
	}
	a.executor.Execute(func() { a.dispatch(event) })
	return nil
}

// dispatch runs as one executor work unit. It scans the transition
// sequence in insertion order and takes the first transition whose
// source is the current state, whose event-type filter matches, and
// whose guard passes. A failing guard does not stop the scan. An event
// matching nothing is discarded; that is not an error.
func (a *Automaton) dispatch(event any) {
	cur := a.current.Load()
	if cur == nil {
		// A dispatch unit began while a transition was in flight: the
		// executor broke the serialization contract.
		a.fail(ErrNoCurrentState)
		return
	}
	for _, t := range a.transitions {
		if !t.source.is(cur) {
			continue
		}
		if !t.matches(event) {
			continue
		}
		if t.guard != nil && !t.guard(event) {
			continue
		}
		a.take(t, cur, event)
		return
	}
	a.logger.Debug("event discarded", "state", cur, "event", event)
}

// take fires the taken transition. For a same-state transition only the
// transition effect runs. Otherwise the order is exact: exit the old
// state, clear the current-state cell, run the transition effect, set
// the cell to the destination, enter the destination. The cell is
// observably undefined while the effect runs.
func (a *Automaton) take(t *Transition, cur *State, event any) {
	a.logger.Debug("taking transition", "transition", t, "event", event)
	if t.dest.is(cur) {
		if t.action != nil {
			t.action(event)
		}
		return
	}
	if cur.exit != nil {
		cur.exit()
	}
	a.current.Store(nil)
	if t.action != nil {
		t.action(event)
	}
	if _, ok := a.stateSet[t.dest.id]; !ok {
		// Unreachable through the builder; kept as a frozen-set check.
		a.fail(fmt.Errorf("%w: destination %s", ErrUnknownState, t.dest))
		return
	}
	a.current.Store(t.dest)
	if t.dest.entry != nil {
		t.dest.entry()
	}
}

// fail reports a fatal error raised inside an executor work unit, where
// there is no synchronous caller to return it to.
func (a *Automaton) fail(err error) {
	a.logger.Error("dispatch failed", "error", err)
	a.onFailure(err)
}
