package squidward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/squidward"
)

func mustState(t *testing.T, name string) *squidward.State {
	t.Helper()
	s, err := squidward.NewState().Named(name).Build()
	require.NoError(t, err)
	return s
}

func mustTransition(t *testing.T, from, to *squidward.State) *squidward.Transition {
	t.Helper()
	tr, err := squidward.NewTransition[any]().From(from).To(to).Build()
	require.NoError(t, err)
	return tr
}

func TestBuilderFreeze(t *testing.T) {
	a := mustState(t, "a")
	b := mustState(t, "b")
	ab := mustTransition(t, a, b)
	ba := mustTransition(t, b, a)

	auto, err := squidward.NewBuilder().
		AddStates(a, b).
		AddTransitions(ab, ba).
		InitialState(a).
		Build()
	require.NoError(t, err)

	assert.ElementsMatch(t, []*squidward.State{a, b}, auto.States())
	assert.Equal(t, []*squidward.Transition{ab, ba}, auto.Transitions())
	assert.True(t, auto.Initial() == a)
	assert.False(t, auto.Enabled())

	_, ok := auto.Current()
	assert.False(t, ok, "current state must be undefined before enable")
}

func TestBuilderSetSemantics(t *testing.T) {
	a := mustState(t, "a")
	b := mustState(t, "b")
	ab := mustTransition(t, a, b)

	auto, err := squidward.NewBuilder().
		AddState(a).
		AddState(a). // no-op
		AddState(b).
		AddTransition(ab).
		AddTransition(ab). // no-op
		InitialState(a).
		Build()
	require.NoError(t, err)

	assert.Len(t, auto.States(), 2)
	assert.Len(t, auto.Transitions(), 1)
}

func TestBuilderTransitionOrderPreserved(t *testing.T) {
	a := mustState(t, "a")
	b := mustState(t, "b")

	first := mustTransition(t, a, b)
	second := mustTransition(t, a, a)
	third := mustTransition(t, b, a)

	auto, err := squidward.NewBuilder().
		AddStates(a, b).
		AddTransitions(first, second, third).
		InitialState(a).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []*squidward.Transition{first, second, third}, auto.Transitions())
}

func TestBuilderReferentialIntegrity(t *testing.T) {
	t.Run("transition source must be registered", func(t *testing.T) {
		a := mustState(t, "a")
		b := mustState(t, "b")

		_, err := squidward.NewBuilder().
			AddState(b).
			AddTransition(mustTransition(t, a, b)).
			InitialState(b).
			Build()
		require.ErrorIs(t, err, squidward.ErrUnknownState)
	})

	t.Run("transition destination must be registered", func(t *testing.T) {
		a := mustState(t, "a")
		b := mustState(t, "b")

		_, err := squidward.NewBuilder().
			AddState(a).
			AddTransition(mustTransition(t, a, b)).
			InitialState(a).
			Build()
		require.ErrorIs(t, err, squidward.ErrUnknownState)
	})

	t.Run("states must be registered before the transition", func(t *testing.T) {
		a := mustState(t, "a")
		b := mustState(t, "b")

		_, err := squidward.NewBuilder().
			AddTransition(mustTransition(t, a, b)).
			AddStates(a, b).
			InitialState(a).
			Build()
		require.ErrorIs(t, err, squidward.ErrUnknownState)
	})

	t.Run("initial state must be registered", func(t *testing.T) {
		a := mustState(t, "a")
		b := mustState(t, "b")

		_, err := squidward.NewBuilder().
			AddState(a).
			InitialState(b).
			Build()
		require.ErrorIs(t, err, squidward.ErrUnknownState)
	})
}

func TestBuilderMisuse(t *testing.T) {
	a := mustState(t, "a")

	t.Run("nil state", func(t *testing.T) {
		_, err := squidward.NewBuilder().AddState(nil).Build()
		require.ErrorIs(t, err, squidward.ErrNilState)
	})

	t.Run("nil transition", func(t *testing.T) {
		_, err := squidward.NewBuilder().AddState(a).AddTransition(nil).Build()
		require.ErrorIs(t, err, squidward.ErrNilTransition)
	})

	t.Run("initial state required", func(t *testing.T) {
		_, err := squidward.NewBuilder().AddState(a).Build()
		require.ErrorIs(t, err, squidward.ErrMissingField)
	})

	t.Run("initial state single assignment", func(t *testing.T) {
		_, err := squidward.NewBuilder().
			AddState(a).
			InitialState(a).
			InitialState(a).
			Build()
		require.ErrorIs(t, err, squidward.ErrFieldAlreadySet)
	})

	t.Run("executor single assignment", func(t *testing.T) {
		_, err := squidward.NewBuilder().
			AddState(a).
			Executor(squidward.Immediate()).
			Executor(squidward.Immediate()).
			InitialState(a).
			Build()
		require.ErrorIs(t, err, squidward.ErrFieldAlreadySet)
	})
}
