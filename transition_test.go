package squidward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/squidward"
)

func twoStates(t *testing.T) (*squidward.State, *squidward.State) {
	t.Helper()
	a, err := squidward.NewState().Named("a").Build()
	require.NoError(t, err)
	b, err := squidward.NewState().Named("b").Build()
	require.NoError(t, err)
	return a, b
}

func TestTransitionBuilder(t *testing.T) {
	a, b := twoStates(t)

	t.Run("source required", func(t *testing.T) {
		_, err := squidward.NewTransition[any]().To(b).Build()
		require.ErrorIs(t, err, squidward.ErrMissingField)
		assert.Contains(t, err.Error(), "source")
	})

	t.Run("destination required", func(t *testing.T) {
		_, err := squidward.NewTransition[any]().From(a).Build()
		require.ErrorIs(t, err, squidward.ErrMissingField)
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("source single assignment", func(t *testing.T) {
		_, err := squidward.NewTransition[any]().From(a).From(a).To(b).Build()
		require.ErrorIs(t, err, squidward.ErrFieldAlreadySet)
	})

	t.Run("destination single assignment", func(t *testing.T) {
		_, err := squidward.NewTransition[any]().From(a).To(b).To(b).Build()
		require.ErrorIs(t, err, squidward.ErrFieldAlreadySet)
	})

	t.Run("guard single assignment", func(t *testing.T) {
		_, err := squidward.NewTransition[any]().From(a).To(b).
			Check(func(any) bool { return true }).
			Check(func(any) bool { return true }).
			Build()
		require.ErrorIs(t, err, squidward.ErrFieldAlreadySet)
	})

	t.Run("action single assignment", func(t *testing.T) {
		_, err := squidward.NewTransition[any]().From(a).To(b).
			Execute(func(any) {}).
			Execute(func(any) {}).
			Build()
		require.ErrorIs(t, err, squidward.ErrFieldAlreadySet)
	})

	t.Run("nil states rejected", func(t *testing.T) {
		_, err := squidward.NewTransition[any]().From(nil).To(b).Build()
		require.ErrorIs(t, err, squidward.ErrNilState)

		_, err = squidward.NewTransition[any]().From(a).To(nil).Build()
		require.ErrorIs(t, err, squidward.ErrNilState)
	})

	t.Run("guard and action optional", func(t *testing.T) {
		tr, err := squidward.NewTransition[any]().From(a).To(b).Build()
		require.NoError(t, err)
		assert.True(t, tr.Source() == a)
		assert.True(t, tr.Destination() == b)
	})
}

func TestTransitionEventType(t *testing.T) {
	a, b := twoStates(t)

	t.Run("defaults to any", func(t *testing.T) {
		tr, err := squidward.NewTransition[any]().From(a).To(b).Build()
		require.NoError(t, err)
		assert.Equal(t, "any", tr.EventType())
	})

	t.Run("named from the type parameter", func(t *testing.T) {
		tr, err := squidward.NewTransition[string]().From(a).To(b).Build()
		require.NoError(t, err)
		assert.Equal(t, "string", tr.EventType())
	})
}

func TestTransitionIdentity(t *testing.T) {
	a, b := twoStates(t)

	t1, err := squidward.NewTransition[string]().From(a).To(b).Build()
	require.NoError(t, err)
	t2, err := squidward.NewTransition[string]().From(a).To(b).Build()
	require.NoError(t, err)

	assert.NotEqual(t, t1.ID(), t2.ID())
}
