// Package squidward implements a finite-state-automaton runtime.
//
// Callers declare a set of states and a sequence of labeled transitions
// between them through builders, freeze them into an Automaton, and then
// drive the machine by posting events:
//
//	off, _ := squidward.NewState().Named("off").Build()
//	on, _ := squidward.NewState().Named("on").Build()
//
//	turnOn, _ := squidward.NewTransition[string]().
//		From(off).To(on).
//		Check(func(e string) bool { return e == "on" }).
//		Build()
//
//	a, _ := squidward.NewBuilder().
//		AddStates(off, on).
//		AddTransition(turnOn).
//		InitialState(off).
//		Build()
//
//	a.Enable()
//	a.Post("on")
//
// Each posted event is matched against the transitions in insertion
// order; the first transition whose source state, event-type filter and
// guard all match is taken, firing exit, transition and entry actions in
// a fixed order. Events matching no transition are silently discarded.
//
// All deferred work (the initial entry action and one dispatch unit per
// posted event) runs on an Executor. The default executor runs work
// inline on the calling goroutine, making Enable and Post fully
// synchronous; SerialExecutor runs work on a single worker goroutine in
// submission order for asynchronous use.
package squidward
