package squidward

import "sync"

// Executor accepts zero-argument units of work and arranges for their
// eventual execution. The automaton submits two kinds of work: the
// initial entry action at Enable time and one dispatch unit per posted
// event.
//
// Contract: submitted units must execute one at a time, in submission
// order, as if on a single logical thread. The automaton keeps no
// internal lock around its current-state cell; an executor that runs
// units concurrently or out of order lets a dispatch unit begin while a
// transition is in flight, which surfaces as ErrNoCurrentState through
// the automaton's failure handler. Immediate and SerialExecutor both
// satisfy the contract.
type Executor interface {
	Execute(fn func())
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(fn func())

func (f ExecutorFunc) Execute(fn func()) { f(fn) }

// Immediate returns the default executor: it runs each unit of work
// synchronously on the submitting goroutine before Execute returns.
// Under this executor Enable and Post behave as fully synchronous calls.
func Immediate() Executor {
	return ExecutorFunc(func(fn func()) { fn() })
}

// SerialExecutor runs submitted work on a single worker goroutine in
// submission order. It is the asynchronous way to satisfy the Executor
// contract: Post returns as soon as the dispatch unit is enqueued.
//
// The mailbox is bounded; Execute blocks the submitter while the mailbox
// is full. This is the back-pressure policy: slow consumers throttle
// producers instead of growing an unbounded queue.
type SerialExecutor struct {
	mailbox chan func()
	done    chan struct{}
	once    sync.Once
}

// DefaultMailboxCapacity is the mailbox size used when NewSerialExecutor
// is given a non-positive capacity.
const DefaultMailboxCapacity = 64

// NewSerialExecutor creates a SerialExecutor and starts its worker
// goroutine. capacity bounds the mailbox; values < 1 use
// DefaultMailboxCapacity.
func NewSerialExecutor(capacity int) *SerialExecutor {
	if capacity < 1 {
		capacity = DefaultMailboxCapacity
	}
	e := &SerialExecutor{
		mailbox: make(chan func(), capacity),
		done:    make(chan struct{}),
	}
	go e.run()
	return e
}

func (e *SerialExecutor) run() {
	defer close(e.done)
	for fn := range e.mailbox {
		fn()
	}
}

// Execute enqueues fn. Blocks while the mailbox is full. Execute must
// not be called after Close; doing so panics.
func (e *SerialExecutor) Execute(fn func()) {
	e.mailbox <- fn
}

// Close stops accepting work, waits for already-submitted units to
// finish, then stops the worker. Safe to call more than once.
func (e *SerialExecutor) Close() {
	e.once.Do(func() { close(e.mailbox) })
	<-e.done
}
