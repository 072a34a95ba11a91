package sched

// DefaultID is the sentinel passed as the reuse id to ScheduleTask to
// request a fresh identifier instead of replacing an existing task.
const DefaultID uint32 = 0

// CompletionFunc is a scheduled callback. It runs outside any critical
// section, with interrupts (conceptually) enabled, so it may itself call
// back into the scheduler.
type CompletionFunc func(param any)

// task is one entry in the task table. It is immutable once inserted;
// re-scheduling an id is modeled as remove-then-insert, never in-place
// mutation.
type task struct {
	executeTime uint32
	fn          CompletionFunc
	param       any
	id          uint32
}
