package sched

import "time"

// StatusKind identifies what happened to a task in the table.
type StatusKind int

const (
	StatusScheduled StatusKind = iota
	StatusReplaced
	StatusUnscheduled
	StatusOverflow
	StatusDispatched
)

func (k StatusKind) String() string {
	switch k {
	case StatusScheduled:
		return "Scheduled"
	case StatusReplaced:
		return "Replaced"
	case StatusUnscheduled:
		return "Unscheduled"
	case StatusOverflow:
		return "Overflow"
	case StatusDispatched:
		return "Dispatched"
	default:
		return "Unknown"
	}
}

// StatusEvent is emitted on every table mutation and dispatch so a host
// can log or record scheduler activity without polling its internals.
type StatusEvent struct {
	Time        time.Time
	Kind        StatusKind
	TaskID      uint32
	ExecuteTime uint32
}
