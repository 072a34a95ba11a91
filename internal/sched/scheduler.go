// internal/sched/scheduler.go

package sched

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Scheduler runs completion functions once, after a delay expressed in
// CPU ticks, from repeated calls to Update. It owns a fixed-capacity
// task table and talks to hardware only through a CPU facade.
type Scheduler struct {
	cpu    CPU
	table  *taskTable
	nextID atomic.Uint32

	stats    *dispatchStats
	statusCh chan StatusEvent
}

// New creates a Scheduler with the given capacity, bound to cpu.
func New(cfg Config, cpu CPU) *Scheduler {
	s := &Scheduler{
		cpu:      cpu,
		table:    newTaskTable(cfg.Capacity),
		stats:    newDispatchStats(),
		statusCh: make(chan StatusEvent, 256),
	}
	s.nextID.Store(1)

	if cfg.CSVPath != "" {
		if err := s.stats.enableCSV(cfg.CSVPath); err != nil {
			fmt.Printf("sched: csv logging disabled: %v\n", err)
		}
	}
	return s
}

// Events exposes the status stream for consumers that want to log or
// record scheduler activity without going through Run.
func (s *Scheduler) Events() <-chan StatusEvent { return s.statusCh }

// Run drains the event stream until ctx is done, printing each event, and
// closes the CSV dispatch log (if enabled) on return. The CSV rows
// themselves are written by Update as each task is dispatched. Intended
// for demo/debug use; production hosts can read Events() directly instead.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		select {
		case ev := <-s.statusCh:
			s.handleEvent(ev)
		case <-ctx.Done():
			s.stats.close()
			return
		}
	}
}

func (s *Scheduler) handleEvent(ev StatusEvent) {
	fmt.Printf("%s [%-11s] task=%d execute_tick=%d\n",
		ev.Time.Format("15:04:05.000"), ev.Kind, ev.TaskID, ev.ExecuteTime)
}

// ScheduleTask schedules fn to run once delay ticks from now, passing
// param verbatim. If reuseID is non-zero, any existing task with that id
// is atomically replaced and the same id is returned. Returns 0 on
// capacity overflow.
//
// delay must satisfy delay < 2^31 for the wrap-aware comparisons used by
// Update to remain well-defined; this precondition is not enforced here.
func (s *Scheduler) ScheduleTask(fn CompletionFunc, param any, delay uint32, reuseID uint32) uint32 {
	now := s.cpu.SystemTick()
	target := now + delay

	s.cpu.EnterCriticalSection()

	replaced := false
	if reuseID != DefaultID {
		if i := s.table.indexOf(reuseID); i >= 0 {
			s.table.removeAt(i)
			replaced = true
		}
	}

	if s.table.full() {
		s.cpu.LeaveCriticalSection()
		s.emit(StatusOverflow, reuseID, target)
		return DefaultID
	}

	id := reuseID
	if id == DefaultID {
		id = s.allocateID()
	}

	s.table.insert(task{executeTime: target, fn: fn, param: param, id: id})
	s.cpu.LeaveCriticalSection()

	if replaced {
		s.emit(StatusReplaced, id, target)
	} else {
		s.emit(StatusScheduled, id, target)
	}
	return id
}

// allocateID returns the next fresh task id, skipping the reserved
// sentinel 0 on wrap. Must be called with the critical section held.
func (s *Scheduler) allocateID() uint32 {
	id := s.nextID.Load()
	next := id + 1
	if next == DefaultID {
		next = 1
	}
	s.nextID.Store(next)
	return id
}

// UnscheduleTask removes a pending task by id. A no-op if id is not
// present; never fails.
func (s *Scheduler) UnscheduleTask(id uint32) {
	s.cpu.EnterCriticalSection()
	i := s.table.indexOf(id)
	if i >= 0 {
		s.table.removeAt(i)
	}
	s.cpu.LeaveCriticalSection()

	if i >= 0 {
		s.emit(StatusUnscheduled, id, 0)
	}
}

// Update drains every task currently due, in deadline order, invoking
// each callback outside the critical section. Must be called repeatedly
// from the host loop.
func (s *Scheduler) Update() {
	now := s.cpu.SystemTick()

	for {
		s.cpu.EnterCriticalSection()

		if s.table.count() == 0 {
			s.cpu.LeaveCriticalSection()
			return
		}

		head, _ := s.table.head()
		if !tickDue(now, head.executeTime) {
			s.cpu.LeaveCriticalSection()
			return
		}

		due := s.table.popHead()
		remaining := s.table.count()
		s.cpu.LeaveCriticalSection()

		due.fn(due.param)
		s.stats.recordDispatch(due.id, due.executeTime, now)
		s.emit(StatusDispatched, due.id, due.executeTime)

		if remaining == 0 {
			return
		}
	}
}

// Stats returns a human-readable dispatch-count snapshot, ascending by
// task id.
func (s *Scheduler) Stats() string { return s.stats.Dump() }

func (s *Scheduler) emit(kind StatusKind, id, executeTime uint32) {
	ev := StatusEvent{Time: time.Now(), Kind: kind, TaskID: id, ExecuteTime: executeTime}
	select {
	case s.statusCh <- ev:
	default:
		// drop on a full buffer rather than block the caller
	}
}
