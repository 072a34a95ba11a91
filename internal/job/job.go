// Package job holds example completion callbacks for the demo binary
// and tests, not part of the scheduler's core contract.
package job

import (
	"fmt"

	"github.com/sapharow/embedded-scheduler/internal/sched"
)

// Print returns a completion function that prints tag and whatever param
// it was handed. Useful for demos and as a default test callback.
func Print(tag string) sched.CompletionFunc {
	return func(param any) {
		fmt.Printf("job[%s] fired with param=%v\n", tag, param)
	}
}

// Rearm returns a completion function that re-schedules itself on the
// given scheduler every time it fires, reusing *idPtr as the task id.
// Periodic re-arming is the caller's responsibility, not a scheduler
// feature, so this lives here rather than in sched. idPtr is read at
// fire time, so the caller may fill it in with the id ScheduleTask
// returns for the very first call.
func Rearm(s *sched.Scheduler, idPtr *uint32, period uint32, tag string) sched.CompletionFunc {
	var fn sched.CompletionFunc
	fn = func(param any) {
		fmt.Printf("job[%s] pulse\n", tag)
		*idPtr = s.ScheduleTask(fn, param, period, *idPtr)
	}
	return fn
}

// Counter returns a completion function that increments *n each time it
// fires. Handy in tests that only need to assert call counts.
func Counter(n *int) sched.CompletionFunc {
	return func(any) {
		*n++
	}
}
