package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sapharow/embedded-scheduler/internal/job"
	"github.com/sapharow/embedded-scheduler/internal/sched"
)

func main() {
	cfg := sched.Load("config.yml")
	fmt.Printf("Loaded config: %+v\n", cfg)

	cpu := sched.NewSoftwareCPU(time.Duration(cfg.TickMS)*time.Millisecond, 2*time.Millisecond)
	defer cpu.Stop()

	s := sched.New(cfg, cpu)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go s.Run(ctx)

	s.ScheduleTask(job.Print("immediate"), nil, 0, sched.DefaultID)

	var pulseID uint32
	pulseID = s.ScheduleTask(job.Rearm(s, &pulseID, 50, "heartbeat"), nil, 50, sched.DefaultID)

	s.ScheduleTask(job.Print("late"), "hello", 500, sched.DefaultID)

	for {
		select {
		case <-ctx.Done():
			fmt.Println(s.Stats())
			return
		default:
			s.Update()
			cpu.Sleep()
		}
	}
}
