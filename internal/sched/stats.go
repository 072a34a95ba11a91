package sched

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// dispatchRecord is the per-id bookkeeping kept by dispatchStats.
type dispatchRecord struct {
	count       int64
	lastTick    uint32
	executeTime uint32
}

// dispatchStats tracks how many times each task id has been dispatched.
// Backed by an ordered tree (treemap) instead of a plain map, so console
// and CSV output iterate in ascending task-id order deterministically.
type dispatchStats struct {
	byID *treemap.Map // uint32 -> *dispatchRecord

	csvFile   *os.File
	csvWriter *csv.Writer
}

func newDispatchStats() *dispatchStats {
	return &dispatchStats{
		byID: treemap.NewWith(utils.UInt32Comparator),
	}
}

// enableCSV opens path for a CSV mirror of every dispatch. Must be called
// before any dispatch is recorded to get a consistent header.
func (s *dispatchStats) enableCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	w.Write([]string{"task_id", "execute_tick", "dispatch_count"})
	w.Flush()
	s.csvFile = f
	s.csvWriter = w
	return nil
}

func (s *dispatchStats) close() {
	if s.csvWriter != nil {
		s.csvWriter.Flush()
	}
	if s.csvFile != nil {
		s.csvFile.Close()
	}
}

func (s *dispatchStats) recordDispatch(id, executeTime, now uint32) {
	var rec *dispatchRecord
	if v, found := s.byID.Get(id); found {
		rec = v.(*dispatchRecord)
	} else {
		rec = &dispatchRecord{}
		s.byID.Put(id, rec)
	}
	rec.count++
	rec.lastTick = now
	rec.executeTime = executeTime

	if s.csvWriter != nil {
		s.csvWriter.Write([]string{
			strconv.FormatUint(uint64(id), 10),
			strconv.FormatUint(uint64(executeTime), 10),
			strconv.FormatInt(rec.count, 10),
		})
		s.csvWriter.Flush()
	}
}

// Dump returns a human-readable, ascending-by-id snapshot of dispatch
// counts. Intended for debug/demo output, not the hot path.
func (s *dispatchStats) Dump() string {
	out := ""
	it := s.byID.Iterator()
	for it.Next() {
		id := it.Key().(uint32)
		rec := it.Value().(*dispatchRecord)
		out += fmt.Sprintf("task %d: dispatched %d time(s), last due at tick %d, ran at tick %d\n",
			id, rec.count, rec.executeTime, rec.lastTick)
	}
	return out
}
