package sched

import "testing"

func TestTickBeforeWrap(t *testing.T) {
	cases := []struct {
		a, b uint32
		want bool
	}{
		{0, 1, true},
		{1, 0, false},
		{0, 0, false},
		{1<<32 - 5, 5, true}, // a is just before the wrap, b just after it
		{5, 1<<32 - 5, false},
	}
	for _, c := range cases {
		if got := tickBefore(c.a, c.b); got != c.want {
			t.Errorf("tickBefore(%d, %d) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestTickDueWrap(t *testing.T) {
	// A task due at tick 10, reached by wrapping through 2^32, must not
	// be due at any tick in [2^32-10, 2^32-1], and must be due at 10.
	const wrapTarget = uint32(10)
	for _, now := range []uint32{1<<32 - 10, 1<<32 - 1} {
		if tickDue(now, wrapTarget) {
			t.Errorf("tickDue(%d, %d) = true, want false (pre-wrap)", now, wrapTarget)
		}
	}
	if !tickDue(10, wrapTarget) {
		t.Errorf("tickDue(10, %d) = false, want true", wrapTarget)
	}
}

func TestInsertSortedOrder(t *testing.T) {
	tbl := newTaskTable(4)
	tbl.insert(task{executeTime: 20, id: 1})
	tbl.insert(task{executeTime: 10, id: 2})
	tbl.insert(task{executeTime: 30, id: 3})

	want := []uint32{10, 20, 30}
	for i, w := range want {
		if tbl.slots[i].executeTime != w {
			t.Fatalf("slot %d = %d, want %d", i, tbl.slots[i].executeTime, w)
		}
	}
}

func TestInsertEqualDeadlineFIFO(t *testing.T) {
	tbl := newTaskTable(4)
	tbl.insert(task{executeTime: 10, id: 1})
	tbl.insert(task{executeTime: 10, id: 2})

	if tbl.slots[0].id != 1 || tbl.slots[1].id != 2 {
		t.Fatalf("equal-deadline tasks reordered: got ids %d, %d", tbl.slots[0].id, tbl.slots[1].id)
	}
}

func TestRemoveAtCompacts(t *testing.T) {
	tbl := newTaskTable(4)
	tbl.insert(task{executeTime: 10, id: 1})
	tbl.insert(task{executeTime: 20, id: 2})
	tbl.insert(task{executeTime: 30, id: 3})

	tbl.removeAt(1) // remove id 2

	if tbl.count() != 2 {
		t.Fatalf("count = %d, want 2", tbl.count())
	}
	if tbl.slots[0].id != 1 || tbl.slots[1].id != 3 {
		t.Fatalf("unexpected slots after removeAt: %+v", tbl.slots)
	}
}

func TestFullAtCapacity(t *testing.T) {
	tbl := newTaskTable(2)
	tbl.insert(task{executeTime: 1, id: 1})
	if tbl.full() {
		t.Fatal("table reports full with one of two slots used")
	}
	tbl.insert(task{executeTime: 2, id: 2})
	if !tbl.full() {
		t.Fatal("table does not report full at capacity")
	}
}

func TestIndexOfMissing(t *testing.T) {
	tbl := newTaskTable(2)
	tbl.insert(task{executeTime: 1, id: 1})
	if i := tbl.indexOf(99); i != -1 {
		t.Fatalf("indexOf(99) = %d, want -1", i)
	}
}
