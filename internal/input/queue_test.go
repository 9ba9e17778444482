package input

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Command{Kind: PointerDown, X: 1, Y: 2})
	q.Push(Command{Kind: PointerMove, X: 3, Y: 4})
	q.Push(Command{Kind: Fire})

	cmds := q.Drain()
	if len(cmds) != 3 {
		t.Fatalf("Expected 3 commands, got %d", len(cmds))
	}
	want := []CommandKind{PointerDown, PointerMove, Fire}
	for i, k := range want {
		if cmds[i].Kind != k {
			t.Errorf("Command %d: expected %s, got %s", i, k, cmds[i].Kind)
		}
	}
	if cmds[1].X != 3 || cmds[1].Y != 4 {
		t.Errorf("Move coordinates lost: %+v", cmds[1])
	}

	if again := q.Drain(); len(again) != 0 {
		t.Errorf("Expected 0 commands on second drain, got %d", len(again))
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	numGoroutines := 8
	perGoroutine := 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				q.Push(Command{Kind: PointerMove, X: float64(j)})
			}
		}()
	}
	wg.Wait()

	if q.Len() != numGoroutines*perGoroutine {
		t.Errorf("Expected %d pending, got %d", numGoroutines*perGoroutine, q.Len())
	}
	if got := len(q.Drain()); got != numGoroutines*perGoroutine {
		t.Errorf("Expected %d drained, got %d", numGoroutines*perGoroutine, got)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}
