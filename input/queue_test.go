package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestQueuePollEmpty(t *testing.T) {
	q := NewQueue(4)
	if ev, ok := q.Poll(); ok || ev != nil {
		t.Errorf("Expected empty poll, got %v (ok=%v)", ev, ok)
	}
}

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue(4)
	first := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	second := tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone)
	q.Push(first)
	q.Push(second)

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending events, got %d", q.Len())
	}

	ev, ok := q.Poll()
	if !ok || ev != first {
		t.Errorf("Expected first event, got %v", ev)
	}
	ev, ok = q.Poll()
	if !ok || ev != second {
		t.Errorf("Expected second event, got %v", ev)
	}
	if _, ok := q.Poll(); ok {
		t.Error("Expected queue to be drained")
	}
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(1)
	if !q.Push(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatal("Expected first push to succeed")
	}
	if q.Push(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Error("Expected push on full queue to drop")
	}
	if q.Push(nil) {
		t.Error("Expected nil event to be rejected")
	}
}

func TestQueuePump(t *testing.T) {
	q := NewQueue(8)
	events := []tcell.Event{
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
	}
	i := 0
	q.Pump(func() tcell.Event {
		if i >= len(events) {
			return nil
		}
		ev := events[i]
		i++
		return ev
	})

	if q.Len() != len(events) {
		t.Errorf("Expected %d events pumped, got %d", len(events), q.Len())
	}
}
