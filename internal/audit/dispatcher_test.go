package audit

import (
	"errors"
	"sync"
	"testing"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *recordingSink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if s.fail {
		return errors.New("db down")
	}
	return nil
}

func TestDispatcherDeliversBeforeClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: ActionBookedDateCreated, EntityID: "b"})
	}
	d.Close()

	if len(sink.events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(sink.events))
	}
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &recordingSink{fail: true}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: ActionEstablishmentUpdated})
	d.Dispatch(Event{Action: ActionEstablishmentUpdated})
	d.Close()

	if len(sink.events) != 2 {
		t.Fatalf("expected both events to reach the sink, got %d", len(sink.events))
	}
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: ActionPasswordReset})
	d.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingSink{})
	d.Close()
	d.Close()
}
