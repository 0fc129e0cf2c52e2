package audit

import (
	"log/slog"
	"sync"
)

// Audit actions.
const (
	ActionBookedDateCreated     = "booked_date_created"
	ActionEstablishmentCreated  = "establishment_created"
	ActionEstablishmentUpdated  = "establishment_updated"
	ActionCommoditiesReconciled = "commodities_reconciled"
	ActionImagesReconciled      = "images_reconciled"
	ActionPasswordReset         = "password_reset"
)

type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			slog.Warn("audit write failed", slog.String("action", ev.Action), slog.Any("error", err))
		}
	}
}

// Dispatch never blocks: a full queue drops the event. A nil dispatcher is
// a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close drains the queue and stops the worker. Dispatch must not be called
// after Close.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}
