package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/hivcare/art-tracker/internal/api/metrics"
	"github.com/hivcare/art-tracker/internal/core/domain"
	"github.com/hivcare/art-tracker/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the ART number, guaranteeing per-client event ordering.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an event to the worker responsible for its ART number.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	d.workers[d.shardIndex(event.ARTNumber)] <- event
}

// shardIndex maps an ART number deterministically to a worker index.
func (d *Dispatcher) shardIndex(artNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(artNumber))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &event); err != nil {
				metrics.AuditEventsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("art_number", event.ARTNumber).
					Str("action", string(event.Action)).
					Int("worker_id", id).
					Msg("audit event persistence failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues("ok").Inc()
		}
	}
}

var _ ports.AuditRecorder = (*Dispatcher)(nil)
