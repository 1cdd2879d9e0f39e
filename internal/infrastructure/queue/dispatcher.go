package queue

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/AlexMorrow239/zomma-prototype/internal/api/metrics"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64
)

// Dispatcher runs prospect notifications on detached workers so the create
// request never waits on SMTP. Enqueue never blocks: when the buffer is full
// the notification is dropped and logged, the prospect record stays durable.
type Dispatcher struct {
	jobs       chan *domain.Prospect
	service    ports.NotificationService
	numWorkers int
	log        zerolog.Logger
	wg         sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers workers. If
// numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		jobs:       make(chan *domain.Prospect, channelBuffer),
		service:    service,
		numWorkers: numWorkers,
		log:        log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		go d.runWorker(ctx, i)
	}
}

// Enqueue hands a prospect to the notification workers without blocking.
func (d *Dispatcher) Enqueue(prospect *domain.Prospect) {
	select {
	case d.jobs <- prospect:
		metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Error().Str("prospect_id", prospect.ID).Msg("notification queue full, dropping notification")
	}
}

// Stop closes the queue so workers finish the buffered jobs and exit.
// Enqueue must not be called after Stop; cancelling the Start context
// instead aborts workers without draining.
func (d *Dispatcher) Stop() {
	close(d.jobs)
}

// Wait blocks until all workers have exited. Call after Stop or after the
// context passed to Start is cancelled.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case prospect, ok := <-d.jobs:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
			d.log.Debug().Int("worker_id", id).Str("prospect_id", prospect.ID).Msg("processing notification")
			d.service.NotifyProspect(ctx, prospect)
		}
	}
}
