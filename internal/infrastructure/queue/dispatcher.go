package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes cache-refresh requests to a fixed set of workers using
// consistent hashing on the collection kind, so refreshes of the same
// collection never reorder or race each other.
type Dispatcher struct {
	workers []chan ports.RefreshRequest
	service ports.RefreshService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.RefreshService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.RefreshRequest, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RefreshRequest, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a refresh request to the worker responsible for its kind.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(req ports.RefreshRequest) {
	d.workers[d.shardIndex(string(req.Kind))] <- req
}

// shardIndex maps a collection kind deterministically to a worker index.
func (d *Dispatcher) shardIndex(kind string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(kind))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RefreshRequest) {
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Refresh(ctx, req); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(req.Kind)).
					Int("worker_id", id).
					Msg("cache refresh failed")
			}
		}
	}
}
