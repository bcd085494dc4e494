package registrant

import (
	"sync"

	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const DefaultQueueSize = 64

// Deliverer hands a notification to a registrant's handler
type Deliverer interface {
	Deliver(r *Registrant, n Notification)
}

// SyncDeliverer invokes the handler on the calling goroutine.
// Handlers called from inside the radio state lock must neither block nor
// register/unregister, or the caller deadlocks.
type SyncDeliverer struct{}

func (SyncDeliverer) Deliver(r *Registrant, n Notification) {
	if r.Removed() {
		return
	}

	r.handler.Notify(n)
}

type delivery struct {
	r *Registrant
	n Notification
}

// QueuedDeliverer defers handler invocation to a single worker goroutine,
// preserving the order in which notifications were fired.
// Deliver blocks while the queue is full.
type QueuedDeliverer struct {
	mu     sync.RWMutex
	closed bool

	queue chan delivery
	wg    sync.WaitGroup

	pending   atomic.Int64
	delivered atomic.Int64
}

func NewQueuedDeliverer(size int) *QueuedDeliverer {
	if size <= 0 {
		size = DefaultQueueSize
	}

	q := &QueuedDeliverer{
		queue: make(chan delivery, size),
	}

	q.wg.Add(1)
	go q.run()

	return q
}

func (q *QueuedDeliverer) Deliver(r *Registrant, n Notification) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		log.Warn("deliverer closed, dropping notification", zap.Stringer("registrant", r.id))
		return
	}

	q.pending.Inc()
	q.queue <- delivery{r: r, n: n}
}

func (q *QueuedDeliverer) run() {
	defer q.wg.Done()

	for d := range q.queue {
		// The registrant might have been removed while the notification was queued
		if !d.r.Removed() {
			d.r.handler.Notify(d.n)
			q.delivered.Inc()
		}
		q.pending.Dec()
	}

	log.Debug("queued deliverer stopped", zap.Int64("delivered", q.delivered.Load()))
}

// Pending returns the number of queued but not yet handled notifications
func (q *QueuedDeliverer) Pending() int64 {
	return q.pending.Load()
}

// Delivered returns the number of handler invocations so far
func (q *QueuedDeliverer) Delivered() int64 {
	return q.delivered.Load()
}

// Close stops accepting notifications, drains the queue and waits for the worker
func (q *QueuedDeliverer) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.queue)
	q.mu.Unlock()

	q.wg.Wait()
}
