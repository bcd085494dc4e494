package registrant

import (
	"sync"

	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// List is an ordered set of registrants, notified in registration order
type List struct {
	mu          sync.Mutex
	name        string
	registrants []*Registrant
	deliverer   Deliverer
}

func NewList(name string, d Deliverer) *List {
	if d == nil {
		d = SyncDeliverer{}
	}

	return &List{
		name:      name,
		deliverer: d,
	}
}

func (l *List) Name() string {
	return l.name
}

// Add appends a new registrant for h and returns it
func (l *List) Add(h Handler, token any, userContext any) *Registrant {
	r := New(h, token, userContext)
	l.AddRegistrant(r)
	return r
}

func (l *List) AddRegistrant(r *Registrant) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.registrants = append(l.registrants, r)
	log.Debug("registrant added", zap.String("list", l.name), zap.Stringer("registrant", r.id))
}

// Remove deletes the first registrant of h, absent handlers are ignored
func (l *List) Remove(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.registrants, func(r *Registrant) bool {
		return r.is(h)
	})
	if idx < 0 {
		return
	}

	r := l.registrants[idx]
	r.removed.Store(true)
	l.registrants = slices.Delete(l.registrants, idx, idx+1)
	log.Debug("registrant removed", zap.String("list", l.name), zap.Stringer("registrant", r.id))
}

func (l *List) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.registrants)
}

func (l *List) snapshot() []*Registrant {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.registrants)
}

// NotifyAll fans result out to the registrants present when it was called.
// Registrants removed in the meantime are skipped.
func (l *List) NotifyAll(result any, err error) {
	for _, r := range l.snapshot() {
		l.NotifyRegistrant(r, result, err)
	}
}

// NotifyRegistrant delivers to a single registrant through the list's deliverer
func (l *List) NotifyRegistrant(r *Registrant, result any, err error) {
	if r.Removed() {
		return
	}

	l.deliverer.Deliver(r, r.notification(result, err))
}
