package registrant

import (
	"sync"

	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

type SlotState int

const (
	SlotEmpty SlotState = iota
	SlotRegistered
)

func (s SlotState) String() string {
	if s == SlotRegistered {
		return "registered"
	}
	return "empty"
}

// Slot holds at most one registrant. Set replaces the occupant without
// telling it, Unset only clears when called by the current occupant.
type Slot struct {
	mu        sync.Mutex
	name      string
	occupant  *Registrant
	deliverer Deliverer
}

func NewSlot(name string, d Deliverer) *Slot {
	if d == nil {
		d = SyncDeliverer{}
	}

	return &Slot{
		name:      name,
		deliverer: d,
	}
}

func (s *Slot) Name() string {
	return s.name
}

func (s *Slot) Set(h Handler, token any, userContext any) *Registrant {
	r := New(h, token, userContext)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupant != nil {
		s.occupant.removed.Store(true)
		log.Debug("slot occupant replaced", zap.String("slot", s.name), zap.Stringer("previous", s.occupant.id))
	}
	s.occupant = r

	return r
}

// Unset clears the slot if h is the current occupant and reports whether it did
func (s *Slot) Unset(h Handler) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupant == nil || !s.occupant.is(h) {
		log.Debug("ignoring unset from non-occupant", zap.String("slot", s.name))
		return false
	}

	s.occupant.removed.Store(true)
	s.occupant = nil
	return true
}

func (s *Slot) State() SlotState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.occupant == nil {
		return SlotEmpty
	}
	return SlotRegistered
}

func (s *Slot) Occupant() (*Registrant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupant, s.occupant != nil
}

// Notify delivers to the occupant, it returns false for an empty slot
func (s *Slot) Notify(result any, err error) bool {
	r, ok := s.Occupant()
	if !ok {
		return false
	}

	s.deliverer.Deliver(r, r.notification(result, err))
	return true
}
