// Package hub owns every notification registry and routes what the transport
// reports to them. One Hub is built per modem and handed to both the
// transport binding and the consumers.
package hub

import (
	"math"

	"github.com/LeoCommon/modemcore/internal/adapter"
	"github.com/LeoCommon/modemcore/internal/catalog"
	"github.com/LeoCommon/modemcore/internal/config"
	"github.com/LeoCommon/modemcore/internal/radio"
	"github.com/LeoCommon/modemcore/internal/registrant"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

type Hub struct {
	deliverer registrant.Deliverer

	// only set in deferred mode
	queued *registrant.QueuedDeliverer

	radio *radio.StateMachine
	lists [numListCategories]*registrant.List
	slots [numSlotCategories]*registrant.Slot
}

// New builds the registries for the configured delivery mode. In deferred
// mode the hub starts one worker goroutine that Close stops.
func New(c config.HubConfig, opts ...radio.Option) *Hub {
	h := &Hub{}

	switch c.Delivery {
	case config.DeliveryDeferred:
		h.queued = registrant.NewQueuedDeliverer(c.QueueSize)
		h.deliverer = h.queued
	default:
		h.deliverer = registrant.SyncDeliverer{}
	}

	h.radio = radio.NewStateMachine(radio.NewRegistries(h.deliverer), opts...)

	for _, cat := range ListCategories() {
		h.lists[cat] = registrant.NewList(cat.String(), h.deliverer)
	}
	for _, cat := range SlotCategories() {
		h.slots[cat] = registrant.NewSlot(cat.String(), h.deliverer)
	}

	log.Debug("notification hub ready", zap.String("delivery", string(c.Delivery)))
	return h
}

// Radio gives access to the radio state and its predicate gated registries
func (h *Hub) Radio() *radio.StateMachine {
	return h.radio
}

// OnRadioStateChanged validates the raw state and transitions the radio.
// Unknown values leave the state untouched and are returned.
func (h *Hub) OnRadioStateChanged(raw int32) error {
	state, err := radio.ParseState(raw)
	if err != nil {
		log.Error("transport reported an unknown radio state", zap.Int32("raw", raw), zap.Error(err))
		return err
	}

	h.radio.Transition(state)
	return nil
}

// OnUnsolicited converts the payload of ev if it is structured and notifies
// the registry its opcode is routed to
func (h *Hub) OnUnsolicited(ev wire.Event) {
	if ev.Opcode == catalog.UnsolRadioStateChanged {
		h.radioStateEvent(ev)
		return
	}

	rt, ok := routes[ev.Opcode]
	if !ok {
		log.Debug("no registry for unsolicited response", zap.String("opcode", catalog.Describe(ev.Opcode)))
		return
	}

	result, ok := h.payload(ev)
	if !ok {
		return
	}

	if rt.slot {
		if !h.slot(rt.single).Notify(result, nil) {
			log.Debug("unsolicited response without listener", zap.String("opcode", catalog.Describe(ev.Opcode)))
		}
		return
	}

	h.list(rt.list).NotifyAll(result, nil)
}

// payload returns the value handed to handlers, false if the event has to be dropped
func (h *Hub) payload(ev wire.Event) (any, bool) {
	switch p := ev.Payload.(type) {
	case nil:
		// events like call state changed carry no data
		return nil, true
	case wire.Raw:
		return p.Value, true
	}

	if ev.Payload.Introduced() > ev.Generation {
		log.Warn("payload is newer than the announced generation",
			zap.String("opcode", catalog.Describe(ev.Opcode)),
			zap.Stringer("generation", ev.Generation),
			zap.Stringer("introduced", ev.Payload.Introduced()))
	}

	result := adapter.Convert(ev.Payload)
	if result == nil {
		log.Warn("dropping unsolicited response without canonical payload",
			zap.String("opcode", catalog.Describe(ev.Opcode)), zap.Stringer("generation", ev.Generation))
		return nil, false
	}
	return result, true
}

// radioStateEvent accepts the state as radio.State, int32 or int inside a wire.Raw
func (h *Hub) radioStateEvent(ev wire.Event) {
	if raw, ok := ev.Payload.(wire.Raw); ok {
		switch v := raw.Value.(type) {
		case radio.State:
			_ = h.OnRadioStateChanged(int32(v))
			return
		case int32:
			_ = h.OnRadioStateChanged(v)
			return
		case int:
			if v >= math.MinInt32 && v <= math.MaxInt32 {
				_ = h.OnRadioStateChanged(int32(v))
				return
			}
		}
	}

	log.Warn("radio state change without a state value", zap.Any("payload", ev.Payload))
}

func (h *Hub) list(c ListCategory) *registrant.List {
	if c < 0 || c >= numListCategories {
		log.Panic("implementation mistake, unknown list category", zap.Stringer("category", c))
	}
	return h.lists[c]
}

func (h *Hub) slot(c SlotCategory) *registrant.Slot {
	if c < 0 || c >= numSlotCategories {
		log.Panic("implementation mistake, unknown slot category", zap.Stringer("category", c))
	}
	return h.slots[c]
}

func (h *Hub) RegisterFor(c ListCategory, handler registrant.Handler, token, userContext any) {
	h.list(c).Add(handler, token, userContext)
}

// UnregisterFor removes the first registration of handler, absent handlers are ignored
func (h *Hub) UnregisterFor(c ListCategory, handler registrant.Handler) {
	h.list(c).Remove(handler)
}

// SetOn replaces whatever listener the slot had
func (h *Hub) SetOn(c SlotCategory, handler registrant.Handler, token, userContext any) {
	h.slot(c).Set(handler, token, userContext)
}

// UnSetOn clears the slot only if handler is its current listener
func (h *Hub) UnSetOn(c SlotCategory, handler registrant.Handler) bool {
	return h.slot(c).Unset(handler)
}

func (h *Hub) Registered(c ListCategory) int {
	return h.list(c).Size()
}

func (h *Hub) SlotState(c SlotCategory) registrant.SlotState {
	return h.slot(c).State()
}

// Close stops the deferred delivery worker after draining it
func (h *Hub) Close() {
	if h.queued != nil {
		h.queued.Close()
	}
}
