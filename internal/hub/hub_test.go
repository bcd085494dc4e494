package hub

import (
	"errors"
	"sync"
	"testing"

	"github.com/LeoCommon/modemcore/internal/catalog"
	"github.com/LeoCommon/modemcore/internal/config"
	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/radio"
	"github.com/LeoCommon/modemcore/internal/registrant"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu  sync.Mutex
	got []registrant.Notification
}

func (r *recorder) Notify(n registrant.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recorder) results() []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]any, 0, len(r.got))
	for _, n := range r.got {
		out = append(out, n.Result)
	}
	return out
}

// futureRecord is a payload shape the adapter does not know
type futureRecord struct {
	wire.Raw
}

func newSyncHub(t *testing.T) *Hub {
	t.Helper()
	log.Init(true)

	h := New(config.HubConfig{Delivery: config.DeliverySync})
	t.Cleanup(h.Close)
	return h
}

func TestEveryRouteIsACatalogOpcode(t *testing.T) {
	for op, rt := range routes {
		assert.NotEqual(t, catalog.UnknownResponse, catalog.ResponseToString(op), "opcode %d", op)
		if rt.slot {
			assert.Less(t, int(rt.single), int(numSlotCategories))
		} else {
			assert.Less(t, int(rt.list), int(numListCategories))
		}
	}
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "cell info list", CellInfoList.String())
	assert.Equal(t, "ussd", USSD.String())
	assert.Equal(t, "ListCategory(99)", ListCategory(99).String())
	assert.Len(t, ListCategories(), int(numListCategories))
	assert.Len(t, SlotCategories(), int(numSlotCategories))
}

func TestListDispatchInOrder(t *testing.T) {
	h := newSyncHub(t)

	var order []string
	first := registrant.NewHandler(func(n registrant.Notification) { order = append(order, "first") })
	second := registrant.NewHandler(func(n registrant.Notification) { order = append(order, "second") })

	h.RegisterFor(CallStateChanged, first, nil, nil)
	h.RegisterFor(CallStateChanged, second, nil, nil)
	assert.Equal(t, 2, h.Registered(CallStateChanged))

	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolCallStateChanged, Generation: wire.V1_0})
	assert.Equal(t, []string{"first", "second"}, order)

	h.UnregisterFor(CallStateChanged, first)
	h.UnregisterFor(CallStateChanged, first)
	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolCallStateChanged, Generation: wire.V1_0})
	assert.Equal(t, []string{"first", "second", "second"}, order)
}

func TestStructuredPayloadIsConverted(t *testing.T) {
	h := newSyncHub(t)
	r := &recorder{}
	h.RegisterFor(LinkCapacityChanged, r, "token", "ctx")

	h.OnUnsolicited(wire.Event{
		Opcode:     catalog.UnsolLCEDataRecv,
		Generation: wire.V1_6,
		Payload:    wire.LinkCapacityEstimateV1_6{DownlinkCapacityKbps: 100, UplinkCapacityKbps: 50, SecondaryDownlinkCapacityKbps: 40, SecondaryUplinkCapacityKbps: 10},
	})

	require.Len(t, r.got, 1)
	assert.Equal(t, "token", r.got[0].Token)
	assert.Equal(t, "ctx", r.got[0].UserContext)

	estimates, ok := r.got[0].Result.([]domain.LinkCapacityEstimate)
	require.True(t, ok)
	require.Len(t, estimates, 2)
	assert.Equal(t, int32(60), estimates[0].DownlinkKbps)
	assert.Equal(t, domain.LinkCapacitySecondary, estimates[1].Type)
}

func TestDataCallListIsConverted(t *testing.T) {
	h := newSyncHub(t)
	r := &recorder{}
	h.RegisterFor(DataCallListChanged, r, nil, nil)

	h.OnUnsolicited(wire.Event{
		Opcode:     catalog.UnsolDataCallListChanged,
		Generation: wire.V1_0,
		Payload:    wire.DataCallList{Results: []wire.DataCallResult{wire.SetupDataCallResultV1_0{Cid: 4, Mtu: 1400}}},
	})

	require.Len(t, r.got, 1)
	dcs := r.got[0].Result.([]domain.DataCallResult)
	require.Len(t, dcs, 1)
	assert.Equal(t, int32(1400), dcs[0].MTUV6)
}

func TestUnknownShapeIsNotDispatched(t *testing.T) {
	h := newSyncHub(t)
	r := &recorder{}
	h.RegisterFor(CellInfoList, r, nil, nil)

	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolCellInfoList, Generation: wire.V1_6, Payload: futureRecord{}})
	assert.Empty(t, r.results())
}

func TestRawPayloadPassesThrough(t *testing.T) {
	h := newSyncHub(t)
	r := &recorder{}
	h.SetOn(NewSMS, r, nil, nil)

	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolNewSMS, Payload: wire.Raw{Value: []byte{0x07, 0x91}}})
	assert.Equal(t, []any{[]byte{0x07, 0x91}}, r.results())
}

func TestUnroutedOpcodeIsIgnored(t *testing.T) {
	h := newSyncHub(t)
	assert.NotPanics(t, func() {
		h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolKeepaliveStatus, Payload: wire.Raw{Value: 1}})
		h.OnUnsolicited(wire.Event{Opcode: 0x7FFFFFFF})
	})
}

func TestSlotReplaceIsSilent(t *testing.T) {
	h := newSyncHub(t)
	a := &recorder{}
	b := &recorder{}

	h.SetOn(SignalStrength, a, nil, nil)
	h.SetOn(SignalStrength, b, nil, nil)

	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolSignalStrength, Payload: wire.Raw{Value: "+CSQ: 20,99"}})
	assert.Empty(t, a.results())
	assert.Equal(t, []any{"+CSQ: 20,99"}, b.results())
}

func TestSlotUnsetChecksIdentityForEveryCategory(t *testing.T) {
	h := newSyncHub(t)

	for _, cat := range SlotCategories() {
		t.Run(cat.String(), func(t *testing.T) {
			owner := &recorder{}
			other := &recorder{}

			h.SetOn(cat, owner, nil, nil)
			assert.False(t, h.UnSetOn(cat, other))
			assert.Equal(t, registrant.SlotRegistered, h.SlotState(cat))

			assert.True(t, h.UnSetOn(cat, owner))
			assert.Equal(t, registrant.SlotEmpty, h.SlotState(cat))

			// unset on an empty slot is a no-op
			assert.False(t, h.UnSetOn(cat, owner))
		})
	}
}

func TestOnRadioStateChanged(t *testing.T) {
	h := newSyncHub(t)

	on := &recorder{}
	h.Radio().RegisterForOn(on, nil, nil)

	require.NoError(t, h.OnRadioStateChanged(int32(radio.StateOn)))
	assert.Equal(t, radio.StateOn, h.Radio().State())
	assert.Equal(t, []any{radio.StateOn}, on.results())

	err := h.OnRadioStateChanged(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &radio.UnknownStateError{}))
	assert.Equal(t, radio.StateOn, h.Radio().State())
}

func TestRadioStateViaUnsolicited(t *testing.T) {
	h := newSyncHub(t)

	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolRadioStateChanged, Payload: wire.Raw{Value: int32(radio.StateOff)}})
	assert.Equal(t, radio.StateOff, h.Radio().State())

	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolRadioStateChanged, Payload: wire.Raw{Value: radio.StateOn}})
	assert.Equal(t, radio.StateOn, h.Radio().State())

	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolRadioStateChanged, Payload: wire.Raw{Value: int(radio.StateUnavailable)}})
	assert.Equal(t, radio.StateUnavailable, h.Radio().State())

	// wrong payload types leave the state alone
	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolRadioStateChanged, Payload: wire.Raw{Value: "ON"}})
	h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolRadioStateChanged, Payload: wire.Raw{Value: int64(10)}})
	assert.Equal(t, radio.StateUnavailable, h.Radio().State())
}

func TestDeferredDeliveryKeepsOrder(t *testing.T) {
	defer goleak.VerifyNone(t)
	log.Init(true)

	h := New(config.HubConfig{Delivery: config.DeliveryDeferred, QueueSize: 4})
	r := &recorder{}
	h.RegisterFor(NetworkStateChanged, r, nil, nil)

	want := make([]any, 0, 100)
	for i := 0; i < 100; i++ {
		h.OnUnsolicited(wire.Event{Opcode: catalog.UnsolNetworkStateChanged, Payload: wire.Raw{Value: i}})
		want = append(want, i)
	}

	h.Close()
	assert.Equal(t, want, r.results())

	// closing twice is fine
	h.Close()
}

func TestDeferredRadioRegistration(t *testing.T) {
	defer goleak.VerifyNone(t)
	log.Init(true)

	h := New(config.HubConfig{Delivery: config.DeliveryDeferred})
	available := &recorder{}

	require.NoError(t, h.OnRadioStateChanged(int32(radio.StateOff)))
	h.Radio().RegisterForAvailable(available, nil, nil)

	h.Close()
	assert.Equal(t, []any{radio.StateOff}, available.results())
}
