package adapter

import (
	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

// ConvertCardStatus returns false only for variants it does not know
func ConvertCardStatus(r wire.CardStatus) (domain.CardStatus, bool) {
	switch cs := r.(type) {
	case wire.CardStatusV1_0:
		return cardBase(cs, appsV1_0(cs.Applications)), true
	case wire.CardStatusV1_2:
		out := cardBase(cs.CardStatusV1_0, appsV1_0(cs.Applications))
		withSlot(&out, cs)
		return out, true
	case wire.CardStatusV1_4:
		out := cardBase(cs.CardStatusV1_0, appsV1_0(cs.CardStatusV1_0.Applications))
		withSlot(&out, cs.CardStatusV1_2)
		out.EID = cs.Eid
		return out, true
	case wire.CardStatusV1_5:
		out := cardBase(cs.CardStatusV1_0, appsV1_5(cs.Applications))
		withSlot(&out, cs.CardStatusV1_2)
		out.EID = cs.Eid
		return out, true
	}
	unsupported(r)
	return domain.CardStatus{}, false
}

func cardState(s int32) domain.CardState {
	switch domain.CardState(s) {
	case domain.CardStateAbsent, domain.CardStatePresent, domain.CardStateError, domain.CardStateRestricted:
		return domain.CardState(s)
	}
	log.Warn("unknown card state, treating it as error", zap.Int32("state", s))
	return domain.CardStateError
}

// subscriptionIndex invalidates indexes that do not address one of the n kept applications
func subscriptionIndex(idx int32, n int) int32 {
	if idx < 0 || int(idx) >= n {
		return domain.NoSubscriptionApp
	}
	return idx
}

func cardBase(cs wire.CardStatusV1_0, apps []domain.AppStatus) domain.CardStatus {
	return domain.CardStatus{
		CardState:                   cardState(cs.CardState),
		UniversalPinState:           domain.PinState(cs.UniversalPinState),
		GsmUmtsSubscriptionAppIndex: subscriptionIndex(cs.GsmUmtsSubscriptionAppIndex, len(apps)),
		CdmaSubscriptionAppIndex:    subscriptionIndex(cs.CdmaSubscriptionAppIndex, len(apps)),
		ImsSubscriptionAppIndex:     subscriptionIndex(cs.ImsSubscriptionAppIndex, len(apps)),
		Applications:                apps,
		PhysicalSlotIndex:           -1,
	}
}

func withSlot(out *domain.CardStatus, cs wire.CardStatusV1_2) {
	out.PhysicalSlotIndex = int32(cs.PhysicalSlotID)
	out.ATR = cs.Atr
	out.ICCID = cs.Iccid
}

func truncatedLen(n int) int {
	if n > domain.CardMaxApps {
		log.Warn("card reports too many applications, truncating",
			zap.Int("count", n), zap.Int("max", domain.CardMaxApps))
		return domain.CardMaxApps
	}
	return n
}

func app(a wire.AppStatusV1_0, perso int32) domain.AppStatus {
	return domain.AppStatus{
		Type:          domain.AppType(a.AppType),
		State:         domain.AppState(a.AppState),
		PersoSubstate: domain.PersoSubstate(perso),
		AID:           a.AidPtr,
		Label:         a.AppLabelPtr,
		PIN1Replaced:  a.Pin1Replaced != 0,
		PIN1:          domain.PinState(a.Pin1),
		PIN2:          domain.PinState(a.Pin2),
	}
}

func appsV1_0(in []wire.AppStatusV1_0) []domain.AppStatus {
	n := truncatedLen(len(in))
	out := make([]domain.AppStatus, 0, n)
	for _, a := range in[:n] {
		out = append(out, app(a, a.PersoSubstate))
	}
	return out
}

func appsV1_5(in []wire.AppStatusV1_5) []domain.AppStatus {
	n := truncatedLen(len(in))
	out := make([]domain.AppStatus, 0, n)
	for _, a := range in[:n] {
		out = append(out, app(a.AppStatusV1_0, a.PersoSubstate))
	}
	return out
}
