package domain

// CardMaxApps bounds the number of applications kept per card
const CardMaxApps = 8

type CardState int32

const (
	CardStateAbsent     CardState = 0
	CardStatePresent    CardState = 1
	CardStateError      CardState = 2
	CardStateRestricted CardState = 3
)

type PinState int32

const (
	PinStateUnknown            PinState = 0
	PinStateEnabledNotVerified PinState = 1
	PinStateEnabledVerified    PinState = 2
	PinStateDisabled           PinState = 3
	PinStateEnabledBlocked     PinState = 4
	PinStateEnabledPermBlocked PinState = 5
)

type AppType int32

const (
	AppTypeUnknown AppType = 0
	AppTypeSIM     AppType = 1
	AppTypeUSIM    AppType = 2
	AppTypeRUIM    AppType = 3
	AppTypeCSIM    AppType = 4
	AppTypeISIM    AppType = 5
)

type AppState int32

const (
	AppStateUnknown           AppState = 0
	AppStateDetected          AppState = 1
	AppStatePin               AppState = 2
	AppStatePuk               AppState = 3
	AppStateSubscriptionPerso AppState = 4
	AppStateReady             AppState = 5
)

// PersoSubstate keeps the numeric personalization substate, 1.5 extended the range
type PersoSubstate int32

const (
	PersoSubstateUnknown    PersoSubstate = 0
	PersoSubstateInProgress PersoSubstate = 1
	PersoSubstateReady      PersoSubstate = 2
	PersoSubstateSimNetwork PersoSubstate = 3
)

type AppStatus struct {
	Type          AppType
	State         AppState
	PersoSubstate PersoSubstate
	AID           string
	Label         string
	PIN1Replaced  bool
	PIN1          PinState
	PIN2          PinState
}

// NoSubscriptionApp marks a subscription index that does not point to an application
const NoSubscriptionApp int32 = -1

type CardStatus struct {
	CardState         CardState
	UniversalPinState PinState

	GsmUmtsSubscriptionAppIndex int32
	CdmaSubscriptionAppIndex    int32
	ImsSubscriptionAppIndex     int32

	Applications []AppStatus

	// -1 before 1.2
	PhysicalSlotIndex int32
	ATR               string
	ICCID             string
	EID               string
}
