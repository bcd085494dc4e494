package domain

type HardwareType int32

const (
	HardwareTypeModem HardwareType = 0
	HardwareTypeSIM   HardwareType = 1
)

type HardwareState int32

const (
	HardwareStateEnabled  HardwareState = 0
	HardwareStateStandby  HardwareState = 1
	HardwareStateDisabled HardwareState = 2
)

type ModemHardware struct {
	RilModel      int32
	NetworkTypes  NetworkTypeBitmask
	MaxVoiceCalls int32
	MaxDataCalls  int32
	MaxStandby    int32
}

type SIMHardware struct {
	ModemUUID string
}

// HardwareConfig sets Modem or SIM according to Type
type HardwareConfig struct {
	Type  HardwareType
	UUID  string
	State HardwareState
	Modem *ModemHardware
	SIM   *SIMHardware
}

type RadioCapability struct {
	Session          int32
	Phase            int32
	NetworkTypes     NetworkTypeBitmask
	LogicalModemUUID string
	Status           int32
}

// InvalidCapacity marks a capacity the modem could not estimate
const InvalidCapacity int32 = -1

type LinkCapacityType int

const (
	LinkCapacityPrimary LinkCapacityType = iota
	LinkCapacitySecondary
	LinkCapacityCombined
)

func (t LinkCapacityType) String() string {
	switch t {
	case LinkCapacityPrimary:
		return "primary"
	case LinkCapacitySecondary:
		return "secondary"
	}
	return "combined"
}

type LinkCapacityEstimate struct {
	Type         LinkCapacityType
	DownlinkKbps int32
	UplinkKbps   int32
}
