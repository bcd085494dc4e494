package wire

type HardwareConfigType int32

const (
	HardwareConfigModem HardwareConfigType = 0
	HardwareConfigSim   HardwareConfigType = 1
)

type HardwareConfigState int32

const (
	HardwareConfigEnabled  HardwareConfigState = 0
	HardwareConfigStandby  HardwareConfigState = 1
	HardwareConfigDisabled HardwareConfigState = 2
)

// RadioAccessFamily bits are 1 << RadioTechnology
const (
	RafUnknown uint32 = 1 << 0
	RafGprs    uint32 = 1 << 1
	RafEdge    uint32 = 1 << 2
	RafUmts    uint32 = 1 << 3
	RafIs95a   uint32 = 1 << 4
	RafIs95b   uint32 = 1 << 5
	RafOneXRtt uint32 = 1 << 6
	RafEvdo0   uint32 = 1 << 7
	RafEvdoA   uint32 = 1 << 8
	RafHsdpa   uint32 = 1 << 9
	RafHsupa   uint32 = 1 << 10
	RafHspa    uint32 = 1 << 11
	RafEvdoB   uint32 = 1 << 12
	RafEhrpd   uint32 = 1 << 13
	RafLte     uint32 = 1 << 14
	RafHspap   uint32 = 1 << 15
	RafGsm     uint32 = 1 << 16
	RafTdScdma uint32 = 1 << 17
	RafIwlan   uint32 = 1 << 18
	RafLteCa   uint32 = 1 << 19
	RafNr      uint32 = 1 << 20
)

type HardwareConfigModemInfo struct {
	RilModel   int32
	Rat        uint32
	MaxVoice   int32
	MaxData    int32
	MaxStandby int32
}

type HardwareConfigSimInfo struct {
	ModemUUID string
}

// HardwareConfig fills Modem or Sim depending on Type, the other list stays empty
type HardwareConfig struct {
	Type  HardwareConfigType
	UUID  string
	State HardwareConfigState
	Modem []HardwareConfigModemInfo
	Sim   []HardwareConfigSimInfo
}

type HardwareConfigListV1_0 struct {
	Configs []HardwareConfig
}

type RadioCapabilityPhase int32

const (
	RadioCapabilityPhaseConfigured RadioCapabilityPhase = 0
	RadioCapabilityPhaseStart      RadioCapabilityPhase = 1
	RadioCapabilityPhaseApply      RadioCapabilityPhase = 2
	RadioCapabilityPhaseUnsolRsp   RadioCapabilityPhase = 3
	RadioCapabilityPhaseFinish     RadioCapabilityPhase = 4
)

type RadioCapabilityV1_0 struct {
	Session          int32
	Phase            RadioCapabilityPhase
	Raf              uint32
	LogicalModemUUID string
	Status           int32
}

func (HardwareConfigListV1_0) Introduced() Generation { return V1_0 }
func (RadioCapabilityV1_0) Introduced() Generation    { return V1_0 }

func (HardwareConfigListV1_0) isRecord() {}
func (RadioCapabilityV1_0) isRecord()    {}
