package domain

import "net/netip"

// LifetimeUnknown is used for address lifetimes the generation does not carry
const LifetimeUnknown int64 = -1

type LinkStatus int32

const (
	LinkStatusUnknown  LinkStatus = -1
	LinkStatusInactive LinkStatus = 0
	LinkStatusDormant  LinkStatus = 1
	LinkStatusActive   LinkStatus = 2
)

type ProtocolType int32

const (
	ProtocolUnknown      ProtocolType = -1
	ProtocolIP           ProtocolType = 0
	ProtocolIPv6         ProtocolType = 1
	ProtocolIPv4v6       ProtocolType = 2
	ProtocolPPP          ProtocolType = 3
	ProtocolNonIP        ProtocolType = 4
	ProtocolUnstructured ProtocolType = 5
)

type HandoverFailureMode int32

const (
	HandoverFailureModeUnknown                    HandoverFailureMode = -1
	HandoverFailureModeLegacy                     HandoverFailureMode = 0
	HandoverFailureModeDoFallback                 HandoverFailureMode = 1
	HandoverFailureModeNoFallbackRetryHandover    HandoverFailureMode = 2
	HandoverFailureModeNoFallbackRetrySetupNormal HandoverFailureMode = 3
)

type LinkAddress struct {
	Prefix          netip.Prefix
	Properties      int32
	DeprecationTime int64
	ExpirationTime  int64
}

type QosBandwidth struct {
	MaxBitrateKbps        uint32
	GuaranteedBitrateKbps uint32
}

type QosType int

const (
	QosTypeEPS QosType = 1
	QosTypeNR  QosType = 2
)

// Qos is either *EpsQos or *NrQos
type Qos interface {
	Type() QosType
}

type EpsQos struct {
	QCI      int
	Downlink QosBandwidth
	Uplink   QosBandwidth
}

func (*EpsQos) Type() QosType { return QosTypeEPS }

type NrQos struct {
	FiveQI            int
	QFI               int
	AveragingWindowMs int
	Downlink          QosBandwidth
	Uplink            QosBandwidth
}

func (*NrQos) Type() QosType { return QosTypeNR }

type PortRange struct {
	Start int
	End   int
}

// QosFilterAbsent marks tri-state filter fields the network did not set
const QosFilterAbsent = -1

type QosBearerFilter struct {
	LocalAddresses  []netip.Prefix
	RemoteAddresses []netip.Prefix
	LocalPort       *PortRange
	RemotePort      *PortRange
	Protocol        int

	// -1 when absent, zero is a valid value for all three
	TypeOfServiceMask      int
	FlowLabel              int64
	SecurityParameterIndex int64

	Direction  int
	Precedence int
}

type QosBearerSession struct {
	ID      int
	Qos     Qos
	Filters []QosBearerFilter
}

const SliceDifferentiatorNoSlice int32 = -1

type NetworkSliceInfo struct {
	SliceServiceType               int
	SliceDifferentiator            int32
	MappedHplmnSliceServiceType    int
	MappedHplmnSliceDifferentiator int32
	Status                         int
}

// TrafficDescriptor has at least one of its fields set
type TrafficDescriptor struct {
	DataNetworkName *string
	OSAppID         []byte
}

type DataCallResult struct {
	Cause               int32
	RetryDurationMillis int64
	ID                  int32
	LinkStatus          LinkStatus
	ProtocolType        ProtocolType
	InterfaceName       string

	Addresses        []LinkAddress
	DNSAddresses     []netip.Addr
	GatewayAddresses []netip.Addr
	PCSCFAddresses   []netip.Addr

	// Always both set, legacy generations copy their single MTU into both
	MTUV4 int32
	MTUV6 int32

	HandoverFailureMode HandoverFailureMode
	PDUSessionID        int32
	DefaultQos          Qos
	QosBearerSessions   []QosBearerSession
	SliceInfo           *NetworkSliceInfo
	TrafficDescriptors  []TrafficDescriptor
}
