package wire

type PdpProtocolType int32

const (
	PdpProtocolUnknown      PdpProtocolType = -1
	PdpProtocolIP           PdpProtocolType = 0
	PdpProtocolIPV6         PdpProtocolType = 1
	PdpProtocolIPV4V6       PdpProtocolType = 2
	PdpProtocolPPP          PdpProtocolType = 3
	PdpProtocolNonIP        PdpProtocolType = 4
	PdpProtocolUnstructured PdpProtocolType = 5
)

type DataConnActiveStatus int32

const (
	DataConnInactive DataConnActiveStatus = 0
	DataConnDormant  DataConnActiveStatus = 1
	DataConnActive   DataConnActiveStatus = 2
)

// DataCallResult is implemented by every SetupDataCallResult generation
type DataCallResult interface {
	Record
	isDataCallResult()
}

// SetupDataCallResultV1_0 uses space separated strings for all address lists
// and a protocol type string. Generations 1.1 to 1.3 reuse it.
type SetupDataCallResultV1_0 struct {
	Status             int32
	SuggestedRetryTime int32
	Cid                int32
	Active             int32
	Type               string
	Ifname             string
	Addresses          string
	Dnses              string
	Gateways           string
	Pcscf              string
	Mtu                int32
}

type SetupDataCallResultV1_4 struct {
	Cause              int32
	SuggestedRetryTime int32
	Cid                int32
	Active             DataConnActiveStatus
	Type               PdpProtocolType
	Ifname             string
	Addresses          []string
	Dnses              []string
	Gateways           []string
	Pcscf              []string
	Mtu                int32
}

type LinkAddress struct {
	Address         string
	Properties      int32
	DeprecationTime uint64
	ExpirationTime  uint64
}

// SetupDataCallResultV1_5 splits the MTU and carries typed link addresses
type SetupDataCallResultV1_5 struct {
	Cause              int32
	SuggestedRetryTime int32
	Cid                int32
	Active             DataConnActiveStatus
	Type               PdpProtocolType
	Ifname             string
	Addresses          []LinkAddress
	Dnses              []string
	Gateways           []string
	Pcscf              []string
	MtuV4              int32
	MtuV6              int32
}

type QosBandwidth struct {
	MaxBitrateKbps        uint32
	GuaranteedBitrateKbps uint32
}

type EpsQos struct {
	Qci      uint16
	Downlink QosBandwidth
	Uplink   QosBandwidth
}

type NrQos struct {
	FiveQi            uint16
	Downlink          QosBandwidth
	Uplink            QosBandwidth
	Qfi               uint8
	AveragingWindowMs uint16
}

type QosKind uint8

const (
	QosNoinit QosKind = iota
	QosEps
	QosNr
)

// Qos is the safe_union {noinit, eps, nr}
type Qos struct {
	Kind QosKind
	Eps  EpsQos
	Nr   NrQos
}

type PortRange struct {
	Start int32
	End   int32
}

type QosProtocol int8

const (
	QosProtocolUnspecified QosProtocol = -1
	QosProtocolTCP         QosProtocol = 6
	QosProtocolUDP         QosProtocol = 17
	QosProtocolESP         QosProtocol = 50
	QosProtocolAH          QosProtocol = 51
)

type QosFilterDirection int8

const (
	QosFilterDownlink      QosFilterDirection = 0
	QosFilterUplink        QosFilterDirection = 1
	QosFilterBidirectional QosFilterDirection = 2
)

type QosFilter struct {
	LocalAddresses  []string
	RemoteAddresses []string
	LocalPort       Optional[PortRange]
	RemotePort      Optional[PortRange]
	Protocol        QosProtocol
	Tos             Optional[uint8]
	FlowLabel       Optional[uint32]
	Spi             Optional[uint32]
	Direction       QosFilterDirection
	Precedence      int32
}

type QosSession struct {
	QosSessionID int32
	Qos          Qos
	QosFilters   []QosFilter
}

type SliceInfo struct {
	Sst                 int8
	SliceDifferentiator int32
	MappedHplmnSst      int8
	MappedHplmnSD       int32
	Status              int8
}

type OsAppID struct {
	OsAppID []uint8
}

type TrafficDescriptor struct {
	Dnn     Optional[string]
	OsAppID Optional[OsAppID]
}

type SetupDataCallResultV1_6 struct {
	Cause               int32
	SuggestedRetryTime  int64
	Cid                 int32
	Active              DataConnActiveStatus
	Type                PdpProtocolType
	Ifname              string
	Addresses           []LinkAddress
	Dnses               []string
	Gateways            []string
	Pcscf               []string
	MtuV4               int32
	MtuV6               int32
	DefaultQos          Qos
	QosSessions         []QosSession
	HandoverFailureMode int8
	PduSessionID        int32
	SliceInfo           Optional[SliceInfo]
	TrafficDescriptors  []TrafficDescriptor
}

// DataCallList is the payload of the data call list changed indication
type DataCallList struct {
	Results []DataCallResult
}

func (SetupDataCallResultV1_0) Introduced() Generation { return V1_0 }
func (SetupDataCallResultV1_4) Introduced() Generation { return V1_4 }
func (SetupDataCallResultV1_5) Introduced() Generation { return V1_5 }
func (SetupDataCallResultV1_6) Introduced() Generation { return V1_6 }
func (DataCallList) Introduced() Generation            { return V1_0 }

func (SetupDataCallResultV1_0) isRecord() {}
func (SetupDataCallResultV1_4) isRecord() {}
func (SetupDataCallResultV1_5) isRecord() {}
func (SetupDataCallResultV1_6) isRecord() {}
func (DataCallList) isRecord()            {}

func (SetupDataCallResultV1_0) isDataCallResult() {}
func (SetupDataCallResultV1_4) isDataCallResult() {}
func (SetupDataCallResultV1_5) isDataCallResult() {}
func (SetupDataCallResultV1_6) isDataCallResult() {}
