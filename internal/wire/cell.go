package wire

type CellInfoType int32

const (
	CellInfoTypeNone    CellInfoType = 0
	CellInfoTypeGsm     CellInfoType = 1
	CellInfoTypeCdma    CellInfoType = 2
	CellInfoTypeLte     CellInfoType = 3
	CellInfoTypeWcdma   CellInfoType = 4
	CellInfoTypeTdscdma CellInfoType = 5
)

type CellConnectionStatus int32

const (
	CellConnectionNone             CellConnectionStatus = 0
	CellConnectionPrimaryServing   CellConnectionStatus = 1
	CellConnectionSecondaryServing CellConnectionStatus = 2
)

type TimeStampType int32

const (
	TimeStampUnknown TimeStampType = 0
	TimeStampAntenna TimeStampType = 1
	TimeStampModem   TimeStampType = 2
	TimeStampOEMRil  TimeStampType = 3
	TimeStampJavaRil TimeStampType = 4
)

// 1.0 identities and signal strengths

type CellIdentityGsm struct {
	Mcc   string
	Mnc   string
	Lac   int32
	Cid   int32
	Arfcn int32
	Bsic  uint8
}

type CellIdentityCdma struct {
	NetworkID     int32
	SystemID      int32
	BaseStationID int32
	Longitude     int32
	Latitude      int32
}

type CellIdentityLte struct {
	Mcc    string
	Mnc    string
	Ci     int32
	Pci    int32
	Tac    int32
	Earfcn int32
}

type CellIdentityWcdma struct {
	Mcc    string
	Mnc    string
	Lac    int32
	Cid    int32
	Psc    int32
	Uarfcn int32
}

type CellIdentityTdscdma struct {
	Mcc  string
	Mnc  string
	Lac  int32
	Cid  int32
	Cpid int32
}

type GsmSignalStrength struct {
	SignalStrength uint32
	BitErrorRate   uint32
	TimingAdvance  int32
}

type CdmaSignalStrength struct {
	Dbm  int32
	Ecio int32
}

type EvdoSignalStrength struct {
	Dbm              int32
	Ecio             int32
	SignalNoiseRatio int32
}

type LteSignalStrength struct {
	SignalStrength uint32
	Rsrp           uint32
	Rsrq           uint32
	Rssnr          int32
	Cqi            uint32
	TimingAdvance  uint32
}

type WcdmaSignalStrength struct {
	SignalStrength int32
	BitErrorRate   int32
}

type TdScdmaSignalStrength struct {
	Rscp uint32
}

type CellInfoGsm struct {
	CellIdentityGsm   CellIdentityGsm
	SignalStrengthGsm GsmSignalStrength
}

type CellInfoCdma struct {
	CellIdentityCdma   CellIdentityCdma
	SignalStrengthCdma CdmaSignalStrength
	SignalStrengthEvdo EvdoSignalStrength
}

type CellInfoLte struct {
	CellIdentityLte   CellIdentityLte
	SignalStrengthLte LteSignalStrength
}

type CellInfoWcdma struct {
	CellIdentityWcdma   CellIdentityWcdma
	SignalStrengthWcdma WcdmaSignalStrength
}

type CellInfoTdscdma struct {
	CellIdentityTdscdma   CellIdentityTdscdma
	SignalStrengthTdscdma TdScdmaSignalStrength
}

// CellInfoV1_0 carries exactly one populated list, selected by CellInfoType
type CellInfoV1_0 struct {
	CellInfoType  CellInfoType
	Registered    bool
	TimeStampType TimeStampType
	TimeStamp     uint64
	Gsm           []CellInfoGsm
	Cdma          []CellInfoCdma
	Lte           []CellInfoLte
	Wcdma         []CellInfoWcdma
	Tdscdma       []CellInfoTdscdma
}

// 1.2 adds operator names, LTE bandwidth, WCDMA RSCP/EcNo and the connection status

type OperatorInfo struct {
	AlphaLong       string
	AlphaShort      string
	OperatorNumeric string
}

type CellIdentityGsmV1_2 struct {
	CellIdentityGsm
	OperatorNames OperatorInfo
}

type CellIdentityCdmaV1_2 struct {
	CellIdentityCdma
	OperatorNames OperatorInfo
}

type CellIdentityLteV1_2 struct {
	CellIdentityLte
	OperatorNames OperatorInfo
	Bandwidth     int32
}

type CellIdentityWcdmaV1_2 struct {
	CellIdentityWcdma
	OperatorNames OperatorInfo
}

type CellIdentityTdscdmaV1_2 struct {
	CellIdentityTdscdma
	Uarfcn        int32
	OperatorNames OperatorInfo
}

type WcdmaSignalStrengthV1_2 struct {
	WcdmaSignalStrength
	Rscp uint32
	Ecno uint32
}

type TdscdmaSignalStrengthV1_2 struct {
	SignalStrength uint32
	BitErrorRate   uint32
	Rscp           uint32
}

type CellInfoGsmV1_2 struct {
	CellIdentityGsm   CellIdentityGsmV1_2
	SignalStrengthGsm GsmSignalStrength
}

type CellInfoCdmaV1_2 struct {
	CellIdentityCdma   CellIdentityCdmaV1_2
	SignalStrengthCdma CdmaSignalStrength
	SignalStrengthEvdo EvdoSignalStrength
}

type CellInfoLteV1_2 struct {
	CellIdentityLte   CellIdentityLteV1_2
	SignalStrengthLte LteSignalStrength
}

type CellInfoWcdmaV1_2 struct {
	CellIdentityWcdma   CellIdentityWcdmaV1_2
	SignalStrengthWcdma WcdmaSignalStrengthV1_2
}

type CellInfoTdscdmaV1_2 struct {
	CellIdentityTdscdma   CellIdentityTdscdmaV1_2
	SignalStrengthTdscdma TdscdmaSignalStrengthV1_2
}

type CellInfoV1_2 struct {
	CellInfoType     CellInfoType
	Registered       bool
	TimeStampType    TimeStampType
	TimeStamp        uint64
	Gsm              []CellInfoGsmV1_2
	Cdma             []CellInfoCdmaV1_2
	Lte              []CellInfoLteV1_2
	Wcdma            []CellInfoWcdmaV1_2
	Tdscdma          []CellInfoTdscdmaV1_2
	ConnectionStatus CellConnectionStatus
}

// 1.4 turns the lists into a union, adds NR and drops the timestamp

type CellIdentityNr struct {
	Mcc           string
	Mnc           string
	Nci           uint64
	Pci           uint32
	Tac           int32
	Nrarfcn       int32
	OperatorNames OperatorInfo
}

type NrSignalStrength struct {
	SsRsrp  int32
	SsRsrq  int32
	SsSinr  int32
	CsiRsrp int32
	CsiRsrq int32
	CsiSinr int32
}

type CellConfigLte struct {
	IsEndcAvailable bool
}

type CellInfoLteV1_4 struct {
	Base       CellInfoLteV1_2
	CellConfig CellConfigLte
}

type CellInfoNr struct {
	SignalStrength NrSignalStrength
	CellIdentity   CellIdentityNr
}

type RatKind uint8

const (
	RatGsm RatKind = iota + 1
	RatCdma
	RatWcdma
	RatTdscdma
	RatLte
	RatNr
)

type CellInfoRatV1_4 struct {
	Kind    RatKind
	Gsm     CellInfoGsmV1_2
	Cdma    CellInfoCdmaV1_2
	Wcdma   CellInfoWcdmaV1_2
	Tdscdma CellInfoTdscdmaV1_2
	Lte     CellInfoLteV1_4
	Nr      CellInfoNr
}

type CellInfoV1_4 struct {
	IsRegistered     bool
	ConnectionStatus CellConnectionStatus
	Info             CellInfoRatV1_4
}

// 1.5 adds additional PLMNs and bands, and brings the timestamp back

type CellIdentityGsmV1_5 struct {
	Base            CellIdentityGsmV1_2
	AdditionalPlmns []string
}

type CellIdentityWcdmaV1_5 struct {
	Base            CellIdentityWcdmaV1_2
	AdditionalPlmns []string
}

type CellIdentityTdscdmaV1_5 struct {
	Base            CellIdentityTdscdmaV1_2
	AdditionalPlmns []string
}

type CellIdentityLteV1_5 struct {
	Base            CellIdentityLteV1_2
	AdditionalPlmns []string
	Bands           []int32
}

type CellIdentityNrV1_5 struct {
	Base            CellIdentityNr
	AdditionalPlmns []string
	Bands           []int32
}

type CellInfoGsmV1_5 struct {
	CellIdentityGsm   CellIdentityGsmV1_5
	SignalStrengthGsm GsmSignalStrength
}

type CellInfoWcdmaV1_5 struct {
	CellIdentityWcdma   CellIdentityWcdmaV1_5
	SignalStrengthWcdma WcdmaSignalStrengthV1_2
}

type CellInfoTdscdmaV1_5 struct {
	CellIdentityTdscdma   CellIdentityTdscdmaV1_5
	SignalStrengthTdscdma TdscdmaSignalStrengthV1_2
}

type CellInfoLteV1_5 struct {
	CellIdentityLte   CellIdentityLteV1_5
	SignalStrengthLte LteSignalStrength
}

type CellInfoNrV1_5 struct {
	CellIdentityNr   CellIdentityNrV1_5
	SignalStrengthNr NrSignalStrength
}

type CellInfoRatV1_5 struct {
	Kind    RatKind
	Gsm     CellInfoGsmV1_5
	Cdma    CellInfoCdmaV1_2
	Wcdma   CellInfoWcdmaV1_5
	Tdscdma CellInfoTdscdmaV1_5
	Lte     CellInfoLteV1_5
	Nr      CellInfoNrV1_5
}

type CellInfoV1_5 struct {
	Registered       bool
	TimeStampType    TimeStampType
	TimeStamp        uint64
	ConnectionStatus CellConnectionStatus
	RatSpecificInfo  CellInfoRatV1_5
}

// 1.6 extends the NR signal strength with CQI reports and drops the timestamp again

type NrSignalStrengthV1_6 struct {
	Base             NrSignalStrength
	CsiCqiTableIndex uint32
	CsiCqiReport     []uint8
}

type CellInfoNrV1_6 struct {
	CellIdentityNr   CellIdentityNrV1_5
	SignalStrengthNr NrSignalStrengthV1_6
}

type CellInfoRatV1_6 struct {
	Kind    RatKind
	Gsm     CellInfoGsmV1_5
	Cdma    CellInfoCdmaV1_2
	Wcdma   CellInfoWcdmaV1_5
	Tdscdma CellInfoTdscdmaV1_5
	Lte     CellInfoLteV1_5
	Nr      CellInfoNrV1_6
}

type CellInfoV1_6 struct {
	Registered       bool
	ConnectionStatus CellConnectionStatus
	RatSpecificInfo  CellInfoRatV1_6
}

// CellInfoList is implemented by every cell info list generation
type CellInfoList interface {
	Record
	isCellInfoList()
}

type CellInfoListV1_0 struct{ Cells []CellInfoV1_0 }
type CellInfoListV1_2 struct{ Cells []CellInfoV1_2 }
type CellInfoListV1_4 struct{ Cells []CellInfoV1_4 }
type CellInfoListV1_5 struct{ Cells []CellInfoV1_5 }
type CellInfoListV1_6 struct{ Cells []CellInfoV1_6 }

func (CellInfoListV1_0) Introduced() Generation { return V1_0 }
func (CellInfoListV1_2) Introduced() Generation { return V1_2 }
func (CellInfoListV1_4) Introduced() Generation { return V1_4 }
func (CellInfoListV1_5) Introduced() Generation { return V1_5 }
func (CellInfoListV1_6) Introduced() Generation { return V1_6 }

func (CellInfoListV1_0) isRecord() {}
func (CellInfoListV1_2) isRecord() {}
func (CellInfoListV1_4) isRecord() {}
func (CellInfoListV1_5) isRecord() {}
func (CellInfoListV1_6) isRecord() {}

func (CellInfoListV1_0) isCellInfoList() {}
func (CellInfoListV1_2) isCellInfoList() {}
func (CellInfoListV1_4) isCellInfoList() {}
func (CellInfoListV1_5) isCellInfoList() {}
func (CellInfoListV1_6) isCellInfoList() {}
