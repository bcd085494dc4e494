package domain

type CellType int32

const (
	CellTypeUnknown CellType = 0
	CellTypeGSM     CellType = 1
	CellTypeCDMA    CellType = 2
	CellTypeLTE     CellType = 3
	CellTypeWCDMA   CellType = 4
	CellTypeTDSCDMA CellType = 5
	CellTypeNR      CellType = 6
)

type ConnectionStatus int32

const (
	ConnectionNone             ConnectionStatus = 0
	ConnectionPrimaryServing   ConnectionStatus = 1
	ConnectionSecondaryServing ConnectionStatus = 2
	ConnectionUnknown          ConnectionStatus = ConnectionStatus(Unavailable)
)

type OperatorNames struct {
	AlphaLong  string
	AlphaShort string
}

type CellGSM struct {
	MCC, MNC        string
	LAC, CID        int32
	ARFCN, BSIC     int32
	Operator        OperatorNames
	AdditionalPLMNs []string

	RSSI          int32
	BitErrorRate  int32
	TimingAdvance int32
}

type CellCDMA struct {
	NetworkID     int32
	SystemID      int32
	BasestationID int32
	Longitude     int32
	Latitude      int32
	Operator      OperatorNames

	CdmaDbm  int32
	CdmaEcio int32
	EvdoDbm  int32
	EvdoEcio int32
	EvdoSNR  int32
}

type CellWCDMA struct {
	MCC, MNC        string
	LAC, CID        int32
	PSC, UARFCN     int32
	Operator        OperatorNames
	AdditionalPLMNs []string

	RSSI         int32
	BitErrorRate int32
	RSCP         int32
	EcNo         int32
}

type CellTDSCDMA struct {
	MCC, MNC        string
	LAC, CID        int32
	CPID, UARFCN    int32
	Operator        OperatorNames
	AdditionalPLMNs []string

	RSSI         int32
	BitErrorRate int32
	RSCP         int32
}

type CellLTE struct {
	MCC, MNC        string
	CI, PCI, TAC    int32
	EARFCN          int32
	BandwidthKHz    int32
	Bands           []int32
	Operator        OperatorNames
	AdditionalPLMNs []string
	EndcAvailable   bool

	RSSI          int32
	RSRP          int32
	RSRQ          int32
	RSSNR         int32
	CQI           int32
	TimingAdvance int32
}

type CellNR struct {
	MCC, MNC        string
	NCI             int64
	PCI, TAC        int32
	NRARFCN         int32
	Bands           []int32
	Operator        OperatorNames
	AdditionalPLMNs []string

	SsRsrp           int32
	SsRsrq           int32
	SsSinr           int32
	CsiRsrp          int32
	CsiRsrq          int32
	CsiSinr          int32
	CsiCqiTableIndex int32
	CsiCqiReport     []int32
}

// CellInfo has exactly the field matching Type set
type CellInfo struct {
	Type             CellType
	Registered       bool
	ConnectionStatus ConnectionStatus

	// zero when the generation does not report a timestamp
	TimeStampType int32
	TimeStamp     uint64

	GSM     *CellGSM
	CDMA    *CellCDMA
	WCDMA   *CellWCDMA
	TDSCDMA *CellTDSCDMA
	LTE     *CellLTE
	NR      *CellNR
}
