package wire

// CardMaxApps is the maximum number of applications reported per card
const CardMaxApps = 8

type AppStatusV1_0 struct {
	AppType       int32
	AppState      int32
	PersoSubstate int32
	AidPtr        string
	AppLabelPtr   string
	Pin1Replaced  int32
	Pin1          int32
	Pin2          int32
}

// AppStatusV1_5 extends the personalization substates
type AppStatusV1_5 struct {
	AppStatusV1_0
	PersoSubstate int32
}

// CardStatus is implemented by every card status generation
type CardStatus interface {
	Record
	isCardStatus()
}

type CardStatusV1_0 struct {
	CardState                   int32
	UniversalPinState           int32
	GsmUmtsSubscriptionAppIndex int32
	CdmaSubscriptionAppIndex    int32
	ImsSubscriptionAppIndex     int32
	Applications                []AppStatusV1_0
}

type CardStatusV1_2 struct {
	CardStatusV1_0
	PhysicalSlotID uint32
	Atr            string
	Iccid          string
}

type CardStatusV1_4 struct {
	CardStatusV1_2
	Eid string
}

// CardStatusV1_5 replaces the embedded application list with Applications
type CardStatusV1_5 struct {
	CardStatusV1_4
	Applications []AppStatusV1_5
}

func (CardStatusV1_0) Introduced() Generation { return V1_0 }
func (CardStatusV1_2) Introduced() Generation { return V1_2 }
func (CardStatusV1_4) Introduced() Generation { return V1_4 }
func (CardStatusV1_5) Introduced() Generation { return V1_5 }

func (CardStatusV1_0) isRecord() {}
func (CardStatusV1_2) isRecord() {}
func (CardStatusV1_4) isRecord() {}
func (CardStatusV1_5) isRecord() {}

func (CardStatusV1_0) isCardStatus() {}
func (CardStatusV1_2) isCardStatus() {}
func (CardStatusV1_4) isCardStatus() {}
func (CardStatusV1_5) isCardStatus() {}
