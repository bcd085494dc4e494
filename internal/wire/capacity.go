package wire

// LinkCapacity is implemented by every link capacity report generation
type LinkCapacity interface {
	Record
	isLinkCapacity()
}

type LceDataInfoV1_0 struct {
	LastHopCapacityKbps uint32
	ConfidenceLevel     uint8
	LceSuspended        bool
}

type LinkCapacityEstimateV1_2 struct {
	DownlinkCapacityKbps uint32
	UplinkCapacityKbps   uint32
}

// LinkCapacityEstimateV1_6 reports combined and secondary (e.g. NR of EN-DC) capacities
type LinkCapacityEstimateV1_6 struct {
	DownlinkCapacityKbps          uint32
	UplinkCapacityKbps            uint32
	SecondaryDownlinkCapacityKbps uint32
	SecondaryUplinkCapacityKbps   uint32
}

func (LceDataInfoV1_0) Introduced() Generation          { return V1_0 }
func (LinkCapacityEstimateV1_2) Introduced() Generation { return V1_2 }
func (LinkCapacityEstimateV1_6) Introduced() Generation { return V1_6 }

func (LceDataInfoV1_0) isRecord()          {}
func (LinkCapacityEstimateV1_2) isRecord() {}
func (LinkCapacityEstimateV1_6) isRecord() {}

func (LceDataInfoV1_0) isLinkCapacity()          {}
func (LinkCapacityEstimateV1_2) isLinkCapacity() {}
func (LinkCapacityEstimateV1_6) isLinkCapacity() {}
