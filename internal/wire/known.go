package wire

// KnownRecords returns one sample of every record variant. Any new variant
// must be added here, the adapter test suite converts each of them.
func KnownRecords() []Record {
	return []Record{
		Raw{Value: "sample"},

		SetupDataCallResultV1_0{Cid: 1, Type: "IP", Addresses: "10.0.0.1/32", Mtu: 1400},
		SetupDataCallResultV1_4{Cid: 1, Type: PdpProtocolIP, Addresses: []string{"10.0.0.1/32"}, Mtu: 1400},
		SetupDataCallResultV1_5{Cid: 1, Type: PdpProtocolIP, Addresses: []LinkAddress{{Address: "10.0.0.1/32"}}, MtuV4: 1400, MtuV6: 1500},
		SetupDataCallResultV1_6{Cid: 1, Type: PdpProtocolIP, Addresses: []LinkAddress{{Address: "10.0.0.1/32"}}, MtuV4: 1400, MtuV6: 1500},
		DataCallList{Results: []DataCallResult{SetupDataCallResultV1_0{Cid: 1, Type: "IP"}}},

		CardStatusV1_0{CardState: 1},
		CardStatusV1_2{CardStatusV1_0: CardStatusV1_0{CardState: 1}},
		CardStatusV1_4{CardStatusV1_2: CardStatusV1_2{CardStatusV1_0: CardStatusV1_0{CardState: 1}}},
		CardStatusV1_5{},

		CellInfoListV1_0{Cells: []CellInfoV1_0{{CellInfoType: CellInfoTypeGsm, Gsm: []CellInfoGsm{{}}}}},
		CellInfoListV1_2{Cells: []CellInfoV1_2{{CellInfoType: CellInfoTypeLte, Lte: []CellInfoLteV1_2{{}}}}},
		CellInfoListV1_4{Cells: []CellInfoV1_4{{Info: CellInfoRatV1_4{Kind: RatNr}}}},
		CellInfoListV1_5{Cells: []CellInfoV1_5{{RatSpecificInfo: CellInfoRatV1_5{Kind: RatWcdma}}}},
		CellInfoListV1_6{Cells: []CellInfoV1_6{{RatSpecificInfo: CellInfoRatV1_6{Kind: RatNr}}}},

		HardwareConfigListV1_0{Configs: []HardwareConfig{{Type: HardwareConfigSim, UUID: "sim0", Sim: []HardwareConfigSimInfo{{ModemUUID: "modem0"}}}}},
		RadioCapabilityV1_0{Raf: RafLte | RafNr},

		LceDataInfoV1_0{LastHopCapacityKbps: 1000},
		LinkCapacityEstimateV1_2{DownlinkCapacityKbps: 1000, UplinkCapacityKbps: 100},
		LinkCapacityEstimateV1_6{DownlinkCapacityKbps: 1000, UplinkCapacityKbps: 100, SecondaryDownlinkCapacityKbps: InvalidCapacity, SecondaryUplinkCapacityKbps: InvalidCapacity},
	}
}
