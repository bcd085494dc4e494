package adapter

import (
	"net/netip"
	"testing"

	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convertDataCall(t *testing.T, r wire.DataCallResult) domain.DataCallResult {
	t.Helper()
	dc, ok := ConvertDataCallResult(r)
	require.True(t, ok)
	return dc
}

func TestLegacyMTUPopulatesBoth(t *testing.T) {
	for _, r := range []wire.DataCallResult{
		wire.SetupDataCallResultV1_0{Mtu: 1400},
		wire.SetupDataCallResultV1_4{Mtu: 1400},
	} {
		dc := convertDataCall(t, r)
		assert.Equal(t, int32(1400), dc.MTUV4)
		assert.Equal(t, int32(1400), dc.MTUV6)
	}
}

func TestSplitMTUIsPreserved(t *testing.T) {
	for _, r := range []wire.DataCallResult{
		wire.SetupDataCallResultV1_5{MtuV4: 1400, MtuV6: 1500},
		wire.SetupDataCallResultV1_6{MtuV4: 1400, MtuV6: 1500},
	} {
		dc := convertDataCall(t, r)
		assert.Equal(t, int32(1400), dc.MTUV4)
		assert.Equal(t, int32(1500), dc.MTUV6)
	}
}

func TestLegacyAndListAddressesAgree(t *testing.T) {
	legacy := convertDataCall(t, wire.SetupDataCallResultV1_0{Addresses: "10.0.0.1/32 10.0.0.2/24"})
	list := convertDataCall(t, wire.SetupDataCallResultV1_4{Addresses: []string{"10.0.0.1/32", "10.0.0.2/24"}})

	want := []netip.Prefix{netip.MustParsePrefix("10.0.0.1/32"), netip.MustParsePrefix("10.0.0.2/24")}

	require.Len(t, legacy.Addresses, 2)
	require.Len(t, list.Addresses, 2)
	for i := range want {
		assert.Equal(t, want[i], legacy.Addresses[i].Prefix)
		assert.Equal(t, want[i], list.Addresses[i].Prefix)
	}
	assert.Equal(t, legacy.Addresses, list.Addresses)
}

func TestMalformedAddressIsSkipped(t *testing.T) {
	dc := convertDataCall(t, wire.SetupDataCallResultV1_0{
		Addresses: "10.0.0.1/32 not-an-address 2001:db8::1",
		Dnses:     "8.8.8.8 bogus 1.1.1.1",
		Gateways:  "",
	})

	require.Len(t, dc.Addresses, 2)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.1/32"), dc.Addresses[0].Prefix)

	// a bare address gets a host prefix
	assert.Equal(t, netip.MustParsePrefix("2001:db8::1/128"), dc.Addresses[1].Prefix)

	assert.Equal(t, []netip.Addr{netip.MustParseAddr("8.8.8.8"), netip.MustParseAddr("1.1.1.1")}, dc.DNSAddresses)
	assert.NotNil(t, dc.GatewayAddresses)
	assert.Empty(t, dc.GatewayAddresses)
}

func TestLinkAddressMetadata(t *testing.T) {
	legacy := convertDataCall(t, wire.SetupDataCallResultV1_4{Addresses: []string{"10.0.0.1/32"}})
	assert.Equal(t, domain.LifetimeUnknown, legacy.Addresses[0].DeprecationTime)
	assert.Equal(t, domain.LifetimeUnknown, legacy.Addresses[0].ExpirationTime)

	dc := convertDataCall(t, wire.SetupDataCallResultV1_5{Addresses: []wire.LinkAddress{
		{Address: "10.0.0.1/32", Properties: 1, DeprecationTime: 100, ExpirationTime: 200},
		{Address: "garbage"},
	}})
	require.Len(t, dc.Addresses, 1)
	assert.Equal(t, domain.LinkAddress{
		Prefix:          netip.MustParsePrefix("10.0.0.1/32"),
		Properties:      1,
		DeprecationTime: 100,
		ExpirationTime:  200,
	}, dc.Addresses[0])
}

func TestProtocolTypes(t *testing.T) {
	tests := []struct {
		legacy string
		enum   wire.PdpProtocolType
		want   domain.ProtocolType
	}{
		{"IP", wire.PdpProtocolIP, domain.ProtocolIP},
		{"IPV6", wire.PdpProtocolIPV6, domain.ProtocolIPv6},
		{"IPV4V6", wire.PdpProtocolIPV4V6, domain.ProtocolIPv4v6},
		{"PPP", wire.PdpProtocolPPP, domain.ProtocolPPP},
		{"NON-IP", wire.PdpProtocolNonIP, domain.ProtocolNonIP},
		{"UNSTRUCTURED", wire.PdpProtocolUnstructured, domain.ProtocolUnstructured},
		{"X25", wire.PdpProtocolType(42), domain.ProtocolUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.legacy, func(t *testing.T) {
			assert.Equal(t, tt.want, convertDataCall(t, wire.SetupDataCallResultV1_0{Type: tt.legacy}).ProtocolType)
			assert.Equal(t, tt.want, convertDataCall(t, wire.SetupDataCallResultV1_4{Type: tt.enum}).ProtocolType)
		})
	}
}

func TestPre16DefaultsAreEmpty(t *testing.T) {
	dc := convertDataCall(t, wire.SetupDataCallResultV1_5{Cid: 3, Active: wire.DataConnActive})

	assert.Equal(t, int32(3), dc.ID)
	assert.Equal(t, domain.LinkStatusActive, dc.LinkStatus)
	assert.Equal(t, domain.HandoverFailureModeLegacy, dc.HandoverFailureMode)
	assert.Zero(t, dc.PDUSessionID)
	assert.Nil(t, dc.DefaultQos)
	assert.Empty(t, dc.QosBearerSessions)
	assert.Nil(t, dc.SliceInfo)
	assert.Empty(t, dc.TrafficDescriptors)
}

func TestQosFilterTriState(t *testing.T) {
	dc := convertDataCall(t, wire.SetupDataCallResultV1_6{
		DefaultQos: wire.Qos{Kind: wire.QosNr, Nr: wire.NrQos{FiveQi: 9, Qfi: 1}},
		QosSessions: []wire.QosSession{{
			QosSessionID: 5,
			Qos:          wire.Qos{Kind: wire.QosEps, Eps: wire.EpsQos{Qci: 8}},
			QosFilters: []wire.QosFilter{
				{
					LocalAddresses: []string{"10.0.0.1"},
					LocalPort:      wire.Some(wire.PortRange{Start: 80, End: 90}),
					Protocol:       wire.QosProtocolTCP,
				},
				{
					Tos:       wire.Some[uint8](0),
					FlowLabel: wire.Some[uint32](0),
					Spi:       wire.Some[uint32](7),
				},
			},
		}},
	})

	nr, ok := dc.DefaultQos.(*domain.NrQos)
	require.True(t, ok)
	assert.Equal(t, 9, nr.FiveQI)

	require.Len(t, dc.QosBearerSessions, 1)
	session := dc.QosBearerSessions[0]
	assert.Equal(t, 5, session.ID)
	assert.Equal(t, domain.QosTypeEPS, session.Qos.Type())
	require.Len(t, session.Filters, 2)

	absent := session.Filters[0]
	assert.Equal(t, -1, absent.TypeOfServiceMask)
	assert.Equal(t, int64(-1), absent.FlowLabel)
	assert.Equal(t, int64(-1), absent.SecurityParameterIndex)
	assert.Equal(t, &domain.PortRange{Start: 80, End: 90}, absent.LocalPort)
	assert.Nil(t, absent.RemotePort)
	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("10.0.0.1/32")}, absent.LocalAddresses)

	// zero is a valid present value
	present := session.Filters[1]
	assert.Equal(t, 0, present.TypeOfServiceMask)
	assert.Equal(t, int64(0), present.FlowLabel)
	assert.Equal(t, int64(7), present.SecurityParameterIndex)
}

func TestSliceInfo(t *testing.T) {
	valid := convertDataCall(t, wire.SetupDataCallResultV1_6{
		SliceInfo: wire.Some(wire.SliceInfo{Sst: 1, SliceDifferentiator: -1, MappedHplmnSD: 0x123}),
	})
	require.NotNil(t, valid.SliceInfo)
	assert.Equal(t, 1, valid.SliceInfo.SliceServiceType)
	assert.Equal(t, domain.SliceDifferentiatorNoSlice, valid.SliceInfo.SliceDifferentiator)
	assert.Equal(t, int32(0x123), valid.SliceInfo.MappedHplmnSliceDifferentiator)

	invalid := convertDataCall(t, wire.SetupDataCallResultV1_6{
		SliceInfo: wire.Some(wire.SliceInfo{SliceDifferentiator: 0x1000000}),
	})
	assert.Nil(t, invalid.SliceInfo)
}

func TestTrafficDescriptors(t *testing.T) {
	dc := convertDataCall(t, wire.SetupDataCallResultV1_6{TrafficDescriptors: []wire.TrafficDescriptor{
		{Dnn: wire.Some("internet")},
		{},
		{OsAppID: wire.Some(wire.OsAppID{OsAppID: []uint8{1, 2, 3}})},
	}})

	require.Len(t, dc.TrafficDescriptors, 2)
	require.NotNil(t, dc.TrafficDescriptors[0].DataNetworkName)
	assert.Equal(t, "internet", *dc.TrafficDescriptors[0].DataNetworkName)
	assert.Nil(t, dc.TrafficDescriptors[0].OSAppID)
	assert.Nil(t, dc.TrafficDescriptors[1].DataNetworkName)
	assert.Equal(t, []byte{1, 2, 3}, dc.TrafficDescriptors[1].OSAppID)
}

func TestConvertDataCallListMixesGenerations(t *testing.T) {
	dcs := ConvertDataCallList(wire.DataCallList{Results: []wire.DataCallResult{
		wire.SetupDataCallResultV1_0{Cid: 1, Mtu: 1400},
		wire.SetupDataCallResultV1_6{Cid: 2, MtuV4: 1280, MtuV6: 1500, HandoverFailureMode: 1},
	}})

	require.Len(t, dcs, 2)
	assert.Equal(t, int32(1), dcs[0].ID)
	assert.Equal(t, int32(2), dcs[1].ID)
	assert.Equal(t, domain.HandoverFailureModeDoFallback, dcs[1].HandoverFailureMode)
}
