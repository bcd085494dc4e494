package adapter

import (
	"fmt"
	"testing"

	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// futureRecord stands in for a shape added by a newer generation
type futureRecord struct {
	wire.Raw
}

func TestMain(m *testing.M) {
	log.Init(true)
	m.Run()
}

func TestConvertHandlesEveryKnownRecord(t *testing.T) {
	for _, rec := range wire.KnownRecords() {
		t.Run(fmt.Sprintf("%T", rec), func(t *testing.T) {
			out := Convert(rec)
			require.NotNil(t, out)

			switch rec.(type) {
			case wire.DataCallResult:
				assert.IsType(t, domain.DataCallResult{}, out)
			case wire.DataCallList:
				assert.IsType(t, []domain.DataCallResult{}, out)
			case wire.CardStatus:
				assert.IsType(t, domain.CardStatus{}, out)
			case wire.CellInfoList:
				assert.IsType(t, []domain.CellInfo{}, out)
			case wire.HardwareConfigListV1_0:
				assert.IsType(t, []domain.HardwareConfig{}, out)
			case wire.RadioCapabilityV1_0:
				assert.IsType(t, domain.RadioCapability{}, out)
			case wire.LinkCapacity:
				assert.IsType(t, []domain.LinkCapacityEstimate{}, out)
			}
		})
	}
}

func TestConvertUnknownShapeIsNil(t *testing.T) {
	assert.Nil(t, Convert(futureRecord{}))
	assert.Nil(t, Convert(nil))
}

func TestConvertRawPassesValue(t *testing.T) {
	assert.Equal(t, "+CMTI: \"SM\",3", Convert(wire.Raw{Value: "+CMTI: \"SM\",3"}))
}

func TestConvertEmptyListsAreNotNil(t *testing.T) {
	dcs := Convert(wire.DataCallList{})
	require.NotNil(t, dcs)
	assert.Empty(t, dcs)

	cells := Convert(wire.CellInfoListV1_6{})
	require.NotNil(t, cells)
	assert.Empty(t, cells)
}

func TestRAFRoundTrip(t *testing.T) {
	for bit := 0; bit < 20; bit++ {
		mask := domain.NetworkTypeBitmask(1) << bit
		raf := uint32(1) << (bit + 1)

		assert.Equal(t, raf, EncodeRAF(mask), "encode bit %d", bit)
		assert.Equal(t, mask, DecodeRAF(EncodeRAF(mask)), "decode(encode) bit %d", bit)
		assert.Equal(t, raf, EncodeRAF(DecodeRAF(raf)), "encode(decode) bit %d", bit)
	}
}

func TestRAFKnownTechnologies(t *testing.T) {
	assert.Equal(t, wire.RafLte, EncodeRAF(domain.NetworkTypeBitmaskLTE))
	assert.Equal(t, wire.RafNr, EncodeRAF(domain.NetworkTypeBitmaskNR))
	assert.Equal(t, wire.RafGprs, EncodeRAF(domain.NetworkTypeBitmaskGPRS))
	assert.Equal(t, domain.NetworkTypeBitmaskGSM|domain.NetworkTypeBitmaskUMTS, DecodeRAF(wire.RafGsm|wire.RafUmts))

	// the unknown bit has no network type and undefined bits are dropped
	assert.Zero(t, DecodeRAF(wire.RafUnknown))
	assert.Zero(t, DecodeRAF(1<<25))
	assert.Zero(t, EncodeRAF(1<<25))
}

func TestConvertRadioCapability(t *testing.T) {
	rc := ConvertRadioCapability(wire.RadioCapabilityV1_0{
		Session:          7,
		Phase:            wire.RadioCapabilityPhaseFinish,
		Raf:              wire.RafLte | wire.RafNr,
		LogicalModemUUID: "modem0",
	})

	assert.Equal(t, int32(7), rc.Session)
	assert.Equal(t, int32(4), rc.Phase)
	assert.True(t, rc.NetworkTypes.Has(domain.NetworkTypeBitmaskLTE))
	assert.True(t, rc.NetworkTypes.Has(domain.NetworkTypeBitmaskNR))
	assert.False(t, rc.NetworkTypes.Has(domain.NetworkTypeBitmaskGSM))
	assert.Equal(t, "modem0", rc.LogicalModemUUID)
}

func TestConvertHardwareConfigs(t *testing.T) {
	configs := ConvertHardwareConfigs(wire.HardwareConfigListV1_0{Configs: []wire.HardwareConfig{
		{Type: wire.HardwareConfigModem, UUID: "modem0", Modem: []wire.HardwareConfigModemInfo{{Rat: wire.RafLte, MaxData: 2}}},
		{Type: wire.HardwareConfigSim, UUID: "sim0", Sim: []wire.HardwareConfigSimInfo{{ModemUUID: "modem0"}}},
		// missing modem info
		{Type: wire.HardwareConfigModem, UUID: "broken"},
	}})

	require.Len(t, configs, 2)
	require.NotNil(t, configs[0].Modem)
	assert.Nil(t, configs[0].SIM)
	assert.Equal(t, domain.NetworkTypeBitmaskLTE, configs[0].Modem.NetworkTypes)
	assert.Equal(t, int32(2), configs[0].Modem.MaxDataCalls)

	require.NotNil(t, configs[1].SIM)
	assert.Equal(t, "modem0", configs[1].SIM.ModemUUID)
}
