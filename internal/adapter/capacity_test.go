package adapter

import (
	"testing"

	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkCapacityV1_6(t *testing.T) {
	tests := []struct {
		name               string
		in                 wire.LinkCapacityEstimateV1_6
		primary, secondary domain.LinkCapacityEstimate
	}{
		{
			name:      "both valid",
			in:        wire.LinkCapacityEstimateV1_6{DownlinkCapacityKbps: 100, UplinkCapacityKbps: 50, SecondaryDownlinkCapacityKbps: 40, SecondaryUplinkCapacityKbps: 10},
			primary:   domain.LinkCapacityEstimate{Type: domain.LinkCapacityPrimary, DownlinkKbps: 60, UplinkKbps: 40},
			secondary: domain.LinkCapacityEstimate{Type: domain.LinkCapacitySecondary, DownlinkKbps: 40, UplinkKbps: 10},
		},
		{
			name:      "secondary invalid",
			in:        wire.LinkCapacityEstimateV1_6{DownlinkCapacityKbps: 100, UplinkCapacityKbps: 50, SecondaryDownlinkCapacityKbps: wire.InvalidCapacity, SecondaryUplinkCapacityKbps: wire.InvalidCapacity},
			primary:   domain.LinkCapacityEstimate{Type: domain.LinkCapacityPrimary, DownlinkKbps: 100, UplinkKbps: 50},
			secondary: domain.LinkCapacityEstimate{Type: domain.LinkCapacitySecondary, DownlinkKbps: domain.InvalidCapacity, UplinkKbps: domain.InvalidCapacity},
		},
		{
			name:      "combined invalid",
			in:        wire.LinkCapacityEstimateV1_6{DownlinkCapacityKbps: wire.InvalidCapacity, UplinkCapacityKbps: 50, SecondaryDownlinkCapacityKbps: 40, SecondaryUplinkCapacityKbps: wire.InvalidCapacity},
			primary:   domain.LinkCapacityEstimate{Type: domain.LinkCapacityPrimary, DownlinkKbps: domain.InvalidCapacity, UplinkKbps: 50},
			secondary: domain.LinkCapacityEstimate{Type: domain.LinkCapacitySecondary, DownlinkKbps: 40, UplinkKbps: domain.InvalidCapacity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := ConvertLinkCapacity(tt.in)
			require.True(t, ok)
			assert.Equal(t, []domain.LinkCapacityEstimate{tt.primary, tt.secondary}, out)
		})
	}
}

func TestLinkCapacityLegacy(t *testing.T) {
	out, ok := ConvertLinkCapacity(wire.LinkCapacityEstimateV1_2{DownlinkCapacityKbps: 100, UplinkCapacityKbps: 20})
	require.True(t, ok)
	assert.Equal(t, []domain.LinkCapacityEstimate{{Type: domain.LinkCapacityCombined, DownlinkKbps: 100, UplinkKbps: 20}}, out)

	out, ok = ConvertLinkCapacity(wire.LceDataInfoV1_0{LastHopCapacityKbps: 300})
	require.True(t, ok)
	assert.Equal(t, []domain.LinkCapacityEstimate{{Type: domain.LinkCapacityCombined, DownlinkKbps: 300, UplinkKbps: domain.InvalidCapacity}}, out)
}
