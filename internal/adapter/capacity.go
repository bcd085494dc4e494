package adapter

import (
	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
)

// capacity reinterprets the unsigned wire value, the invalid sentinel becomes -1
func capacity(kbps uint32) int32 {
	return int32(kbps)
}

// ConvertLinkCapacity returns the estimates in the order Primary, Secondary
// for 1.6 and a single Combined estimate for older generations
func ConvertLinkCapacity(r wire.LinkCapacity) ([]domain.LinkCapacityEstimate, bool) {
	switch lc := r.(type) {
	case wire.LceDataInfoV1_0:
		return []domain.LinkCapacityEstimate{{
			Type:         domain.LinkCapacityCombined,
			DownlinkKbps: capacity(lc.LastHopCapacityKbps),
			UplinkKbps:   domain.InvalidCapacity,
		}}, true
	case wire.LinkCapacityEstimateV1_2:
		return []domain.LinkCapacityEstimate{{
			Type:         domain.LinkCapacityCombined,
			DownlinkKbps: capacity(lc.DownlinkCapacityKbps),
			UplinkKbps:   capacity(lc.UplinkCapacityKbps),
		}}, true
	case wire.LinkCapacityEstimateV1_6:
		secondaryDown := capacity(lc.SecondaryDownlinkCapacityKbps)
		secondaryUp := capacity(lc.SecondaryUplinkCapacityKbps)
		return []domain.LinkCapacityEstimate{
			{
				Type:         domain.LinkCapacityPrimary,
				DownlinkKbps: primary(capacity(lc.DownlinkCapacityKbps), secondaryDown),
				UplinkKbps:   primary(capacity(lc.UplinkCapacityKbps), secondaryUp),
			},
			{
				Type:         domain.LinkCapacitySecondary,
				DownlinkKbps: secondaryDown,
				UplinkKbps:   secondaryUp,
			},
		}, true
	}
	unsupported(r)
	return nil, false
}

func primary(combined, secondary int32) int32 {
	if combined == domain.InvalidCapacity || secondary == domain.InvalidCapacity {
		return combined
	}
	return combined - secondary
}
