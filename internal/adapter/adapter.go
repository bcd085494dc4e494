// Package adapter converts the records of every radio HAL generation into the
// canonical domain types. All functions are pure apart from logging the
// elements they have to drop.
package adapter

import (
	"fmt"

	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

// Convert maps any record onto its canonical representation:
//
//	wire.Raw                   the raw value itself
//	wire.DataCallResult        domain.DataCallResult
//	wire.DataCallList          []domain.DataCallResult
//	wire.CardStatus            domain.CardStatus
//	wire.CellInfoList          []domain.CellInfo
//	wire.HardwareConfigListV1_0 []domain.HardwareConfig
//	wire.RadioCapabilityV1_0   domain.RadioCapability
//	wire.LinkCapacity          []domain.LinkCapacityEstimate
//
// Unknown shapes are logged and yield nil.
func Convert(rec wire.Record) any {
	switch r := rec.(type) {
	case wire.Raw:
		return r.Value
	case wire.DataCallResult:
		if dc, ok := ConvertDataCallResult(r); ok {
			return dc
		}
	case wire.DataCallList:
		return ConvertDataCallList(r)
	case wire.CardStatus:
		if cs, ok := ConvertCardStatus(r); ok {
			return cs
		}
	case wire.CellInfoList:
		if cells, ok := ConvertCellInfoList(r); ok {
			return cells
		}
	case wire.HardwareConfigListV1_0:
		return ConvertHardwareConfigs(r)
	case wire.RadioCapabilityV1_0:
		return ConvertRadioCapability(r)
	case wire.LinkCapacity:
		if lce, ok := ConvertLinkCapacity(r); ok {
			return lce
		}
	default:
		unsupported(rec)
	}
	return nil
}

func unsupported(rec any) {
	log.Warn("unsupported record shape, dropping it", zap.String("type", fmt.Sprintf("%T", rec)))
}

// EncodeRAF turns a network type bitmask into the radio access family of the wire
func EncodeRAF(mask domain.NetworkTypeBitmask) uint32 {
	return uint32(mask&domain.NetworkTypeBitmaskAll) << 1
}

// DecodeRAF is the inverse of EncodeRAF, undefined bits are dropped
func DecodeRAF(raf uint32) domain.NetworkTypeBitmask {
	return domain.NetworkTypeBitmask(raf>>1) & domain.NetworkTypeBitmaskAll
}
