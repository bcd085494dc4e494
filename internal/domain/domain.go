// Package domain holds the generation independent representation of
// everything the radio reports.
package domain

import "math"

const (
	// Unavailable marks an int32 value the modem did not report
	Unavailable int32 = math.MaxInt32
	// UnavailableLong marks an int64 value the modem did not report
	UnavailableLong int64 = math.MaxInt64
)

// NetworkTypeBitmask has bit (n-1) set for radio technology n
type NetworkTypeBitmask uint32

const (
	NetworkTypeBitmaskGPRS NetworkTypeBitmask = 1 << iota
	NetworkTypeBitmaskEDGE
	NetworkTypeBitmaskUMTS
	NetworkTypeBitmaskIS95A
	NetworkTypeBitmaskIS95B
	NetworkTypeBitmask1xRTT
	NetworkTypeBitmaskEVDO0
	NetworkTypeBitmaskEVDOA
	NetworkTypeBitmaskHSDPA
	NetworkTypeBitmaskHSUPA
	NetworkTypeBitmaskHSPA
	NetworkTypeBitmaskEVDOB
	NetworkTypeBitmaskEHRPD
	NetworkTypeBitmaskLTE
	NetworkTypeBitmaskHSPAP
	NetworkTypeBitmaskGSM
	NetworkTypeBitmaskTDSCDMA
	NetworkTypeBitmaskIWLAN
	NetworkTypeBitmaskLTECA
	NetworkTypeBitmaskNR

	// NetworkTypeBitmaskAll covers every defined technology
	NetworkTypeBitmaskAll = NetworkTypeBitmaskNR<<1 - 1
)

func (m NetworkTypeBitmask) Has(t NetworkTypeBitmask) bool {
	return m&t == t
}
