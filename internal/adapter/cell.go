package adapter

import (
	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

const (
	unavailable = domain.Unavailable

	// asu value reported for an unknown rscp or ecno
	unknownAsu = 255
)

func inRange(v, lo, hi int32) int32 {
	if v < lo || v > hi {
		return unavailable
	}
	return v
}

// flip negates the positive magnitudes some generations report
func flip(v int32) int32 {
	if v == unavailable {
		return v
	}
	return -v
}

func rssiFromAsu(asu int32) int32 {
	if asu < 0 || asu > 31 {
		return unavailable
	}
	return -113 + 2*asu
}

func rscpFromAsu(asu int32) int32 {
	if asu < 0 || asu > 96 {
		return unavailable
	}
	return asu - 120
}

func ecnoFromAsu(asu int32) int32 {
	if asu < 0 || asu > 49 {
		return unavailable
	}
	return -24 + asu/2
}

// tenthsToDb floors a value given in 0.1 dB
func tenthsToDb(v int32) int32 {
	if v == unavailable {
		return v
	}
	if v < 0 && v%10 != 0 {
		return v/10 - 1
	}
	return v / 10
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func mcc(s string) string {
	if len(s) != 3 || !allDigits(s) {
		return ""
	}
	return s
}

func mnc(s string) string {
	if len(s) < 2 || len(s) > 3 || !allDigits(s) {
		return ""
	}
	return s
}

func plmns(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if (len(p) == 5 || len(p) == 6) && allDigits(p) {
			out = append(out, p)
		}
	}
	return out
}

func operator(o wire.OperatorInfo) domain.OperatorNames {
	return domain.OperatorNames{AlphaLong: o.AlphaLong, AlphaShort: o.AlphaShort}
}

// ConvertCellInfoList returns the cells it could convert, never nil for a known generation
func ConvertCellInfoList(r wire.CellInfoList) ([]domain.CellInfo, bool) {
	switch l := r.(type) {
	case wire.CellInfoListV1_0:
		return convertCells(l.Cells, cellV1_0), true
	case wire.CellInfoListV1_2:
		return convertCells(l.Cells, cellV1_2), true
	case wire.CellInfoListV1_4:
		return convertCells(l.Cells, cellV1_4), true
	case wire.CellInfoListV1_5:
		return convertCells(l.Cells, cellV1_5), true
	case wire.CellInfoListV1_6:
		return convertCells(l.Cells, cellV1_6), true
	}
	unsupported(r)
	return nil, false
}

func convertCells[T any](cells []T, conv func(T) (domain.CellInfo, bool)) []domain.CellInfo {
	out := make([]domain.CellInfo, 0, len(cells))
	for _, c := range cells {
		if ci, ok := conv(c); ok {
			out = append(out, ci)
		}
	}
	return out
}

func skipCell(kind any) (domain.CellInfo, bool) {
	log.Warn("skipping cell without info for its type", zap.Any("type", kind))
	return domain.CellInfo{}, false
}

func first[T any](l []T) (T, bool) {
	var zero T
	if len(l) == 0 {
		return zero, false
	}
	return l[0], true
}

func cellV1_0(c wire.CellInfoV1_0) (domain.CellInfo, bool) {
	out := domain.CellInfo{
		Registered:       c.Registered,
		ConnectionStatus: domain.ConnectionUnknown,
		TimeStampType:    int32(c.TimeStampType),
		TimeStamp:        c.TimeStamp,
	}

	switch c.CellInfoType {
	case wire.CellInfoTypeGsm:
		if g, ok := first(c.Gsm); ok {
			out.Type = domain.CellTypeGSM
			out.GSM = gsm(wire.CellInfoGsmV1_2{
				CellIdentityGsm:   wire.CellIdentityGsmV1_2{CellIdentityGsm: g.CellIdentityGsm},
				SignalStrengthGsm: g.SignalStrengthGsm,
			}, nil)
			return out, true
		}
	case wire.CellInfoTypeCdma:
		if cd, ok := first(c.Cdma); ok {
			out.Type = domain.CellTypeCDMA
			out.CDMA = cdma(wire.CellInfoCdmaV1_2{
				CellIdentityCdma:   wire.CellIdentityCdmaV1_2{CellIdentityCdma: cd.CellIdentityCdma},
				SignalStrengthCdma: cd.SignalStrengthCdma,
				SignalStrengthEvdo: cd.SignalStrengthEvdo,
			})
			return out, true
		}
	case wire.CellInfoTypeLte:
		if l, ok := first(c.Lte); ok {
			out.Type = domain.CellTypeLTE
			out.LTE = lte(wire.CellInfoLteV1_2{
				CellIdentityLte:   wire.CellIdentityLteV1_2{CellIdentityLte: l.CellIdentityLte},
				SignalStrengthLte: l.SignalStrengthLte,
			}, nil, nil, false)
			return out, true
		}
	case wire.CellInfoTypeWcdma:
		if w, ok := first(c.Wcdma); ok {
			out.Type = domain.CellTypeWCDMA
			out.WCDMA = wcdma(wire.CellInfoWcdmaV1_2{
				CellIdentityWcdma: wire.CellIdentityWcdmaV1_2{CellIdentityWcdma: w.CellIdentityWcdma},
				SignalStrengthWcdma: wire.WcdmaSignalStrengthV1_2{
					WcdmaSignalStrength: w.SignalStrengthWcdma,
					Rscp:                unknownAsu,
					Ecno:                unknownAsu,
				},
			}, nil)
			return out, true
		}
	case wire.CellInfoTypeTdscdma:
		if t, ok := first(c.Tdscdma); ok {
			out.Type = domain.CellTypeTDSCDMA
			out.TDSCDMA = tdscdmaIdentity(wire.CellIdentityTdscdmaV1_2{
				CellIdentityTdscdma: t.CellIdentityTdscdma,
				Uarfcn:              unavailable,
			}, nil)
			out.TDSCDMA.RSSI = unavailable
			out.TDSCDMA.BitErrorRate = unavailable
			out.TDSCDMA.RSCP = inRange(flip(int32(t.SignalStrengthTdscdma.Rscp)), -120, -24)
			return out, true
		}
	}
	return skipCell(c.CellInfoType)
}

func cellV1_2(c wire.CellInfoV1_2) (domain.CellInfo, bool) {
	out := domain.CellInfo{
		Registered:       c.Registered,
		ConnectionStatus: domain.ConnectionStatus(c.ConnectionStatus),
		TimeStampType:    int32(c.TimeStampType),
		TimeStamp:        c.TimeStamp,
	}

	switch c.CellInfoType {
	case wire.CellInfoTypeGsm:
		if g, ok := first(c.Gsm); ok {
			out.Type = domain.CellTypeGSM
			out.GSM = gsm(g, nil)
			return out, true
		}
	case wire.CellInfoTypeCdma:
		if cd, ok := first(c.Cdma); ok {
			out.Type = domain.CellTypeCDMA
			out.CDMA = cdma(cd)
			return out, true
		}
	case wire.CellInfoTypeLte:
		if l, ok := first(c.Lte); ok {
			out.Type = domain.CellTypeLTE
			out.LTE = lte(l, nil, nil, false)
			return out, true
		}
	case wire.CellInfoTypeWcdma:
		if w, ok := first(c.Wcdma); ok {
			out.Type = domain.CellTypeWCDMA
			out.WCDMA = wcdma(w, nil)
			return out, true
		}
	case wire.CellInfoTypeTdscdma:
		if t, ok := first(c.Tdscdma); ok {
			out.Type = domain.CellTypeTDSCDMA
			out.TDSCDMA = tdscdma(t, nil)
			return out, true
		}
	}
	return skipCell(c.CellInfoType)
}

func cellV1_4(c wire.CellInfoV1_4) (domain.CellInfo, bool) {
	out := domain.CellInfo{
		Registered:       c.IsRegistered,
		ConnectionStatus: domain.ConnectionStatus(c.ConnectionStatus),
	}

	info := c.Info
	switch info.Kind {
	case wire.RatGsm:
		out.Type, out.GSM = domain.CellTypeGSM, gsm(info.Gsm, nil)
	case wire.RatCdma:
		out.Type, out.CDMA = domain.CellTypeCDMA, cdma(info.Cdma)
	case wire.RatWcdma:
		out.Type, out.WCDMA = domain.CellTypeWCDMA, wcdma(info.Wcdma, nil)
	case wire.RatTdscdma:
		out.Type, out.TDSCDMA = domain.CellTypeTDSCDMA, tdscdma(info.Tdscdma, nil)
	case wire.RatLte:
		out.Type, out.LTE = domain.CellTypeLTE, lte(info.Lte.Base, nil, nil, info.Lte.CellConfig.IsEndcAvailable)
	case wire.RatNr:
		out.Type, out.NR = domain.CellTypeNR, nr(info.Nr.CellIdentity, nil, nil, info.Nr.SignalStrength)
	default:
		return skipCell(info.Kind)
	}
	return out, true
}

func cellV1_5(c wire.CellInfoV1_5) (domain.CellInfo, bool) {
	out := domain.CellInfo{
		Registered:       c.Registered,
		ConnectionStatus: domain.ConnectionStatus(c.ConnectionStatus),
		TimeStampType:    int32(c.TimeStampType),
		TimeStamp:        c.TimeStamp,
	}

	info := c.RatSpecificInfo
	switch info.Kind {
	case wire.RatNr:
		id := info.Nr.CellIdentityNr
		out.Type, out.NR = domain.CellTypeNR, nr(id.Base, id.AdditionalPlmns, id.Bands, info.Nr.SignalStrengthNr)
	default:
		if !ratV1_5(&out, info.Kind, info.Gsm, info.Cdma, info.Wcdma, info.Tdscdma, info.Lte) {
			return skipCell(info.Kind)
		}
	}
	return out, true
}

func cellV1_6(c wire.CellInfoV1_6) (domain.CellInfo, bool) {
	out := domain.CellInfo{
		Registered:       c.Registered,
		ConnectionStatus: domain.ConnectionStatus(c.ConnectionStatus),
	}

	info := c.RatSpecificInfo
	switch info.Kind {
	case wire.RatNr:
		id := info.Nr.CellIdentityNr
		ss := info.Nr.SignalStrengthNr
		out.Type, out.NR = domain.CellTypeNR, nr(id.Base, id.AdditionalPlmns, id.Bands, ss.Base)
		out.NR.CsiCqiTableIndex = inRange(int32(ss.CsiCqiTableIndex), 1, 3)
		out.NR.CsiCqiReport = make([]int32, 0, len(ss.CsiCqiReport))
		for _, cqi := range ss.CsiCqiReport {
			if cqi <= 15 {
				out.NR.CsiCqiReport = append(out.NR.CsiCqiReport, int32(cqi))
			}
		}
	default:
		if !ratV1_5(&out, info.Kind, info.Gsm, info.Cdma, info.Wcdma, info.Tdscdma, info.Lte) {
			return skipCell(info.Kind)
		}
	}
	return out, true
}

// ratV1_5 fills the non NR technologies shared by 1.5 and 1.6
func ratV1_5(out *domain.CellInfo, kind wire.RatKind, g wire.CellInfoGsmV1_5, cd wire.CellInfoCdmaV1_2,
	w wire.CellInfoWcdmaV1_5, t wire.CellInfoTdscdmaV1_5, l wire.CellInfoLteV1_5) bool {
	switch kind {
	case wire.RatGsm:
		out.Type = domain.CellTypeGSM
		out.GSM = gsm(wire.CellInfoGsmV1_2{
			CellIdentityGsm:   g.CellIdentityGsm.Base,
			SignalStrengthGsm: g.SignalStrengthGsm,
		}, g.CellIdentityGsm.AdditionalPlmns)
	case wire.RatCdma:
		out.Type = domain.CellTypeCDMA
		out.CDMA = cdma(cd)
	case wire.RatWcdma:
		out.Type = domain.CellTypeWCDMA
		out.WCDMA = wcdma(wire.CellInfoWcdmaV1_2{
			CellIdentityWcdma:   w.CellIdentityWcdma.Base,
			SignalStrengthWcdma: w.SignalStrengthWcdma,
		}, w.CellIdentityWcdma.AdditionalPlmns)
	case wire.RatTdscdma:
		out.Type = domain.CellTypeTDSCDMA
		out.TDSCDMA = tdscdma(wire.CellInfoTdscdmaV1_2{
			CellIdentityTdscdma:   t.CellIdentityTdscdma.Base,
			SignalStrengthTdscdma: t.SignalStrengthTdscdma,
		}, t.CellIdentityTdscdma.AdditionalPlmns)
	case wire.RatLte:
		out.Type = domain.CellTypeLTE
		out.LTE = lte(wire.CellInfoLteV1_2{
			CellIdentityLte:   l.CellIdentityLte.Base,
			SignalStrengthLte: l.SignalStrengthLte,
		}, l.CellIdentityLte.AdditionalPlmns, l.CellIdentityLte.Bands, false)
	default:
		return false
	}
	return true
}

func gsm(c wire.CellInfoGsmV1_2, additional []string) *domain.CellGSM {
	id := c.CellIdentityGsm
	ss := c.SignalStrengthGsm
	return &domain.CellGSM{
		MCC:             mcc(id.Mcc),
		MNC:             mnc(id.Mnc),
		LAC:             inRange(id.Lac, 0, 65535),
		CID:             inRange(id.Cid, 0, 65535),
		ARFCN:           inRange(id.Arfcn, 0, 65535),
		BSIC:            inRange(int32(id.Bsic), 0, 63),
		Operator:        operator(id.OperatorNames),
		AdditionalPLMNs: plmns(additional),
		RSSI:            rssiFromAsu(int32(ss.SignalStrength)),
		BitErrorRate:    inRange(int32(ss.BitErrorRate), 0, 7),
		TimingAdvance:   inRange(ss.TimingAdvance, 0, 219),
	}
}

func cdma(c wire.CellInfoCdmaV1_2) *domain.CellCDMA {
	id := c.CellIdentityCdma
	out := &domain.CellCDMA{
		NetworkID:     inRange(id.NetworkID, 0, 65535),
		SystemID:      inRange(id.SystemID, 0, 32767),
		BasestationID: inRange(id.BaseStationID, 0, 65535),
		Longitude:     inRange(id.Longitude, -2592000, 2592000),
		Latitude:      inRange(id.Latitude, -1296000, 1296000),
		Operator:      operator(id.OperatorNames),
		CdmaDbm:       inRange(flip(c.SignalStrengthCdma.Dbm), -120, 0),
		CdmaEcio:      inRange(flip(c.SignalStrengthCdma.Ecio), -160, 0),
		EvdoDbm:       inRange(flip(c.SignalStrengthEvdo.Dbm), -120, 0),
		EvdoEcio:      inRange(flip(c.SignalStrengthEvdo.Ecio), -160, 0),
		EvdoSNR:       inRange(c.SignalStrengthEvdo.SignalNoiseRatio, 0, 8),
	}

	// a location is only meaningful with both coordinates
	if out.Longitude == unavailable || out.Latitude == unavailable {
		out.Longitude, out.Latitude = unavailable, unavailable
	}
	return out
}

func lte(c wire.CellInfoLteV1_2, additional []string, bands []int32, endc bool) *domain.CellLTE {
	id := c.CellIdentityLte
	ss := c.SignalStrengthLte
	return &domain.CellLTE{
		MCC:             mcc(id.Mcc),
		MNC:             mnc(id.Mnc),
		CI:              inRange(id.Ci, 0, 0x0FFFFFFF),
		PCI:             inRange(id.Pci, 0, 503),
		TAC:             inRange(id.Tac, 0, 65535),
		EARFCN:          inRange(id.Earfcn, 0, 262143),
		BandwidthKHz:    inRange(id.Bandwidth, 1400, 20000),
		Bands:           append([]int32{}, bands...),
		Operator:        operator(id.OperatorNames),
		AdditionalPLMNs: plmns(additional),
		EndcAvailable:   endc,
		RSSI:            inRange(rssiFromAsu(int32(ss.SignalStrength)), -113, -51),
		RSRP:            inRange(flip(int32(ss.Rsrp)), -140, -43),
		RSRQ:            inRange(flip(int32(ss.Rsrq)), -34, 3),
		RSSNR:           inRange(tenthsToDb(ss.Rssnr), -20, 30),
		CQI:             inRange(int32(ss.Cqi), 0, 15),
		TimingAdvance:   inRange(int32(ss.TimingAdvance), 0, 1282),
	}
}

func wcdma(c wire.CellInfoWcdmaV1_2, additional []string) *domain.CellWCDMA {
	id := c.CellIdentityWcdma
	ss := c.SignalStrengthWcdma
	return &domain.CellWCDMA{
		MCC:             mcc(id.Mcc),
		MNC:             mnc(id.Mnc),
		LAC:             inRange(id.Lac, 0, 65535),
		CID:             inRange(id.Cid, 0, 268435455),
		PSC:             inRange(id.Psc, 0, 511),
		UARFCN:          inRange(id.Uarfcn, 0, 16383),
		Operator:        operator(id.OperatorNames),
		AdditionalPLMNs: plmns(additional),
		RSSI:            rssiFromAsu(ss.SignalStrength),
		BitErrorRate:    inRange(ss.BitErrorRate, 0, 7),
		RSCP:            rscpFromAsu(int32(ss.Rscp)),
		EcNo:            ecnoFromAsu(int32(ss.Ecno)),
	}
}

func tdscdmaIdentity(id wire.CellIdentityTdscdmaV1_2, additional []string) *domain.CellTDSCDMA {
	return &domain.CellTDSCDMA{
		MCC:             mcc(id.Mcc),
		MNC:             mnc(id.Mnc),
		LAC:             inRange(id.Lac, 0, 65535),
		CID:             inRange(id.Cid, 0, 268435455),
		CPID:            inRange(id.Cpid, 0, 127),
		UARFCN:          inRange(id.Uarfcn, 0, 16383),
		Operator:        operator(id.OperatorNames),
		AdditionalPLMNs: plmns(additional),
	}
}

func tdscdma(c wire.CellInfoTdscdmaV1_2, additional []string) *domain.CellTDSCDMA {
	out := tdscdmaIdentity(c.CellIdentityTdscdma, additional)
	ss := c.SignalStrengthTdscdma
	out.RSSI = rssiFromAsu(int32(ss.SignalStrength))
	out.BitErrorRate = inRange(int32(ss.BitErrorRate), 0, 7)
	out.RSCP = rscpFromAsu(int32(ss.Rscp))
	return out
}

func nr(id wire.CellIdentityNr, additional []string, bands []int32, ss wire.NrSignalStrength) *domain.CellNR {
	nci := domain.UnavailableLong
	if id.Nci <= 68719476735 {
		nci = int64(id.Nci)
	}

	return &domain.CellNR{
		MCC:              mcc(id.Mcc),
		MNC:              mnc(id.Mnc),
		NCI:              nci,
		PCI:              inRange(int32(min(id.Pci, uint32(unavailable))), 0, 1007),
		TAC:              inRange(id.Tac, 0, 16777215),
		NRARFCN:          inRange(id.Nrarfcn, 0, 3279165),
		Bands:            append([]int32{}, bands...),
		Operator:         operator(id.OperatorNames),
		AdditionalPLMNs:  plmns(additional),
		SsRsrp:           inRange(flip(ss.SsRsrp), -140, -44),
		SsRsrq:           inRange(flip(ss.SsRsrq), -20, -3),
		SsSinr:           inRange(ss.SsSinr, -23, 40),
		CsiRsrp:          inRange(flip(ss.CsiRsrp), -140, -44),
		CsiRsrq:          inRange(flip(ss.CsiRsrq), -20, -3),
		CsiSinr:          inRange(ss.CsiSinr, -23, 23),
		CsiCqiTableIndex: unavailable,
		CsiCqiReport:     []int32{},
	}
}
