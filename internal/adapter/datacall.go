package adapter

import (
	"math"
	"strings"

	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

var legacyProtocols = map[string]domain.ProtocolType{
	"IP":           domain.ProtocolIP,
	"IPV6":         domain.ProtocolIPv6,
	"IPV4V6":       domain.ProtocolIPv4v6,
	"PPP":          domain.ProtocolPPP,
	"NON-IP":       domain.ProtocolNonIP,
	"UNSTRUCTURED": domain.ProtocolUnstructured,
}

func legacyProtocol(s string) domain.ProtocolType {
	if p, ok := legacyProtocols[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return p
	}
	log.Warn("unknown protocol type", zap.String("type", s))
	return domain.ProtocolUnknown
}

func protocol(t wire.PdpProtocolType) domain.ProtocolType {
	if t < wire.PdpProtocolUnknown || t > wire.PdpProtocolUnstructured {
		return domain.ProtocolUnknown
	}
	return domain.ProtocolType(t)
}

func linkStatus[T ~int32](active T) domain.LinkStatus {
	switch domain.LinkStatus(active) {
	case domain.LinkStatusInactive, domain.LinkStatusDormant, domain.LinkStatusActive:
		return domain.LinkStatus(active)
	}
	return domain.LinkStatusUnknown
}

func lifetime(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

// plainLinkAddresses is used by generations that only know the address text
func plainLinkAddresses(raw []string) []domain.LinkAddress {
	ps := prefixes("addresses", raw)
	out := make([]domain.LinkAddress, 0, len(ps))
	for _, p := range ps {
		out = append(out, domain.LinkAddress{
			Prefix:          p,
			DeprecationTime: domain.LifetimeUnknown,
			ExpirationTime:  domain.LifetimeUnknown,
		})
	}
	return out
}

func linkAddresses(raw []wire.LinkAddress) []domain.LinkAddress {
	out := make([]domain.LinkAddress, 0, len(raw))
	for _, la := range raw {
		p, err := parsePrefix(strings.TrimSpace(la.Address))
		if err != nil {
			log.Warn("skipping malformed address", zap.String("field", "addresses"), zap.String("value", la.Address), zap.Error(err))
			continue
		}
		out = append(out, domain.LinkAddress{
			Prefix:          p,
			Properties:      la.Properties,
			DeprecationTime: lifetime(la.DeprecationTime),
			ExpirationTime:  lifetime(la.ExpirationTime),
		})
	}
	return out
}

// ConvertDataCallResult returns false only for variants it does not know
func ConvertDataCallResult(r wire.DataCallResult) (domain.DataCallResult, bool) {
	switch dc := r.(type) {
	case wire.SetupDataCallResultV1_0:
		return fromV1_0(dc), true
	case wire.SetupDataCallResultV1_4:
		return fromV1_4(dc), true
	case wire.SetupDataCallResultV1_5:
		return fromV1_5(dc), true
	case wire.SetupDataCallResultV1_6:
		return fromV1_6(dc), true
	}
	unsupported(r)
	return domain.DataCallResult{}, false
}

// ConvertDataCallList converts every entry it can, the result is never nil
func ConvertDataCallList(l wire.DataCallList) []domain.DataCallResult {
	out := make([]domain.DataCallResult, 0, len(l.Results))
	for _, r := range l.Results {
		if dc, ok := ConvertDataCallResult(r); ok {
			out = append(out, dc)
		}
	}
	return out
}

func fromV1_0(dc wire.SetupDataCallResultV1_0) domain.DataCallResult {
	return domain.DataCallResult{
		Cause:               dc.Status,
		RetryDurationMillis: int64(dc.SuggestedRetryTime),
		ID:                  dc.Cid,
		LinkStatus:          linkStatus(dc.Active),
		ProtocolType:        legacyProtocol(dc.Type),
		InterfaceName:       dc.Ifname,
		Addresses:           plainLinkAddresses(splitLegacy(dc.Addresses)),
		DNSAddresses:        addrs("dnses", splitLegacy(dc.Dnses)),
		GatewayAddresses:    addrs("gateways", splitLegacy(dc.Gateways)),
		PCSCFAddresses:      addrs("pcscf", splitLegacy(dc.Pcscf)),
		MTUV4:               dc.Mtu,
		MTUV6:               dc.Mtu,
		HandoverFailureMode: domain.HandoverFailureModeLegacy,
	}
}

func fromV1_4(dc wire.SetupDataCallResultV1_4) domain.DataCallResult {
	return domain.DataCallResult{
		Cause:               dc.Cause,
		RetryDurationMillis: int64(dc.SuggestedRetryTime),
		ID:                  dc.Cid,
		LinkStatus:          linkStatus(dc.Active),
		ProtocolType:        protocol(dc.Type),
		InterfaceName:       dc.Ifname,
		Addresses:           plainLinkAddresses(dc.Addresses),
		DNSAddresses:        addrs("dnses", dc.Dnses),
		GatewayAddresses:    addrs("gateways", dc.Gateways),
		PCSCFAddresses:      addrs("pcscf", dc.Pcscf),
		MTUV4:               dc.Mtu,
		MTUV6:               dc.Mtu,
		HandoverFailureMode: domain.HandoverFailureModeLegacy,
	}
}

func fromV1_5(dc wire.SetupDataCallResultV1_5) domain.DataCallResult {
	return domain.DataCallResult{
		Cause:               dc.Cause,
		RetryDurationMillis: int64(dc.SuggestedRetryTime),
		ID:                  dc.Cid,
		LinkStatus:          linkStatus(dc.Active),
		ProtocolType:        protocol(dc.Type),
		InterfaceName:       dc.Ifname,
		Addresses:           linkAddresses(dc.Addresses),
		DNSAddresses:        addrs("dnses", dc.Dnses),
		GatewayAddresses:    addrs("gateways", dc.Gateways),
		PCSCFAddresses:      addrs("pcscf", dc.Pcscf),
		MTUV4:               dc.MtuV4,
		MTUV6:               dc.MtuV6,
		HandoverFailureMode: domain.HandoverFailureModeLegacy,
	}
}

func fromV1_6(dc wire.SetupDataCallResultV1_6) domain.DataCallResult {
	out := domain.DataCallResult{
		Cause:               dc.Cause,
		RetryDurationMillis: dc.SuggestedRetryTime,
		ID:                  dc.Cid,
		LinkStatus:          linkStatus(dc.Active),
		ProtocolType:        protocol(dc.Type),
		InterfaceName:       dc.Ifname,
		Addresses:           linkAddresses(dc.Addresses),
		DNSAddresses:        addrs("dnses", dc.Dnses),
		GatewayAddresses:    addrs("gateways", dc.Gateways),
		PCSCFAddresses:      addrs("pcscf", dc.Pcscf),
		MTUV4:               dc.MtuV4,
		MTUV6:               dc.MtuV6,
		HandoverFailureMode: domain.HandoverFailureMode(dc.HandoverFailureMode),
		PDUSessionID:        dc.PduSessionID,
		DefaultQos:          qos(dc.DefaultQos),
		QosBearerSessions:   make([]domain.QosBearerSession, 0, len(dc.QosSessions)),
		TrafficDescriptors:  make([]domain.TrafficDescriptor, 0, len(dc.TrafficDescriptors)),
	}

	for _, s := range dc.QosSessions {
		out.QosBearerSessions = append(out.QosBearerSessions, qosSession(s))
	}

	if dc.SliceInfo.Present {
		out.SliceInfo = sliceInfo(dc.SliceInfo.Value)
	}

	for _, td := range dc.TrafficDescriptors {
		if t, ok := trafficDescriptor(td); ok {
			out.TrafficDescriptors = append(out.TrafficDescriptors, t)
		}
	}

	return out
}

func qos(q wire.Qos) domain.Qos {
	switch q.Kind {
	case wire.QosEps:
		return &domain.EpsQos{
			QCI:      int(q.Eps.Qci),
			Downlink: bandwidth(q.Eps.Downlink),
			Uplink:   bandwidth(q.Eps.Uplink),
		}
	case wire.QosNr:
		return &domain.NrQos{
			FiveQI:            int(q.Nr.FiveQi),
			QFI:               int(q.Nr.Qfi),
			AveragingWindowMs: int(q.Nr.AveragingWindowMs),
			Downlink:          bandwidth(q.Nr.Downlink),
			Uplink:            bandwidth(q.Nr.Uplink),
		}
	}
	return nil
}

func bandwidth(b wire.QosBandwidth) domain.QosBandwidth {
	return domain.QosBandwidth{MaxBitrateKbps: b.MaxBitrateKbps, GuaranteedBitrateKbps: b.GuaranteedBitrateKbps}
}

func portRange(o wire.Optional[wire.PortRange]) *domain.PortRange {
	if !o.Present {
		return nil
	}
	return &domain.PortRange{Start: int(o.Value.Start), End: int(o.Value.End)}
}

func qosSession(s wire.QosSession) domain.QosBearerSession {
	out := domain.QosBearerSession{
		ID:      int(s.QosSessionID),
		Qos:     qos(s.Qos),
		Filters: make([]domain.QosBearerFilter, 0, len(s.QosFilters)),
	}

	for _, f := range s.QosFilters {
		bf := domain.QosBearerFilter{
			LocalAddresses:         prefixes("localAddresses", f.LocalAddresses),
			RemoteAddresses:        prefixes("remoteAddresses", f.RemoteAddresses),
			LocalPort:              portRange(f.LocalPort),
			RemotePort:             portRange(f.RemotePort),
			Protocol:               int(f.Protocol),
			TypeOfServiceMask:      domain.QosFilterAbsent,
			FlowLabel:              domain.QosFilterAbsent,
			SecurityParameterIndex: domain.QosFilterAbsent,
			Direction:              int(f.Direction),
			Precedence:             int(f.Precedence),
		}
		if f.Tos.Present {
			bf.TypeOfServiceMask = int(f.Tos.Value)
		}
		if f.FlowLabel.Present {
			bf.FlowLabel = int64(f.FlowLabel.Value)
		}
		if f.Spi.Present {
			bf.SecurityParameterIndex = int64(f.Spi.Value)
		}
		out.Filters = append(out.Filters, bf)
	}

	return out
}

const maxSliceDifferentiator = 0xFFFFFE

func validSliceDifferentiator(sd int32) bool {
	return sd == domain.SliceDifferentiatorNoSlice || (sd >= 0 && sd <= maxSliceDifferentiator)
}

func sliceInfo(si wire.SliceInfo) *domain.NetworkSliceInfo {
	if !validSliceDifferentiator(si.SliceDifferentiator) || !validSliceDifferentiator(si.MappedHplmnSD) {
		log.Warn("dropping slice info with invalid differentiator",
			zap.Int32("sd", si.SliceDifferentiator), zap.Int32("mappedHplmnSd", si.MappedHplmnSD))
		return nil
	}

	return &domain.NetworkSliceInfo{
		SliceServiceType:               int(si.Sst),
		SliceDifferentiator:            si.SliceDifferentiator,
		MappedHplmnSliceServiceType:    int(si.MappedHplmnSst),
		MappedHplmnSliceDifferentiator: si.MappedHplmnSD,
		Status:                         int(si.Status),
	}
}

func trafficDescriptor(td wire.TrafficDescriptor) (domain.TrafficDescriptor, bool) {
	if !td.Dnn.Present && !td.OsAppID.Present {
		log.Warn("skipping traffic descriptor without dnn and os app id")
		return domain.TrafficDescriptor{}, false
	}

	var out domain.TrafficDescriptor
	if td.Dnn.Present {
		dnn := td.Dnn.Value
		out.DataNetworkName = &dnn
	}
	if td.OsAppID.Present {
		out.OSAppID = append([]byte{}, td.OsAppID.Value.OsAppID...)
	}
	return out, true
}
