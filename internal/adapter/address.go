package adapter

import (
	"net/netip"
	"strings"

	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

// parsePrefix accepts "addr/len" or a bare address, which gets a host prefix
func parsePrefix(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		return netip.ParsePrefix(s)
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func prefixes(field string, raw []string) []netip.Prefix {
	out := make([]netip.Prefix, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		p, err := parsePrefix(s)
		if err != nil {
			log.Warn("skipping malformed address", zap.String("field", field), zap.String("value", s), zap.Error(err))
			continue
		}
		out = append(out, p)
	}
	return out
}

func addrs(field string, raw []string) []netip.Addr {
	out := make([]netip.Addr, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		a, err := netip.ParseAddr(s)
		if err != nil {
			log.Warn("skipping malformed address", zap.String("field", field), zap.String("value", s), zap.Error(err))
			continue
		}
		out = append(out, a)
	}
	return out
}

// splitLegacy splits the space separated address strings of 1.0
func splitLegacy(s string) []string {
	return strings.Fields(s)
}
