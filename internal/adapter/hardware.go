package adapter

import (
	"github.com/LeoCommon/modemcore/internal/domain"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

// ConvertHardwareConfigs keeps every config that carries the info its type requires
func ConvertHardwareConfigs(l wire.HardwareConfigListV1_0) []domain.HardwareConfig {
	out := make([]domain.HardwareConfig, 0, len(l.Configs))
	for _, hc := range l.Configs {
		c := domain.HardwareConfig{
			Type:  domain.HardwareType(hc.Type),
			UUID:  hc.UUID,
			State: domain.HardwareState(hc.State),
		}

		switch {
		case hc.Type == wire.HardwareConfigModem && len(hc.Modem) > 0:
			m := hc.Modem[0]
			c.Modem = &domain.ModemHardware{
				RilModel:      m.RilModel,
				NetworkTypes:  DecodeRAF(m.Rat),
				MaxVoiceCalls: m.MaxVoice,
				MaxDataCalls:  m.MaxData,
				MaxStandby:    m.MaxStandby,
			}
		case hc.Type == wire.HardwareConfigSim && len(hc.Sim) > 0:
			c.SIM = &domain.SIMHardware{ModemUUID: hc.Sim[0].ModemUUID}
		default:
			log.Warn("skipping incomplete hardware config",
				zap.String("uuid", hc.UUID), zap.Int32("type", int32(hc.Type)))
			continue
		}

		out = append(out, c)
	}
	return out
}

func ConvertRadioCapability(rc wire.RadioCapabilityV1_0) domain.RadioCapability {
	return domain.RadioCapability{
		Session:          rc.Session,
		Phase:            int32(rc.Phase),
		NetworkTypes:     DecodeRAF(rc.Raf),
		LogicalModemUUID: rc.LogicalModemUUID,
		Status:           rc.Status,
	}
}
