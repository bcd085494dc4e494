package config

import (
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Level string `toml:"level,omitempty" comment:"overrides debug, one of debug, info, warn, error"`
}

type LogConfigManager struct {
	BaseConfigManager[LogConfig]
}

func (l *LogConfigManager) Verify() error {
	if l.conf.Level == "" {
		return nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(l.conf.Level)); err != nil {
		return NewVerificationError(CMLog, "unknown level %q", l.conf.Level)
	}
	return nil
}

func NewLogConfigManager(config *LogConfig, mgr *Manager) *LogConfigManager {
	l := LogConfigManager{}
	l.conf = config
	l.mgr = mgr

	return &l
}

// DeliveryMode selects how notifications reach their handlers
type DeliveryMode string

const (
	// Keep these names synced up with the toml HubConfig below
	DeliverySync     DeliveryMode = "sync"
	DeliveryDeferred DeliveryMode = "deferred"

	DefaultQueueSize = 64
)

// SupportedOptions lists the options for the config parser
func (d DeliveryMode) SupportedOptions() []DeliveryMode {
	return []DeliveryMode{
		DeliverySync,
		DeliveryDeferred,
	}
}

type HubConfig struct {
	Delivery  DeliveryMode `toml:"delivery" comment:"sync calls handlers inline, deferred hands them to a single worker"`
	QueueSize int          `toml:"queue_size,omitempty" comment:"notification queue size in deferred mode"`
}

type HubConfigManager struct {
	BaseConfigManager[HubConfig]
}

func (h *HubConfigManager) Verify() error {
	if !slices.Contains(h.conf.Delivery.SupportedOptions(), h.conf.Delivery) {
		return NewVerificationError(CMHub, "unsupported delivery mode %q", h.conf.Delivery)
	}

	if h.conf.QueueSize < 0 {
		return NewVerificationError(CMHub, "negative queue size %d", h.conf.QueueSize)
	}

	return nil
}

func NewHubConfigManager(config *HubConfig, mgr *Manager) *HubConfigManager {
	h := HubConfigManager{}
	h.conf = config
	h.mgr = mgr

	return &h
}

const (
	DefaultDevice      = "/dev/ttyUSB2"
	DefaultBaudRate    = 115200
	DefaultReadTimeout = time.Second
)

type ModemConfig struct {
	Device      string       `toml:"device" comment:"AT command tty of the modem"`
	BaudRate    int          `toml:"baud_rate"`
	ReadTimeout TOMLDuration `toml:"read_timeout,omitempty"`
	Hotplug     bool         `toml:"hotplug" comment:"follow add/remove of the device via udev"`
}

type ModemConfigManager struct {
	BaseConfigManager[ModemConfig]
}

func (m *ModemConfigManager) Verify() error {
	if m.conf.Device == "" {
		return NewVerificationError(CMModem, "no device specified")
	}

	if m.conf.BaudRate <= 0 {
		return NewVerificationError(CMModem, "invalid baud rate %d", m.conf.BaudRate)
	}

	if m.conf.ReadTimeout < 0 {
		return NewVerificationError(CMModem, "negative read timeout")
	}

	return nil
}

func NewModemConfigManager(config *ModemConfig, mgr *Manager) *ModemConfigManager {
	m := ModemConfigManager{}
	m.conf = config
	m.mgr = mgr

	return &m
}
