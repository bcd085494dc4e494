package config

import (
	"flag"
	"os"
	"sync"
	"time"

	"github.com/LeoCommon/modemcore/pkg/file"
	"github.com/LeoCommon/modemcore/pkg/log"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

const (
	ProductName  = "modemcore"
	ConfigFolder = "/etc/" + ProductName + "/"
	ConfigFile   = "config.toml"

	DefaultConfigPath = ConfigFolder + ConfigFile

	DefaultDebugModeValue = false
)

type CLIFlags struct {
	ConfigPath string
	Debug      bool
}

type MainConfig struct {
	Log   LogConfig   `toml:"log"`
	Hub   HubConfig   `toml:"hub"`
	Modem ModemConfig `toml:"modem"`
}

type ConfigManager interface {
	lock()
	unlock()
	Verify() error
}

type ConfigManagerKey string

const (
	CMLog   ConfigManagerKey = "log"
	CMHub   ConfigManagerKey = "hub"
	CMModem ConfigManagerKey = "modem"
)

type ConfigManagerStore map[ConfigManagerKey]ConfigManager

type Manager struct {
	mu sync.RWMutex

	// The actual config, never share this with other code
	config *MainConfig

	// The config manager store (pointers)
	store ConfigManagerStore

	// The config path
	path string
}

func (m *Manager) Log() *LogConfigManager {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm, ok := m.store[CMLog].(*LogConfigManager)
	if !ok {
		log.Panic("implementation mistake, no CMLog found")
		return nil
	}
	return cm
}

func (m *Manager) Hub() *HubConfigManager {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm, ok := m.store[CMHub].(*HubConfigManager)
	if !ok {
		log.Panic("implementation mistake, no CMHub found")
		return nil
	}
	return cm
}

func (m *Manager) Modem() *ModemConfigManager {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm, ok := m.store[CMModem].(*ModemConfigManager)
	if !ok {
		log.Panic("implementation mistake, no CMModem found")
		return nil
	}
	return cm
}

// Path returns the file the config was loaded from
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// Load reads the config file over the defaults. A missing or unreadable file
// is only an error if acceptEmptyConfig is false, a malformed one always is.
func (m *Manager) Load(path string, acceptEmptyConfig bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(path)
	if err == nil {
		if err = toml.Unmarshal(data, m.config); err != nil {
			log.Error("failed to unmarshal config file", zap.Error(err))
			return err
		}
	}

	if err != nil && !acceptEmptyConfig {
		return err
	}

	// Store the load path
	m.path = path

	// Each config section manager gets his own locking primitive
	m.store = ConfigManagerStore{
		CMLog:   NewLogConfigManager(&m.config.Log, m),
		CMHub:   NewHubConfigManager(&m.config.Hub, m),
		CMModem: NewModemConfigManager(&m.config.Modem, m),
	}

	// Verify all configs contain the mandatory values
	for _, value := range m.store {
		if err := value.Verify(); err != nil {
			return err
		}
	}

	log.Debug("active config", zap.Any("config", m.config), zap.String("path", m.path))

	return nil
}

// Save locks all configs and writes it to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Lock all config managers
	for _, value := range m.store {
		value.lock()
	}

	// Unlock the config managers when we are done
	defer func() {
		for _, value := range m.store {
			value.unlock()
		}
	}()

	// Marshal the config, does not use getters, so no locking => safe
	configData, err := toml.Marshal(m.config)
	if err != nil {
		return err
	}

	if err := file.WriteAtomic(m.path, configData, 0644); err != nil {
		log.Error("failed to write config file", zap.Error(err))
		return err
	}

	return nil
}

// New returns a config populated with the defaults
func New() *MainConfig {
	return &MainConfig{
		Log: LogConfig{
			Debug: DefaultDebugModeValue,
		},
		Hub: HubConfig{
			Delivery:  DeliverySync,
			QueueSize: DefaultQueueSize,
		},
		Modem: ModemConfig{
			Device:      DefaultDevice,
			BaudRate:    DefaultBaudRate,
			ReadTimeout: TOMLDuration(DefaultReadTimeout),
			Hotplug:     true,
		},
	}
}

// Sample renders the defaults as TOML
func Sample() ([]byte, error) {
	return toml.Marshal(New())
}

func NewManager() *Manager {
	return &Manager{
		mu:     sync.RWMutex{},
		store:  make(ConfigManagerStore),
		config: New(),
	}
}

// ParseCLIFlags parses os.Args, use ParseCLIFlagSet for anything else
func ParseCLIFlags() CLIFlags {
	flags, _ := ParseCLIFlagSet(flag.CommandLine, os.Args[1:])
	return flags
}

func ParseCLIFlagSet(fs *flag.FlagSet, args []string) (CLIFlags, error) {
	flags := CLIFlags{}

	fs.StringVar(&flags.ConfigPath, "config", DefaultConfigPath, "relative or absolute path to the config file")
	fs.BoolVar(&flags.Debug, "debug", DefaultDebugModeValue, "true if the debug logging should be enabled")

	err := fs.Parse(args)
	return flags, err
}

type TOMLDuration time.Duration

func (d *TOMLDuration) UnmarshalText(b []byte) error {
	x, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = TOMLDuration(x)
	return nil
}

func (c TOMLDuration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(c).String()), nil
}

func (c TOMLDuration) Value() time.Duration {
	return time.Duration(c)
}
