package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LeoCommon/modemcore/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaultsWhenEmptyAccepted(t *testing.T) {
	log.Init(true)

	m := NewManager()
	require.NoError(t, m.Load(filepath.Join(t.TempDir(), "missing.toml"), true))

	assert.Equal(t, DeliverySync, m.Hub().C().Delivery)
	assert.Equal(t, DefaultQueueSize, m.Hub().C().QueueSize)
	assert.Equal(t, DefaultDevice, m.Modem().C().Device)
	assert.Equal(t, DefaultBaudRate, m.Modem().C().BaudRate)
	assert.Equal(t, time.Second, time.Duration(m.Modem().C().ReadTimeout))
	assert.True(t, m.Modem().C().Hotplug)
	assert.False(t, m.Log().C().Debug)
}

func TestLoadMissingFileFails(t *testing.T) {
	m := NewManager()
	assert.Error(t, m.Load(filepath.Join(t.TempDir(), "missing.toml"), false))
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[log]
debug = true

[hub]
delivery = "deferred"
queue_size = 8

[modem]
device = "/dev/ttyUSB3"
baud_rate = 9600
read_timeout = "250ms"
hotplug = false
`)

	m := NewManager()
	require.NoError(t, m.Load(path, false))

	assert.True(t, m.Log().C().Debug)
	assert.Equal(t, DeliveryDeferred, m.Hub().C().Delivery)
	assert.Equal(t, 8, m.Hub().C().QueueSize)

	modem := m.Modem().C()
	assert.Equal(t, "/dev/ttyUSB3", modem.Device)
	assert.Equal(t, 9600, modem.BaudRate)
	assert.Equal(t, 250*time.Millisecond, modem.ReadTimeout.Value())
	assert.False(t, modem.Hotplug)
	assert.Equal(t, path, m.Path())
}

func TestLoadVerifies(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"delivery", "[hub]\ndelivery = \"async\"\n"},
		{"queue", "[hub]\nqueue_size = -1\n"},
		{"device", "[modem]\ndevice = \"\"\n"},
		{"baud", "[modem]\nbaud_rate = 0\n"},
		{"level", "[log]\nlevel = \"loud\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			err := m.Load(writeConfig(t, tt.content), false)
			require.Error(t, err)
			assert.True(t, errors.Is(err, &VerificationError{}))
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	m := NewManager()
	err := m.Load(writeConfig(t, "[hub\n"), true)
	require.Error(t, err)
	assert.False(t, errors.Is(err, &VerificationError{}))
}

func TestSetAndSave(t *testing.T) {
	path := writeConfig(t, "[modem]\ndevice = \"/dev/ttyUSB2\"\n")

	m := NewManager()
	require.NoError(t, m.Load(path, false))

	m.Modem().Set(func(c *ModemConfig) {
		c.Device = "/dev/ttyACM0"
		c.ReadTimeout = TOMLDuration(2 * time.Second)
	})
	require.NoError(t, m.Modem().Save())

	reloaded := NewManager()
	require.NoError(t, reloaded.Load(path, false))
	assert.Equal(t, "/dev/ttyACM0", reloaded.Modem().C().Device)
	assert.Equal(t, 2*time.Second, reloaded.Modem().C().ReadTimeout.Value())
	assert.Equal(t, DeliverySync, reloaded.Hub().C().Delivery)
}

func TestParseCLIFlagSet(t *testing.T) {
	flags, err := ParseCLIFlagSet(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-config", "/tmp/x.toml", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.toml", flags.ConfigPath)
	assert.True(t, flags.Debug)

	flags, err = ParseCLIFlagSet(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigPath, flags.ConfigPath)
	assert.False(t, flags.Debug)
}

func TestSampleLoadsAsDefaults(t *testing.T) {
	sample, err := Sample()
	require.NoError(t, err)
	assert.Contains(t, string(sample), "[modem]")

	m := NewManager()
	require.NoError(t, m.Load(writeConfig(t, string(sample)), false))
	assert.Equal(t, New().Modem, m.Modem().C())
	assert.Equal(t, New().Hub, m.Hub().C())
}
