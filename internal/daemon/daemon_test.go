package daemon

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LeoCommon/modemcore/internal/config"
	"github.com/LeoCommon/modemcore/internal/modem/hotplug"
	"github.com/LeoCommon/modemcore/internal/radio"
	"github.com/LeoCommon/modemcore/pkg/systemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"
)

const missingModemConfig = `
[hub]
delivery = "sync"

[modem]
device = "/nonexistent/ttyUSB9"
hotplug = false
`

func setupApp(t *testing.T) *App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(missingModemConfig), 0644))

	app, err := Setup(config.CLIFlags{ConfigPath: path, Debug: true}, false)
	require.NoError(t, err)
	t.Cleanup(app.Shutdown)

	return app
}

func TestSetupFailsWithoutConfig(t *testing.T) {
	_, err := Setup(config.CLIFlags{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")}, false)
	assert.Error(t, err)
}

func TestSetupUsesConfig(t *testing.T) {
	t.Setenv(systemd.NotifySocketEnvVar, "")
	app := setupApp(t)

	assert.Equal(t, "/nonexistent/ttyUSB9", app.Modem.Device())
	assert.Nil(t, app.Hotplug)
	assert.Equal(t, radio.StateUnavailable, app.Hub.Radio().State())
}

func TestRunRetriesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Setenv(systemd.NotifySocketEnvVar, "")

	app := setupApp(t)
	app.retryWait = 5 * time.Millisecond

	var opens atomic.Int32
	open := app.openModem
	app.openModem = func() error {
		opens.Inc()
		return open()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the context expired")
	}
	assert.Equal(t, radio.StateUnavailable, app.Hub.Radio().State())

	// The first attempt is immediate, the rest follow the retry wait
	assert.GreaterOrEqual(t, opens.Load(), int32(2))
}

// pipePort is a modem port that reads what the test writes and swallows commands
type pipePort struct {
	*io.PipeReader
}

func (pipePort) Write(b []byte) (int, error) {
	return len(b), nil
}

func TestHotplugRemoveAndAdd(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Setenv(systemd.NotifySocketEnvVar, "")

	app := setupApp(t)
	// Only a hotplug add may reopen within the test
	app.retryWait = time.Hour

	var opens atomic.Int32
	writers := make(chan *io.PipeWriter, 4)
	app.openModem = func() error {
		pr, pw := io.Pipe()
		app.Modem.Attach(pipePort{PipeReader: pr})
		opens.Inc()
		writers <- pw
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	var pw *io.PipeWriter
	select {
	case pw = <-writers:
	case <-time.After(5 * time.Second):
		t.Fatal("modem was never opened")
	}

	_, err := pw.Write([]byte("+CFUN: 1\r\n"))
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return app.Hub.Radio().State() == radio.StateOn
	}, 5*time.Second, 5*time.Millisecond)

	app.changes <- hotplug.Change{Action: hotplug.Removed, DevName: app.Modem.Device()}
	assert.Eventually(t, func() bool {
		return app.Hub.Radio().State() == radio.StateUnavailable
	}, 5*time.Second, 5*time.Millisecond)

	// An add is ignored until the closed run was reaped, so keep offering it
	assert.Eventually(t, func() bool {
		select {
		case app.changes <- hotplug.Change{Action: hotplug.Added, DevName: app.Modem.Device()}:
		default:
		}
		return opens.Load() == 2
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the context was cancelled")
	}
	assert.Equal(t, int32(2), opens.Load())
	assert.Equal(t, radio.StateUnavailable, app.Hub.Radio().State())
}

func TestRadioStateIsReportedToSystemd(t *testing.T) {
	name := filepath.Join(t.TempDir(), "notify.sock")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Net: "unixgram", Name: name})
	require.NoError(t, err)
	defer conn.Close()
	t.Setenv(systemd.NotifySocketEnvVar, name)

	app := setupApp(t)
	require.NoError(t, app.Hub.OnRadioStateChanged(int32(radio.StateOn)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 64)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "STATUS=radio ON", string(buf[:n]))
}
