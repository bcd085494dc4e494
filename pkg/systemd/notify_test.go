package systemd

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listen(t *testing.T) *net.UnixConn {
	t.Helper()

	name := filepath.Join(t.TempDir(), "notify.sock")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Net: "unixgram", Name: name})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	t.Setenv(NotifySocketEnvVar, name)
	return conn
}

func receive(t *testing.T, conn *net.UnixConn) string {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 256)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	return string(buf[:n])
}

func TestNotifyWithoutSocket(t *testing.T) {
	t.Setenv(NotifySocketEnvVar, "")
	assert.ErrorIs(t, Ready(), &NotAvailableError{})
}

func TestNotifyMessages(t *testing.T) {
	conn := listen(t)

	require.NoError(t, Ready())
	assert.Equal(t, NotifyReady, receive(t, conn))

	require.NoError(t, EntertainWatchdog())
	assert.Equal(t, NotifyWatchdog, receive(t, conn))

	require.NoError(t, Status("radio ON"))
	assert.Equal(t, "STATUS=radio ON", receive(t, conn))

	require.NoError(t, Stopping())
	assert.Equal(t, NotifyStopping, receive(t, conn))
}
