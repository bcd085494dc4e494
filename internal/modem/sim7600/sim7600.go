// Package sim7600 drives the AT management port of SIMCom SIM7600 modems
package sim7600

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/LeoCommon/modemcore/internal/modem"
	"github.com/LeoCommon/modemcore/internal/modem/atparser"
	"github.com/LeoCommon/modemcore/internal/radio"
	"github.com/LeoCommon/modemcore/internal/wire"
	"github.com/LeoCommon/modemcore/pkg/log"
	"go.bug.st/serial"
	"go.uber.org/zap"
)

const (
	MgmtTty      = "/dev/serial/by-id/usb-SimTech__Incorporated_SimTech__Incorporated_0123456789ABCDEF-if02-port0"
	MgmtBaudrate = 115200

	DefaultReadTimeout = 1 * time.Second
)

// Port is the byte stream to the modem, serial.Port satisfies it
type Port interface {
	io.ReadWriteCloser
}

type Modem struct {
	mu sync.Mutex

	device      string
	serConf     *serial.Mode
	readTimeout time.Duration

	serPort Port
}

func Create(device string, customMGMTSerialConfig *serial.Mode, readTimeout time.Duration) *Modem {
	m := new(Modem)

	m.device = device
	if m.device == "" {
		m.device = MgmtTty
	}

	// Use provided serial config if adjusted
	if customMGMTSerialConfig != nil {
		m.serConf = customMGMTSerialConfig
	} else {
		m.serConf = &serial.Mode{
			BaudRate: MgmtBaudrate,
		}
	}

	m.readTimeout = readTimeout
	if m.readTimeout <= 0 {
		m.readTimeout = DefaultReadTimeout
	}

	return m
}

func (m *Modem) Device() string {
	return m.device
}

func (m *Modem) Open() error {
	s, err := serial.Open(m.device, m.serConf)
	if err != nil {
		log.Error("error while opening serial device", zap.String("device", m.device), zap.Error(err))
		return err
	}

	// The read timeout bounds how long Run takes to notice a cancelled context
	if err := s.SetReadTimeout(m.readTimeout); err != nil {
		log.Warn("could not set serial read timeout", zap.Error(err))
	}

	m.Attach(s)
	return nil
}

// Attach uses an already open port, e.g. a pty or a test pipe
func (m *Modem) Attach(p Port) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serPort = p
}

// Close releases the port, a running Run returns with the read error
func (m *Modem) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.serPort == nil {
		return nil
	}

	err := m.serPort.Close()
	m.serPort = nil
	return err
}

func (m *Modem) initialized() (Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.serPort == nil {
		return nil, NewNotOpenError(m.device)
	}

	return m.serPort, nil
}

func writeSerial(p Port, data string) error {
	_, err := p.Write([]byte(data + "\r\n"))
	return err
}

// Run seeds the radio state with AT+CFUN? and then forwards every line the
// modem sends to sink until the port fails or ctx is done. Either way the
// radio is reported unavailable before Run returns.
func (m *Modem) Run(ctx context.Context, sink modem.Sink) error {
	p, err := m.initialized()
	if err != nil {
		return err
	}

	defer func() {
		if err := sink.OnRadioStateChanged(int32(radio.StateUnavailable)); err != nil {
			log.Error("could not report unavailable radio", zap.Error(err))
		}
	}()

	log.Debug("querying radio power", zap.String("device", m.device))
	if err := writeSerial(p, atparser.AtRadioPowerQuery); err != nil {
		log.Error("serial write failed", zap.Error(err))
		return err
	}

	reader := bufio.NewReader(&ctxReader{ctx: ctx, r: p})
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			log.Info("modem stopped reporting", zap.String("device", m.device), zap.Error(err))
			return err
		}

		handleLine(modem.TrimCRLF(line), sink)
	}
}

func handleLine(line string, sink modem.Sink) {
	switch kind := atparser.Classify(line); kind {
	case atparser.LineRadioPower:
		state, err := atparser.RadioState(line)
		if err != nil {
			log.Warn("ignoring radio power report", zap.String("line", line), zap.Error(err))
			return
		}

		if err := sink.OnRadioStateChanged(state); err != nil {
			log.Error("radio state rejected", zap.String("line", line), zap.Error(err))
		}

	case atparser.LineURC:
		opcode, payload, _ := atparser.Unsolicited(line)
		sink.OnUnsolicited(wire.Event{
			Opcode:     opcode,
			Generation: wire.V1_0,
			Payload:    wire.Raw{Value: payload},
		})

	case atparser.LineFinal:
		if line != atparser.AtReplyOk {
			log.Warn("modem reported an error", zap.String("reply", line))
		}

	case atparser.LineEmpty:

	default:
		log.Debug("unhandled modem line", zap.String("line", line), zap.Stringer("kind", kind))
	}
}

// ctxReader retries reads that timed out without data until ctx is done
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	for {
		if err := c.ctx.Err(); err != nil {
			return 0, err
		}

		n, err := c.r.Read(p)
		if n > 0 || err != nil {
			return n, err
		}
	}
}
