// Package atparser understands the line based AT protocol of SIMCom modems
package atparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LeoCommon/modemcore/internal/catalog"
	"github.com/LeoCommon/modemcore/internal/radio"
)

const (
	AtRadioPower      = "AT+CFUN"
	AtRadioPowerQuery = AtRadioPower + "?"

	AtReplyOk    = "OK"
	AtReplyError = "ERROR"

	radioPowerHeader = "+CFUN:"
)

type LineKind int

const (
	LineEmpty LineKind = iota
	// LineFinal terminates a command response
	LineFinal
	// LineEcho is the command itself, echoed back by the modem
	LineEcho
	// LineRadioPower carries the +CFUN functionality level
	LineRadioPower
	// LineURC is an unsolicited result code
	LineURC
	// LineData is anything else, usually part of a command response
	LineData
)

func (k LineKind) String() string {
	switch k {
	case LineEmpty:
		return "empty"
	case LineFinal:
		return "final"
	case LineEcho:
		return "echo"
	case LineRadioPower:
		return "radio power"
	case LineURC:
		return "urc"
	}
	return "data"
}

// urcs maps result code prefixes to the unsolicited opcode they are reported as
var urcs = []struct {
	prefix string
	opcode int32
}{
	{"RING", catalog.UnsolCallRing},
	{"+CRING:", catalog.UnsolCallRing},
	{"NO CARRIER", catalog.UnsolCallStateChanged},
	{"VOICE CALL:", catalog.UnsolCallStateChanged},
	{"+CREG:", catalog.UnsolNetworkStateChanged},
	{"+CGREG:", catalog.UnsolNetworkStateChanged},
	{"+CEREG:", catalog.UnsolNetworkStateChanged},
	{"+CMTI:", catalog.UnsolNewSMSOnSIM},
	{"+CDSI:", catalog.UnsolNewSMSStatusReport},
	{"+CUSD:", catalog.UnsolOnUSSD},
	{"+CTZV:", catalog.UnsolNITZTimeReceived},
	{"+CSQ:", catalog.UnsolSignalStrength},
	{"+CPIN:", catalog.UnsolSIMStatusChanged},
}

func isFinal(line string) bool {
	return line == AtReplyOk || line == AtReplyError ||
		strings.HasPrefix(line, "+CME ERROR:") || strings.HasPrefix(line, "+CMS ERROR:")
}

// Classify expects a line without its trailing CR LF
func Classify(line string) LineKind {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return LineEmpty
	case isFinal(line):
		return LineFinal
	case len(line) >= 2 && strings.EqualFold(line[:2], "AT"):
		return LineEcho
	case strings.HasPrefix(line, radioPowerHeader):
		return LineRadioPower
	}

	if _, _, ok := Unsolicited(line); ok {
		return LineURC
	}
	return LineData
}

// RadioState parses "+CFUN: <fun>" into a raw radio state.
// Minimum functionality (0) and flight mode (4) are both reported as off.
func RadioState(line string) (int32, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, radioPowerHeader) {
		return 0, fmt.Errorf("unknown header %v", line)
	}

	fun, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, radioPowerHeader)))
	if err != nil {
		return 0, fmt.Errorf("cant parse functionality level %v: %w", line, err)
	}

	switch fun {
	case 0, 4:
		return int32(radio.StateOff), nil
	case 1:
		return int32(radio.StateOn), nil
	}
	return 0, fmt.Errorf("unsupported functionality level %d", fun)
}

// Unsolicited maps a result code onto its opcode, the payload is the text after the prefix
func Unsolicited(line string) (opcode int32, payload string, ok bool) {
	line = strings.TrimSpace(line)
	for _, u := range urcs {
		if strings.HasPrefix(line, u.prefix) {
			return u.opcode, strings.TrimSpace(strings.TrimPrefix(line, u.prefix)), true
		}
	}
	return 0, "", false
}
