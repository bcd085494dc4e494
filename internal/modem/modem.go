// Package modem binds a physical modem to the notification hub
package modem

import (
	"strings"

	"github.com/LeoCommon/modemcore/internal/wire"
)

// Sink receives what a modem reports, *hub.Hub implements it
type Sink interface {
	OnRadioStateChanged(raw int32) error
	OnUnsolicited(ev wire.Event)
}

func TrimCRLF(s string) string {
	return strings.Trim(s, "\r\n")
}
