// Package radio tracks the modem power/availability state and notifies the
// registered listeners about every transition.
package radio

import (
	"fmt"
)

// State uses the radio HAL numbering
type State int32

const (
	StateOff         State = 0
	StateUnavailable State = 1
	StateOn          State = 10
)

// IsOn reports state == ON
func (s State) IsOn() bool {
	return s == StateOn
}

// IsAvailable reports state != UNAVAILABLE
func (s State) IsAvailable() bool {
	return s != StateUnavailable
}

func (s State) String() string {
	switch s {
	case StateOff:
		return "OFF"
	case StateUnavailable:
		return "UNAVAILABLE"
	case StateOn:
		return "ON"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// ParseState validates a raw value delivered by the transport.
// There is no safe default, unknown values are an error.
func ParseState(raw int32) (State, error) {
	switch s := State(raw); s {
	case StateOff, StateUnavailable, StateOn:
		return s, nil
	}

	return StateUnavailable, NewUnknownStateError(raw)
}

type UnknownStateError struct {
	raw int32
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unrecognized radio state %d", e.raw)
}

func (e *UnknownStateError) Is(tgt error) bool {
	_, ok := tgt.(*UnknownStateError)
	return ok
}

func NewUnknownStateError(raw int32) error {
	return &UnknownStateError{raw}
}
