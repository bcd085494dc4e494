package sim7600

import "fmt"

type NotOpenError struct {
	device string
}

func (e *NotOpenError) Error() string {
	return fmt.Sprintf("serial port %s not ready", e.device)
}

func (e *NotOpenError) Is(tgt error) bool {
	_, ok := tgt.(*NotOpenError)
	return ok
}

func NewNotOpenError(device string) error {
	return &NotOpenError{device}
}
