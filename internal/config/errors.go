package config

import "fmt"

// VerificationError is returned by Load when a section violates a hard condition
type VerificationError struct {
	section ConfigManagerKey
	msg     string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("invalid %s config: %s", e.section, e.msg)
}

func (e *VerificationError) Is(tgt error) bool {
	_, ok := tgt.(*VerificationError)
	return ok
}

func NewVerificationError(section ConfigManagerKey, format string, args ...any) error {
	return &VerificationError{section: section, msg: fmt.Sprintf(format, args...)}
}
