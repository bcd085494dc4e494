package systemd

// NotAvailableError is returned when the process was not started by systemd with Type=notify
type NotAvailableError struct{}

func (e *NotAvailableError) Error() string {
	return "systemd-notify socket was not available"
}

func (e *NotAvailableError) Is(tgt error) bool {
	_, ok := tgt.(*NotAvailableError)
	return ok
}
