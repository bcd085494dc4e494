// Package catalog maps radio request and unsolicited response opcodes to
// display names for diagnostics.
package catalog

import (
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	UnknownRequest  = "<unknown request>"
	UnknownResponse = "<unknown response>"
)

// RequestToString never fails, misses yield UnknownRequest
func RequestToString(op int32) string {
	if name, ok := requestNames[op]; ok {
		return name
	}
	return UnknownRequest
}

// ResponseToString never fails, misses yield UnknownResponse
func ResponseToString(op int32) string {
	if name, ok := responseNames[op]; ok {
		return name
	}
	return UnknownResponse
}

// Describe formats an opcode with its name for log fields, e.g. "1036/UNSOL_CELL_INFO_LIST"
func Describe(op int32) string {
	if name, ok := responseNames[op]; ok {
		return fmt.Sprintf("%d/%s", op, name)
	}
	return fmt.Sprintf("%d/%s", op, RequestToString(op))
}

// UnsolicitedOpcodes lists every known unsolicited opcode in ascending order
func UnsolicitedOpcodes() []int32 {
	ops := make([]int32, 0, len(responseNames))
	for op := range responseNames {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}
