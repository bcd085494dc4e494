// Package wire holds the records of every radio HAL schema generation as the
// transport hands them over. Records are a sealed sum type: only this package
// can add variants, and every variant must be listed in KnownRecords.
package wire

import (
	"fmt"
	"math"
)

// Generation is a radio HAL schema version
type Generation int

const (
	V1_0 Generation = iota
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
)

// Generations lists every known generation, oldest first
func Generations() []Generation {
	return []Generation{V1_0, V1_1, V1_2, V1_3, V1_4, V1_5, V1_6}
}

func (g Generation) String() string {
	if g < V1_0 || g > V1_6 {
		return fmt.Sprintf("Generation(%d)", int(g))
	}
	return fmt.Sprintf("1.%d", int(g))
}

// Wire level sentinels
const (
	IntMax          int32  = math.MaxInt32
	LongMax         int64  = math.MaxInt64
	InvalidCapacity uint32 = math.MaxUint32
)

// Record is any structured payload of a known generation
type Record interface {
	// Introduced is the first generation that carries this shape
	Introduced() Generation
	isRecord()
}

// Event is one unsolicited message as delivered by the transport
type Event struct {
	Opcode     int32
	Generation Generation
	Payload    Record
}

// Raw carries unstructured payloads (strings, PDUs, integers) untouched
type Raw struct {
	Value any
}

func (Raw) Introduced() Generation { return V1_0 }
func (Raw) isRecord()              {}

// Optional models the HIDL safe_union {noinit, value}
type Optional[T any] struct {
	Present bool
	Value   T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}
