package internal

import "math"

// Wire limits for AMQP 0-9-1 primitive domains.
const (
	MaxOctet       = math.MaxUint8
	MaxShortUint   = math.MaxUint16
	MaxLongUint    = math.MaxUint32
	MaxShortString = math.MaxUint8
	MaxLongString  = math.MaxUint32
)

// InRange reports whether 0 <= v <= max.
func InRange(v int64, max uint64) bool {
	return v >= 0 && uint64(v) <= max
}

// FitsLongString reports whether n bytes can be carried by a long string.
func FitsLongString(n int) bool {
	return uint64(n) <= MaxLongString
}
