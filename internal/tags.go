package internal

// Field value type tags. The letters follow the AMQP 0-9-1 field-table
// grammar and must match the decoder on the other side.
const (
	TagLongUint    byte = 'i'
	TagShortString byte = 's'
	TagLongString  byte = 'S'
	TagTable       byte = 'F'
	TagArray       byte = 'A'
)

// PayloadSize returns the number of payload bytes that follow tag t, given
// the bytes starting right after the tag. ok is false for unknown tags or
// truncated input.
func PayloadSize(t byte, rest []byte) (n int, ok bool) {
	switch t {
	case TagLongUint:
		return 4, len(rest) >= 4
	case TagShortString:
		if len(rest) < 1 {
			return 0, false
		}
		n = 1 + int(rest[0])
	case TagLongString, TagTable, TagArray:
		if len(rest) < 4 {
			return 0, false
		}
		n = 4 + int(U32(rest))
	default:
		return 0, false
	}
	return n, len(rest) >= n
}
