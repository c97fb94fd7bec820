package amqpwire

import (
	"fmt"

	intr "github.com/dadrian/amqpwire/internal"
)

// FieldType is the one-octet tag that precedes a field value on the wire.
type FieldType byte

const (
	FieldLongUint    FieldType = FieldType(intr.TagLongUint)    // 'i'
	FieldShortString FieldType = FieldType(intr.TagShortString) // 's'
	FieldLongString  FieldType = FieldType(intr.TagLongString)  // 'S'
	FieldTable       FieldType = FieldType(intr.TagTable)       // 'F'
	// FieldArray is recognized but never written.
	FieldArray FieldType = FieldType(intr.TagArray) // 'A'
)

func (t FieldType) String() string {
	switch t {
	case FieldLongUint:
		return "long-uint"
	case FieldShortString:
		return "short-string"
	case FieldLongString:
		return "long-string"
	case FieldTable:
		return "field-table"
	case FieldArray:
		return "field-array"
	default:
		return fmt.Sprintf("FieldType(0x%02x)", byte(t))
	}
}
