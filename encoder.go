package amqpwire

import (
	intr "github.com/dadrian/amqpwire/internal"
)

// maxTableDepth bounds recursion through nested (or self-referencing) tables.
const maxTableDepth = 256

// Encoder appends AMQP 0-9-1 encoded values to its own buffer. An Encoder
// is not safe for concurrent use; create one per encode.
type Encoder struct {
	buf        *intr.Buffer
	fullTables bool
	depth      int
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithFullTables makes table encoding continue past nested table fields.
// By default every field that follows a nested table in the same table is
// dropped, which is what existing consumers of this encoder receive.
func WithFullTables() Option {
	return func(e *Encoder) { e.fullTables = true }
}

// NewEncoder creates an encoder with an empty buffer.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{buf: new(intr.Buffer)}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Write appends p unvalidated. It implements io.Writer and never fails.
func (e *Encoder) Write(p []byte) (int, error) { return e.buf.Write(p) }

// Bytes returns a snapshot of everything encoded so far.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int { return e.buf.Len() }

// EncodeOctet writes v as a single byte.
func (e *Encoder) EncodeOctet(v int64) error {
	if !intr.InRange(v, intr.MaxOctet) {
		return rangeErrorf("%d is not a valid octet", v)
	}
	return e.buf.WriteByte(byte(v))
}

// EncodeShortUint writes v as 2 big-endian bytes.
func (e *Encoder) EncodeShortUint(v int64) error {
	if !intr.InRange(v, intr.MaxShortUint) {
		return rangeErrorf("%d is not a valid short-uint", v)
	}
	_, err := e.buf.Write(intr.AppendU16(nil, uint16(v)))
	return err
}

// EncodeLongUint writes v as 4 big-endian bytes.
func (e *Encoder) EncodeLongUint(v int64) error {
	if !intr.InRange(v, intr.MaxLongUint) {
		return rangeErrorf("%d is not a valid long-uint", v)
	}
	_, err := e.buf.Write(intr.AppendU32(nil, uint32(v)))
	return err
}

// EncodeLongLongUint is not implemented and always returns ErrNotImplemented.
// Values are never truncated to 32 bits.
func (e *Encoder) EncodeLongLongUint(v uint64) error { return ErrNotImplemented }

// EncodeShortString writes s with a 1-byte length prefix. The length
// counts UTF-8 bytes, not characters.
func (e *Encoder) EncodeShortString(s string) error {
	if len(s) > intr.MaxShortString {
		return rangeErrorf("%d bytes is too long for a short string", len(s))
	}
	e.buf.WriteByte(byte(len(s)))
	_, err := e.buf.WriteString(s)
	return err
}

// EncodeLongString writes s with a 4-byte big-endian length prefix.
func (e *Encoder) EncodeLongString(s string) error {
	if !intr.FitsLongString(len(s)) {
		return rangeErrorf("%d bytes is too long for a long string", len(s))
	}
	if err := e.EncodeLongUint(int64(len(s))); err != nil {
		return err
	}
	_, err := e.buf.WriteString(s)
	return err
}

// EncodeTable writes t as a length-prefixed field table. The fields are
// encoded into a separate buffer first, so on failure nothing is appended
// to e. A nil table encodes as an empty one.
func (e *Encoder) EncodeTable(t *Table) error {
	if e.depth >= maxTableDepth {
		return rangeErrorf("tables nested deeper than %d", maxTableDepth)
	}
	n := &Encoder{buf: intr.GetBuffer(), fullTables: e.fullTables, depth: e.depth + 1}
	defer intr.PutBuffer(n.buf)

	if err := n.encodeFields(t); err != nil {
		return err
	}
	body := n.buf.View()
	if err := e.EncodeLongUint(int64(len(body))); err != nil {
		return err
	}
	_, err := e.buf.Write(body)
	return err
}

func (e *Encoder) encodeFields(t *Table) error {
	if t == nil {
		return nil
	}
	for i, name := range t.names {
		v := t.values[i]
		if err := e.EncodeShortString(name); err != nil {
			return err
		}
		if err := e.encodeValue(v); err != nil {
			return atField(name, err)
		}
		if _, ok := v.(*Table); ok && !e.fullTables {
			break
		}
	}
	return nil
}

func (e *Encoder) encodeValue(v Value) error {
	switch x := v.(type) {
	case LongUint:
		e.buf.WriteByte(byte(FieldLongUint))
		return e.EncodeLongUint(int64(x))
	case String:
		if len(x) <= intr.MaxShortString {
			e.buf.WriteByte(byte(FieldShortString))
			return e.EncodeShortString(string(x))
		}
		if !intr.FitsLongString(len(x)) {
			return rangeErrorf("%d bytes is too long for a long string", len(x))
		}
		e.buf.WriteByte(byte(FieldLongString))
		return e.EncodeLongString(string(x))
	case Array:
		return unsupportedf("array fields are not supported")
	case *Table:
		e.buf.WriteByte(byte(FieldTable))
		return e.EncodeTable(x)
	case nil:
		return unsupportedf("nil value")
	default:
		return unsupportedf("no encoding for %T value", v)
	}
}
