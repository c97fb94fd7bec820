// Package amqpwire encodes values into the AMQP 0-9-1 wire format:
// octets, 16 and 32-bit unsigned integers, short and long strings, and
// nested field tables.
//
// An Encoder owns an append-only buffer. Callers encode primitives or
// tables in sequence and take the result with Bytes. Field tables are
// built from an ordered Table whose values are one of LongUint, String,
// *Table or Array; arrays are recognized but cannot be encoded.
//
// The package has no notion of frames, channels or connections.
package amqpwire
