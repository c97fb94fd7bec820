package internal

import (
	"errors"
	"fmt"
)

var errShort = errors.New("unexpected end of input")

// Entry is one raw field of an encoded table.
type Entry struct {
	Name    string
	Tag     byte
	Payload []byte // everything after the tag, including any length prefix
}

// ReadLongUint reads a big-endian 32-bit value from the front of b.
func ReadLongUint(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, b, errShort
	}
	return U32(b), b[4:], nil
}

// ReadShortString reads a 1-byte length prefixed string from the front of b.
func ReadShortString(b []byte) (string, []byte, error) {
	if len(b) < 1 {
		return "", b, errShort
	}
	n := int(b[0])
	if len(b) < 1+n {
		return "", b, errShort
	}
	return string(b[1 : 1+n]), b[1+n:], nil
}

// ReadLongString reads a 4-byte length prefixed string from the front of b.
func ReadLongString(b []byte) (string, []byte, error) {
	n, rest, err := ReadLongUint(b)
	if err != nil {
		return "", b, err
	}
	if uint64(len(rest)) < uint64(n) {
		return "", b, errShort
	}
	return string(rest[:n]), rest[n:], nil
}

// ScanTable walks the length-prefixed table at the front of b without
// interpreting values. It returns the entries and the remainder of b after
// the table.
func ScanTable(b []byte) ([]Entry, []byte, error) {
	n, rest, err := ReadLongUint(b)
	if err != nil {
		return nil, b, err
	}
	if uint64(len(rest)) < uint64(n) {
		return nil, b, fmt.Errorf("table length %d exceeds %d available bytes", n, len(rest))
	}
	body, tail := rest[:n], rest[n:]
	var entries []Entry
	for len(body) > 0 {
		name, r, err := ReadShortString(body)
		if err != nil {
			return nil, b, err
		}
		if len(r) < 1 {
			return nil, b, errShort
		}
		tag := r[0]
		size, ok := PayloadSize(tag, r[1:])
		if !ok {
			return nil, b, fmt.Errorf("field %q: bad payload for tag 0x%02x", name, tag)
		}
		entries = append(entries, Entry{Name: name, Tag: tag, Payload: r[1 : 1+size]})
		body = r[1+size:]
	}
	return entries, tail, nil
}
