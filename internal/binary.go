package internal

import "encoding/binary"

var be = binary.BigEndian

// AppendU16 appends v as 2 bytes, most significant first.
func AppendU16(dst []byte, v uint16) []byte { return be.AppendUint16(dst, v) }

// AppendU32 appends v as 4 bytes, most significant first.
func AppendU32(dst []byte, v uint32) []byte { return be.AppendUint32(dst, v) }

func U16(b []byte) uint16 { return be.Uint16(b) }
func U32(b []byte) uint32 { return be.Uint32(b) }
