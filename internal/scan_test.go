package internal

import (
	"bytes"
	"testing"
)

func TestPayloadSize(t *testing.T) {
	if n, ok := PayloadSize(TagLongUint, []byte{0, 0, 0, 1}); !ok || n != 4 {
		t.Fatalf("long-uint: (%d,%v)", n, ok)
	}
	if n, ok := PayloadSize(TagShortString, []byte{2, 'a', 'b'}); !ok || n != 3 {
		t.Fatalf("short-string: (%d,%v)", n, ok)
	}
	if n, ok := PayloadSize(TagTable, []byte{0, 0, 0, 1, 0xAA}); !ok || n != 5 {
		t.Fatalf("table: (%d,%v)", n, ok)
	}
	if _, ok := PayloadSize(TagLongString, []byte{0, 0, 0, 9, 'x'}); ok {
		t.Fatalf("truncated long string accepted")
	}
	if _, ok := PayloadSize('t', []byte{1}); ok {
		t.Fatalf("unknown tag accepted")
	}
}

func TestScanTable(t *testing.T) {
	nested := []byte{0x00, 0x00, 0x00, 0x07, 0x01, 'x', TagLongUint, 0x00, 0x00, 0x00, 0x01}
	var body []byte
	body = append(body, 0x01, 'a', TagShortString, 0x02, 'h', 'i')
	body = append(body, 0x01, 'n', TagTable)
	body = append(body, nested...)
	b := AppendU32(nil, uint32(len(body)))
	b = append(b, body...)
	b = append(b, 0xEE)

	entries, rest, err := ScanTable(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rest, []byte{0xEE}) {
		t.Fatalf("rest = %v", rest)
	}
	if len(entries) != 2 || entries[0].Name != "a" || entries[1].Name != "n" {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[1].Tag != TagTable || !bytes.Equal(entries[1].Payload, nested) {
		t.Fatalf("nested payload = %v", entries[1].Payload)
	}
	inner, rest, err := ScanTable(entries[1].Payload)
	if err != nil || len(rest) != 0 || len(inner) != 1 || inner[0].Name != "x" {
		t.Fatalf("inner err=%v entries=%+v rest=%v", err, inner, rest)
	}
}

func TestScanTableErrors(t *testing.T) {
	bad := [][]byte{
		{0x00, 0x00},
		{0x00, 0x00, 0x00, 0x05, 0x01},
		{0x00, 0x00, 0x00, 0x03, 0x01, 'a', 'Z'},
		{0x00, 0x00, 0x00, 0x02, 0x01, 'a'},
	}
	for _, b := range bad {
		if _, _, err := ScanTable(b); err == nil {
			t.Fatalf("ScanTable(%v) succeeded", b)
		}
	}
}

func TestReadStrings(t *testing.T) {
	s, rest, err := ReadShortString([]byte{0x02, 'h', 'i', 0x09})
	if err != nil || s != "hi" || !bytes.Equal(rest, []byte{0x09}) {
		t.Fatalf("short: s=%q rest=%v err=%v", s, rest, err)
	}
	s, rest, err = ReadLongString([]byte{0x00, 0x00, 0x00, 0x01, 'z'})
	if err != nil || s != "z" || len(rest) != 0 {
		t.Fatalf("long: s=%q rest=%v err=%v", s, rest, err)
	}
	if _, _, err := ReadLongString([]byte{0x00, 0x00, 0x00, 0x02, 'z'}); err == nil {
		t.Fatalf("truncated long string accepted")
	}
}
