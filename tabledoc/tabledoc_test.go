package tabledoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dadrian/amqpwire"
)

func TestEncode_KeepsDocumentOrder(t *testing.T) {
	src := []byte(`
zeta: 1
alpha: "ab"
`)
	out, err := EncodeBytes(src)
	if err != nil {
		t.Fatalf("EncodeBytes error: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x14,
		0x04, 'z', 'e', 't', 'a', 'i', 0x00, 0x00, 0x00, 0x01,
		0x05, 'a', 'l', 'p', 'h', 'a', 's', 0x02, 'a', 'b',
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestParse_NestedAndQuotedNumbers(t *testing.T) {
	src := []byte(`
version: "42"
props:
  x-max-length: 0x10
  mode: lazy
tail: 3
`)
	tbl, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := tbl.Get("version"); v != amqpwire.String("42") {
		t.Fatalf("version = %#v", v)
	}
	v, _ := tbl.Get("props")
	props, ok := v.(*amqpwire.Table)
	if !ok {
		t.Fatalf("props = %T", v)
	}
	if n, _ := props.Get("x-max-length"); n != amqpwire.LongUint(16) {
		t.Fatalf("x-max-length = %#v", n)
	}

	// Default policy drops "tail"; full tables keeps it.
	short, err := amqpwire.Marshal(tbl)
	if err != nil {
		t.Fatal(err)
	}
	full, err := EncodeBytes(src, amqpwire.WithFullTables())
	if err != nil {
		t.Fatal(err)
	}
	tail := []byte{0x04, 't', 'a', 'i', 'l', 'i', 0x00, 0x00, 0x00, 0x03}
	if bytes.Contains(short, tail) {
		t.Fatalf("default encoding kept field after nested table")
	}
	if !bytes.HasSuffix(full, tail) {
		t.Fatalf("full encoding missing tail field")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind amqpwire.ErrorKind
	}{
		{"bool", "flag: true", amqpwire.ErrUnsupportedKind},
		{"null", "v: ~", amqpwire.ErrUnsupportedKind},
		{"float", "v: 1.5", amqpwire.ErrUnsupportedKind},
		{"negative", "v: -1", amqpwire.ErrRange},
		{"too big", "v: 4294967296", amqpwire.ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if !errors.Is(err, &amqpwire.Error{Kind: tt.kind}) {
				t.Fatalf("got err=%v, want %v", err, tt.kind)
			}
		})
	}

	for _, src := range []string{"- a\n- b\n", "a: 1\na: 2\n", "[1]: x\n", "a: 1\n---\nb: 2\n"} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Fatalf("Parse(%q) succeeded", src)
		}
	}
}

func TestEncode_ArrayFails(t *testing.T) {
	var out bytes.Buffer
	err := Encode(strings.NewReader("list: [1, 2]\n"), &out)
	if !errors.Is(err, &amqpwire.Error{Kind: amqpwire.ErrUnsupportedKind}) {
		t.Fatalf("got err=%v, want unsupported kind", err)
	}
	if out.Len() != 0 {
		t.Fatalf("wrote %d bytes on failure", out.Len())
	}
}

func TestParse_Empty(t *testing.T) {
	tbl, err := Parse(nil)
	if err != nil || tbl.Len() != 0 {
		t.Fatalf("tbl=%v err=%v", tbl, err)
	}
}
