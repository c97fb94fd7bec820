// Package tabledoc reads field tables from YAML documents.
//
// The top-level document must be a mapping. Mapping order is kept, so the
// fields of each table are encoded in the order they appear in the source.
// Integers become long-uint values, strings become short or long strings,
// mappings become nested tables and sequences become (unencodable) arrays.
package tabledoc

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dadrian/amqpwire"
)

// Encode reads a YAML document from r and writes the encoded table to w.
func Encode(r io.Reader, w io.Writer, opts ...amqpwire.Option) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := EncodeBytes(src, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// EncodeBytes parses a YAML document and returns its encoded table.
func EncodeBytes(src []byte, opts ...amqpwire.Option) ([]byte, error) {
	t, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return amqpwire.Marshal(t, opts...)
}

// Parse builds a Table from a YAML document. An empty document yields an
// empty table.
func Parse(src []byte) (*amqpwire.Table, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(src))
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return amqpwire.NewTable(), nil
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("tabledoc: line %d: expected a single document", extra.Line)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("tabledoc: expected a single document")
	}
	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("tabledoc: line %d: top level must be a mapping", root.Line)
	}
	return parseTable(root)
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func parseTable(n *yaml.Node) (*amqpwire.Table, error) {
	t := amqpwire.NewTable()
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("tabledoc: line %d: field name must be a scalar", k.Line)
		}
		if _, dup := t.Get(k.Value); dup {
			return nil, fmt.Errorf("tabledoc: line %d: duplicate field %q", k.Line, k.Value)
		}
		val, err := parseValue(v)
		if err != nil {
			return nil, fmt.Errorf("tabledoc: field %q: %w", k.Value, err)
		}
		t.SetValue(k.Value, val)
	}
	return t, nil
}

func parseValue(n *yaml.Node) (amqpwire.Value, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		return parseTable(n)
	case yaml.SequenceNode:
		arr := make(amqpwire.Array, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := parseValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return amqpwire.String(n.Value), nil
		case "!!int":
			i, err := strconv.ParseInt(n.Value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return amqpwire.ValueOf(i)
		default:
			return nil, &amqpwire.Error{
				Kind:   amqpwire.ErrUnsupportedKind,
				Detail: fmt.Sprintf("line %d: no encoding for %s value %q", n.Line, n.ShortTag(), n.Value),
			}
		}
	default:
		return nil, fmt.Errorf("line %d: unexpected node", n.Line)
	}
}
