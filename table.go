package amqpwire

import (
	"sort"
	"strconv"

	intr "github.com/dadrian/amqpwire/internal"
)

// Value is a field value. The set of implementations is closed: LongUint,
// String, *Table and Array.
type Value interface {
	fieldType() FieldType
}

// LongUint is an unsigned 32-bit field value.
type LongUint uint32

// String is a text field value. It is written as a short string when its
// UTF-8 form is at most 255 bytes and as a long string otherwise.
type String string

// Array is a field array. It can be held in a table but encoding it fails.
type Array []Value

func (LongUint) fieldType() FieldType { return FieldLongUint }
func (Array) fieldType() FieldType    { return FieldArray }
func (*Table) fieldType() FieldType   { return FieldTable }

func (s String) fieldType() FieldType {
	if len(s) <= intr.MaxShortString {
		return FieldShortString
	}
	return FieldLongString
}

// Table is a field table: a mapping from field name to Value that iterates
// in insertion order. The zero value is an empty table.
type Table struct {
	names  []string
	values []Value
	index  map[string]int
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{} }

// Set converts v with ValueOf and stores it under name. Replacing an
// existing name keeps its original position.
func (t *Table) Set(name string, v any) error {
	val, err := ValueOf(v)
	if err != nil {
		return atField(name, err)
	}
	t.SetValue(name, val)
	return nil
}

// SetValue stores v under name.
func (t *Table) SetValue(name string, v Value) {
	if i, ok := t.index[name]; ok {
		t.values[i] = v
		return
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.values = append(t.values, v)
}

// Get returns the value stored under name.
func (t *Table) Get(name string) (Value, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.values[i], true
}

// Len returns the number of fields.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Range calls fn for each field in insertion order until fn returns false.
func (t *Table) Range(fn func(name string, v Value) bool) {
	if t == nil {
		return
	}
	for i, name := range t.names {
		if !fn(name, t.values[i]) {
			return
		}
	}
}

// ValueOf converts a Go value into a field Value.
//
// Integers of any kind become LongUint and must lie in [0, 2^32-1].
// Strings become String. A *Table is used as is; a map[string]any becomes
// a nested table with its keys in sorted order. Slices and arrays become
// Array. Anything else fails with ErrUnsupportedKind. Maps and slices
// nested deeper than the encoder's table depth limit fail with ErrRange.
func ValueOf(v any) (Value, error) {
	return valueOf(v, 0)
}

func valueOf(v any, depth int) (Value, error) {
	switch x := v.(type) {
	case Value:
		if tbl, ok := x.(*Table); ok && tbl == nil {
			return nil, unsupportedf("nil table")
		}
		return x, nil
	case string:
		return String(x), nil
	case map[string]any:
		return tableFromMap(x, depth)
	}
	if n, ok := intr.IntegerOf(v); ok {
		if !intr.InRange(n, intr.MaxLongUint) {
			return nil, rangeErrorf("integer %d outside long-uint range", n)
		}
		return LongUint(n), nil
	}
	if elems, ok := intr.Elems(v); ok {
		if depth >= maxTableDepth {
			return nil, rangeErrorf("values nested deeper than %d", maxTableDepth)
		}
		arr := make(Array, len(elems))
		for i, e := range elems {
			ev, err := valueOf(e, depth+1)
			if err != nil {
				return nil, atField(strconv.Itoa(i), err)
			}
			arr[i] = ev
		}
		return arr, nil
	}
	return nil, unsupportedf("no encoding for %s value", intr.KindName(v))
}

func tableFromMap(m map[string]any, depth int) (*Table, error) {
	if depth >= maxTableDepth {
		return nil, rangeErrorf("tables nested deeper than %d", maxTableDepth)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	t := NewTable()
	for _, k := range keys {
		val, err := valueOf(m[k], depth+1)
		if err != nil {
			return nil, atField(k, err)
		}
		t.SetValue(k, val)
	}
	return t, nil
}
