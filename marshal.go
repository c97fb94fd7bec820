package amqpwire

// Marshal encodes t as a field table and returns the bytes.
func Marshal(t *Table, opts ...Option) ([]byte, error) {
	enc := NewEncoder(opts...)
	if err := enc.EncodeTable(t); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

// MarshalMap encodes m as a field table with its keys in sorted order.
func MarshalMap(m map[string]any, opts ...Option) ([]byte, error) {
	t, err := tableFromMap(m, 0)
	if err != nil {
		return nil, err
	}
	return Marshal(t, opts...)
}
