package internal

import "sync"

// Buffer is an append-only byte accumulator. It is owned by exactly one
// encoder and is never truncated while in use.
type Buffer struct {
	b []byte
}

// Write appends p without validation. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.b = append(b.b, p...)
	return len(p), nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.b = append(b.b, c)
	return nil
}

// WriteString appends the raw bytes of s.
func (b *Buffer) WriteString(s string) (int, error) {
	b.b = append(b.b, s...)
	return len(s), nil
}

// Len returns the number of bytes appended so far.
func (b *Buffer) Len() int { return len(b.b) }

// Bytes returns a copy of everything appended so far. Later writes never
// show up in a returned snapshot.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.b))
	copy(out, b.b)
	return out
}

// View returns the accumulated bytes without copying. The slice is only
// valid until the next write.
func (b *Buffer) View() []byte { return b.b }

// maxPooledCap keeps buffers that grew for large strings out of the pool.
const maxPooledCap = 64 << 10

var bufPool = sync.Pool{New: func() any { return new(Buffer) }}

func GetBuffer() *Buffer {
	b := bufPool.Get().(*Buffer)
	b.b = b.b[:0]
	return b
}

func PutBuffer(b *Buffer) {
	if b != nil && cap(b.b) <= maxPooledCap {
		bufPool.Put(b)
	}
}
