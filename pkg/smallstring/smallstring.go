package smallstring

import "bytes"

// DefaultCapacity is the initial capacity used by New.
const DefaultCapacity = 256

// Buffer is an owned, contiguous, growable byte region with a logical
// length that never exceeds the physical capacity. Bytes in [0, Len())
// are live content; the rest of the region is unspecified.
//
// All operations are synchronous and complete before returning. A
// Buffer must not be shared between goroutines without external
// synchronization.
type Buffer struct {
	storage Storage
	length  int
}

// New creates an empty buffer with DefaultCapacity of heap storage.
func New() *Buffer {
	return NewSize(DefaultCapacity)
}

// NewSize creates an empty buffer with the given initial capacity.
func NewSize(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{storage: NewSliceStorage(capacity)}
}

// NewStorage creates an empty buffer on a caller-supplied storage
// strategy. The storage's current region size is the initial capacity.
func NewStorage(s Storage) *Buffer {
	return &Buffer{storage: s}
}

// Capacity returns the physical size of the backing region.
func (b *Buffer) Capacity() int {
	return len(b.storage.Bytes())
}

// Len returns the number of bytes of live content.
func (b *Buffer) Len() int {
	return b.length
}

// Remaining returns how many bytes fit before the next growth.
func (b *Buffer) Remaining() int {
	return b.Capacity() - b.length
}

// Reset forgets the content but keeps the storage for reuse. O(1).
func (b *Buffer) Reset() {
	b.length = 0
}

// Release frees the backing storage entirely, dropping the capacity to
// zero. Use it instead of Reset when the buffer will not be reused
// soon. With the default heap storage the buffer remains usable and
// regrows from empty on the next append.
func (b *Buffer) Release() error {
	b.length = 0
	return b.storage.Release()
}

// EnsureFit guarantees that appending n more bytes will not trigger
// another growth. Growth is exact fit: the region is resized to
// precisely Len()+n, never more. Appending one byte at a time without a
// reservation is therefore O(n²); reserve up front on hot paths.
func (b *Buffer) EnsureFit(n int) error {
	need := b.length + n
	if need <= b.Capacity() {
		return nil
	}
	_, err := b.storage.Resize(need)
	return err
}

// Push appends a byte span. Either all of p is appended or, if growth
// fails, the buffer is left unchanged.
func (b *Buffer) Push(p []byte) error {
	if err := b.EnsureFit(len(p)); err != nil {
		return err
	}
	copy(b.storage.Bytes()[b.length:], p)
	b.length += len(p)
	return nil
}

// PushString appends the bytes of s. No encoding transform is applied.
func (b *Buffer) PushString(s string) error {
	if err := b.EnsureFit(len(s)); err != nil {
		return err
	}
	copy(b.storage.Bytes()[b.length:], s)
	b.length += len(s)
	return nil
}

// PushByte appends a single byte.
func (b *Buffer) PushByte(c byte) error {
	if err := b.EnsureFit(1); err != nil {
		return err
	}
	b.storage.Bytes()[b.length] = c
	b.length++
	return nil
}

// Pop removes the first n bytes of content, shifting the remainder to
// the front of the region. Popping Len() bytes or more clears the
// buffer; it is never an error. O(Len()), no reallocation.
func (b *Buffer) Pop(n int) {
	if n <= 0 {
		return
	}
	if n >= b.length {
		b.length = 0
		return
	}
	data := b.storage.Bytes()
	copy(data, data[n:b.length])
	b.length -= n
}

// Bytes returns the live content [0, Len()) as a zero-copy view into
// the backing region. The view is invalidated by any subsequent
// mutating call; do not retain it across one.
func (b *Buffer) Bytes() []byte {
	return b.storage.Bytes()[:b.length]
}

// String returns a copy of the content as a string.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Find returns the position of the first occurrence of pattern at or
// after from, or -1 when absent. The search is byte-wise.
func (b *Buffer) Find(pattern []byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > b.length {
		return -1
	}
	i := bytes.Index(b.Bytes()[from:], pattern)
	if i < 0 {
		return -1
	}
	return from + i
}

// FindString is Find for a string pattern.
func (b *Buffer) FindString(pattern string, from int) int {
	return b.Find([]byte(pattern), from)
}

// Move transfers the storage and content to a new Buffer, leaving the
// receiver empty with zero capacity. This is the ownership-transfer
// analogue of a move: the content is never duplicated.
func (b *Buffer) Move() *Buffer {
	moved := &Buffer{storage: b.storage, length: b.length}
	b.storage = NewSliceStorage(0)
	b.length = 0
	return moved
}
