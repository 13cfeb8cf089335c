package smallstring

// Storage is the backing byte region a Buffer appends into.
//
// Implementations own one contiguous region; its current size is the
// buffer's capacity. Resize reallocates the region to exactly n bytes
// and carries the existing content over (up to the smaller of the old
// and new sizes). Release frees the region entirely, after which the
// capacity is zero.
//
// Resize is the only operation that can fail; a failed Resize must
// leave the previous region intact so the buffer stays usable.
type Storage interface {
	Bytes() []byte
	Resize(n int) ([]byte, error)
	Release() error
}

// SliceStorage is the default heap-backed Storage.
type SliceStorage struct {
	data []byte
}

// NewSliceStorage allocates a heap region of the given size.
func NewSliceStorage(size int) *SliceStorage {
	return &SliceStorage{data: make([]byte, size)}
}

// Bytes returns the current backing region.
func (s *SliceStorage) Bytes() []byte {
	return s.data
}

// Resize reallocates the region to exactly n bytes, preserving content.
func (s *SliceStorage) Resize(n int) ([]byte, error) {
	if n == len(s.data) {
		return s.data, nil
	}
	next := make([]byte, n)
	copy(next, s.data)
	s.data = next
	return next, nil
}

// Release drops the region. A later Resize allocates a fresh one.
func (s *SliceStorage) Release() error {
	s.data = nil
	return nil
}
