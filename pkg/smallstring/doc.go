// Package smallstring provides a resizable, append-oriented byte buffer
// for building textual output incrementally without redundant
// allocations.
//
// A Buffer owns a contiguous byte region and appends raw byte spans,
// text, and base-10 rendered integers directly in place. Growth is
// exact fit: every reallocation sizes the region to precisely what the
// pending append needs, trading amortized-O(1) appends for simple and
// predictable memory use. Callers appending many small pieces on a hot
// path should reserve headroom up front with EnsureFit.
//
// Content is consumed from the front with Pop and read in place as a
// zero-copy view with Bytes. The view is only valid until the next
// mutating call.
//
// The backing region is a pluggable Storage, injected at construction.
// SliceStorage (the default) keeps the region on the heap; on Linux,
// MmapStorage keeps it in a mapped file that grows with the buffer.
// Pool recycles whole Buffers when many short-lived ones are built.
//
// Buffers are single-owner and not safe for concurrent use. Ownership
// can be transferred with Move, which leaves the source empty.
package smallstring
