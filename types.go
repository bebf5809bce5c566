// Package skipset implements an ordered set of unique keys backed by a
// probabilistic skip list. All nodes live in a slice-backed arena and are
// addressed by stable handles rather than raw pointers, so removal can
// recycle slots through a free list.
//
// A SkipList is not safe for concurrent use. Every operation, including
// iteration, must run on a single goroutine; the structure makes no
// degraded-mode guarantee under concurrent mutation.
package skipset

import "errors"

// Comparator defines a strict total order over keys: the result is
// negative when a sorts before b, zero when they are equal and positive
// when a sorts after b. The ordering must stay consistent for the
// lifetime of the list that holds it.
type Comparator[K any] func(a, b K) int

// EOI is end of iteration.
//
//lint:ignore ST1012 this is a sentinel error, not a typical error
var EOI = errors.New("EOI")

var (
	// ErrMalformedList is returned when a SkipList has not been
	// initialized properly. It is exported so callers interacting with
	// SkipList can detect improper initialization.
	ErrMalformedList = errors.New("the list was not init-ed properly")

	// ErrInvalidIterator is the panic value raised when Key is read from
	// an iterator that is not positioned at a node.
	ErrInvalidIterator = errors.New("iterator is not positioned at a node")

	// ErrNoPrev is returned by Iterator.Prev when the single-slot
	// look-behind is not armed.
	ErrNoPrev = errors.New("no look-behind step is available")
)
