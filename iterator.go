package skipset

// Iterator is a cursor over the base chain of one list. It starts
// unpositioned; call a Seek* method before reading. The cursor keeps a
// single-slot look-behind instead of a full backward walk: Prev is legal
// only while that slot is armed.
//
// Structurally mutating the bound list invalidates live iterators;
// continuing to use one afterwards is undefined by contract.
type Iterator[K any] struct {
	list *SkipList[K]
	curr handle

	// prev is the look-behind slot: the node the cursor most recently
	// stepped over, or the nil handle when unarmed.
	prev  handle
	valid bool
}

// Iterator returns a new unpositioned iterator bound to the list.
func (sl *SkipList[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{list: sl}
}

// Valid reports whether the cursor currently denotes a node.
func (it *Iterator[K]) Valid() bool {
	return it != nil && it.valid
}

// Key returns the key under the cursor. It panics with
// ErrInvalidIterator when the cursor is unpositioned or exhausted;
// guessing a stale key would corrupt caller logic undetectably.
func (it *Iterator[K]) Key() K {
	if !it.Valid() {
		panic(ErrInvalidIterator)
	}
	return it.list.arena.at(it.curr).key
}

// SeekToFirst positions the cursor at the smallest key. The cursor ends
// exhausted when the list is empty.
func (it *Iterator[K]) SeekToFirst() {
	it.prev = nilHandle
	it.position(it.list.arena.at(it.list.head).next(0))
}

// SeekToLast walks the base chain to its end, arming the look-behind
// with the second-to-last node. O(n): links are forward-only.
func (it *Iterator[K]) SeekToLast() {
	list := it.list
	it.prev = nilHandle

	x := list.arena.at(list.head).next(0)
	if x == nilHandle {
		it.position(nilHandle)
		return
	}
	for {
		nh := list.arena.at(x).next(0)
		if nh == nilHandle {
			break
		}
		it.prev = x
		x = nh
	}
	it.position(x)
}

// Seek positions the cursor at the first key >= target by walking the
// base chain forward from the current position. A cursor already at or
// past target stays put, and a cursor far before it pays O(distance);
// callers wanting an absolute seek restart from SeekToFirst.
func (it *Iterator[K]) Seek(target K) {
	list := it.list

	x := it.curr
	if !it.valid {
		it.prev = nilHandle
		x = list.arena.at(list.head).next(0)
	}
	for x != nilHandle && list.cmp(list.arena.at(x).key, target) < 0 {
		it.prev = x
		x = list.arena.at(x).next(0)
	}
	it.position(x)
}

// Next advances one base-chain step, arming the look-behind with the
// departed node. It returns EOI when the cursor falls off the end, or
// when called on a cursor that is not valid.
func (it *Iterator[K]) Next() error {
	if !it.Valid() {
		return EOI
	}

	nh := it.list.arena.at(it.curr).next(0)
	it.prev = it.curr
	it.curr = nh
	if nh == nilHandle {
		it.valid = false
		return EOI
	}
	return nil
}

// Prev moves back exactly one step, consuming the look-behind slot. A
// second Prev without an intervening Next (or walking seek) returns
// ErrNoPrev.
func (it *Iterator[K]) Prev() error {
	if it == nil || it.prev == nilHandle {
		return ErrNoPrev
	}
	it.curr = it.prev
	it.prev = nilHandle
	it.valid = true
	return nil
}

func (it *Iterator[K]) position(h handle) {
	it.curr = h
	it.valid = h != nilHandle
}
