package skipset

import "cmp"

// SkipList is a probabilistic ordered set of unique keys.
type SkipList[K any] struct {
	cmp   Comparator[K]
	cfg   Config
	src   Source
	arena *arena[K]

	// head is the sentinel: a node with maxHeight forward slots and no
	// semantic key, anchoring every level's chain.
	head handle

	// level is the number of live levels. It grows on insert only and is
	// never lowered by Remove; an empty top level costs one wasted link
	// follow per search, which beats rescanning for the true maximum.
	level  int
	length int

	// preds is the predecessor buffer shared by Insert and Remove, sized
	// to cfg.maxHeight once. Safe to reuse under the single-writer
	// contract.
	preds []handle

	stats Stats
}

// New returns an empty SkipList ordered by cmp. It panics with
// ErrMalformedList when cmp is nil.
func New[K any](compare Comparator[K], opts ...Option) *SkipList[K] {
	if compare == nil {
		panic(ErrMalformedList)
	}

	cfg := NewConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	src := cfg.source
	if src == nil {
		src = NewRNG(cfg.seed)
	}

	a := newArena[K]()
	var zero K
	return &SkipList[K]{
		cmp:   compare,
		cfg:   cfg,
		src:   src,
		arena: a,
		head:  a.alloc(zero, cfg.maxHeight),
		level: 1,
		preds: make([]handle, cfg.maxHeight),
	}
}

// NewOrdered returns an empty SkipList for a builtin ordered key type.
func NewOrdered[K cmp.Ordered](opts ...Option) *SkipList[K] {
	return New[K](cmp.Compare[K], opts...)
}

// Insert adds key to the set and reports whether a node was created.
// Inserting a key that is already present is a no-op, not an error:
// repeated inserts of the same key never create duplicates.
func (sl *SkipList[K]) Insert(key K) bool {
	cand := sl.locate(key, sl.preds)
	if cand != nilHandle && sl.cmp(sl.arena.at(cand).key, key) == 0 {
		sl.stats.RejectedInserts++
		return false
	}

	height := heightDraw(sl.src, sl.cfg.maxHeight, sl.cfg.p)
	if height > sl.level {
		// The head already has slots for every configured level, and
		// locate pre-seeded preds with the head above the old maximum;
		// extension is just raising the live level count.
		sl.level = height
	}

	nh := sl.arena.alloc(key, height)
	for l := 0; l < height; l++ {
		pred := sl.arena.at(sl.preds[l])
		sl.arena.at(nh).setNext(l, pred.next(l))
		pred.setNext(l, nh)
	}

	sl.length++
	sl.stats.Inserts++
	return true
}

// Remove deletes key from the set and reports whether it was present.
// Removing an absent key is a legal no-op. The node is unlinked from
// exactly the levels it participates in and its slot is returned to the
// arena immediately.
func (sl *SkipList[K]) Remove(key K) bool {
	cand := sl.locate(key, sl.preds)
	if cand == nilHandle || sl.cmp(sl.arena.at(cand).key, key) != 0 {
		sl.stats.RemoveMisses++
		return false
	}

	height := sl.arena.at(cand).height()
	for l := 0; l < height; l++ {
		sl.arena.at(sl.preds[l]).setNext(l, sl.arena.at(cand).next(l))
	}

	sl.arena.release(cand)
	sl.length--
	sl.stats.Removes++
	return true
}

// Contains reports whether key is in the set. No side effects.
func (sl *SkipList[K]) Contains(key K) bool {
	nh := sl.seekGE(key)
	return nh != nilHandle && sl.cmp(sl.arena.at(nh).key, key) == 0
}

// Len returns the number of keys currently stored.
func (sl *SkipList[K]) Len() int {
	return sl.length
}

// Levels returns the number of live levels. At least 1, even when empty.
func (sl *SkipList[K]) Levels() int {
	return sl.level
}

// First returns the smallest key, if any.
func (sl *SkipList[K]) First() (K, bool) {
	nh := sl.arena.at(sl.head).next(0)
	if nh == nilHandle {
		var zero K
		return zero, false
	}
	return sl.arena.at(nh).key, true
}

// Last returns the largest key, if any. It descends level by level, so
// it costs O(log n) expected rather than a full base-chain walk.
func (sl *SkipList[K]) Last() (K, bool) {
	x := sl.head
	for l := sl.level - 1; l >= 0; l-- {
		for {
			nh := sl.arena.at(x).next(l)
			if nh == nilHandle {
				break
			}
			x = nh
		}
	}
	if x == sl.head {
		var zero K
		return zero, false
	}
	return sl.arena.at(x).key, true
}

// Foreach visits keys in ascending order until action returns false.
func (sl *SkipList[K]) Foreach(action func(i int, key K) bool) {
	i := 0
	for nh := sl.arena.at(sl.head).next(0); nh != nilHandle; nh = sl.arena.at(nh).next(0) {
		if !action(i, sl.arena.at(nh).key) {
			break
		}
		i++
	}
}

// Clear removes all entries from the list, resetting it to its initial
// state. Live iterators are invalidated.
func (sl *SkipList[K]) Clear() {
	if sl == nil || sl.arena == nil {
		panic(ErrMalformedList)
	}

	a := newArena[K]()
	var zero K
	sl.arena = a
	sl.head = a.alloc(zero, sl.cfg.maxHeight)
	sl.level = 1
	sl.length = 0
}
