package skipset

// arena owns every node of a list. Handles stay stable across growth of
// the backing slice, so forward links survive reallocation. Released
// slots are pushed onto a free list and recycled by later allocations,
// together with the capacity of their forward slices.
type arena[K any] struct {
	nodes  []node[K]
	free   []handle
	reused int64
}

func newArena[K any]() *arena[K] {
	// Slot 0 is reserved so that the zero handle can mean "no node".
	return &arena[K]{nodes: make([]node[K], 1, 16)}
}

// at resolves a handle. The returned pointer is only valid until the
// next alloc call.
func (a *arena[K]) at(h handle) *node[K] {
	return &a.nodes[h]
}

func (a *arena[K]) alloc(key K, height int) handle {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		nd := &a.nodes[h]
		nd.key = key
		if cap(nd.forward) >= height {
			nd.forward = nd.forward[:height]
			for i := range nd.forward {
				nd.forward[i] = nilHandle
			}
		} else {
			nd.forward = make([]handle, height)
		}
		a.reused++
		return h
	}

	a.nodes = append(a.nodes, node[K]{key: key, forward: make([]handle, height)})
	return handle(len(a.nodes) - 1)
}

// release returns a slot to the free list. The key is zeroed so the
// arena does not pin caller memory; the forward slice keeps its capacity
// for reuse.
func (a *arena[K]) release(h handle) {
	if h == nilHandle {
		return
	}
	nd := &a.nodes[h]
	var zero K
	nd.key = zero
	for i := range nd.forward {
		nd.forward[i] = nilHandle
	}
	nd.forward = nd.forward[:0]
	a.free = append(a.free, h)
}

// inUse counts live slots, the placeholder excluded.
func (a *arena[K]) inUse() int {
	return len(a.nodes) - 1 - len(a.free)
}
