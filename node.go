package skipset

// handle addresses a node slot in the arena. The zero handle means "no
// node"; slot 0 is a permanent placeholder.
type handle uint32

const nilHandle handle = 0

// node holds a key and its per-level forward links. forward[0] is the
// base chain through every node; a node linked at level i is linked at
// every level below it. Links are non-owning: the arena owns all nodes.
type node[K any] struct {
	key     K
	forward []handle
}

func (n *node[K]) height() int {
	return len(n.forward)
}

func (n *node[K]) next(level int) handle {
	return n.forward[level]
}

func (n *node[K]) setNext(level int, h handle) {
	n.forward[level] = h
}
