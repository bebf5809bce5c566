package skipset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaAllocAndResolve(t *testing.T) {
	t.Parallel()
	a := newArena[int]()

	h1 := a.alloc(10, 3)
	h2 := a.alloc(20, 1)

	require.NotEqual(t, nilHandle, h1)
	require.NotEqual(t, h1, h2)
	require.Equal(t, 10, a.at(h1).key)
	require.Equal(t, 20, a.at(h2).key)
	require.Equal(t, 3, a.at(h1).height())
	require.Equal(t, 2, a.inUse())
}

func TestArenaHandlesSurviveGrowth(t *testing.T) {
	t.Parallel()
	a := newArena[int]()

	first := a.alloc(0, 2)
	for i := 1; i < 1000; i++ {
		a.alloc(i, 2)
	}

	// The backing slice has reallocated several times by now; the handle
	// must still resolve to the original slot.
	require.Equal(t, 0, a.at(first).key)
	require.Equal(t, 1000, a.inUse())
}

func TestArenaReleaseRecyclesSlot(t *testing.T) {
	t.Parallel()
	a := newArena[int]()

	h := a.alloc(42, 8)
	a.release(h)
	require.Equal(t, 0, a.inUse())

	reused := a.alloc(7, 4)
	require.Equal(t, h, reused)
	require.Equal(t, int64(1), a.reused)
	require.Equal(t, 7, a.at(reused).key)
	require.Equal(t, 4, a.at(reused).height())

	// The recycled forward slice keeps the taller allocation's capacity.
	require.GreaterOrEqual(t, cap(a.at(reused).forward), 8)
	for l := 0; l < 4; l++ {
		require.Equal(t, nilHandle, a.at(reused).next(l))
	}
}

func TestArenaReleaseZeroesKey(t *testing.T) {
	t.Parallel()
	a := newArena[string]()

	h := a.alloc("pinned", 1)
	a.release(h)
	require.Equal(t, "", a.at(h).key)

	// Releasing the nil handle is a no-op.
	a.release(nilHandle)
	require.Equal(t, 0, a.inUse())
}

func TestArenaTallerReuseAllocatesFresh(t *testing.T) {
	t.Parallel()
	a := newArena[int]()

	h := a.alloc(1, 2)
	a.release(h)

	reused := a.alloc(2, 6)
	require.Equal(t, h, reused)
	require.Equal(t, 6, a.at(reused).height())
	for l := 0; l < 6; l++ {
		require.Equal(t, nilHandle, a.at(reused).next(l))
	}
}
