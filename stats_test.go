package skipset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsCounters(t *testing.T) {
	t.Parallel()
	s := NewOrdered[int](WithSeed(17))

	s.Insert(1)
	s.Insert(2)
	s.Insert(1) // rejected
	s.Remove(2)
	s.Remove(9) // miss
	s.Insert(3) // reuses the slot released by Remove(2)

	got := s.Stats()
	require.Equal(t, int64(3), got.Inserts)
	require.Equal(t, int64(1), got.RejectedInserts)
	require.Equal(t, int64(1), got.Removes)
	require.Equal(t, int64(1), got.RemoveMisses)
	require.Equal(t, int64(1), got.NodesReused)
}

func TestStatsArenaReuseAcrossChurn(t *testing.T) {
	t.Parallel()
	s := NewOrdered[int](WithSeed(17))

	for i := 0; i < 100; i++ {
		s.Insert(i)
	}
	for i := 0; i < 100; i++ {
		s.Remove(i)
	}
	for i := 0; i < 100; i++ {
		s.Insert(i)
	}

	got := s.Stats()
	require.Equal(t, int64(100), got.NodesReused)
	require.Equal(t, 100, s.Len())
}
