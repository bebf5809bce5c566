package skipset

// Stats carries operation counters. These enable workload analysis in
// benchmarks; they are plain integers since the list is single-writer.
type Stats struct {
	// Inserts counts calls that created a node.
	Inserts int64
	// RejectedInserts counts inserts that were no-ops on a present key.
	RejectedInserts int64
	// Removes counts calls that unlinked a node.
	Removes int64
	// RemoveMisses counts removes of absent keys.
	RemoveMisses int64
	// NodesReused counts allocations served from the arena free list.
	NodesReused int64
}

// Stats returns a snapshot of the list's operation counters.
func (sl *SkipList[K]) Stats() Stats {
	s := sl.stats
	s.NodesReused = sl.arena.reused
	return s
}
