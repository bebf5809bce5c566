package skipset

// locate returns the handle of the first node on the base chain whose key
// is >= target, or the nil handle past the tail. preds[l] receives, for
// every level in [0, len(preds)), the last node whose key is strictly
// less than target; levels above the list's live height fall back to the
// head. The descent is monotonic: each level resumes from the previous
// level's stopping point, never from the head.
func (sl *SkipList[K]) locate(target K, preds []handle) handle {
	for l := range preds {
		preds[l] = sl.head
	}

	x := sl.head
	for l := sl.level - 1; l >= 0; l-- {
		for {
			nh := sl.arena.at(x).next(l)
			if nh == nilHandle || sl.cmp(sl.arena.at(nh).key, target) >= 0 {
				break
			}
			x = nh
		}
		preds[l] = x
	}
	return sl.arena.at(x).next(0)
}

// seekGE is the predecessor-free variant of locate, used by pure queries.
func (sl *SkipList[K]) seekGE(target K) handle {
	x := sl.head
	for l := sl.level - 1; l >= 0; l-- {
		for {
			nh := sl.arena.at(x).next(l)
			if nh == nilHandle || sl.cmp(sl.arena.at(nh).key, target) >= 0 {
				break
			}
			x = nh
		}
	}
	return sl.arena.at(x).next(0)
}
