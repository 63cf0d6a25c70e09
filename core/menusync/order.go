package menusync

import "sort"

// materializationOrder returns the items so that every parent comes before its children.
// Siblings are sorted by position, then source id. Items whose parent is missing from the
// snapshot are roots. Items caught in a parent cycle are started from the lowest position and
// become roots there.
func materializationOrder(items []PortableItem) []PortableItem {
	index := make(map[int64]int, len(items))
	for i, it := range items {
		if it.SourceItemID == 0 {
			continue
		}
		if _, dup := index[it.SourceItemID]; !dup {
			index[it.SourceItemID] = i
		}
	}

	children := make(map[int64][]int)
	var roots []int
	for i, it := range items {
		parent := it.ParentSourceItemID
		_, known := index[parent]
		if parent == 0 || parent == it.SourceItemID || !known {
			roots = append(roots, i)
			continue
		}
		children[parent] = append(children[parent], i)
	}

	less := func(list []int) func(a, b int) bool {
		return func(a, b int) bool {
			x, y := items[list[a]], items[list[b]]
			if x.Position != y.Position {
				return x.Position < y.Position
			}
			if x.SourceItemID != y.SourceItemID {
				return x.SourceItemID < y.SourceItemID
			}
			return list[a] < list[b]
		}
	}
	sort.SliceStable(roots, less(roots))
	for parent, list := range children {
		sort.SliceStable(list, less(list))
		children[parent] = list
	}

	out := make([]PortableItem, 0, len(items))
	visited := make([]bool, len(items))
	var walk func(i int)
	walk = func(i int) {
		if visited[i] {
			return
		}
		visited[i] = true
		out = append(out, items[i])
		// Only the first item carrying an id owns its children.
		if index[items[i].SourceItemID] != i {
			return
		}
		for _, c := range children[items[i].SourceItemID] {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}

	if len(out) < len(items) {
		var rest []int
		for i := range items {
			if !visited[i] {
				rest = append(rest, i)
			}
		}
		sort.SliceStable(rest, less(rest))
		for _, i := range rest {
			walk(i)
		}
	}
	return out
}
