package rdf

import "sort"

// stringCollector interns strings in insertion order during a build,
// the way graph_writer's StringCollector does: a hash map assigns each
// distinct string a sequential id the first time it is seen. collect()
// then sorts the unique strings lexicographically and returns a remap
// table from insertion-order id to the final, dense, sorted id — so
// that after finalize() string ids increase in lexicographic order of
// the strings they name, and numeric id comparison can stand in for
// string comparison.
type stringCollector struct {
	byString map[string]uint32
	byID     []string
}

func newStringCollector() *stringCollector {
	return &stringCollector{byString: make(map[string]uint32)}
}

// intern returns s's insertion-order id, assigning a new one if s has
// not been seen before.
func (c *stringCollector) intern(s string) uint32 {
	if id, ok := c.byString[s]; ok {
		return id
	}
	id := uint32(len(c.byID))
	c.byID = append(c.byID, s)
	c.byString[s] = id
	return id
}

func (c *stringCollector) len() int { return len(c.byID) }

// collect sorts the interned strings and returns them alongside a
// remap table: remap[insertionOrderID] == finalSortedID.
func (c *stringCollector) collect() (sorted []string, remap []uint32) {
	n := len(c.byID)
	sorted = make([]string, n)
	copy(sorted, c.byID)
	sort.Strings(sorted)

	remap = make([]uint32, n)
	for finalID, s := range sorted {
		remap[c.byString[s]] = uint32(finalID)
	}
	return sorted, remap
}

// StringTable is the immutable, sorted string table a finalized Graph
// looks terms up in. Two Graphs produced from the same build (e.g. a
// Graph and its canonicalization) share the same StringTable: Go's
// garbage collector keeps the backing array alive as long as any
// Graph references it, which is the Go-idiomatic analog of the
// original's Rc<StringCollection>.
type StringTable struct {
	strs []string
}

// ID returns the id of s in the table, and whether s was found.
func (t *StringTable) ID(s string) (uint32, bool) {
	i := sort.SearchStrings(t.strs, s)
	if i < len(t.strs) && t.strs[i] == s {
		return uint32(i), true
	}
	return 0, false
}

// String returns the string stored at id.
func (t *StringTable) String(id uint32) string {
	return t.strs[id]
}

// Len returns the number of distinct strings in the table.
func (t *StringTable) Len() int { return len(t.strs) }
