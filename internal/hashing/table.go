package hashing

// Entry records the node count below a position at a given depth.
type Entry struct {
	Key   Key
	Depth int
	Nodes uint64
}

// Table caches node counts by position and depth.
type Table struct {
	// entries stores every entry sharing a Zobrist hash
	entries map[uint64][]Entry
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	// size is the number of stored entries
	size int
	// hits counts successful lookups
	hits int
}

// NewTable creates a new table. maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[uint64][]Entry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached node count for key at depth.
func (t *Table) Lookup(key Key, depth int) (uint64, bool) {
	for _, e := range t.entries[key.Hash] {
		if entriesMatch(e, key, depth) {
			t.hits++
			return e.Nodes, true
		}
	}
	return 0, false
}

// Store adds e unless an entry for the same key and depth exists or the
// table is full. It reports whether e was added.
func (t *Table) Store(e Entry) bool {
	if t.IsFull() {
		return false
	}
	for _, existing := range t.entries[e.Key.Hash] {
		if entriesMatch(existing, e.Key, e.Depth) {
			return false
		}
	}
	t.entries[e.Key.Hash] = append(t.entries[e.Key.Hash], e)
	t.size++
	return true
}

// entriesMatch checks an entry against a key and depth. The Zobrist hash
// is already implied by the map bucket.
func entriesMatch(e Entry, key Key, depth int) bool {
	return e.Key == key && e.Depth == depth
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return t.size
}

// Hits returns the number of successful lookups.
func (t *Table) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && t.size >= t.maxCapacity
}

// Reset clears the table.
func (t *Table) Reset() {
	t.entries = make(map[uint64][]Entry)
	t.size = 0
	t.hits = 0
}
