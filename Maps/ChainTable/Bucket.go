package ChainTable

// entry is an owned key-value pair. The table owns both fields while the entry
// sits in a bucket; LoadAndDelete moves the value out to the caller.
type entry[K, V any] struct {
	k K
	v V
}

// scan returns the index in b of the entry whose key matches q under eq, or -1.
// Q lets the same scan serve both owned-key and borrowed-key lookups.
func scan[K, V, Q any](b []entry[K, V], q Q, eq func(K, Q) bool) int {
	for i := range b {
		if eq(b[i].k, q) {
			return i
		}
	}
	return -1
}

// removeAt removes entry i from b by swapping the last entry into its place.
// Buckets carry no ordering invariant, so compaction may reorder them.
func removeAt[K, V any](b []entry[K, V], i int) ([]entry[K, V], V) {
	v := b[i].v
	last := len(b) - 1
	b[i] = b[last]
	b[last] = entry[K, V]{}
	return b[:last], v
}
