// Package ChainTable implements a hash table with separate chaining: an array of
// buckets, each an unordered growable slice of key-value entries. It is built for
// a single owner; nothing in it is thread-safe, guard it externally if shared.
package ChainTable

const (
	initialBuckets = 1
	// growth triggers when size > loadNum*buckets/loadDen, i.e. load factor 3/4.
	loadNum = 3
	loadDen = 4
)

type ChainTable[K, V any] struct {
	buckets [][]entry[K, V]
	sz      uint
	hashF   func(K) uint
	eqF     func(K, K) bool
}

// New ChainTable using hashF and eqF for bucket selection and key equality.
// eqF(a, b) must imply hashF(a) == hashF(b). No buckets are allocated until the
// first Store.
func New[K, V any](hashF func(K) uint, eqF func(K, K) bool) *ChainTable[K, V] {
	return &ChainTable[K, V]{hashF: hashF, eqF: eqF}
}

// bucketOf reduces hash into bucket-index space. The false result means the table
// has never been populated, so no key can be present.
func (u *ChainTable[K, V]) bucketOf(hash uint) (uint, bool) {
	if len(u.buckets) == 0 {
		return 0, false
	}
	return hash % uint(len(u.buckets)), true
}

// grow replaces the bucket array with one of twice the size (1 on first use) and
// rehashes every entry against the new bucket count. The table never shrinks;
// sparse tables after mass removal keep their capacity, which avoids thrashing
// under insert/delete churn.
func (u *ChainTable[K, V]) grow() {
	n := uint(initialBuckets)
	if len(u.buckets) > 0 {
		n = uint(len(u.buckets)) << 1
	}
	newBuckets := make([][]entry[K, V], n)
	for _, b := range u.buckets {
		for _, e := range b {
			i := u.hashF(e.k) % n
			newBuckets[i] = append(newBuckets[i], e)
		}
	}
	u.buckets = newBuckets
}

// Store key->val. If key is already present its value is replaced in place and the
// displaced value is returned with replaced=true; the stored key keeps its
// identity and the key argument is discarded. Growth, when needed, happens before
// the target bucket is located.
func (u *ChainTable[K, V]) Store(key K, val V) (old V, replaced bool) {
	if len(u.buckets) == 0 || u.sz > loadNum*uint(len(u.buckets))/loadDen {
		u.grow()
	}
	b := &u.buckets[u.hashF(key)%uint(len(u.buckets))]
	if i := scan(*b, key, u.eqF); i >= 0 {
		old, (*b)[i].v = (*b)[i].v, val
		return old, true
	}
	*b = append(*b, entry[K, V]{key, val})
	u.sz++
	return
}

// LoadPtr returns a pointer to the value stored under key, or nil if absent. The
// pointer is valid only until the next mutation of the table.
func (u *ChainTable[K, V]) LoadPtr(key K) *V {
	if i, ok := u.bucketOf(u.hashF(key)); ok {
		if j := scan(u.buckets[i], key, u.eqF); j >= 0 {
			return &u.buckets[i][j].v
		}
	}
	return nil
}

// Load the value stored under key.
func (u *ChainTable[K, V]) Load(key K) (val V, ok bool) {
	if p := u.LoadPtr(key); p != nil {
		val, ok = *p, true
	}
	return
}

// HasKey reports whether key is present.
func (u *ChainTable[K, V]) HasKey(key K) bool {
	return u.LoadPtr(key) != nil
}

// LoadAndDelete removes key and returns the value it held.
func (u *ChainTable[K, V]) LoadAndDelete(key K) (val V, removed bool) {
	if i, ok := u.bucketOf(u.hashF(key)); ok {
		if j := scan(u.buckets[i], key, u.eqF); j >= 0 {
			u.buckets[i], val = removeAt(u.buckets[i], j)
			u.sz--
			removed = true
		}
	}
	return
}

// Delete key if present.
func (u *ChainTable[K, V]) Delete(key K) {
	u.LoadAndDelete(key)
}

// Size of the table, maintained incrementally.
func (u *ChainTable[K, V]) Size() uint {
	return u.sz
}

func (u *ChainTable[K, V]) IsEmpty() bool {
	return u.sz == 0
}

// RangePtr calls f for every entry with a pointer to its value, bucket by bucket,
// until f returns false. Order within and across buckets is unspecified and
// changes across resizes and removals. The table must not be mutated during the
// traversal.
func (u *ChainTable[K, V]) RangePtr(f func(K, *V) bool) {
	for i := range u.buckets {
		for j := range u.buckets[i] {
			if !f(u.buckets[i][j].k, &u.buckets[i][j].v) {
				return
			}
		}
	}
}

// Range calls f for every entry until f returns false. Same ordering caveats as
// RangePtr.
func (u *ChainTable[K, V]) Range(f func(K, V) bool) {
	u.RangePtr(func(k K, v *V) bool {
		return f(k, *v)
	})
}

// Pairs returns a lazy single-pass iterator over the entries; it yields false
// after the last pair and isn't restartable. The table must not be mutated while
// the iterator is live.
func (u *ChainTable[K, V]) Pairs() func() (K, V, bool) {
	i, j := 0, 0
	return func() (k K, v V, ok bool) {
		for i < len(u.buckets) {
			if b := u.buckets[i]; j < len(b) {
				k, v, ok = b[j].k, b[j].v, true
				j++
				return
			}
			i, j = i+1, 0
		}
		return
	}
}
