package ChainTable

import (
	"github.com/samyakahuja/rehash/Maps"
)

// Borrowed-key lookups: query a table by any type Q that hashes and compares
// identically to the stored key type, e.g. a string-keyed table queried by
// []byte. Methods can't introduce type parameters, so these are free functions
// over a Maps.Equiv capability. e.Hash(q) must equal the table's own hash of the
// matching key whenever e.Equal(k, q) holds; violating that is a caller bug and
// yields arbitrary lookup results.

// LoadPtrEquiv returns a pointer to the value whose key is equivalent to q, or
// nil. The pointer is valid only until the next mutation of the table.
func LoadPtrEquiv[K, V, Q any](u *ChainTable[K, V], e Maps.Equiv[K, Q], q Q) *V {
	if i, ok := u.bucketOf(e.Hash(q)); ok {
		if j := scan(u.buckets[i], q, e.Equal); j >= 0 {
			return &u.buckets[i][j].v
		}
	}
	return nil
}

// LoadEquiv returns the value whose key is equivalent to q.
func LoadEquiv[K, V, Q any](u *ChainTable[K, V], e Maps.Equiv[K, Q], q Q) (val V, ok bool) {
	if p := LoadPtrEquiv(u, e, q); p != nil {
		val, ok = *p, true
	}
	return
}

// HasKeyEquiv reports whether a key equivalent to q is present.
func HasKeyEquiv[K, V, Q any](u *ChainTable[K, V], e Maps.Equiv[K, Q], q Q) bool {
	return LoadPtrEquiv(u, e, q) != nil
}

// LoadAndDeleteEquiv removes the entry whose key is equivalent to q and returns
// the value it held.
func LoadAndDeleteEquiv[K, V, Q any](u *ChainTable[K, V], e Maps.Equiv[K, Q], q Q) (val V, removed bool) {
	if i, ok := u.bucketOf(e.Hash(q)); ok {
		if j := scan(u.buckets[i], q, e.Equal); j >= 0 {
			u.buckets[i], val = removeAt(u.buckets[i], j)
			u.sz--
			removed = true
		}
	}
	return
}
