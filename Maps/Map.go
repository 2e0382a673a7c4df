package Maps

// Map is the operation surface shared by map implementations in this module.
// Lookups report absence through the bool result; absence is never an error.
type Map[K, V any] interface {
	Store(K, V) (V, bool)
	Load(K) (V, bool)
	HasKey(K) bool
	LoadAndDelete(K) (V, bool)
	Delete(K)
	Pairs() func() (K, V, bool)
	Size() uint
	IsEmpty() bool
}

// Equiv relates a stored key type K to a query type Q that hashes and compares
// identically to it, e.g. K=string and Q=[]byte. Implementations must guarantee
// that Equal(k, q) implies Hash(q) == hash(k) under the table's own hash function;
// this isn't checked at runtime, and lookups with an inconsistent Equiv return
// arbitrary results.
type Equiv[K, Q any] interface {
	Hash(Q) uint
	Equal(K, Q) bool
}
