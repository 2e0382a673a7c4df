package rehash

import (
	"math/rand/v2"
	_ "runtime"
	"unsafe"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
)

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

// Hasher hashes memory contents with a fixed seed. The zero Hasher is valid and
// uses seed 0; NewHasher draws a random seed, which makes bucket placement
// unpredictable to callers that feed adversarial keys.
type Hasher uint

func NewHasher() Hasher {
	return Hasher(rand.Uint64())
}

// HashMem hashes the memory contents in the range [addr, addr+size) as bytes.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint {
	if size == 4 {
		return rtHash32(addr, uint(u))
	} else if size == 8 {
		return rtHash64(addr, uint(u))
	}
	return rtHash(addr, uint(u), size)
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint {
	return rtHash(unsafe.Pointer(unsafe.SliceData(b)), uint(u), uintptr(len(b)))
}

// HashString hashes the bytes of s; equal to HashBytes on the same bytes.
func (u Hasher) HashString(s string) uint {
	return rtHash(unsafe.Pointer(unsafe.StringData(s)), uint(u), uintptr(len(s)))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	return u.HashMem(unsafe.Pointer(&v), unsafe.Sizeof(v))
}

// HashUint hashes v.
func (u Hasher) HashUint(v uint) uint {
	return u.HashMem(unsafe.Pointer(&v), unsafe.Sizeof(v))
}

// HashOrd hashes the raw bytes of any fixed-width integer with a fixed,
// seed-free function.
func HashOrd[I constraints.Integer](v I) uint {
	return uint(xxhash.Sum64(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))))
}

// HashString hashes s with a fixed, seed-free function.
// HashString(s) == HashBytes([]byte(s)) always holds, so a string-keyed table can
// be queried by byte slices.
func HashString(s string) uint {
	return uint(xxhash.Sum64String(s))
}

// HashBytes hashes b with a fixed, seed-free function.
func HashBytes(b []byte) uint {
	return uint(xxhash.Sum64(b))
}
