package comparisons

import (
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/samyakahuja/rehash"
	"github.com/samyakahuja/rehash/Maps/ChainTable"
)

// hash lookup vs the ordered containers: https://github.com/google/btree and
// https://github.com/petar/GoLLRB.

func eqInt(x, y int) bool {
	return x == y
}

func setupBTree(b *testing.B) *btree.BTree {
	b.Helper()

	tr := btree.New(32)
	for i := 0; i < benchmarkItemCount; i++ {
		tr.ReplaceOrInsert(btree.Int(i))
	}
	return tr
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()

	tr := llrb.New()
	for i := 0; i < benchmarkItemCount; i++ {
		tr.ReplaceOrInsert(llrb.Int(i))
	}
	return tr
}

func Benchmark2ReadChainTableInt(b *testing.B) {
	m := ChainTable.New[int, int](rehash.HashOrd[int], eqInt)
	for i := 0; i < benchmarkItemCount; i++ {
		m.Store(i, i)
	}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			j, _ := m.Load(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark2ReadBTreeInt(b *testing.B) {
	tr := setupBTree(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if tr.Get(btree.Int(i)) == nil {
				b.Fail()
			}
		}
	}
}

func Benchmark2ReadLLRBInt(b *testing.B) {
	tr := setupLLRB(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if tr.Get(llrb.Int(i)) == nil {
				b.Fail()
			}
		}
	}
}

func Benchmark2WriteChainTableInt(b *testing.B) {
	m := ChainTable.New[int, int](rehash.HashOrd[int], eqInt)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			m.Store(i, i)
		}
	}
}

func Benchmark2WriteBTreeInt(b *testing.B) {
	tr := btree.New(32)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			tr.ReplaceOrInsert(btree.Int(i))
		}
	}
}

func Benchmark2WriteLLRBInt(b *testing.B) {
	tr := llrb.New()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			tr.ReplaceOrInsert(llrb.Int(i))
		}
	}
}
