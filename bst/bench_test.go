package bst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ancestry/bst"
)

// BenchmarkInsert_Random builds a 10k-node tree from shuffled keys.
func BenchmarkInsert_Random(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	keys := r.Perm(10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bst.New(keys...)
	}
}

// BenchmarkFind_Random looks up every key of a shuffled 10k-node tree.
func BenchmarkFind_Random(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	keys := r.Perm(10000)
	tr := bst.New(keys...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Find(keys[i%len(keys)])
	}
}
