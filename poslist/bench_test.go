package poslist

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func benchList(n int) *List[int] {
	r := rand.New(rand.NewPCG(1, 2))
	l := New[int](WithCapacity(n))
	for i := 0; i < n; i++ {
		l.Insert(r.IntN(l.Len()+1), i)
	}
	return l
}

func BenchmarkInsertRandom(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	l := New[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Insert(r.IntN(l.Len()+1), i)
	}
}

func BenchmarkFindRemoveReinsert(b *testing.B) {
	const n = 5000
	l := benchList(n)
	r := rand.New(rand.NewPCG(3, 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i % n
		old, _ := l.Find(v)
		l.Remove(old)
		l.Insert((old+r.IntN(n))%(n-1), v)
	}
}

func BenchmarkGet(b *testing.B) {
	const n = 100000
	l := benchList(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Get(i % n)
	}
}

func BenchmarkIterate(b *testing.B) {
	for _, n := range []int{1000, 100000} {
		l := benchList(n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for range l.All() {
				}
			}
		})
	}
}
