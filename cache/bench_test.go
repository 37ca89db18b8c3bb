package cache

import (
	"context"
	"strconv"
	"testing"
	"time"
)

func benchStore(b *testing.B) *Store[string] {
	b.Helper()
	ttls := make(map[Category]time.Duration, len(Categories()))
	for _, cat := range Categories() {
		ttls[cat] = time.Minute
	}
	s, err := New[string](Config{MaxEntries: 1 << 16, TTLs: ttls})
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	b.Cleanup(s.Close)
	return s
}

func BenchmarkPut(b *testing.B) {
	ctx := context.Background()
	s := benchStore(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Put(ctx, strconv.Itoa(i&0xffff), "val", CategoryGameData)
	}
}

func BenchmarkGet(b *testing.B) {
	ctx := context.Background()
	s := benchStore(b)
	s.Put(ctx, "key", "val", CategoryGameData)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := s.Get(ctx, "key"); !ok {
			b.Fatal("unexpected miss")
		}
	}
}

func BenchmarkGetParallel(b *testing.B) {
	ctx := context.Background()
	s := benchStore(b)
	s.Put(ctx, "key", "val", CategoryGameData)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, ok := s.Get(ctx, "key"); !ok {
				b.Fatal("unexpected miss")
			}
		}
	})
}
