package seldispatch

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/spaolacci/murmur3"
)

func BenchmarkMapSelector(b *testing.B) {
	rng := newTestRNG(b)
	cand := randomCandidate(rng)
	sel := rng.Uint32()

	b.ReportAllocs()
	for range b.N {
		_ = cand.MapSelector(sel)
	}
}

func benchmarkEvaluateN(b *testing.B, n int) {
	rng := newTestRNG(b)
	selectors := generateSelectors(rng, n)
	cand := randomCandidate(rng)

	b.ReportAllocs()
	for range b.N {
		_, _ = cand.Evaluate(selectors)
	}
}

func BenchmarkEvaluate20(b *testing.B)  { benchmarkEvaluateN(b, 20) }
func BenchmarkEvaluate100(b *testing.B) { benchmarkEvaluateN(b, 100) }

// BenchmarkMurmurBucketing is a baseline for BenchmarkMapSelector: the
// conventional alternative of bucketing selectors by a generic hash. It does
// not produce a perfect mapping; it only calibrates the per-dispatch cost
// the multiplicative hash is competing against.
func BenchmarkMurmurBucketing(b *testing.B) {
	rng := newTestRNG(b)
	sel := rng.Uint32()
	var buf [4]byte

	b.ReportAllocs()
	for range b.N {
		binary.BigEndian.PutUint32(buf[:], sel)
		_ = byte(murmur3.Sum32(buf[:]))
	}
}

func benchmarkSearchN(b *testing.B, workers int) {
	rng := newTestRNG(b)
	selectors := generateSelectors(rng, 20)

	opts := []SearchOption{WithSeed(1)}
	if workers > 1 {
		opts = append(opts, WithWorkers(workers))
	}

	b.ReportAllocs()
	for range b.N {
		if _, err := Search(context.Background(), selectors, 1000, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch1K(b *testing.B)         { benchmarkSearchN(b, 1) }
func BenchmarkSearch1KWorkers4(b *testing.B) { benchmarkSearchN(b, 4) }
