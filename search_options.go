package seldispatch

// SearchOption is a functional option for configuring searches.
type SearchOption func(*searchConfig)

type searchConfig struct {
	workers  int
	seed     uint64
	seedSet  bool
	progress func(Progress)
}

func defaultSearchConfig() *searchConfig {
	return &searchConfig{
		workers: 0, // Default to single-threaded; use WithWorkers(n) to parallelize
	}
}

// WithWorkers sets the number of parallel workers. Values below 2 keep the
// search single-threaded.
func WithWorkers(n int) SearchOption {
	return func(c *searchConfig) {
		c.workers = n
	}
}

// WithSeed makes the search deterministic by seeding the multiplier source.
// Without it every run draws a fresh seed from crypto/rand. A poor seed only
// degrades solution quality, never correctness: invalid mappings are always
// rejected by the collision check.
func WithSeed(seed uint64) SearchOption {
	return func(c *searchConfig) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithProgress registers a callback invoked on every best-so-far
// improvement, with the attempt index and elapsed wall-clock time at the
// moment of discovery. In parallel mode the callback is invoked under the
// shared tracker lock and must not call back into the search.
func WithProgress(fn func(Progress)) SearchOption {
	return func(c *searchConfig) {
		c.progress = fn
	}
}
