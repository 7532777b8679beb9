package evmdd

// Mode selects the reduction discipline a Manager enforces on every node
// and edge it interns. A manager uses exactly one mode for its entire
// lifetime; diagrams from managers of different modes must never be mixed
// in the same Apply call.
type Mode int

const (
	// FullyReduced skips levels whose branch node carries no information
	// (all children identical after weight normalization) via Shannon
	// reduction. This is the default mode.
	FullyReduced Mode = iota

	// QuasiReduced keeps every level between the root and the sink
	// present on every path; duplicate nodes are still merged by the
	// unique table, but Shannon reduction is not applied.
	QuasiReduced
)

func (m Mode) String() string {
	switch m {
	case FullyReduced:
		return "fully-reduced"
	case QuasiReduced:
		return "quasi-reduced"
	default:
		return "unknown"
	}
}

// Config holds Manager construction parameters. All fields are exported to
// allow inspection after construction.
type Config struct {
	// Mode selects the reduction discipline. Defaults to FullyReduced.
	Mode Mode

	// MemoCacheLimit bounds the Apply memoization table. A value of 0
	// (the default) means the cache is never cleared; construction
	// never depends on the cache being retained, only on it being
	// correct when present. A positive value clears the entire cache
	// once it is reached, trading a higher miss rate for bounded memory.
	MemoCacheLimit int
}

// Option configures Manager construction using the functional options
// pattern. Options are applied in the order they are provided to
// NewManager.
type Option func(*Config)

// WithQuasiReduced selects quasi-reduced mode instead of the default
// fully-reduced mode. Every level between the root and the sink remains
// present on every path.
func WithQuasiReduced() Option {
	return func(c *Config) {
		c.Mode = QuasiReduced
	}
}

// WithMemoCacheLimit bounds the number of entries retained in the Apply
// memoization table. If n <= 0, the cache is never cleared (the default).
// If n > 0, the cache is dropped and rebuilt from scratch once it holds n
// entries. Correctness never depends on which policy is in effect.
func WithMemoCacheLimit(n int) Option {
	return func(c *Config) {
		c.MemoCacheLimit = n
	}
}

// newConfig creates a configuration with sensible defaults and applies the
// provided options in order.
//
// Default values:
//   - Mode: FullyReduced
//   - MemoCacheLimit: 0 (unbounded)
func newConfig(opts ...Option) *Config {
	cfg := &Config{
		Mode:           FullyReduced,
		MemoCacheLimit: 0,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
