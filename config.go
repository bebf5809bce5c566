package skipset

const (
	// defaultMaxHeight bounds tower heights. With p = 1/4 the chance of a
	// tower reaching 12 levels is p^11, negligible for any in-memory set.
	defaultMaxHeight = 12

	// defaultProbability is the per-level promotion probability.
	defaultProbability = 1.0 / 4.0
)

// Config holds configuration for a SkipList.
type Config struct {
	// maxHeight is the maximum tower height of any node, head included.
	maxHeight int

	// p is the probability that a node present at level i is also
	// present at level i+1.
	p float64

	// seed fixes the list-owned random source. Zero means seed from the
	// clock.
	seed uint64

	// source overrides the list-owned random source entirely.
	source Source
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		maxHeight: defaultMaxHeight,
		p:         defaultProbability,
	}
}

// Option mutates a Config before the list is built.
type Option func(*Config)

// WithMaxHeight sets the maximum tower height. Values below 1 are ignored.
func WithMaxHeight(h int) Option {
	return func(c *Config) {
		if h >= 1 {
			c.maxHeight = h
		}
	}
}

// WithProbability sets the level promotion probability. Values outside
// (0, 1) are ignored.
func WithProbability(p float64) Option {
	return func(c *Config) {
		if p > 0 && p < 1 {
			c.p = p
		}
	}
}

// WithSeed seeds the list-owned random source so that height draws are
// reproducible. Ignored when a source is injected with WithRandSource.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.seed = seed }
}

// WithRandSource injects an external random source. Tests use this to
// force exact tower heights.
func WithRandSource(src Source) Option {
	return func(c *Config) { c.source = src }
}
