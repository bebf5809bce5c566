package skipset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg := NewConfig()
	require.Equal(t, defaultMaxHeight, cfg.maxHeight)
	require.Equal(t, defaultProbability, cfg.p)
}

func TestOptionsAreApplied(t *testing.T) {
	t.Parallel()
	src := &stubSource{values: []uint64{0}}

	cfg := NewConfig()
	for _, opt := range []Option{
		WithMaxHeight(4),
		WithProbability(0.5),
		WithSeed(99),
		WithRandSource(src),
	} {
		opt(&cfg)
	}

	require.Equal(t, 4, cfg.maxHeight)
	require.Equal(t, 0.5, cfg.p)
	require.Equal(t, uint64(99), cfg.seed)
	require.NotNil(t, cfg.source)
}

func TestInvalidOptionValuesIgnored(t *testing.T) {
	t.Parallel()
	cfg := NewConfig()
	WithMaxHeight(0)(&cfg)
	WithProbability(0)(&cfg)
	WithProbability(1.5)(&cfg)

	require.Equal(t, defaultMaxHeight, cfg.maxHeight)
	require.Equal(t, defaultProbability, cfg.p)
}

func TestMaxHeightCapsLevels(t *testing.T) {
	t.Parallel()

	// Every draw promotes, so each tower would grow without bound were it
	// not clamped by the configured maximum.
	src := &stubSource{values: []uint64{0}}
	s := NewOrdered[int](WithMaxHeight(3), WithRandSource(src))

	for k := 0; k < 50; k++ {
		s.Insert(k)
	}

	require.Equal(t, 3, s.Levels())
	require.Equal(t, 50, s.Len())
	assertStrictlyOrdered(t, s)
}
