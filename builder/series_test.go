package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/builder"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/stochastic"
)

func TestBuildSeries_NoiselessTrend(t *testing.T) {
	out, err := builder.BuildSeries(3, 0, builder.WithTrend(1), builder.WithSmoothing(0.5))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1.25, 2.125}, out, 1e-12)
}

func TestBuildSeries_Defaults(t *testing.T) {
	out, err := builder.BuildSeries(5, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, out)

	out, err = builder.BuildSeries(0, 0, builder.WithInitial(7))
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, out)
}

func TestBuildSeries_Errors(t *testing.T) {
	_, err := builder.BuildSeries(-1, 0)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildSeries(10, 0, builder.WithSmoothing(1))
	assert.ErrorIs(t, err, stochastic.ErrInvalidParameter)

	_, err = builder.BuildSeries(10, 0, builder.WithNoise(-1))
	assert.ErrorIs(t, err, stochastic.ErrInvalidParameter)

	_, err = builder.BuildSeries(10, 0, builder.WithBounds(5, 1))
	assert.ErrorIs(t, err, stochastic.ErrInvalidParameter)
}

func TestBuildSeries_SeedDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithNoise(2), builder.WithTrend(0.1)}
	a, err := builder.BuildSeries(50, 123, opts...)
	require.NoError(t, err)
	b, err := builder.BuildSeries(50, 123, opts...)
	require.NoError(t, err)
	c, err := builder.BuildSeries(50, 124, opts...)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestBuildSeries_SharedRNGOverridesSeed(t *testing.T) {
	r1 := rand.New(rand.NewSource(77))
	r2 := rand.New(rand.NewSource(77))
	a, err := builder.BuildSeries(20, 1, builder.WithRand(r1), builder.WithNoise(1))
	require.NoError(t, err)
	b, err := builder.BuildSeries(20, 2, builder.WithRand(r2), builder.WithNoise(1))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildSeries_Bounded(t *testing.T) {
	out, err := builder.BuildSeries(200, 5,
		builder.WithInitial(50),
		builder.WithNoise(20),
		builder.WithAmplitude(10), builder.WithFrequency(0.05),
		builder.WithBounds(0, 100),
	)
	require.NoError(t, err)
	require.Len(t, out, 201)
	for i, v := range out {
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
		assert.LessOrEqual(t, v, 100.0, "index %d", i)
	}
}

func TestBuildSeries_MatchesStochastic(t *testing.T) {
	got, err := builder.BuildSeries(30, 9,
		builder.WithInitial(10), builder.WithTrend(0.5), builder.WithNoise(1.5),
		builder.WithAmplitude(2), builder.WithFrequency(0.1), builder.WithPhase(0.3),
		builder.WithSmoothing(0.3), builder.WithBounds(-20, 40))
	require.NoError(t, err)

	cfg := stochastic.NewSeriesConfig(10, 30, 0.5, 0.3, 1.5,
		stochastic.WithSeasonality(2, 0.1, 0.3), stochastic.WithBounds(-20, 40))
	want, err := stochastic.Generate(cfg, stochastic.FromRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
