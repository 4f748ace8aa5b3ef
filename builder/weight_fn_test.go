package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/builder"
)

func TestDefaultWeightFn(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
}

func TestConstantWeightFn(t *testing.T) {
	fn, err := builder.ConstantWeightFn(3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, fn(nil))
	assert.Equal(t, 3.5, fn(rand.New(rand.NewSource(1))))

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = builder.ConstantWeightFn(bad)
		assert.ErrorIs(t, err, builder.ErrOptionViolation, "value=%g", bad)
	}
}

func TestUniformWeightFn(t *testing.T) {
	fn, err := builder.UniformWeightFn(1, 100)
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultEdgeWeight, fn(nil))

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 100.0)
	}

	fn, err = builder.UniformWeightFn(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, fn(rng))

	for _, tc := range [][2]float64{{-1, 2}, {3, 2}, {0, math.Inf(1)}, {math.NaN(), 1}} {
		_, err = builder.UniformWeightFn(tc[0], tc[1])
		assert.ErrorIs(t, err, builder.ErrOptionViolation, "bounds=%v", tc)
	}
}

func TestDistanceWeightFn(t *testing.T) {
	fn, err := builder.DistanceWeightFn(0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, fn(nil))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		assert.Greater(t, fn(rng), 0.0)
	}

	_, err = builder.DistanceWeightFn(0, -1)
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.DistanceWeightFn(math.NaN(), 1)
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}
