package vecmath_test

import (
	"math"
	"testing"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	propertyTrials = 200
	tolerance      = 1e-9
)

func assertVectorInDelta(t *testing.T, expected, actual vecmath.Vector) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], tolerance, "component %d", i)
	}
}

func TestProperties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("AddCommutative", func(t *testing.T) {
		for range propertyTrials {
			dim := rng.Intn(32)
			v, w := rng.UniformRangeVector(dim), rng.UniformRangeVector(dim)

			vw, err := vecmath.Add(v, w)
			require.NoError(t, err)
			wv, err := vecmath.Add(w, v)
			require.NoError(t, err)
			assert.Equal(t, vw, wv)
		}
	})

	t.Run("SubtractInverse", func(t *testing.T) {
		for range propertyTrials {
			dim := rng.Intn(32)
			v, w := rng.UniformRangeVector(dim), rng.UniformRangeVector(dim)

			diff, err := vecmath.Subtract(w, v)
			require.NoError(t, err)
			got, err := vecmath.Add(v, diff)
			require.NoError(t, err)
			assertVectorInDelta(t, w, got)
		}
	})

	t.Run("AdditiveIdentity", func(t *testing.T) {
		for range propertyTrials {
			v := rng.UniformRangeVector(rng.Intn(32))

			got, err := vecmath.Add(v, vecmath.ScalarMultiply(0, v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("DotLinear", func(t *testing.T) {
		for range propertyTrials {
			dim := rng.Intn(32)
			v, w := rng.UniformRangeVector(dim), rng.UniformRangeVector(dim)
			c := rng.Float64()*20 - 10

			scaled, err := vecmath.Dot(vecmath.ScalarMultiply(c, v), w)
			require.NoError(t, err)
			d, err := vecmath.Dot(v, w)
			require.NoError(t, err)
			assert.InDelta(t, c*d, scaled, 1e-6)
		}
	})

	t.Run("MagnitudeNonNegative", func(t *testing.T) {
		for range propertyTrials {
			v := rng.UniformRangeVector(1 + rng.Intn(32))
			assert.Greater(t, vecmath.Magnitude(v), 0.0)
		}
		assert.Equal(t, 0.0, vecmath.Magnitude(make(vecmath.Vector, 8)))
		assert.Greater(t, vecmath.Magnitude(vecmath.Vector{0, 0, 1e-9}), 0.0)
	})

	t.Run("TriangleInequality", func(t *testing.T) {
		for range propertyTrials {
			dim := 1 + rng.Intn(32)
			u, v, w := rng.UniformRangeVector(dim), rng.UniformRangeVector(dim), rng.UniformRangeVector(dim)

			uw, err := vecmath.Distance(u, w)
			require.NoError(t, err)
			uv, err := vecmath.Distance(u, v)
			require.NoError(t, err)
			vw, err := vecmath.Distance(v, w)
			require.NoError(t, err)
			assert.LessOrEqual(t, uw, uv+vw+tolerance)
		}
	})

	t.Run("MeanOfCopies", func(t *testing.T) {
		for range propertyTrials {
			v := rng.UniformRangeVector(1 + rng.Intn(32))

			single, err := vecmath.Mean([]vecmath.Vector{v})
			require.NoError(t, err)
			assert.Equal(t, v, single)

			k := 1 + rng.Intn(10)
			copies := make([]vecmath.Vector, k)
			for i := range copies {
				copies[i] = v
			}
			mean, err := vecmath.Mean(copies)
			require.NoError(t, err)
			assertVectorInDelta(t, v, mean)
		}
	})

	t.Run("DistanceMatchesSquared", func(t *testing.T) {
		origin := make(vecmath.Vector, 16)
		for _, v := range rng.UniformRangeVectors(propertyTrials/2, 16) {
			d, err := vecmath.Distance(v, origin)
			require.NoError(t, err)
			sq, err := vecmath.SquaredDistance(v, origin)
			require.NoError(t, err)
			assert.InDelta(t, math.Sqrt(sq), d, tolerance)
		}
	})
}
