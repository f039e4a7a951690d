package vecmath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireLengthMismatch(t *testing.T, err error, expected, actual, index int) {
	t.Helper()

	var lm *ErrLengthMismatch
	require.True(t, errors.As(err, &lm), "expected *ErrLengthMismatch, got %v", err)
	assert.Equal(t, expected, lm.Expected)
	assert.Equal(t, actual, lm.Actual)
	assert.Equal(t, index, lm.Index)
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		v, w     Vector
		expected Vector
	}{
		{"Simple", Vector{1, 2, 3}, Vector{4, 5, 6}, Vector{5, 7, 9}},
		{"Negative", Vector{1, -2}, Vector{-1, 2}, Vector{0, 0}},
		{"Empty", Vector{}, Vector{}, Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.v, tt.w)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		got, err := Add(Vector{1, 2}, Vector{1, 2, 3})
		assert.Nil(t, got)
		requireLengthMismatch(t, err, 2, 3, 1)
	})

	t.Run("DoesNotMutate", func(t *testing.T) {
		v := Vector{1, 2}
		w := Vector{3, 4}
		out, err := Add(v, w)
		require.NoError(t, err)
		out[0] = 100
		assert.Equal(t, Vector{1, 2}, v)
		assert.Equal(t, Vector{3, 4}, w)
	})
}

func TestSubtract(t *testing.T) {
	got, err := Subtract(Vector{5, 7, 9}, Vector{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, Vector{1, 2, 3}, got)

	_, err = Subtract(Vector{1}, Vector{})
	requireLengthMismatch(t, err, 1, 0, 1)
}

func TestSum(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		got, err := Sum([]Vector{{1, 2}, {3, 4}, {5, 6}})
		require.NoError(t, err)
		assert.Equal(t, Vector{9, 12}, got)
	})

	t.Run("Single", func(t *testing.T) {
		v := Vector{1, 2, 3}
		got, err := Sum([]Vector{v})
		require.NoError(t, err)
		assert.Equal(t, v, got)
		got[0] = 10
		assert.Equal(t, 1.0, v[0])
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Sum(nil)
		assert.ErrorIs(t, err, ErrEmptyInput)

		_, err = Sum([]Vector{})
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Sum([]Vector{{1, 2}, {3, 4}, {5}})
		requireLengthMismatch(t, err, 2, 1, 2)
	})

	t.Run("ZeroLengthMembers", func(t *testing.T) {
		got, err := Sum([]Vector{{}, {}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestScalarMultiply(t *testing.T) {
	assert.Equal(t, Vector{2, 4, -6}, ScalarMultiply(2, Vector{1, 2, -3}))
	assert.Equal(t, Vector{}, ScalarMultiply(3, Vector{}))
	assert.Equal(t, Vector{0, 0}, ScalarMultiply(0, Vector{7, 8}))
}

func TestMean(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		got, err := Mean([]Vector{{1, 2}, {3, 4}})
		require.NoError(t, err)
		assert.Equal(t, Vector{2, 3}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := Mean(nil)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Mean([]Vector{{1, 2}, {1, 2, 3}})
		requireLengthMismatch(t, err, 2, 3, 1)
	})
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		v, w     Vector
		expected float64
	}{
		{"Simple", Vector{1, 2, 3}, Vector{4, 5, 6}, 32},
		{"Zero", Vector{0, 0, 0}, Vector{0, 0, 0}, 0},
		{"Mixed", Vector{1, -1, 2}, Vector{1, 1, -2}, -4},
		{"Empty", Vector{}, Vector{}, 0},
		{"Single", Vector{2}, Vector{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.v, tt.w)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Dot(Vector{1, 2, 3}, Vector{1})
	requireLengthMismatch(t, err, 3, 1, 1)
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, Magnitude(Vector{3, 4}))
	assert.Equal(t, 0.0, Magnitude(Vector{}))
	assert.Equal(t, 0.0, Magnitude(Vector{0, 0, 0}))
	assert.Equal(t, 25.0, SumOfSquares(Vector{3, 4}))
}

func TestDistance(t *testing.T) {
	d, err := Distance(Vector{0, 0}, Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	sq, err := SquaredDistance(Vector{1, 2, 3}, Vector{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 27.0, sq)

	_, err = Distance(Vector{0, 0}, Vector{3})
	requireLengthMismatch(t, err, 2, 1, 1)

	_, err = SquaredDistance(Vector{0}, Vector{3, 4})
	requireLengthMismatch(t, err, 1, 2, 1)
}

func TestCheckLengths(t *testing.T) {
	n, err := CheckLengths([]Vector{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = CheckLengths(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = CheckLengths([]Vector{{1}, {1}, {1}, {1, 2}})
	requireLengthMismatch(t, err, 1, 2, 3)
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone(nil))

	v := Vector{1, 2}
	c := Clone(v)
	assert.Equal(t, v, c)
	assert.NotSame(t, &v[0], &c[0])
	assert.Equal(t, 2, c.Len())
}

func TestErrLengthMismatch_Error(t *testing.T) {
	err := &ErrLengthMismatch{Expected: 2, Actual: 3, Index: 1}
	assert.Equal(t, "length mismatch at index 1: expected 2, got 3", err.Error())
}
