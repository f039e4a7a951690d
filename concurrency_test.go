package vecmath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentUse(t *testing.T) {
	v := Vector{1, 2, 3}
	w := Vector{4, 5, 6}
	set := []Vector{v, w, v}

	wantV := Clone(v)
	wantW := Clone(w)

	t.Run("group", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			t.Run(fmt.Sprintf("worker%d", i), func(t *testing.T) {
				t.Parallel()

				for j := 0; j < 100; j++ {
					sum, err := Add(v, w)
					require.NoError(t, err)
					assert.Equal(t, Vector{5, 7, 9}, sum)

					diff, err := Subtract(w, v)
					require.NoError(t, err)
					assert.Equal(t, Vector{3, 3, 3}, diff)

					total, err := Sum(set)
					require.NoError(t, err)
					assert.Equal(t, Vector{6, 9, 12}, total)

					assert.Equal(t, Vector{2, 4, 6}, ScalarMultiply(2, v))

					mean, err := Mean(set)
					require.NoError(t, err)
					assert.InDeltaSlice(t, []float64{2, 3, 4}, []float64(mean), 1e-12)

					d, err := Dot(v, w)
					require.NoError(t, err)
					assert.Equal(t, 32.0, d)

					assert.InDelta(t, 8.774964387392123, Magnitude(w), 1e-12)

					dist, err := Distance(v, w)
					require.NoError(t, err)
					assert.InDelta(t, 5.196152422706632, dist, 1e-12)
				}
			})
		}
	})

	// The parallel subtests above have all finished once "group" returns.
	assert.Equal(t, wantV, v)
	assert.Equal(t, wantW, w)
	assert.Equal(t, []Vector{wantV, wantW, wantV}, set)
}
