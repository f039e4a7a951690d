package vecmath

import (
	"math"
	"slices"
)

// Vector is an ordered, fixed-length sequence of float64 components.
type Vector []float64

// Len returns the dimensionality of v.
func (v Vector) Len() int { return len(v) }

// Clone returns a copy of v that shares no storage with it.
func Clone(v Vector) Vector {
	if v == nil {
		return nil
	}
	return slices.Clone(v)
}

func checkPair(v, w Vector) error {
	if len(v) != len(w) {
		return &ErrLengthMismatch{Expected: len(v), Actual: len(w), Index: 1}
	}
	return nil
}

// CheckLengths verifies that every vector has the length of the first one
// and returns that length.
func CheckLengths(vectors []Vector) (int, error) {
	if len(vectors) == 0 {
		return 0, ErrEmptyInput
	}
	n := len(vectors[0])
	for i, v := range vectors[1:] {
		if len(v) != n {
			return 0, &ErrLengthMismatch{Expected: n, Actual: len(v), Index: i + 1}
		}
	}
	return n, nil
}

// Add returns the elementwise sum v + w.
func Add(v, w Vector) (Vector, error) {
	if err := checkPair(v, w); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out, nil
}

// Subtract returns the elementwise difference v - w.
func Subtract(v, w Vector) (Vector, error) {
	if err := checkPair(v, w); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out, nil
}

// Sum returns the elementwise sum of all vectors.
func Sum(vectors []Vector) (Vector, error) {
	n, err := CheckLengths(vectors)
	if err != nil {
		return nil, err
	}
	out := make(Vector, n)
	for _, v := range vectors {
		for i, x := range v {
			out[i] += x
		}
	}
	return out, nil
}

// ScalarMultiply returns c * v.
func ScalarMultiply(c float64, v Vector) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = c * x
	}
	return out
}

// Mean returns the elementwise average of vectors.
func Mean(vectors []Vector) (Vector, error) {
	// An empty collection is rejected before 1/len(vectors) is computed.
	if len(vectors) == 0 {
		return nil, ErrEmptyInput
	}
	sum, err := Sum(vectors)
	if err != nil {
		return nil, err
	}
	return ScalarMultiply(1/float64(len(vectors)), sum), nil
}

// Dot returns the inner product of v and w.
func Dot(v, w Vector) (float64, error) {
	if err := checkPair(v, w); err != nil {
		return 0, err
	}
	return dot(v, w), nil
}

func dot(v, w Vector) float64 {
	var s float64
	for i := range v {
		s += v[i] * w[i]
	}
	return s
}

// SumOfSquares returns v · v.
func SumOfSquares(v Vector) float64 {
	return dot(v, v)
}

// Magnitude returns the Euclidean length of v.
func Magnitude(v Vector) float64 {
	return math.Sqrt(SumOfSquares(v))
}

// SquaredDistance returns the squared Euclidean distance between v and w.
func SquaredDistance(v, w Vector) (float64, error) {
	diff, err := Subtract(v, w)
	if err != nil {
		return 0, err
	}
	return SumOfSquares(diff), nil
}

// Distance returns the Euclidean distance between v and w.
func Distance(v, w Vector) (float64, error) {
	diff, err := Subtract(v, w)
	if err != nil {
		return 0, err
	}
	return Magnitude(diff), nil
}
