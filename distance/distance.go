package distance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/vecmath"
)

// ErrZeroMagnitude is returned by Cosine when an operand has zero length.
var ErrZeroMagnitude = errors.New("cosine undefined for zero-magnitude vector")

// Euclidean calculates the Euclidean distance between two vectors.
func Euclidean(a, b vecmath.Vector) (float64, error) {
	return vecmath.Distance(a, b)
}

// SquaredEuclidean calculates the squared Euclidean distance between two vectors.
func SquaredEuclidean(a, b vecmath.Vector) (float64, error) {
	return vecmath.SquaredDistance(a, b)
}

// Dot calculates the dot product of two vectors.
func Dot(a, b vecmath.Vector) (float64, error) {
	return vecmath.Dot(a, b)
}

// Cosine calculates the cosine similarity of two vectors.
// Returns ErrZeroMagnitude if either vector has zero L2 norm.
func Cosine(a, b vecmath.Vector) (float64, error) {
	d, err := vecmath.Dot(a, b)
	if err != nil {
		return 0, err
	}
	na, nb := vecmath.Magnitude(a), vecmath.Magnitude(b)
	if na == 0 || nb == 0 {
		return 0, ErrZeroMagnitude
	}
	return d / (na * nb), nil
}

// NormalizeL2 returns a unit-length copy of v.
// Returns false if v is empty or has zero L2 norm.
func NormalizeL2(v vecmath.Vector) (vecmath.Vector, bool) {
	if len(v) == 0 {
		return nil, false
	}
	norm := vecmath.Magnitude(v)
	if norm == 0 {
		return nil, false
	}
	return vecmath.ScalarMultiply(1/norm, v), true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricDot
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricDot:
		return "Dot"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric resolves a metric by name, case-insensitively.
// Accepts "l2" and "sql2" as aliases.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(name) {
	case "euclidean", "l2":
		return MetricEuclidean, nil
	case "squaredeuclidean", "squared-euclidean", "sql2":
		return MetricSquaredEuclidean, nil
	case "dot":
		return MetricDot, nil
	case "cosine":
		return MetricCosine, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", name)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b vecmath.Vector) (float64, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricDot:
		return Dot, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
