// Package distance provides metric-driven comparison of vectors.
//
// # Supported Metrics
//
//   - MetricEuclidean: Euclidean distance (default)
//   - MetricSquaredEuclidean: squared Euclidean distance
//   - MetricDot: dot product (inner product)
//   - MetricCosine: cosine similarity
//
// # Usage
//
//	fn, _ := distance.Provider(distance.MetricCosine)
//	sim, err := fn(a, b)
//	unit, ok := distance.NormalizeL2(vec)
package distance
