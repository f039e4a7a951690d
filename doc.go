// Package vecmath provides elementary vector arithmetic over float64 slices.
//
// Every function is pure: inputs are never mutated and results are freshly
// allocated. Operations that combine vectors require them to share a common
// length and report violations as errors instead of panicking.
//
// # Operations
//
//	sum, _ := vecmath.Add(v, w)            // elementwise v + w
//	diff, _ := vecmath.Subtract(v, w)      // elementwise v - w
//	total, _ := vecmath.Sum(vectors)       // elementwise sum of many vectors
//	scaled := vecmath.ScalarMultiply(2, v) // c * v
//	centroid, _ := vecmath.Mean(vectors)   // elementwise average
//	dot, _ := vecmath.Dot(v, w)            // inner product
//	norm := vecmath.Magnitude(v)           // Euclidean length
//	dist, _ := vecmath.Distance(v, w)      // Euclidean distance
//
// # Errors
//
// Mismatched lengths are reported as *ErrLengthMismatch:
//
//	var lm *vecmath.ErrLengthMismatch
//	if errors.As(err, &lm) {
//	    fmt.Println(lm.Expected, lm.Actual)
//	}
//
// Reductions over an empty collection return ErrEmptyInput.
//
// # Concurrency
//
// All functions are safe for concurrent use, including on shared vectors.
package vecmath
