// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe random source for generating vectors used by property tests.
//
//	rng := testutil.NewRNG(seed)
//	v := rng.UniformRangeVector(16)        // values in [-1, 1)
//	vs := rng.UniformRangeVectors(8, 16)  // 8 vectors of length 16
package testutil
