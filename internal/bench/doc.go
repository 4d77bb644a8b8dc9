// Package bench runs the benchmark matrix: for every array size it builds
// one array, times one reduction per thread count and reports each result.
// It decouples measurement from presentation via the Reporter interface.
package bench
