package bench

import (
	"runtime"

	"github.com/agbru/sumbench/internal/sysmon"
)

// Matrix is the ordered set of array sizes and thread counts to benchmark.
type Matrix struct {
	Sizes   []int
	Threads []int
}

// DefaultMatrix returns sizes {100000, 1000000, 10000000} crossed with
// thread counts {1, 4, 8, 10}.
func DefaultMatrix() Matrix {
	return Matrix{
		Sizes:   []int{100_000, 1_000_000, 10_000_000},
		Threads: []int{1, 4, 8, 10},
	}
}

// Trials returns the number of trials the matrix describes.
func (m Matrix) Trials() int {
	return len(m.Sizes) * len(m.Threads)
}

// DetectEnvironment queries the host once.
func DetectEnvironment() Environment {
	return Environment{
		LogicalCPUs:   sysmon.HardwareConcurrency(),
		PhysicalCores: sysmon.PhysicalCores(),
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
		GoVersion:     runtime.Version(),
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		CPUFeatures:   sysmon.CPUFeatures(),
	}
}
