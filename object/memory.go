package object

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Size of a vector or matrix element in bytes.
const FloatSize = 8

// Element counts up to this are never checked (one typical 4k page).
const uncheckedElements = 512

// FreeMemory is the room left under the GOMEMLIMIT, in bytes. Can be negative.
func FreeMemory() int64 {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	gomemlimit := debug.SetMemoryLimit(-1) // -1 only reads the current limit.
	return gomemlimit - int64(memStats.HeapAlloc) //nolint:gosec // can be negative.
}

// SizeOk checks that n more elements fit in memory. Also returns the free memory.
func SizeOk(n int) (bool, int64) {
	if n <= uncheckedElements {
		return true, 0
	}
	free := FreeMemory()
	return free >= 0 && int64(n)*FloatSize < free, free
}

// MustBeOk panics, after one garbage collection retry, when n elements don't fit.
// The panic is caught by the repl, like the max depth one.
func MustBeOk(n int) {
	if ok, _ := SizeOk(n); ok {
		return
	}
	runtime.GC()
	if ok, free := SizeOk(n); !ok {
		panic(fmt.Sprintf("would exceed memory requesting %d elements, %d free", n, free))
	}
}

// MakeFloatSlice is the memory checking make([]float64, 0, n).
func MakeFloatSlice(n int) []float64 {
	MustBeOk(n)
	return make([]float64, 0, n)
}

// MakeMatrix allocates the zeroed columns of a rows x cols matrix, checking the
// whole size first so a large product fails before any work is done.
func MakeMatrix(rows, cols int) [][]float64 {
	MustBeOk(rows * cols)
	columns := make([][]float64, cols)
	for c := range columns {
		columns[c] = make([]float64, rows)
	}
	return columns
}
