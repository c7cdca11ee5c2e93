// Package floatutils provides utilities for working with floats
package floatutils

import "math"

// Round rounds a float to the given number of decimal places
func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// MaxSlice gets the maximum value and indices of the maximum values in
// a slice of float64.
func MaxSlice(values []float64) (max float64, indices []int) {
	return MaxSliceExcept(values, nil)
}

// MaxSliceExcept gets the maximum value and the indices of the maximum
// values in a slice of float64, ignoring every index in except. If
// every index is ignored, the returned max is -Inf and indices is nil.
func MaxSliceExcept(values []float64, except map[int]bool) (max float64,
	indices []int) {
	max = math.Inf(-1)

	for i, value := range values {
		if except[i] {
			continue
		}

		if value > max || indices == nil {
			max = value
			indices = []int{i}
		} else if value == max {
			indices = append(indices, i)
		}
	}
	return
}
