package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMaxFunc returns the index of the first item with the largest value, or
// -1 for an empty slice.
func ArgMaxFunc[T any](slice []T, value func(T) float64) int {
	best := -1
	bestValue := 0.0
	for i, v := range slice {
		if x := value(v); best < 0 || x > bestValue {
			best = i
			bestValue = x
		}
	}
	return best
}
