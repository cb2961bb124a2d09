package fixtures

// RandomElementFromSlice returns a random element of the given slice.
// It panics when the slice is empty.
func RandomElementFromSlice[T any](slice []T) T {
	return slice[Random.IntN(len(slice))]
}
