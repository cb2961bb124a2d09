package fixtures

// RandomIntn returns, as an int, a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func RandomIntn(n int) int {
	return Random.IntN(n)
}

// RandomIntBetween returns, as an int, a pseudo-random number in [min,max].
func RandomIntBetween(min, max int) int {
	return Random.IntBetween(min, max)
}
