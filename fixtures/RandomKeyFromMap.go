package fixtures

// RandomKeyFromMap returns a random key of the given map.
// It panics when the map is empty.
func RandomKeyFromMap[K comparable, V any](anyMap map[K]V) K {
	index := Random.IntN(len(anyMap))
	for k := range anyMap {
		if index == 0 {
			return k
		}
		index--
	}
	panic(`fixtures: RandomKeyFromMap expects a non-empty map`)
}
