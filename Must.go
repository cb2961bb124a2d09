package sequences

// Must removes the error handling burden by panicking on a non nil error.
//
//	vs := sequences.Must(sequences.Collect(iter))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
