// Package clone provides a generic deep-copy helper over
// github.com/mitchellh/copystructure, used where a shared template value
// must be snapshotted before per-call mutation instead of hand-rolling a
// field-by-field copy that has to be kept in sync with the struct by hand.
package clone

import "github.com/mitchellh/copystructure"

// Of returns a deep copy of v.
func Of[T any](v T) (T, error) {
	copied, err := copystructure.Copy(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return copied.(T), nil
}
