// Package params defines the parameter store abstraction shared by the
// Slack handlers: name/value maps read from and written under a path prefix.
package params

import "context"

// Store reads and writes name/value maps under a hierarchical prefix.
//
// Keys are always relative to the prefix (see RelativeName and JoinName), so a
// map written with PutParamMap reads back with the same keys from GetParamMap.
type Store interface {
	// GetParamMap returns every parameter under prefix keyed by its relative name.
	// A prefix without entries yields an empty map and a nil error.
	GetParamMap(ctx context.Context, prefix string) (map[string]string, error)

	// PutParamMap writes each entry as prefix/key, overwriting existing values.
	// Writes are applied in key order and stop at the first failure; entries
	// written before the failure are kept.
	PutParamMap(ctx context.Context, prefix string, values map[string]string) error
}
