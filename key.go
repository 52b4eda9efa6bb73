package envkit

import "sync/atomic"

var keySeq atomic.Uint64

// Key identifies one typed context within an Environment and pins the value
// type V all of its entries must have. Identity is the process-unique id
// assigned by NewKey; the name is a diagnostic label only, so two keys created
// with the same name and value type still address distinct contexts.
//
// Keys are typically declared once as package-level variables and shared
// between the code that builds the environment and the code that reads it:
//
//	var APIBaseURL = envkit.NewKey[string]("api_base_url")
type Key[V any] struct {
	id   uint64
	name string
}

// NewKey allocates a fresh context key for values of type V.
func NewKey[V any](name string) Key[V] {
	return Key[V]{id: keySeq.Add(1), name: name}
}

// Name returns the diagnostic label the key was created with.
func (k Key[V]) Name() string { return k.name }
