package envkit

import (
	"fmt"
	"maps"
)

// Context is an immutable per-tag value map with an optional default,
// bound to the key it was built for. A Context performs pure lookups only:
// no I/O, no blocking, no side effects. Built contexts are safe to share
// across goroutines.
type Context[V any] struct {
	key        Key[V]
	values     map[Tag]V
	def        V
	hasDefault bool
}

// Key returns the key the context was built for.
func (c Context[V]) Key() Key[V] { return c.key }

// Get returns the value configured for tag. When no per-tag entry exists the
// default is returned instead; when neither exists the second return value
// is false.
func (c Context[V]) Get(tag Tag) (V, bool) {
	if v, ok := c.values[tag]; ok {
		return v, true
	}
	if c.hasDefault {
		return c.def, true
	}
	var zero V
	return zero, false
}

// GetOrError behaves like Get but returns an error wrapping ErrValueNotFound
// when neither a per-tag entry nor a default exists.
func (c Context[V]) GetOrError(tag Tag) (V, error) {
	v, ok := c.Get(tag)
	if !ok {
		return v, fmt.Errorf("%w: context %q has no value for tag %q", ErrValueNotFound, c.key.name, tag)
	}
	return v, nil
}

// keyID satisfies Entry.
func (c Context[V]) keyID() uint64 { return c.key.id }

// ContextBuilder accumulates per-tag entries and an optional default for one
// context. Builders are single-owner: they are not safe for concurrent use,
// only the Context they produce is.
type ContextBuilder[V any] struct {
	key        Key[V]
	values     map[Tag]V
	def        V
	hasDefault bool
}

// NewContext returns a builder for the context addressed by key. The key must
// come from NewKey; the zero Key has no identity and cannot address a context.
func NewContext[V any](key Key[V]) *ContextBuilder[V] {
	if key.id == 0 {
		panic("envkit: context key must be created with NewKey")
	}
	return &ContextBuilder[V]{key: key, values: make(map[Tag]V)}
}

// Set records or overwrites the entry for tag.
func (b *ContextBuilder[V]) Set(tag Tag, value V) *ContextBuilder[V] {
	b.values[tag] = value
	return b
}

// SetMany records the same value for every tag in tags. Later calls overwrite
// earlier entries for the same tag; an empty tag list is a no-op.
func (b *ContextBuilder[V]) SetMany(tags []Tag, value V) *ContextBuilder[V] {
	for _, tag := range tags {
		b.values[tag] = value
	}
	return b
}

// SetDefault records or overwrites the fallback value returned for tags
// without an entry of their own.
func (b *ContextBuilder[V]) SetDefault(value V) *ContextBuilder[V] {
	b.def = value
	b.hasDefault = true
	return b
}

// Build snapshots the accumulated state into an immutable Context. Build
// cannot fail; mutating the builder afterwards does not affect the returned
// context.
func (b *ContextBuilder[V]) Build() Context[V] {
	return Context[V]{
		key:        b.key,
		values:     maps.Clone(b.values),
		def:        b.def,
		hasDefault: b.hasDefault,
	}
}
