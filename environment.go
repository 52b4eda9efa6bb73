package envkit

import "maps"

// Entry is the non-generic view of a built Context, accepted by
// EnvironmentBuilder.WithContext. Only Context values implement it.
type Entry interface {
	keyID() uint64
}

// Environment holds the current deployment tag together with every registered
// context. It is immutable once built and safe to share across goroutines
// without synchronization.
//
// Contexts are retrieved through the package-level functions ContextOf,
// ValueAt and CurrentValue; Go methods cannot introduce type parameters, so
// typed retrieval cannot live on Environment itself.
type Environment struct {
	current  Tag
	contexts map[uint64]any
}

// Current returns the tag the environment was built with.
func (e *Environment) Current() Tag { return e.current }

// ContextOf returns the context registered for key, or false when none was
// registered. The type assertion below is the single place a stored context
// is recovered at its static type; it cannot fail for keys created with
// NewKey because the registry is keyed by their unique identity.
func ContextOf[V any](env *Environment, key Key[V]) (Context[V], bool) {
	entry, ok := env.contexts[key.id]
	if !ok {
		return Context[V]{}, false
	}
	ctx, ok := entry.(Context[V])
	return ctx, ok
}

// ValueAt returns the value the context registered for key yields under tag.
// It returns false when no context is registered or the context has neither
// an entry for tag nor a default.
func ValueAt[V any](env *Environment, key Key[V], tag Tag) (V, bool) {
	ctx, ok := ContextOf(env, key)
	if !ok {
		var zero V
		return zero, false
	}
	return ctx.Get(tag)
}

// CurrentValue is ValueAt under the environment's current tag.
func CurrentValue[V any](env *Environment, key Key[V]) (V, bool) {
	return ValueAt(env, key, env.current)
}

// EnvironmentBuilder accumulates the current tag and contexts for an
// Environment. Builders are single-owner up to the Build call.
type EnvironmentBuilder struct {
	current    Tag
	hasCurrent bool
	contexts   map[uint64]any
}

// NewEnvironment returns an empty environment builder.
func NewEnvironment() *EnvironmentBuilder {
	return &EnvironmentBuilder{contexts: make(map[uint64]any)}
}

// Current sets the current deployment tag.
func (b *EnvironmentBuilder) Current(tag Tag) *EnvironmentBuilder {
	b.current = tag
	b.hasCurrent = true
	return b
}

// CurrentFrom sets the current tag by looking up key in src and parsing the
// result, falling back to DefaultTag when the value is missing or unparsable
// (the lenient adapter contract of FromSource).
func (b *EnvironmentBuilder) CurrentFrom(src Source, key string) *EnvironmentBuilder {
	return b.Current(FromSource(src, key))
}

// WithContext registers a built context under its key. Registering a second
// context for the same key overwrites the earlier one.
func (b *EnvironmentBuilder) WithContext(entry Entry) *EnvironmentBuilder {
	b.contexts[entry.keyID()] = entry
	return b
}

// Build snapshots the accumulated state into an immutable Environment. It
// fails with ErrNoCurrentTag when no current tag was set; everything else is
// optional.
func (b *EnvironmentBuilder) Build() (*Environment, error) {
	if !b.hasCurrent {
		return nil, ErrNoCurrentTag
	}
	return &Environment{
		current:  b.current,
		contexts: maps.Clone(b.contexts),
	}, nil
}
