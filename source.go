package localize

import "context"

// Dict is a translation payload: a flat or nested map of translation keys to
// values, typically decoded from a JSON or YAML file.
type Dict map[string]any

// Predicate scores how well a source matches a candidate locale string.
// Zero means no match; the resolver compares absolute values, so negative
// scores de-prioritize without flipping the comparison. Boolean checks
// coerce through Score.
type Predicate func(locale string) float64

// Score converts a boolean match into a predicate score: true is 1, false is 0.
// Use it when writing custom predicates on top of boolean checks.
func Score(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

// Loader produces a translation payload on demand. It is a closed variant:
// either synchronous (completes without suspension, required for the
// fallback source) or asynchronous (may block on I/O and takes a context).
// The zero Loader is invalid; construct one with Sync, Async, or Static.
type Loader struct {
	sync  func() (Dict, error)
	async func(ctx context.Context) (Dict, error)
}

// Sync wraps a function that produces its payload immediately.
// Sync loaders are the only loaders accepted for a resolver's fallback source.
func Sync(fn func() (Dict, error)) Loader {
	return Loader{sync: fn}
}

// Async wraps a function that may block to produce its payload, such as a
// network fetch or file read. The context passed to Resolve flows through.
func Async(fn func(ctx context.Context) (Dict, error)) Loader {
	return Loader{async: fn}
}

// Static returns a synchronous loader over a fixed dictionary.
func Static(d Dict) Loader {
	return Sync(func() (Dict, error) {
		return d, nil
	})
}

// IsSync reports whether the loader completes without suspension.
func (l Loader) IsSync() bool {
	return l.sync != nil
}

func (l Loader) valid() bool {
	return l.sync != nil || l.async != nil
}

// load branches on the variant: sync loaders ignore the context entirely,
// async loaders receive it.
func (l Loader) load(ctx context.Context) (Dict, error) {
	if l.sync != nil {
		return l.sync()
	}
	return l.async(ctx)
}

// Source is one registered locale variant: an opaque tag identifying the
// locale, a predicate scoring candidate locales against it, and a loader
// producing its translation payload. Sources are immutable values; duplicate
// tags within one resolver are the caller's error.
type Source struct {
	tag    string
	match  Predicate
	loader Loader
}

// NewSource creates a source. Validation happens when the source is handed
// to New, not here, so sources compose freely in literals.
func NewSource(tag string, match Predicate, loader Loader) Source {
	return Source{tag: tag, match: match, loader: loader}
}

// Tag returns the source's locale identifier.
func (s Source) Tag() string {
	return s.tag
}
