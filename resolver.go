package localize

import (
	"context"
	"fmt"
	"math"
)

// Resolver selects the best-matching source for an ordered list of preferred
// locales and loads its translation payload. It owns a non-empty, ordered
// source list: the first entry is the mandatory fallback (synchronous loader
// required), the rest keep their registration order. A Resolver is immutable
// after construction and safe for concurrent use; it caches nothing across
// calls — every Resolve re-scores from scratch and re-invokes the winning
// loader (wrap loaders with Memoize if one fetch should be shared).
type Resolver struct {
	sources []Source
}

// New creates a resolver over a fallback source and zero or more additional
// sources. The fallback must carry a synchronous loader; additional sources
// may be synchronous or asynchronous. Each source needs a non-empty tag, a
// predicate, and a loader.
func New(fallback Source, extras ...Source) (*Resolver, error) {
	if !fallback.loader.IsSync() {
		if !fallback.loader.valid() {
			return nil, fmt.Errorf("%w: fallback %q", ErrNilLoader, fallback.tag)
		}
		return nil, fmt.Errorf("%w: %q", ErrAsyncFallback, fallback.tag)
	}

	sources := make([]Source, 0, len(extras)+1)
	sources = append(sources, fallback)
	sources = append(sources, extras...)

	for _, src := range sources {
		switch {
		case src.tag == "":
			return nil, ErrEmptyTag
		case src.match == nil:
			return nil, fmt.Errorf("%w: %q", ErrNilPredicate, src.tag)
		case !src.loader.valid():
			return nil, fmt.Errorf("%w: %q", ErrNilLoader, src.tag)
		}
	}

	return &Resolver{sources: sources}, nil
}

// Sources returns a copy of the resolver's source list, fallback first.
func (r *Resolver) Sources() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Resolve picks the winning source for the given locale preference list,
// loads its payload, and returns the payload tagged with the winning
// source's locale identifier (recover it with Tag).
//
// Locales are considered in the caller-given order; the first locale for
// which any source scores above zero decides the winner, and later locales
// are never consulted. Within one locale, every source is scored in
// registration order and compared by absolute value with strict
// greater-than, so earlier-registered sources win ties. When no locale
// matches anything — including an empty preference list — the fallback
// wins.
//
// Resolve never returns a nil payload without an error: a predicate or
// loader failure propagates as-is, with no retry and no substitution of a
// lower-scoring source.
func (r *Resolver) Resolve(ctx context.Context, preferred ...string) (Dict, error) {
	best := r.sources[0]
	bestScore := 0.0

	for _, locale := range preferred {
		// Scan every source for this locale even after a positive score:
		// the strict > comparison needs the full registration-order pass
		// to keep earlier ties winning.
		for _, src := range r.sources {
			if score := math.Abs(src.match(locale)); score > bestScore {
				bestScore = score
				best = src
			}
		}
		if bestScore > 0 {
			break
		}
	}

	d, err := best.loader.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("localize: loading source %q: %w", best.tag, err)
	}

	return tagged(d, best.tag), nil
}
