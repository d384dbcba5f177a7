// Package localize selects the best-matching translation source for an
// ordered list of preferred locales and loads its content.
//
// A resolver holds an ordered list of sources — one mandatory fallback plus
// any number of additional locale variants — each a (tag, predicate, loader)
// triple. Resolving scores every source against the caller's locale
// preference list, picks a winner, invokes its loader, and returns the
// payload tagged with the winning locale. The package decides only "which
// source wins" and "how to fetch its content once"; it does not interpolate,
// pluralize, or validate locale identifiers.
//
// # Basic Usage
//
// Construct sources, build a resolver, resolve against a preference list:
//
//	resolver, err := localize.New(
//		localize.NewSource("en-US",
//			localize.Mean(localize.StartsWith("en"), localize.Is("en-US")),
//			localize.Static(localize.Dict{"hello": "Hello!"}),
//		),
//		localize.NewSource("zh-CN",
//			localize.Mean(localize.StartsWith("zh"), localize.Is("zh-CN")),
//			localize.Async(fetchChinese),
//		),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dict, err := resolver.Resolve(ctx, "zh-CN", "en-US")
//	// dict["hello"] == "你好！", localize.Tag(dict) == "zh-CN"
//
//	dict, err = resolver.Resolve(ctx, "fr-FR")
//	// no source matches: dict["hello"] == "Hello!", localize.Tag(dict) == "en-US"
//
// # Selection Semantics
//
// Locales are considered in the caller-given order, and the first locale for
// which any source scores above zero settles the winner — later, lower-priority
// locales are never consulted, even if they would score higher. Within one
// locale every source is scored in registration order and compared by
// absolute value with strict greater-than, so earlier-registered sources win
// ties. When nothing matches, the fallback wins; Resolve never comes back
// empty-handed without an error.
//
// # Predicates
//
// Predicates are pure scoring functions composed from small factories:
//
//	localize.Is("en-US")                         // exact match
//	localize.StartsWith("en")                    // prefix match
//	localize.IsOneOf("en", "en-US", "en-GB")     // set membership
//	localize.Matches(regexp.MustCompile(`^en`))  // regular expression
//	localize.Weighted(2, localize.StartsWith("en"))
//	localize.Mean(localize.StartsWith("en"), localize.Is("en-US"))
//
// Scores pass through unclamped: Weighted and Mean may produce values outside
// [0, 1], and negative scores de-prioritize by sign while the magnitude still
// competes.
//
// # Loaders
//
// A loader is either synchronous (Static, Sync) or asynchronous (Async); the
// fallback source requires a synchronous one. Loaders compose:
//
//	loader := localize.Memoize(
//		localize.Pick("messages", localize.JSONFile(translationsFS, "de.json")),
//	)
//
// Memoize invokes the wrapped loader at most once, ever — concurrent first
// callers share the in-flight load — so repeated resolutions of the same
// winner hit the file or network a single time. The resolver itself caches
// nothing across calls.
//
// # Accept-Language
//
// PreferredLanguages turns an Accept-Language header into the preference
// list Resolve expects:
//
//	dict, err := resolver.Resolve(ctx,
//		localize.PreferredLanguages(r.Header.Get("Accept-Language"))...,
//	)
//
// # Errors
//
// Construction problems surface from New as sentinel errors (ErrAsyncFallback,
// ErrEmptyTag, ErrNilPredicate, ErrNilLoader). A failing loader aborts
// Resolve with the error wrapped in the winning source's tag; there is no
// retry and no fallback to the next-best source.
//
// # Thread Safety
//
// A Resolver is immutable after construction and safe for concurrent use
// without synchronization. Each resolution returns a fresh tagged copy of
// the loaded payload.
package localize
