package localize

import (
	"regexp"
	"strings"
)

// StartsWith returns a predicate scoring 1 when the candidate locale begins
// with prefix (byte-wise comparison), 0 otherwise.
func StartsWith(prefix string) Predicate {
	return func(locale string) float64 {
		return Score(strings.HasPrefix(locale, prefix))
	}
}

// EndsWith returns a predicate scoring 1 when the candidate locale ends with
// suffix, 0 otherwise.
func EndsWith(suffix string) Predicate {
	return func(locale string) float64 {
		return Score(strings.HasSuffix(locale, suffix))
	}
}

// Is returns a predicate scoring 1 on exact equality with expected.
func Is(expected string) Predicate {
	return func(locale string) float64 {
		return Score(locale == expected)
	}
}

// IsOneOf returns a predicate scoring 1 when the candidate locale is a member
// of the given set. Order of candidates is irrelevant.
func IsOneOf(candidates ...string) Predicate {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	return func(locale string) float64 {
		_, ok := set[locale]
		return Score(ok)
	}
}

// Matches returns a predicate scoring 1 when the candidate locale matches re.
// Compile the pattern at the call site, e.g. Matches(regexp.MustCompile(`^en`)).
func Matches(re *regexp.Regexp) Predicate {
	return func(locale string) float64 {
		return Score(re.MatchString(locale))
	}
}

// Weighted scales another predicate's score by factor. Negative factors are
// allowed; the resolver compares absolute values, so a negative weight
// de-prioritizes by sign without inverting selection.
func Weighted(factor float64, p Predicate) Predicate {
	return func(locale string) float64 {
		return factor * p(locale)
	}
}

// Mean returns a predicate scoring the arithmetic mean of the given
// predicates' scores. Useful for grading match quality: Mean(StartsWith("en"),
// Is("en-US")) scores 1 on "en-US" and 0.5 on "en-GB". Calling Mean with no
// predicates is a programmer error and panics.
func Mean(predicates ...Predicate) Predicate {
	if len(predicates) == 0 {
		panic("localize: Mean requires at least one predicate")
	}
	return func(locale string) float64 {
		var sum float64
		for _, p := range predicates {
			sum += p(locale)
		}
		return sum / float64(len(predicates))
	}
}
