package localize

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

type languageTag struct {
	tag     string
	quality float64
}

// PreferredLanguages parses an Accept-Language header into an ordered locale
// preference list suitable for Resolver.Resolve. Entries are ordered by
// descending quality value (q=1 by default), equal qualities keep their
// header order, wildcards are skipped, and tags are lowercased. The header's
// locale strings are passed through otherwise untouched — no structural
// validation happens here.
//
// Example: "en-US,en;q=0.9,pl;q=0.8" yields ["en-us", "en", "pl"].
func PreferredLanguages(header string) []string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, languageTag{
				tag:     strings.ToLower(langPart),
				quality: quality,
			})
		}
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.tag
	}
	return out
}
