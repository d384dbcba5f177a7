package localize

// tagKey marks the winning locale in a resolved payload. The NUL byte keeps
// it out of the keyspace reachable from JSON/YAML translation files, so it
// cannot collide with a real translation key.
const tagKey = "\x00localize:tag"

// Tag returns the locale identifier attached to a resolved payload, or an
// empty string for a dict that did not come out of Resolve.
func Tag(d Dict) string {
	if v, ok := d[tagKey].(string); ok {
		return v
	}
	return ""
}

// tagged attaches tag to a shallow copy of d. The copy means a shared dict
// (for example out of Memoize) is never mutated, and each resolution gets
// its own top-level map.
func tagged(d Dict, tag string) Dict {
	out := make(Dict, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	out[tagKey] = tag
	return out
}
