package localize

import "errors"

var (
	ErrAsyncFallback  = errors.New("localize: fallback source requires a synchronous loader")
	ErrEmptyTag       = errors.New("localize: source tag cannot be empty")
	ErrNilPredicate   = errors.New("localize: source predicate cannot be nil")
	ErrNilLoader      = errors.New("localize: source loader cannot be nil")
	ErrKeyNotFound    = errors.New("localize: key not found in loaded payload")
	ErrInvalidPayload = errors.New("localize: loaded payload is not a dictionary")
	ErrInvalidFile    = errors.New("localize: invalid translation file")
)
