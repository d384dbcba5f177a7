package localize

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"
)

// Pick returns an asynchronous loader that awaits l and selects the
// sub-dictionary stored under key. It fails with ErrKeyNotFound when the key
// is absent and ErrInvalidPayload when the value is not a dictionary.
func Pick(key string, l Loader) Loader {
	return Async(func(ctx context.Context) (Dict, error) {
		d, err := l.load(ctx)
		if err != nil {
			return nil, err
		}
		v, ok := d[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		switch t := v.(type) {
		case Dict:
			return t, nil
		case map[string]any:
			return Dict(t), nil
		default:
			return nil, fmt.Errorf("%w: key %q holds %T", ErrInvalidPayload, key, v)
		}
	})
}

// Map returns an asynchronous loader that awaits l and applies transform to
// its payload.
func Map(l Loader, transform func(Dict) Dict) Loader {
	return Async(func(ctx context.Context) (Dict, error) {
		d, err := l.load(ctx)
		if err != nil {
			return nil, err
		}
		return transform(d), nil
	})
}

// Memoize returns an asynchronous loader that invokes l at most once, ever.
// Concurrent first callers share the single in-flight load and all observe
// its result; once settled, the result — including an error — is returned to
// every subsequent call without re-invoking l. The first caller's context
// governs the underlying load; callers blocked on the shared flight cannot
// cancel it.
func Memoize(l Loader) Loader {
	var (
		once sync.Once
		d    Dict
		err  error
	)
	return Async(func(ctx context.Context) (Dict, error) {
		once.Do(func() {
			d, err = l.load(ctx)
		})
		return d, err
	})
}

// JSONFile returns an asynchronous loader reading one JSON translation file
// from fsys. The file must decode to an object.
func JSONFile(fsys fs.FS, path string) Loader {
	return fileLoader(fsys, path, func(data []byte, v any) error {
		return json.Unmarshal(data, v)
	})
}

// YAMLFile returns an asynchronous loader reading one YAML translation file
// from fsys. The file must decode to a mapping.
func YAMLFile(fsys fs.FS, path string) Loader {
	return fileLoader(fsys, path, func(data []byte, v any) error {
		return yaml.Unmarshal(data, v)
	})
}

func fileLoader(fsys fs.FS, path string, unmarshal func([]byte, any) error) Loader {
	return Async(func(ctx context.Context) (Dict, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		var d Dict
		if err := unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, path, err)
		}

		return d, nil
	})
}
