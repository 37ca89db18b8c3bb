package cache

import "context"

// GetOrFetch returns the cached value for key or, on miss, computes it with
// fetch and stores the result under category. Concurrent callers missing on
// the same key share a single fetch. The fetch runs entirely outside the
// store's critical section, so a slow upstream never blocks cache access for
// other keys. Nothing is cached when fetch fails; the error is returned to
// every waiting caller.
func (s *Store[T]) GetOrFetch(ctx context.Context, key string, category Category, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}
	v, err, _ := s.group.Do(key, func() (any, error) {
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.Put(ctx, key, val, category)
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
