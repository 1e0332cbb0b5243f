package common

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ParallelMap runs fn over every key in keys concurrently, one goroutine per
// key; no concurrency limit is set on the errgroup, so callers with very
// large corpora should chunk keys upstream. Results are collected into
// a map keyed exactly like the input, so the caller's final iteration order
// is whatever it chooses downstream — the result itself is independent of
// goroutine scheduling, not returned in any particular order from this
// function.
//
// fn must not mutate shared state outside of what it returns; each key's
// computation should read only immutable shared inputs, since per-book
// analysis runs concurrently across books.
func ParallelMap[K comparable, V any](ctx context.Context, keys []K, fn func(context.Context, K) (V, error)) (map[K]V, error) {
	results := make(map[K]V, len(keys))
	g, gctx := errgroup.WithContext(ctx)

	type pair struct {
		k K
		v V
	}
	out := make(chan pair, len(keys))

	for _, k := range keys {
		k := k
		g.Go(func() error {
			v, err := fn(gctx, k)
			if err != nil {
				return err
			}
			out <- pair{k, v}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(out)
	for p := range out {
		results[p.k] = p.v
	}
	return results, nil
}

// SortedKeys returns the keys of a map[string]V in lexicographic order, used
// wherever a deterministic iteration order over book IDs or level names is
// required for byte-identical output across runs.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
