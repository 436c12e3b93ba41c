package upstream

import "context"

// maxPages caps cursor-driven aggregation. A buggy upstream cursor that
// never terminates stops here instead of looping forever; hitting the cap
// is not an error, the pages collected so far are returned.
const maxPages = 10

// Page is one page of a cursor-paginated listing. An empty Cursor means
// the listing is exhausted.
type Page[T any] struct {
	Objects []T
	Cursor  string
}

// FetchFunc returns the page at cursor. An empty cursor requests the
// first page.
type FetchFunc[T any] func(ctx context.Context, cursor string) (Page[T], error)

// CollectPages drains a paginated listing into a single slice, in
// page-arrival order. It stops when a page carries no cursor or after
// maxPages pages, whichever comes first; truncated reports whether the
// page ceiling cut the listing short. Any fetch error aborts immediately
// with no partial result.
func CollectPages[T any](ctx context.Context, fetch FetchFunc[T]) (objects []T, truncated bool, err error) {
	cursor := ""
	for page := 0; page < maxPages; page++ {
		p, err := fetch(ctx, cursor)
		if err != nil {
			return nil, false, err
		}
		objects = append(objects, p.Objects...)
		cursor = p.Cursor
		if cursor == "" {
			return objects, false, nil
		}
	}
	return objects, true, nil
}
