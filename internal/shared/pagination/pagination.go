package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Query selects one page of a listing. Page is 1-based.
type Query struct {
	Limit   int
	Page    int
	Keyword string
}

// Normalize applies defaults and bounds.
func (q Query) Normalize() Query {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return q
}

// Offset is the number of rows to skip for the page.
func (q Query) Offset() int {
	q = q.Normalize()
	return (q.Page - 1) * q.Limit
}

// Page is one slice of a listing plus the total number of matching rows.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// Slice cuts a page out of an already filtered, ordered list.
func Slice[T any](all []T, q Query) Page[T] {
	q = q.Normalize()
	start := q.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + q.Limit
	if end > len(all) {
		end = len(all)
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return Page[T]{Items: items, Total: int64(len(all)), Page: q.Page, Limit: q.Limit}
}

// Map converts the items of a page keeping its metadata.
func Map[T, U any](page Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, fn(item))
	}
	return Page[U]{Items: items, Total: page.Total, Page: page.Page, Limit: page.Limit}
}
