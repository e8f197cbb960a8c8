package pagination

const (
	DefaultPer = 20
	MaxPer     = 100
)

// Page is the uniform shape every list operation returns.
type Page[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"hasMore"`
}

// Normalize clamps page/per to sane values. Pages are 1-based.
func Normalize(page, per int) (int, int) {
	if page < 1 {
		page = 1
	}
	if per < 1 {
		per = DefaultPer
	}
	if per > MaxPer {
		per = MaxPer
	}
	return page, per
}

// Slice paginates an already-sorted slice. An out-of-range page yields an
// empty page, not an error.
func Slice[T any](items []T, page, per int) Page[T] {
	page, per = Normalize(page, per)

	start := (page - 1) * per
	if start >= len(items) {
		return Page[T]{Items: []T{}}
	}

	end := start + per
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:   items[start:end],
		HasMore: end < len(items),
	}
}
