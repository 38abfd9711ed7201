package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a normalized page/pageSize pair.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps out-of-range values instead of rejecting them:
// page below 1 falls back to 1, pageSize outside [1, MaxPageSize]
// falls back to the default.
func Normalize(page, pageSize int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return Page{Number: page, Size: pageSize}
}

// Offset returns the row offset for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
