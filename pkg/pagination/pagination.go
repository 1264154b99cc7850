package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 25
	// MaxPageSize caps how many rows a single page may hold.
	MaxPageSize = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Page is one slice of an ordered collection plus the counts needed to render a pager.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// NormalizePageSize enforces the configured default and maximum page sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages returns ceil(total/pageSize), never less than one.
func TotalPages(total, pageSize int) int {
	pageSize = NormalizePageSize(pageSize)
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage keeps page inside [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices records into the requested page. The returned Items never alias records.
func Paginate[T any](records []T, params Params) Page[T] {
	size := NormalizePageSize(params.PageSize)
	total := len(records)
	pages := TotalPages(total, size)
	page := ClampPage(params.Page, pages)

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	items := make([]T, 0, end-start)
	if start < end {
		items = append(items, records[start:end]...)
	}
	return Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
		TotalItems: total,
	}
}
