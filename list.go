package notion

// List is a single page of results from a list endpoint.
// Use NextOptions to request the following page.
type List[T any] struct {
	Object     string  `json:"object"`
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
	Type       string  `json:"type,omitempty"`
}

// ListOptions select a page of results.
type ListOptions struct {
	StartCursor string `validate:"omitempty"`
	PageSize    int    `validate:"omitempty,min=1,max=100"`
}

// Validate checks the page size.
func (o ListOptions) Validate() error {
	err := validate.Struct(o)
	if err != nil {
		return NewValidationError("invalid list options: %v", err)
	}
	return nil
}

// NextOptions returns the options to fetch the next page of results
// with the same page size, or nil if this is the last page.
func (l List[T]) NextOptions(pageSize int) *ListOptions {
	if !l.HasMore || l.NextCursor == nil {
		return nil
	}
	return &ListOptions{StartCursor: *l.NextCursor, PageSize: pageSize}
}
