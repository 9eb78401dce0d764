package notion

import "time"

// Database is a database as returned by the service.
type Database struct {
	Object         string                    `json:"object"`
	ID             DatabaseID                `json:"id"`
	CreatedTime    time.Time                 `json:"created_time"`
	LastEditedTime time.Time                 `json:"last_edited_time"`
	CreatedBy      *PartialUser              `json:"created_by,omitempty"`
	LastEditedBy   *PartialUser              `json:"last_edited_by,omitempty"`
	Title          []RichText                `json:"title"`
	Description    []RichText                `json:"description"`
	Icon           *Icon                     `json:"icon"`
	Cover          *FileObject               `json:"cover"`
	Properties     map[string]PropertySchema `json:"properties"`
	Parent         Parent                    `json:"parent"`
	URL            string                    `json:"url"`
	Archived       bool                      `json:"archived"`
	InTrash        bool                      `json:"in_trash"`
	IsInline       bool                      `json:"is_inline"`
	PublicURL      *string                   `json:"public_url"`
}

// DatabaseRequest is the payload to create or update a database.
type DatabaseRequest struct {
	Parent      *Parent                   `json:"parent,omitempty"`
	Title       []RichText                `json:"title,omitempty"`
	Description []RichText                `json:"description,omitempty"`
	Properties  map[string]PropertySchema `json:"properties,omitempty"`
	Icon        *Icon                     `json:"icon,omitempty"`
	Cover       *FileObject               `json:"cover,omitempty"`
	IsInline    *bool                     `json:"is_inline,omitempty"`
	Archived    *bool                     `json:"archived,omitempty"`
}

// NewDatabase starts a request to create a database on the given page.
// The database gets a title property called "Name".
func NewDatabase(parent PageID, title ...RichText) DatabaseRequest {
	p := PageParent(parent)
	return DatabaseRequest{
		Parent: &p,
		Title:  title,
		Properties: map[string]PropertySchema{
			"Name": SchemaOf(TitleProperty),
		},
	}
}

// DatabaseUpdate starts a request to update a database.
func DatabaseUpdate() DatabaseRequest {
	return DatabaseRequest{}
}

// WithProperty adds or replaces a column.
func (r DatabaseRequest) WithProperty(name string, s PropertySchema) DatabaseRequest {
	props := make(map[string]PropertySchema, len(r.Properties)+1)
	for k, v := range r.Properties {
		props[k] = v
	}
	props[name] = s
	r.Properties = props
	return r
}

func (r DatabaseRequest) WithTitle(title ...RichText) DatabaseRequest {
	r.Title = title
	return r
}

func (r DatabaseRequest) WithDescription(text ...RichText) DatabaseRequest {
	r.Description = text
	return r
}

func (r DatabaseRequest) WithIcon(icon *Icon) DatabaseRequest { r.Icon = icon; return r }

func (r DatabaseRequest) WithInline(inline bool) DatabaseRequest {
	r.IsInline = &inline
	return r
}

// Validate checks the request for creating a database.
func (r DatabaseRequest) Validate() error {
	if r.Parent == nil || r.Parent.Type != PageParentType {
		return NewValidationError("database needs a parent page")
	}
	titles := 0
	for _, s := range r.Properties {
		if s.Type == TitleProperty {
			titles++
		}
	}
	if titles != 1 {
		return NewValidationError("database needs exactly one title property, got %d", titles)
	}
	return nil
}

// DatabaseQuery filters and sorts the pages of a database.
// Filter is passed to the service as is.
type DatabaseQuery struct {
	Filter      interface{} `json:"filter,omitempty"`
	Sorts       []Sort      `json:"sorts,omitempty"`
	StartCursor string      `json:"start_cursor,omitempty"`
	PageSize    int         `json:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
}

// Sort orders query results by a property or a timestamp.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction" validate:"oneof=ascending descending"`
}

// Validate checks page size and sort directions.
func (q DatabaseQuery) Validate() error {
	err := validate.Struct(q)
	if err != nil {
		return NewValidationError("invalid query: %v", err)
	}
	for i, s := range q.Sorts {
		err = validate.Struct(s)
		if err != nil {
			return NewValidationError("invalid sort %d: %v", i, err)
		}
	}
	return nil
}
