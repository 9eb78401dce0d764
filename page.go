package notion

import "time"

// Page is a page as returned by the service.
// The content of a page is retrieved separately as the children
// of the page's block.
type Page struct {
	Object         string                   `json:"object"`
	ID             PageID                   `json:"id"`
	CreatedTime    time.Time                `json:"created_time"`
	LastEditedTime time.Time                `json:"last_edited_time"`
	CreatedBy      *PartialUser             `json:"created_by,omitempty"`
	LastEditedBy   *PartialUser             `json:"last_edited_by,omitempty"`
	Archived       bool                     `json:"archived"`
	InTrash        bool                     `json:"in_trash"`
	Icon           *Icon                    `json:"icon"`
	Cover          *FileObject              `json:"cover"`
	Properties     map[string]PropertyValue `json:"properties"`
	Parent         Parent                   `json:"parent"`
	URL            string                   `json:"url"`
	PublicURL      *string                  `json:"public_url"`
}

// Title returns the plain text of the page's title property.
func (p Page) Title() string {
	for _, v := range p.Properties {
		if v.Type == TitleProperty {
			return PlainTextOf(v.Title)
		}
	}
	return ""
}

// PageRequest is the payload to create or update a page.
type PageRequest struct {
	Parent     *Parent                  `json:"parent,omitempty"`
	Properties map[string]PropertyValue `json:"properties,omitempty"`
	Children   []Block                  `json:"children,omitempty"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Cover      *FileObject              `json:"cover,omitempty"`
	Archived   *bool                    `json:"archived,omitempty"`
	InTrash    *bool                    `json:"in_trash,omitempty"`
}

// NewPage starts a request to create a page below the given parent.
func NewPage(parent Parent) PageRequest {
	return PageRequest{Parent: &parent}
}

// PageUpdate starts a request to update page properties.
func PageUpdate() PageRequest {
	return PageRequest{}
}

// WithTitle sets the "title" property. Pages in a database
// may name their title property differently; use WithProperty for those.
func (r PageRequest) WithTitle(text ...RichText) PageRequest {
	return r.WithProperty("title", TitleValue(text...))
}

// WithProperty sets a single property value.
func (r PageRequest) WithProperty(name string, v PropertyValue) PageRequest {
	props := make(map[string]PropertyValue, len(r.Properties)+1)
	for k, p := range r.Properties {
		props[k] = p
	}
	props[name] = v
	r.Properties = props
	return r
}

func (r PageRequest) WithChildren(children ...Block) PageRequest { r.Children = children; return r }
func (r PageRequest) WithIcon(icon *Icon) PageRequest            { r.Icon = icon; return r }
func (r PageRequest) WithCover(f FileObject) PageRequest         { r.Cover = &f; return r }

// WithArchived moves the page to or from the trash.
func (r PageRequest) WithArchived(archived bool) PageRequest {
	r.Archived = &archived
	return r
}

// Validate checks the request for creating a page.
func (r PageRequest) Validate() error {
	if r.Parent == nil {
		return NewValidationError("page needs a parent")
	}
	if r.Parent.Type == WorkspaceParentType {
		return NewValidationError("pages cannot be created at the workspace level")
	}
	return validateChildren(r.Children)
}

func validateChildren(children []Block) error {
	for i, c := range children {
		err := c.Validate()
		if err != nil {
			return Wrap(err, "child %d", i)
		}
	}
	return nil
}
