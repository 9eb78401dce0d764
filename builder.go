package notion

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checker is implemented by block contents with invariants
// that span more than a single field.
type checker interface {
	check() error
}

// NewBlock creates a block from the given content.
// The content and all nested children are validated;
// a validation error is returned if any of them is invalid.
func NewBlock(data BlockData) (Block, error) {
	b := Block{Data: data}
	err := b.Validate()
	if err != nil {
		return Block{}, err
	}
	return b, nil
}

// MustBlock is like NewBlock but panics if the content is invalid.
// It is meant for static content in tests and examples.
func MustBlock(data BlockData) Block {
	b, err := NewBlock(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Validate checks if the block can be sent to the service.
func (b Block) Validate() error {
	if b.Data == nil {
		return NewValidationError("block has no content")
	}
	t := b.Type()

	if _, ok := b.Data.(Unsupported); ok {
		return NewValidationError("cannot send block of unsupported type %q", t)
	}

	err := validate.Struct(b.Data)
	if err != nil {
		return fieldError(t, err)
	}

	if c, ok := b.Data.(checker); ok {
		err = c.check()
		if err != nil {
			return err
		}
	}

	for i, child := range b.Children() {
		err = child.Validate()
		if err != nil {
			return Wrap(err, "%v block, child %d", t, i)
		}
	}

	return nil
}

// ValidateUpdate checks if the block content can be sent as an update.
// Updates do not carry children, so the nested blocks are left out and
// only the block's own fields are checked.
// Returns the content without children.
func (b Block) ValidateUpdate() (BlockData, error) {
	if b.Data == nil {
		return nil, NewValidationError("block has no content")
	}
	t := b.Type()

	if _, ok := b.Data.(Unsupported); ok {
		return nil, NewValidationError("cannot send block of unsupported type %q", t)
	}

	data := b.Data
	c, isContainer := data.(container)
	if isContainer {
		data = c.withChildBlocks(nil)
	}

	err := validate.Struct(data)
	if err != nil {
		return nil, fieldError(t, err)
	}

	// child counts and row widths only apply when children are sent
	if ch, ok := data.(checker); ok && !isContainer {
		err = ch.check()
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}

func fieldError(t BlockType, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) != 0 {
		fe := errs[0]
		if fe.Param() != "" {
			return NewValidationError("%v block: field %q failed %v=%v (got %v)",
				t, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		}
		return NewValidationError("%v block: field %q failed %v", t, fe.Field(), fe.Tag())
	}
	return NewValidationError("%v block: %v", t, err)
}

func (t Table) check() error {
	if len(t.Children) == 0 {
		return NewValidationError("table needs at least one row")
	}
	for i, child := range t.Children {
		row, ok := child.Data.(TableRow)
		if !ok {
			return NewValidationError("table child %d is a %q, not a table row", i, child.Type())
		}
		if len(row.Cells) != t.TableWidth {
			return NewValidationError("table row %d has %d cells, table width is %d",
				i, len(row.Cells), t.TableWidth)
		}
	}
	return nil
}

func (c ColumnList) check() error {
	if len(c.Children) < 2 {
		return NewValidationError("column list needs at least two columns, got %d", len(c.Children))
	}
	for i, child := range c.Children {
		if child.Type() != ColumnType {
			return NewValidationError("column list child %d is a %q, not a column", i, child.Type())
		}
	}
	return nil
}

func (c Column) check() error {
	if len(c.Children) == 0 {
		return NewValidationError("column needs at least one child")
	}
	return nil
}

func (l LinkToPage) check() error {
	switch {
	case l.Type == PageParentType && l.PageID == nil:
		return NewValidationError("link to page without page id")
	case l.Type == DatabaseParentType && l.DatabaseID == nil:
		return NewValidationError("link to database without database id")
	}
	return nil
}

// Children ---------------------------------------------------------------------

// container is implemented by block contents that can have child blocks.
type container interface {
	childBlocks() []Block
	withChildBlocks(children []Block) BlockData
}

// Children returns the nested blocks that are part of this block's content.
//
// Blocks retrieved from the service do not include their children;
// use HasChildren to tell if there are any to fetch.
func (b Block) Children() []Block {
	if c, ok := b.Data.(container); ok {
		return c.childBlocks()
	}
	return nil
}

// AcceptsChildren tells if the block type can have nested blocks.
func (b Block) AcceptsChildren() bool {
	_, ok := b.Data.(container)
	return ok
}

// WithChildren returns a copy of b with the given children.
// Returns a validation error if the block type does not accept children.
func (b Block) WithChildren(children ...Block) (Block, error) {
	c, ok := b.Data.(container)
	if !ok {
		return b, NewValidationError("%v block cannot have children", b.Type())
	}
	b.Data = c.withChildBlocks(children)
	return b, nil
}

func (p Paragraph) childBlocks() []Block                       { return p.Children }
func (b BulletedListItem) childBlocks() []Block                { return b.Children }
func (n NumberedListItem) childBlocks() []Block                { return n.Children }
func (q Quote) childBlocks() []Block                           { return q.Children }
func (t Toggle) childBlocks() []Block                          { return t.Children }
func (t ToDo) childBlocks() []Block                            { return t.Children }
func (h Heading) childBlocks() []Block                         { return h.Children }
func (c Callout) childBlocks() []Block                         { return c.Children }
func (t Template) childBlocks() []Block                        { return t.Children }
func (c ColumnList) childBlocks() []Block                      { return c.Children }
func (c Column) childBlocks() []Block                          { return c.Children }
func (s SyncedBlock) childBlocks() []Block                     { return s.Children }
func (t Table) childBlocks() []Block                           { return t.Children }
func (p Paragraph) withChildBlocks(c []Block) BlockData        { p.Children = c; return p }
func (b BulletedListItem) withChildBlocks(c []Block) BlockData { b.Children = c; return b }
func (n NumberedListItem) withChildBlocks(c []Block) BlockData { n.Children = c; return n }
func (q Quote) withChildBlocks(c []Block) BlockData            { q.Children = c; return q }
func (t Toggle) withChildBlocks(c []Block) BlockData           { t.Children = c; return t }
func (t ToDo) withChildBlocks(c []Block) BlockData             { t.Children = c; return t }
func (c Callout) withChildBlocks(ch []Block) BlockData         { c.Children = ch; return c }
func (t Template) withChildBlocks(c []Block) BlockData         { t.Children = c; return t }
func (c ColumnList) withChildBlocks(ch []Block) BlockData      { c.Children = ch; return c }
func (c Column) withChildBlocks(ch []Block) BlockData          { c.Children = ch; return c }
func (s SyncedBlock) withChildBlocks(c []Block) BlockData      { s.Children = c; return s }
func (t Table) withChildBlocks(c []Block) BlockData            { t.Children = c; return t }

func (h Heading) withChildBlocks(c []Block) BlockData {
	h.Children = c
	h.IsToggleable = h.IsToggleable || len(c) != 0
	return h
}
