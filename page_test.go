package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest(t *testing.T) {
	parent := MustParseDatabaseID("d9824bdc-8445-4327-be8b-5b47500af6ce")
	r := NewPage(DatabaseParent(parent)).
		WithProperty("Name", TitleValue(NewText("Tuscan kale"))).
		WithProperty("Price", NumberValue(2.5)).
		WithIcon(NewEmoji("🥬")).
		WithChildren(MustBlock(NewParagraph(NewText("Lacinato kale"))))
	require.NoError(t, r.Validate())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"parent": {"type": "database_id", "database_id": "d9824bdc-8445-4327-be8b-5b47500af6ce"},
		"properties": {
			"Name": {"type": "title", "title": [{"type": "text", "text": {"content": "Tuscan kale"}}]},
			"Price": {"type": "number", "number": 2.5}
		},
		"icon": {"type": "emoji", "emoji": "🥬"},
		"children": [{
			"object": "block",
			"type": "paragraph",
			"paragraph": {"rich_text": [{"type": "text", "text": {"content": "Lacinato kale"}}]}
		}]
	}`, string(data))
}

func TestPageRequestIsImmutable(t *testing.T) {
	base := PageUpdate().WithProperty("A", CheckboxValue(true))
	changed := base.WithProperty("B", CheckboxValue(false))
	assert.Len(t, base.Properties, 1)
	assert.Len(t, changed.Properties, 2)
}

func TestPageRequestValidate(t *testing.T) {
	assert.True(t, IsValidationError(PageUpdate().Validate()))
	assert.True(t, IsValidationError(NewPage(WorkspaceParent()).Validate()))

	page := MustParsePageID("59833787-2cf9-4fdf-8782-e53db20768a5")
	invalid := NewPage(PageParent(page)).WithChildren(Block{Data: NewBookmark("")})
	assert.True(t, IsValidationError(invalid.Validate()))

	valid := NewPage(PageParent(page)).WithTitle(NewText("Sub page"))
	assert.NoError(t, valid.Validate())
}

func TestPageUpdateArchived(t *testing.T) {
	data, err := json.Marshal(PageUpdate().WithArchived(true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"archived": true}`, string(data))
}

func TestDatabaseRequest(t *testing.T) {
	page := MustParsePageID("98ad959b-2b6a-4774-80ee-00246fb0ea9b")
	r := NewDatabase(page, NewText("Grocery List")).
		WithProperty("Price", NumberSchema("dollar")).
		WithInline(true)
	require.NoError(t, r.Validate())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"parent": {"type": "page_id", "page_id": "98ad959b-2b6a-4774-80ee-00246fb0ea9b"},
		"title": [{"type": "text", "text": {"content": "Grocery List"}}],
		"properties": {
			"Name": {"type": "title", "title": {}},
			"Price": {"type": "number", "number": {"format": "dollar"}}
		},
		"is_inline": true
	}`, string(data))

	twoTitles := r.WithProperty("Other", SchemaOf(TitleProperty))
	assert.True(t, IsValidationError(twoTitles.Validate()))
	assert.True(t, IsValidationError(DatabaseUpdate().Validate()))
}

func TestDatabaseQueryValidate(t *testing.T) {
	assert.NoError(t, DatabaseQuery{}.Validate())
	assert.NoError(t, DatabaseQuery{
		PageSize: 100,
		Sorts:    []Sort{{Property: "Price", Direction: "descending"}},
	}.Validate())

	assert.True(t, IsValidationError(DatabaseQuery{PageSize: 101}.Validate()))
	assert.True(t, IsValidationError(DatabaseQuery{
		Sorts: []Sort{{Property: "Price", Direction: "up"}},
	}.Validate()))
}

func TestListNextOptions(t *testing.T) {
	cursor := "a1b2c3d4-0000-4000-8000-000000000004"
	l := List[Block]{HasMore: true, NextCursor: &cursor}
	next := l.NextOptions(50)
	require.NotNil(t, next)
	assert.Equal(t, cursor, next.StartCursor)
	assert.Equal(t, 50, next.PageSize)

	assert.Nil(t, List[Block]{}.NextOptions(50))

	assert.NoError(t, ListOptions{}.Validate())
	assert.NoError(t, ListOptions{PageSize: 100}.Validate())
	assert.True(t, IsValidationError(ListOptions{PageSize: 101}.Validate()))
	assert.True(t, IsValidationError(ListOptions{PageSize: -1}.Validate()))
}
