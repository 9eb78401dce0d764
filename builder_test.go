package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidBlocks(t *testing.T) {
	for _, b := range allVariants() {
		assert.NoError(t, b.Validate(), string(b.Type()))
	}
}

func TestInvalidBlocks(t *testing.T) {
	para := MustBlock(NewParagraph(NewText("x")))
	row := func(n int) Block {
		cells := make([][]RichText, n)
		for i := range cells {
			cells[i] = []RichText{NewText("c")}
		}
		return Block{Data: NewTableRow(cells...)}
	}

	cases := map[string]BlockData{
		"empty bookmark":       NewBookmark(""),
		"relative bookmark":    NewBookmark("/some/path"),
		"empty embed":          NewEmbed(""),
		"heading level 0":      NewHeading(0, NewText("x")),
		"heading level 4":      NewHeading(4, NewText("x")),
		"code without lang":    NewCode("", NewText("x")),
		"empty equation":       NewEquation(""),
		"table width 0":        NewTable(0),
		"table without rows":   NewTable(2),
		"table too wide":       NewTable(101).WithRows(row(101)),
		"row too long":         NewTable(2).WithRows(row(3)),
		"row too short":        NewTable(2).WithRows(row(2), row(1)),
		"table with paragraph": NewTable(1).WithRows(para),
		"empty row":            NewTableRow(),
		"single column":        NewColumnList(MustBlock(NewColumn(para))),
		"list without columns": NewColumnList(para, para),
		"empty column":         NewColumn(),
		"link without id":      LinkToPage{Type: PageParentType},
		"link to block":        LinkToPage{Type: BlockParentType},
		"invalid image":        NewImage(NewExternalFile("not a url")),
		"invalid child":        NewToggle(NewText("x")).WithChildren(Block{Data: NewBookmark("")}),
		"grandchild":           NewQuote().WithChildren(Block{Data: NewToggle().WithChildren(Block{Data: NewTable(1)})}),
		"unsupported":          Unsupported{Kind: "ai_summary"},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewBlock(data)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), err.Error())
		})
	}
}

func TestNoContent(t *testing.T) {
	err := Block{}.Validate()
	assert.True(t, IsValidationError(err))
}

func TestMustBlockPanics(t *testing.T) {
	assert.Panics(t, func() { MustBlock(NewBookmark("")) })
	assert.NotPanics(t, func() { MustBlock(NewBookmark("https://example.com")) })
}

func TestTableRowWidth(t *testing.T) {
	rows := NewTable(2).WithRows(
		MustBlock(NewTableRow([]RichText{NewText("a")}, []RichText{NewText("b")})),
		MustBlock(NewTableRow([]RichText{NewText("c")}, []RichText{})),
	)
	b, err := NewBlock(rows)
	require.NoError(t, err)
	assert.Len(t, b.Children(), 2)

	_, err = NewBlock(rows.WithRows(MustBlock(NewTableRow(
		[]RichText{NewText("a")}, []RichText{NewText("b")}, []RichText{NewText("c")},
	))))
	assert.True(t, IsValidationError(err))
}

func TestWithChildren(t *testing.T) {
	child := MustBlock(NewParagraph(NewText("child")))

	b := MustBlock(NewParagraph(NewText("parent")))
	assert.True(t, b.AcceptsChildren())
	assert.Empty(t, b.Children())

	nested, err := b.WithChildren(child)
	require.NoError(t, err)
	assert.Equal(t, []Block{child}, nested.Children())
	assert.Empty(t, b.Children(), "receiver must not change")
	assert.False(t, nested.HasChildren)

	h, err := MustBlock(NewHeading(2, NewText("h"))).WithChildren(child)
	require.NoError(t, err)
	assert.True(t, h.Data.(Heading).IsToggleable)

	d := MustBlock(Divider{})
	assert.False(t, d.AcceptsChildren())
	_, err = d.WithChildren(child)
	assert.True(t, IsValidationError(err))
}

func TestValidateUpdate(t *testing.T) {
	row := MustBlock(NewTableRow([]RichText{NewText("a")}))

	data, err := Block{Data: NewTable(1).WithRowHeader(true).WithRows(row)}.ValidateUpdate()
	require.NoError(t, err)
	assert.Equal(t, NewTable(1).WithRowHeader(true), data)

	for _, d := range []BlockData{NewTable(3), NewColumn(), NewColumnList()} {
		_, err = Block{Data: d}.ValidateUpdate()
		assert.NoError(t, err, "%v", d.BlockType())
	}

	p := MustBlock(NewParagraph(NewText("child")))
	data, err = Block{Data: NewParagraph(NewText("x")).WithChildren(p)}.ValidateUpdate()
	require.NoError(t, err)
	assert.Empty(t, data.(Paragraph).Children)

	invalid := []BlockData{
		NewTable(0),
		NewBookmark(""),
		LinkToPage{Type: PageParentType},
		Unsupported{Kind: "ai_block"},
	}
	for _, d := range invalid {
		_, err = Block{Data: d}.ValidateUpdate()
		assert.True(t, IsValidationError(err), "%#v", d)
	}

	_, err = Block{}.ValidateUpdate()
	assert.True(t, IsValidationError(err))
}

func TestBuilderChaining(t *testing.T) {
	base := NewParagraph(NewText("x"))
	red := base.WithColor(Red)
	assert.Equal(t, Color(""), base.Color)
	assert.Equal(t, Red, red.Color)

	todo := NewToDo(NewText("y"))
	done := todo.WithChecked(true)
	assert.False(t, todo.Checked)
	assert.True(t, done.Checked)
}
