package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/notion"
)

func TestRenderPDF(t *testing.T) {
	text := func(s string) notion.RichText { return notion.NewText(s) }
	blocks := []notion.Block{
		notion.MustBlock(notion.NewHeading(1, text("Grocery list"))),
		notion.MustBlock(notion.NewParagraph(text("Hello, "), text("world!").Bold(),
			notion.NewLink(" docs", "https://developers.notion.com"))),
		notion.MustBlock(notion.NewBulletedListItem(text("Lacinato kale")).WithChildren(
			notion.MustBlock(notion.NewNumberedListItem(text("first"))),
			notion.MustBlock(notion.NewNumberedListItem(text("second"))),
		)),
		notion.MustBlock(notion.NewToDo(text("Buy seeds")).WithChecked(true)),
		notion.MustBlock(notion.NewCode(notion.Go, text("fmt.Println(\"kale\")"))),
		notion.MustBlock(notion.Divider{}),
		notion.MustBlock(notion.NewBookmark("https://example.com")),
		notion.MustBlock(notion.NewImage(notion.NewExternalFile("https://example.com/kale.png"))),
		notion.MustBlock(notion.NewTable(2).WithRows(notion.MustBlock(notion.NewTableRow(
			[]notion.RichText{text("Price")}, []notion.RichText{text("2.50 €")},
		)))),
		{Data: notion.Unsupported{Kind: "ai_summary"}},
	}

	var buf bytes.Buffer
	err := RenderPDF(Document{
		Title:      "Tuscan kale",
		LastEdited: time.Date(2022, time.July, 6, 20, 25, 0, 0, time.UTC),
		Blocks:     blocks,
	}, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(Document{}, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
