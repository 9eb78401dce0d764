package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRichTextStyling(t *testing.T) {
	base := NewText("world!")
	styled := base.Bold().Italic().WithColor(Red)

	assert.Nil(t, base.Annotations, "styling must not change the receiver")
	require.NotNil(t, styled.Annotations)
	assert.True(t, styled.Annotations.Bold)
	assert.True(t, styled.Annotations.Italic)
	assert.False(t, styled.Annotations.Code)
	assert.Equal(t, Red, styled.Annotations.Color)

	bold := base.Bold()
	code := bold.Code()
	assert.False(t, bold.Annotations.Code, "chained copies must not share annotations")
	assert.True(t, code.Annotations.Code)
}

func TestRichTextJSON(t *testing.T) {
	runs := []RichText{
		NewText("Hello, "),
		NewText("world!").Bold(),
		NewLink("docs", "https://developers.notion.com"),
		NewEquationText("e=mc^2"),
		NewMention(PageMention(MustParsePageID("59833787-2cf9-4fdf-8782-e53db20768a5"))),
	}

	data, err := json.Marshal(runs[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "text",
		"text": {"content": "world!"},
		"annotations": {
			"bold": true, "italic": false, "strikethrough": false,
			"underline": false, "code": false, "color": "default"
		}
	}`, string(data))

	data, err = json.Marshal(runs)
	require.NoError(t, err)
	var back []RichText
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, runs, back)

	assert.Equal(t, "Hello, world!docse=mc^2", PlainTextOf(runs))
}

func TestMentionJSON(t *testing.T) {
	raw := `{
		"type": "mention",
		"mention": {
			"type": "user",
			"user": {"object": "user", "id": "ee5f0f84-409a-440f-983a-a5315961c6e4"}
		},
		"plain_text": "@Anonymous",
		"href": null
	}`
	var r RichText
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	assert.Equal(t, MentionRichText, r.Type)
	require.NotNil(t, r.Mention)
	assert.Equal(t, UserMentionType, r.Mention.Type)
	assert.Equal(t, MustParseUserID("ee5f0f84-409a-440f-983a-a5315961c6e4"), r.Mention.User.ID)
	assert.Equal(t, "@Anonymous", r.String())
	assert.Nil(t, r.Href)
}
