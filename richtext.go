package notion

import "strings"

// RichTextType tells which payload a RichText run carries.
type RichTextType string

const (
	TextRichText     RichTextType = "text"
	MentionRichText  RichTextType = "mention"
	EquationRichText RichTextType = "equation"
)

// RichText is a run of styled inline content.
// Exactly one of Text, Mention and Equation is set, according to Type.
type RichText struct {
	Type        RichTextType    `json:"type"`
	Text        *Text           `json:"text,omitempty"`
	Mention     *Mention        `json:"mention,omitempty"`
	Equation    *InlineEquation `json:"equation,omitempty"`
	Annotations *Annotations    `json:"annotations,omitempty"`
	PlainText   string          `json:"plain_text,omitempty"`
	Href        *string         `json:"href,omitempty"`
}

// Text is literal text with an optional link.
type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is the target of a hyperlink in a text run.
type Link struct {
	URL string `json:"url"`
}

// InlineEquation is a KaTeX expression inside a text run.
type InlineEquation struct {
	Expression string `json:"expression"`
}

// Annotations describe the styling of a text run.
type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

// MentionType names the thing a mention refers to.
type MentionType string

const (
	DatabaseMentionType    MentionType = "database"
	DateMentionType        MentionType = "date"
	LinkPreviewMentionType MentionType = "link_preview"
	PageMentionType        MentionType = "page"
	TemplateMentionType    MentionType = "template_mention"
	UserMentionType        MentionType = "user"
)

// Mention is an inline reference to a page, database, user, date or link.
type Mention struct {
	Type        MentionType      `json:"type"`
	Database    *DatabaseRef     `json:"database,omitempty"`
	Date        *DateRange       `json:"date,omitempty"`
	LinkPreview *LinkPreviewRef  `json:"link_preview,omitempty"`
	Page        *PageRef         `json:"page,omitempty"`
	Template    *TemplateMention `json:"template_mention,omitempty"`
	User        *PartialUser     `json:"user,omitempty"`
}

// PageRef references a page by id.
type PageRef struct {
	ID PageID `json:"id"`
}

// DatabaseRef references a database by id.
type DatabaseRef struct {
	ID DatabaseID `json:"id"`
}

// LinkPreviewRef is the URL of an unfurled link.
type LinkPreviewRef struct {
	URL string `json:"url"`
}

// TemplateMention is a placeholder inside template buttons,
// either a date ("today", "now") or a user ("me").
type TemplateMention struct {
	Type                string `json:"type"`
	TemplateMentionDate string `json:"template_mention_date,omitempty"`
	TemplateMentionUser string `json:"template_mention_user,omitempty"`
}

// NewText creates a plain text run.
func NewText(content string) RichText {
	return RichText{
		Type: TextRichText,
		Text: &Text{Content: content},
	}
}

// NewLink creates a text run that links to url.
func NewLink(content, url string) RichText {
	return RichText{
		Type: TextRichText,
		Text: &Text{Content: content, Link: &Link{URL: url}},
	}
}

// NewMention creates a mention run.
func NewMention(m Mention) RichText {
	return RichText{Type: MentionRichText, Mention: &m}
}

// NewEquationText creates an inline equation run.
func NewEquationText(expression string) RichText {
	return RichText{
		Type:     EquationRichText,
		Equation: &InlineEquation{Expression: expression},
	}
}

// PageMention refers to a page.
func PageMention(id PageID) Mention {
	return Mention{Type: PageMentionType, Page: &PageRef{ID: id}}
}

// DatabaseMention refers to a database.
func DatabaseMention(id DatabaseID) Mention {
	return Mention{Type: DatabaseMentionType, Database: &DatabaseRef{ID: id}}
}

// UserMention refers to a user.
func UserMention(id UserID) Mention {
	u := UserRef(id)
	return Mention{Type: UserMentionType, User: &u}
}

// DateMention refers to a date.
func DateMention(start Date) Mention {
	return Mention{Type: DateMentionType, Date: &DateRange{Start: start}}
}

// Each styling method returns a modified copy; the receiver is unchanged.

func (r RichText) annotate(f func(a *Annotations)) RichText {
	a := Annotations{Color: DefaultColor}
	if r.Annotations != nil {
		a = *r.Annotations
	}
	f(&a)
	r.Annotations = &a
	return r
}

// Bold returns a bold copy of r.
func (r RichText) Bold() RichText {
	return r.annotate(func(a *Annotations) { a.Bold = true })
}

// Italic returns an italic copy of r.
func (r RichText) Italic() RichText {
	return r.annotate(func(a *Annotations) { a.Italic = true })
}

// Strikethrough returns a struck-through copy of r.
func (r RichText) Strikethrough() RichText {
	return r.annotate(func(a *Annotations) { a.Strikethrough = true })
}

// Underline returns an underlined copy of r.
func (r RichText) Underline() RichText {
	return r.annotate(func(a *Annotations) { a.Underline = true })
}

// Code returns a copy of r formatted as inline code.
func (r RichText) Code() RichText {
	return r.annotate(func(a *Annotations) { a.Code = true })
}

// WithColor returns a copy of r with the given color.
func (r RichText) WithColor(c Color) RichText {
	return r.annotate(func(a *Annotations) { a.Color = c })
}

// WithHref returns a copy of r that carries a link target.
func (r RichText) WithHref(url string) RichText {
	r.Href = &url
	return r
}

// String returns the unformatted text of this run.
func (r RichText) String() string {
	if r.PlainText != "" {
		return r.PlainText
	}
	switch {
	case r.Text != nil:
		return r.Text.Content
	case r.Equation != nil:
		return r.Equation.Expression
	}
	return ""
}

// PlainTextOf joins the unformatted text of all runs.
func PlainTextOf(runs []RichText) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.String())
	}
	return sb.String()
}
