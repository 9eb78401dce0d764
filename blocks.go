package notion

import "fmt"

// Text blocks ----------------------------------------------------------------

// Paragraph is a block of text.
type Paragraph struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// NewParagraph creates a paragraph from the given text runs.
func NewParagraph(text ...RichText) Paragraph {
	return Paragraph{RichText: text}
}

func (p Paragraph) WithColor(c Color) Paragraph { p.Color = c; return p }
func (p Paragraph) WithChildren(children ...Block) Paragraph {
	p.Children = children
	return p
}

// BulletedListItem is an item in an unordered list.
type BulletedListItem struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

func NewBulletedListItem(text ...RichText) BulletedListItem {
	return BulletedListItem{RichText: text}
}

func (b BulletedListItem) WithColor(c Color) BulletedListItem { b.Color = c; return b }
func (b BulletedListItem) WithChildren(children ...Block) BulletedListItem {
	b.Children = children
	return b
}

// NumberedListItem is an item in an ordered list.
type NumberedListItem struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

func NewNumberedListItem(text ...RichText) NumberedListItem {
	return NumberedListItem{RichText: text}
}

func (n NumberedListItem) WithColor(c Color) NumberedListItem { n.Color = c; return n }
func (n NumberedListItem) WithChildren(children ...Block) NumberedListItem {
	n.Children = children
	return n
}

// Quote is a block quote.
type Quote struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

func NewQuote(text ...RichText) Quote {
	return Quote{RichText: text}
}

func (q Quote) WithColor(c Color) Quote { q.Color = c; return q }
func (q Quote) WithChildren(children ...Block) Quote {
	q.Children = children
	return q
}

// Toggle is a collapsible block that hides its children.
type Toggle struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

func NewToggle(text ...RichText) Toggle {
	return Toggle{RichText: text}
}

func (t Toggle) WithColor(c Color) Toggle { t.Color = c; return t }
func (t Toggle) WithChildren(children ...Block) Toggle {
	t.Children = children
	return t
}

// ToDo is a checkbox item.
type ToDo struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

func NewToDo(text ...RichText) ToDo {
	return ToDo{RichText: text}
}

func (t ToDo) WithChecked(checked bool) ToDo { t.Checked = checked; return t }
func (t ToDo) WithColor(c Color) ToDo        { t.Color = c; return t }
func (t ToDo) WithChildren(children ...Block) ToDo {
	t.Children = children
	return t
}

// Heading is a level 1, 2 or 3 heading.
// The level is not part of the content but determines the block type.
type Heading struct {
	Level        int        `json:"-" validate:"min=1,max=3"`
	RichText     []RichText `json:"rich_text"`
	Color        Color      `json:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable"`
	Children     []Block    `json:"children,omitempty"`
}

// NewHeading creates a heading of the given level (1-3).
func NewHeading(level int, text ...RichText) Heading {
	return Heading{Level: level, RichText: text}
}

func (h Heading) WithColor(c Color) Heading { h.Color = c; return h }

// WithChildren makes the heading toggleable and sets its children.
func (h Heading) WithChildren(children ...Block) Heading {
	h.IsToggleable = true
	h.Children = children
	return h
}

// Callout is a highlighted block with an icon.
type Callout struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

func NewCallout(text ...RichText) Callout {
	return Callout{RichText: text}
}

func (c Callout) WithIcon(icon *Icon) Callout { c.Icon = icon; return c }
func (c Callout) WithColor(col Color) Callout { c.Color = col; return c }
func (c Callout) WithChildren(children ...Block) Callout {
	c.Children = children
	return c
}

// Code is a block of source code.
type Code struct {
	Caption  []RichText   `json:"caption,omitempty"`
	RichText []RichText   `json:"rich_text"`
	Language CodeLanguage `json:"language" validate:"required"`
}

// NewCode creates a code block. An empty language means plain text.
func NewCode(lang CodeLanguage, text ...RichText) Code {
	if lang == "" {
		lang = PlainText
	}
	return Code{RichText: text, Language: lang}
}

func (c Code) WithCaption(caption ...RichText) Code { c.Caption = caption; return c }

// Template is the content of a template button (read-only for new
// integrations but still returned by the service).
type Template struct {
	RichText []RichText `json:"rich_text"`
	Children []Block    `json:"children,omitempty"`
}

func NewTemplate(text ...RichText) Template {
	return Template{RichText: text}
}

func (t Template) WithChildren(children ...Block) Template {
	t.Children = children
	return t
}

// Equation is a block level KaTeX expression.
type Equation struct {
	Expression string `json:"expression" validate:"required"`
}

func NewEquation(expression string) Equation {
	return Equation{Expression: expression}
}

// Links and embeds -----------------------------------------------------------

// Bookmark is a link with a preview.
type Bookmark struct {
	Caption []RichText `json:"caption,omitempty"`
	URL     string     `json:"url" validate:"required,url"`
}

func NewBookmark(url string) Bookmark {
	return Bookmark{URL: url}
}

func (b Bookmark) WithCaption(caption ...RichText) Bookmark { b.Caption = caption; return b }

// Embed shows external content inline.
type Embed struct {
	Caption []RichText `json:"caption,omitempty"`
	URL     string     `json:"url" validate:"required,url"`
}

func NewEmbed(url string) Embed {
	return Embed{URL: url}
}

func (e Embed) WithCaption(caption ...RichText) Embed { e.Caption = caption; return e }

// LinkPreview is an unfurled link. The service returns these but does not
// accept them in requests.
type LinkPreview struct {
	URL string `json:"url" validate:"required,url"`
}

// LinkToPage links to another page or database.
type LinkToPage struct {
	Type       ParentType  `json:"type" validate:"oneof=page_id database_id"`
	PageID     *PageID     `json:"page_id,omitempty"`
	DatabaseID *DatabaseID `json:"database_id,omitempty"`
}

func NewLinkToPage(id PageID) LinkToPage {
	return LinkToPage{Type: PageParentType, PageID: &id}
}

func NewLinkToDatabase(id DatabaseID) LinkToPage {
	return LinkToPage{Type: DatabaseParentType, DatabaseID: &id}
}

// ChildPage is the block representation of a sub page.
type ChildPage struct {
	Title string `json:"title"`
}

// ChildDatabase is the block representation of an inline or sub database.
type ChildDatabase struct {
	Title string `json:"title"`
}

// Files and media -------------------------------------------------------------

// Image is an image file.
type Image struct {
	FileObject
}

func NewImage(f FileObject) Image { return Image{f} }

// Video is a video file.
type Video struct {
	FileObject
}

func NewVideo(f FileObject) Video { return Video{f} }

// Audio is an audio file.
type Audio struct {
	FileObject
}

func NewAudio(f FileObject) Audio { return Audio{f} }

// PDF is a PDF document.
type PDF struct {
	FileObject
}

func NewPDF(f FileObject) PDF { return PDF{f} }

// File is a generic file attachment.
type File struct {
	FileObject
}

func NewFile(f FileObject) File { return File{f} }

// Layout ----------------------------------------------------------------------

// Divider is a horizontal rule.
type Divider struct{}

// Breadcrumb shows the path to the current page.
type Breadcrumb struct{}

// TableOfContents lists the headings of the page.
type TableOfContents struct {
	Color Color `json:"color,omitempty"`
}

// ColumnList holds two or more columns.
type ColumnList struct {
	Children []Block `json:"children,omitempty"`
}

func NewColumnList(columns ...Block) ColumnList {
	return ColumnList{Children: columns}
}

// Column is a single column inside a column list.
type Column struct {
	Children []Block `json:"children,omitempty"`
}

func NewColumn(children ...Block) Column {
	return Column{Children: children}
}

// SyncedBlock is either an original synced block (SyncedFrom is nil)
// or a reference to one.
type SyncedBlock struct {
	SyncedFrom *SyncedFrom `json:"synced_from"`
	Children   []Block     `json:"children,omitempty"`
}

// SyncedFrom points to the original synced block.
type SyncedFrom struct {
	Type    string  `json:"type"`
	BlockID BlockID `json:"block_id"`
}

// NewSyncedBlock creates an original synced block with the given content.
func NewSyncedBlock(children ...Block) SyncedBlock {
	return SyncedBlock{Children: children}
}

// NewSyncedCopy creates a reference to an existing synced block.
func NewSyncedCopy(original BlockID) SyncedBlock {
	return SyncedBlock{SyncedFrom: &SyncedFrom{Type: "block_id", BlockID: original}}
}

// Table is a simple table. Its rows are TableRow children,
// each with exactly TableWidth cells.
type Table struct {
	TableWidth      int     `json:"table_width" validate:"min=1,max=100"`
	HasColumnHeader bool    `json:"has_column_header"`
	HasRowHeader    bool    `json:"has_row_header"`
	Children        []Block `json:"children,omitempty"`
}

func NewTable(width int) Table {
	return Table{TableWidth: width}
}

func (t Table) WithColumnHeader(v bool) Table { t.HasColumnHeader = v; return t }
func (t Table) WithRowHeader(v bool) Table    { t.HasRowHeader = v; return t }
func (t Table) WithRows(rows ...Block) Table  { t.Children = rows; return t }

// TableRow is a row of cells, each cell a list of text runs.
type TableRow struct {
	Cells [][]RichText `json:"cells" validate:"min=1"`
}

func NewTableRow(cells ...[]RichText) TableRow {
	return TableRow{Cells: cells}
}

// Variant markers -------------------------------------------------------------

func (Paragraph) BlockType() BlockType        { return ParagraphType }
func (BulletedListItem) BlockType() BlockType { return BulletedListItemType }
func (NumberedListItem) BlockType() BlockType { return NumberedListItemType }
func (Quote) BlockType() BlockType            { return QuoteType }
func (Toggle) BlockType() BlockType           { return ToggleType }
func (ToDo) BlockType() BlockType             { return ToDoType }
func (Callout) BlockType() BlockType          { return CalloutType }
func (Code) BlockType() BlockType             { return CodeType }
func (Template) BlockType() BlockType         { return TemplateType }
func (Equation) BlockType() BlockType         { return EquationType }
func (Bookmark) BlockType() BlockType         { return BookmarkType }
func (Embed) BlockType() BlockType            { return EmbedType }
func (LinkPreview) BlockType() BlockType      { return LinkPreviewType }
func (LinkToPage) BlockType() BlockType       { return LinkToPageType }
func (ChildPage) BlockType() BlockType        { return ChildPageType }
func (ChildDatabase) BlockType() BlockType    { return ChildDatabaseType }
func (Image) BlockType() BlockType            { return ImageType }
func (Video) BlockType() BlockType            { return VideoType }
func (Audio) BlockType() BlockType            { return AudioType }
func (PDF) BlockType() BlockType              { return PDFType }
func (File) BlockType() BlockType             { return FileType }
func (Divider) BlockType() BlockType          { return DividerType }
func (Breadcrumb) BlockType() BlockType       { return BreadcrumbType }
func (TableOfContents) BlockType() BlockType  { return TableOfContentsType }
func (ColumnList) BlockType() BlockType       { return ColumnListType }
func (Column) BlockType() BlockType           { return ColumnType }
func (SyncedBlock) BlockType() BlockType      { return SyncedBlockType }
func (Table) BlockType() BlockType            { return TableType }
func (TableRow) BlockType() BlockType         { return TableRowType }

func (h Heading) BlockType() BlockType {
	switch h.Level {
	case 1:
		return Heading1Type
	case 2:
		return Heading2Type
	case 3:
		return Heading3Type
	}
	return BlockType(fmt.Sprintf("heading_%d", h.Level))
}

func (Paragraph) blockData()        {}
func (BulletedListItem) blockData() {}
func (NumberedListItem) blockData() {}
func (Quote) blockData()            {}
func (Toggle) blockData()           {}
func (ToDo) blockData()             {}
func (Heading) blockData()          {}
func (Callout) blockData()          {}
func (Code) blockData()             {}
func (Template) blockData()         {}
func (Equation) blockData()         {}
func (Bookmark) blockData()         {}
func (Embed) blockData()            {}
func (LinkPreview) blockData()      {}
func (LinkToPage) blockData()       {}
func (ChildPage) blockData()        {}
func (ChildDatabase) blockData()    {}
func (Image) blockData()            {}
func (Video) blockData()            {}
func (Audio) blockData()            {}
func (PDF) blockData()              {}
func (File) blockData()             {}
func (Divider) blockData()          {}
func (Breadcrumb) blockData()       {}
func (TableOfContents) blockData()  {}
func (ColumnList) blockData()       {}
func (Column) blockData()           {}
func (SyncedBlock) blockData()      {}
func (Table) blockData()            {}
func (TableRow) blockData()         {}
