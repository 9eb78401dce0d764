package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// BlockType is the discriminant of a block's content.
type BlockType string

const (
	AudioType            BlockType = "audio"
	BookmarkType         BlockType = "bookmark"
	BreadcrumbType       BlockType = "breadcrumb"
	BulletedListItemType BlockType = "bulleted_list_item"
	CalloutType          BlockType = "callout"
	ChildDatabaseType    BlockType = "child_database"
	ChildPageType        BlockType = "child_page"
	CodeType             BlockType = "code"
	ColumnType           BlockType = "column"
	ColumnListType       BlockType = "column_list"
	DividerType          BlockType = "divider"
	EmbedType            BlockType = "embed"
	EquationType         BlockType = "equation"
	FileType             BlockType = "file"
	Heading1Type         BlockType = "heading_1"
	Heading2Type         BlockType = "heading_2"
	Heading3Type         BlockType = "heading_3"
	ImageType            BlockType = "image"
	LinkPreviewType      BlockType = "link_preview"
	LinkToPageType       BlockType = "link_to_page"
	NumberedListItemType BlockType = "numbered_list_item"
	ParagraphType        BlockType = "paragraph"
	PDFType              BlockType = "pdf"
	QuoteType            BlockType = "quote"
	SyncedBlockType      BlockType = "synced_block"
	TableType            BlockType = "table"
	TableOfContentsType  BlockType = "table_of_contents"
	TableRowType         BlockType = "table_row"
	TemplateType         BlockType = "template"
	ToDoType             BlockType = "to_do"
	ToggleType           BlockType = "toggle"
	VideoType            BlockType = "video"
	UnsupportedType      BlockType = "unsupported"
)

// BlockData is the type-specific content of a block.
// The set of implementations is closed; see the types in blocks.go.
// Content of a kind this package does not know is kept as Unsupported.
type BlockData interface {
	BlockType() BlockType
	blockData()
}

// Block is a single piece of content together with its metadata.
//
// Blocks returned by the service carry all metadata fields.
// Blocks created with NewBlock only carry Data
// and serialize to a valid request payload.
type Block struct {
	ID             BlockID
	Parent         *Parent
	CreatedTime    *time.Time
	LastEditedTime *time.Time
	CreatedBy      *PartialUser
	LastEditedBy   *PartialUser
	HasChildren    bool
	Archived       bool
	InTrash        bool
	Data           BlockData
}

// Type returns the discriminant of the block's content.
func (b Block) Type() BlockType {
	if b.Data == nil {
		return ""
	}
	return b.Data.BlockType()
}

// blockHeader is the wire representation of everything except the content.
type blockHeader struct {
	Object         string       `json:"object,omitempty"`
	ID             *BlockID     `json:"id,omitempty"`
	Parent         *Parent      `json:"parent,omitempty"`
	CreatedTime    *time.Time   `json:"created_time,omitempty"`
	LastEditedTime *time.Time   `json:"last_edited_time,omitempty"`
	CreatedBy      *PartialUser `json:"created_by,omitempty"`
	LastEditedBy   *PartialUser `json:"last_edited_by,omitempty"`
	HasChildren    bool         `json:"has_children,omitempty"`
	Archived       bool         `json:"archived,omitempty"`
	InTrash        bool         `json:"in_trash,omitempty"`
	Type           BlockType    `json:"type"`
}

// MarshalJSON writes the block with its content under the key
// named by the block type.
func (b Block) MarshalJSON() ([]byte, error) {
	if b.Data == nil {
		return nil, fmt.Errorf("cannot encode block without content")
	}

	h := blockHeader{
		Object:         "block",
		Parent:         b.Parent,
		CreatedTime:    b.CreatedTime,
		LastEditedTime: b.LastEditedTime,
		CreatedBy:      b.CreatedBy,
		LastEditedBy:   b.LastEditedBy,
		HasChildren:    b.HasChildren,
		Archived:       b.Archived,
		InTrash:        b.InTrash,
		Type:           b.Type(),
	}
	if !b.ID.IsZero() {
		id := b.ID
		h.ID = &id
	}

	head, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	key, err := json.Marshal(string(h.Type))
	if err != nil {
		return nil, err
	}
	content, err := json.Marshal(b.Data)
	if err != nil {
		return nil, Wrap(err, "encode %v block", h.Type)
	}

	// head always ends with the closing brace of a non-empty object
	var buf bytes.Buffer
	buf.Write(head[:len(head)-1])
	buf.WriteByte(',')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(content)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a block and decodes its content according to the
// "type" field. Unknown types are kept as Unsupported.
func (b *Block) UnmarshalJSON(data []byte) error {
	var h blockHeader
	err := json.Unmarshal(data, &h)
	if err != nil {
		return err
	}
	if h.Object != "" && h.Object != "block" {
		return fmt.Errorf("expected object %q, got %q", "block", h.Object)
	}
	if h.Type == "" {
		return fmt.Errorf("block has no type")
	}

	var fields map[string]json.RawMessage
	err = json.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	content, err := decodeBlockData(h.Type, fields[string(h.Type)])
	if err != nil {
		return Wrap(err, "decode %v block", h.Type)
	}

	*b = Block{
		Parent:         h.Parent,
		CreatedTime:    h.CreatedTime,
		LastEditedTime: h.LastEditedTime,
		CreatedBy:      h.CreatedBy,
		LastEditedBy:   h.LastEditedBy,
		HasChildren:    h.HasChildren,
		Archived:       h.Archived,
		InTrash:        h.InTrash,
		Data:           content,
	}
	if h.ID != nil {
		b.ID = *h.ID
	}
	return nil
}

func decodeAs[T BlockData](raw json.RawMessage) (BlockData, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(raw, &v)
	return v, err
}

func decodeHeading(level int) func(json.RawMessage) (BlockData, error) {
	return func(raw json.RawMessage) (BlockData, error) {
		var h Heading
		if len(raw) != 0 {
			err := json.Unmarshal(raw, &h)
			if err != nil {
				return nil, err
			}
		}
		h.Level = level
		return h, nil
	}
}

var blockDecoders = map[BlockType]func(json.RawMessage) (BlockData, error){
	AudioType:            decodeAs[Audio],
	BookmarkType:         decodeAs[Bookmark],
	BreadcrumbType:       decodeAs[Breadcrumb],
	BulletedListItemType: decodeAs[BulletedListItem],
	CalloutType:          decodeAs[Callout],
	ChildDatabaseType:    decodeAs[ChildDatabase],
	ChildPageType:        decodeAs[ChildPage],
	CodeType:             decodeAs[Code],
	ColumnType:           decodeAs[Column],
	ColumnListType:       decodeAs[ColumnList],
	DividerType:          decodeAs[Divider],
	EmbedType:            decodeAs[Embed],
	EquationType:         decodeAs[Equation],
	FileType:             decodeAs[File],
	Heading1Type:         decodeHeading(1),
	Heading2Type:         decodeHeading(2),
	Heading3Type:         decodeHeading(3),
	ImageType:            decodeAs[Image],
	LinkPreviewType:      decodeAs[LinkPreview],
	LinkToPageType:       decodeAs[LinkToPage],
	NumberedListItemType: decodeAs[NumberedListItem],
	ParagraphType:        decodeAs[Paragraph],
	PDFType:              decodeAs[PDF],
	QuoteType:            decodeAs[Quote],
	SyncedBlockType:      decodeAs[SyncedBlock],
	TableType:            decodeAs[Table],
	TableOfContentsType:  decodeAs[TableOfContents],
	TableRowType:         decodeAs[TableRow],
	TemplateType:         decodeAs[Template],
	ToDoType:             decodeAs[ToDo],
	ToggleType:           decodeAs[Toggle],
	VideoType:            decodeAs[Video],
}

func decodeBlockData(t BlockType, raw json.RawMessage) (BlockData, error) {
	decode, ok := blockDecoders[t]
	if !ok {
		return Unsupported{Kind: string(t), Raw: raw}, nil
	}
	return decode(raw)
}

// Unsupported holds the content of a block type that this package does
// not model. The raw content is kept so that the block can be re-encoded.
type Unsupported struct {
	Kind string
	Raw  json.RawMessage
}

func (u Unsupported) BlockType() BlockType { return BlockType(u.Kind) }
func (Unsupported) blockData()             {}

// MarshalJSON writes the raw content, or an empty object if there is none.
func (u Unsupported) MarshalJSON() ([]byte, error) {
	if len(u.Raw) == 0 {
		return []byte("{}"), nil
	}
	return u.Raw, nil
}
