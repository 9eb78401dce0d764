package notion

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// BlockID identifies a block.
type BlockID uuid.UUID

// PageID identifies a page.
type PageID uuid.UUID

// DatabaseID identifies a database.
type DatabaseID uuid.UUID

// UserID identifies a user or bot.
type UserID uuid.UUID

// WorkspaceID is the opaque name of a workspace.
type WorkspaceID string

// PropertyID is the short, opaque identifier of a page or database property.
type PropertyID string

// OptionID is the opaque identifier of a select, multi_select or status option.
type OptionID string

func parseUUID[T ~[16]byte](kind, s string) (T, error) {
	var id T
	if s == "" {
		return id, fmt.Errorf("invalid %v id: empty string", kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return id, fmt.Errorf("invalid %v id %q: %w", kind, s, err)
	}
	return T(u), nil
}

func mustParse[T ~[16]byte](kind, s string) T {
	id, err := parseUUID[T](kind, s)
	if err != nil {
		panic(err)
	}
	return id
}

func unmarshalUUID[T ~[16]byte](kind string, dst *T, text []byte) error {
	id, err := parseUUID[T](kind, string(text))
	if err != nil {
		return err
	}
	*dst = id
	return nil
}

// ParseBlockID parses a block id in dashed or dashless form.
func ParseBlockID(s string) (BlockID, error) { return parseUUID[BlockID]("block", s) }

// MustParseBlockID is like ParseBlockID but panics on malformed input.
func MustParseBlockID(s string) BlockID { return mustParse[BlockID]("block", s) }

func (id BlockID) String() string                   { return uuid.UUID(id).String() }
func (id BlockID) IsZero() bool                     { return id == BlockID{} }
func (id BlockID) Compare(other BlockID) int        { return bytes.Compare(id[:], other[:]) }
func (id BlockID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id *BlockID) UnmarshalText(text []byte) error { return unmarshalUUID("block", id, text) }

// ParsePageID parses a page id in dashed or dashless form.
func ParsePageID(s string) (PageID, error) { return parseUUID[PageID]("page", s) }

// MustParsePageID is like ParsePageID but panics on malformed input.
func MustParsePageID(s string) PageID { return mustParse[PageID]("page", s) }

func (id PageID) String() string                   { return uuid.UUID(id).String() }
func (id PageID) IsZero() bool                     { return id == PageID{} }
func (id PageID) Compare(other PageID) int         { return bytes.Compare(id[:], other[:]) }
func (id PageID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id *PageID) UnmarshalText(text []byte) error { return unmarshalUUID("page", id, text) }

// BlockID returns the block id of the page. Pages are blocks, too.
func (id PageID) BlockID() BlockID { return BlockID(id) }

// ParseDatabaseID parses a database id in dashed or dashless form.
func ParseDatabaseID(s string) (DatabaseID, error) { return parseUUID[DatabaseID]("database", s) }

// MustParseDatabaseID is like ParseDatabaseID but panics on malformed input.
func MustParseDatabaseID(s string) DatabaseID { return mustParse[DatabaseID]("database", s) }

func (id DatabaseID) String() string                   { return uuid.UUID(id).String() }
func (id DatabaseID) IsZero() bool                     { return id == DatabaseID{} }
func (id DatabaseID) Compare(other DatabaseID) int     { return bytes.Compare(id[:], other[:]) }
func (id DatabaseID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id *DatabaseID) UnmarshalText(text []byte) error { return unmarshalUUID("database", id, text) }

// ParseUserID parses a user id in dashed or dashless form.
func ParseUserID(s string) (UserID, error) { return parseUUID[UserID]("user", s) }

// MustParseUserID is like ParseUserID but panics on malformed input.
func MustParseUserID(s string) UserID { return mustParse[UserID]("user", s) }

func (id UserID) String() string                   { return uuid.UUID(id).String() }
func (id UserID) IsZero() bool                     { return id == UserID{} }
func (id UserID) Compare(other UserID) int         { return bytes.Compare(id[:], other[:]) }
func (id UserID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id *UserID) UnmarshalText(text []byte) error { return unmarshalUUID("user", id, text) }

// ParseWorkspaceID validates a workspace name.
func ParseWorkspaceID(s string) (WorkspaceID, error) {
	if s == "" {
		return "", fmt.Errorf("invalid workspace id: empty string")
	}
	return WorkspaceID(s), nil
}

func (id WorkspaceID) String() string { return string(id) }

// ParsePropertyID validates a property id.
func ParsePropertyID(s string) (PropertyID, error) {
	if s == "" {
		return "", fmt.Errorf("invalid property id: empty string")
	}
	return PropertyID(s), nil
}

func (id PropertyID) String() string { return string(id) }

// ParseOptionID validates a select option id.
func ParseOptionID(s string) (OptionID, error) {
	if s == "" {
		return "", fmt.Errorf("invalid option id: empty string")
	}
	return OptionID(s), nil
}

func (id OptionID) String() string { return string(id) }
