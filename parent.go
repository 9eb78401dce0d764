package notion

// ParentType names the kind of container a page, database or block lives in.
type ParentType string

const (
	DatabaseParentType  ParentType = "database_id"
	PageParentType      ParentType = "page_id"
	WorkspaceParentType ParentType = "workspace"
	BlockParentType     ParentType = "block_id"
)

// Parent references the container of a page, database or block.
// Exactly one of the id fields is set, matching Type.
type Parent struct {
	Type       ParentType  `json:"type"`
	DatabaseID *DatabaseID `json:"database_id,omitempty"`
	PageID     *PageID     `json:"page_id,omitempty"`
	BlockID    *BlockID    `json:"block_id,omitempty"`
	Workspace  bool        `json:"workspace,omitempty"`
}

// DatabaseParent creates a reference to a database.
func DatabaseParent(id DatabaseID) Parent {
	return Parent{Type: DatabaseParentType, DatabaseID: &id}
}

// PageParent creates a reference to a page.
func PageParent(id PageID) Parent {
	return Parent{Type: PageParentType, PageID: &id}
}

// BlockParent creates a reference to a block.
func BlockParent(id BlockID) Parent {
	return Parent{Type: BlockParentType, BlockID: &id}
}

// WorkspaceParent creates a reference to the workspace root.
func WorkspaceParent() Parent {
	return Parent{Type: WorkspaceParentType, Workspace: true}
}

func (p Parent) String() string {
	switch p.Type {
	case DatabaseParentType:
		if p.DatabaseID != nil {
			return "database " + p.DatabaseID.String()
		}
	case PageParentType:
		if p.PageID != nil {
			return "page " + p.PageID.String()
		}
	case BlockParentType:
		if p.BlockID != nil {
			return "block " + p.BlockID.String()
		}
	case WorkspaceParentType:
		return "workspace"
	}
	return string(p.Type)
}
