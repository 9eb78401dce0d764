package notion

import (
	"fmt"
)

// Node is an entry in a block tree.
// The root node stands for the page or block whose descendants make up
// the tree; it has no content of its own.
type Node struct {
	ID       BlockID
	Block    Block
	Parent   *Node
	Children []*Node
}

func newNode(b Block) *Node {
	return &Node{
		ID:       b.ID,
		Block:    b,
		Children: make([]*Node, 0),
	}
}

// Root tells if this is the root node.
func (n *Node) Root() bool {
	return n.Parent == nil
}

// Leaf tells if this node has no children.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// addChild adds a child node to this node and sets the Parent field
// of the child.
func (n *Node) addChild(child *Node) {
	n.Children = append(n.Children, child)
	child.Parent = n
}

// put attempts to accomodate the other node in the subtree starting at
// this node. The node can be added as an immediate child or grandchild.
// Returns `true` if the node could be added to the tree.
func (n *Node) put(other *Node) bool {
	parent, ok := parentBlockID(other.Block)
	if ok && parent == n.ID {
		n.addChild(other)
		return true
	}

	for _, c := range n.Children {
		if c.put(other) {
			return true
		}
	}

	return false
}

// parentBlockID returns the id of the block or page that contains b.
func parentBlockID(b Block) (BlockID, bool) {
	if b.Parent == nil {
		return BlockID{}, false
	}
	switch {
	case b.Parent.BlockID != nil:
		return *b.Parent.BlockID, true
	case b.Parent.PageID != nil:
		return b.Parent.PageID.BlockID(), true
	}
	return BlockID{}, false
}

// BuildTree arranges a flat list of blocks into a tree below root,
// using the parent reference of each block.
// Siblings keep the order in which they appear in the list.
func BuildTree(root BlockID, blocks []Block) (*Node, error) {
	r := &Node{ID: root, Children: make([]*Node, 0)}

	nodes := make([]*Node, len(blocks))
	for i, b := range blocks {
		nodes[i] = newNode(b)
	}

	change := false
	for {
		change = false
		remaining := make([]*Node, 0)
		for _, n := range nodes {
			if r.put(n) {
				change = true
			} else {
				remaining = append(remaining, n)
			}
		}
		nodes = remaining
		if !change {
			break
		}
	}

	if len(nodes) != 0 {
		return nil, fmt.Errorf("could not put %d blocks into the tree below %v", len(nodes), root)
	}

	return r, nil
}

// Walk visits the subtree below n depth first.
// The children of the root have depth 0.
func (n *Node) Walk(fn func(n *Node, depth int) error) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int) error, depth int) error {
	for _, c := range n.Children {
		err := fn(c, depth)
		if err != nil {
			return err
		}
		err = c.walk(fn, depth+1)
		if err != nil {
			return err
		}
	}
	return nil
}

// Nest converts the tree into the top level blocks, with descendants
// attached as children where the block type accepts them.
func (n *Node) Nest() []Block {
	blocks := make([]Block, 0, len(n.Children))
	for _, c := range n.Children {
		b := c.Block
		if len(c.Children) != 0 && b.AcceptsChildren() {
			nested, err := b.WithChildren(c.Nest()...)
			if err == nil {
				b = nested
			}
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// Walk visits the given blocks and their nested children depth first.
func Walk(blocks []Block, fn func(b Block, depth int) error) error {
	return walkBlocks(blocks, fn, 0)
}

func walkBlocks(blocks []Block, fn func(b Block, depth int) error, depth int) error {
	for _, b := range blocks {
		err := fn(b, depth)
		if err != nil {
			return err
		}
		err = walkBlocks(b.Children(), fn, depth+1)
		if err != nil {
			return err
		}
	}
	return nil
}

// BlockFilter tells if a block should be kept.
type BlockFilter func(b Block) bool

// Filtered returns the blocks that match all filters.
func Filtered(blocks []Block, filters ...BlockFilter) []Block {
	result := make([]Block, 0)
	for _, b := range blocks {
		keep := true
		for _, f := range filters {
			if !f(b) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, b)
		}
	}
	return result
}

// IsType matches blocks of any of the given types.
func IsType(types ...BlockType) BlockFilter {
	return func(b Block) bool {
		for _, t := range types {
			if b.Type() == t {
				return true
			}
		}
		return false
	}
}

// HasChildren matches blocks that have children on the service.
func HasChildren(b Block) bool {
	return b.HasChildren
}

// Find returns the block with the given id from blocks or their children.
func Find(blocks []Block, id BlockID) (Block, error) {
	var found *Block
	Walk(blocks, func(b Block, depth int) error {
		if found == nil && b.ID == id {
			found = &b
		}
		return nil
	})
	if found == nil {
		return Block{}, NewNotFound("no block with id %v", id)
	}
	return *found, nil
}

// PlainText returns the unformatted text of the block's content.
// Blocks without text return an empty string.
func (b Block) PlainText() string {
	switch d := b.Data.(type) {
	case Paragraph:
		return PlainTextOf(d.RichText)
	case BulletedListItem:
		return PlainTextOf(d.RichText)
	case NumberedListItem:
		return PlainTextOf(d.RichText)
	case Quote:
		return PlainTextOf(d.RichText)
	case Toggle:
		return PlainTextOf(d.RichText)
	case ToDo:
		return PlainTextOf(d.RichText)
	case Heading:
		return PlainTextOf(d.RichText)
	case Callout:
		return PlainTextOf(d.RichText)
	case Code:
		return PlainTextOf(d.RichText)
	case Template:
		return PlainTextOf(d.RichText)
	case Equation:
		return d.Expression
	case ChildPage:
		return d.Title
	case ChildDatabase:
		return d.Title
	case Bookmark:
		return d.URL
	case Embed:
		return d.URL
	case LinkPreview:
		return d.URL
	}
	return ""
}
