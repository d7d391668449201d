package dom

// NodeType identifies the kind of a Node, using the numeric values
// defined by the DOM specification.
type NodeType int

const (
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	CommentNode  NodeType = 8
	DocumentNode NodeType = 9
	DoctypeNode  NodeType = 10
)

// String returns a readable name for the node type.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case DocumentNode:
		return "Document"
	case DoctypeNode:
		return "DocumentType"
	default:
		return "Unknown"
	}
}
