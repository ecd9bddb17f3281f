package design

// Kind discriminates the node variants of a design tree.
type Kind int

const (
	KindOther Kind = iota // any node the pipeline does not care about
	KindRoot              // the document root
	KindPage              // a top-level page (canvas)
	KindFrame             // a product container
	KindText              // a text layer
)

// Wire type names used by the design service.
const (
	TypeDocument = "DOCUMENT"
	TypeCanvas   = "CANVAS"
	TypeFrame    = "FRAME"
	TypeText     = "TEXT"
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindPage:
		return "page"
	case KindFrame:
		return "frame"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// ParseKind maps a wire type name to its Kind. Unknown types map to KindOther.
func ParseKind(typ string) Kind {
	switch typ {
	case TypeDocument:
		return KindRoot
	case TypeCanvas:
		return KindPage
	case TypeFrame:
		return KindFrame
	case TypeText:
		return KindText
	default:
		return KindOther
	}
}

// Node is one element of a design tree.
type Node struct {
	ID   string
	Kind Kind
	Name string
	// Characters is the current content of a text layer. Empty for other kinds.
	Characters string
	Children   []*Node
}

// Document is a decoded design file.
type Document struct {
	Name string
	Root *Node

	index map[string]*Node
}

// NewDocument wraps a tree and indexes its nodes by id.
// When ids repeat, the first node in pre-order wins.
func NewDocument(name string, root *Node) *Document {
	doc := &Document{Name: name, Root: root, index: make(map[string]*Node)}
	Walk(root, func(n *Node) {
		if _, exists := doc.index[n.ID]; !exists {
			doc.index[n.ID] = n
		}
	})
	return doc
}

// Lookup returns the node with the given id.
func (d *Document) Lookup(id string) (*Node, bool) {
	n, ok := d.index[id]
	return n, ok
}

// Len returns the number of indexed nodes.
func (d *Document) Len() int {
	return len(d.index)
}
