package design

// Frame is a product container found in a design tree.
// Node points into the original tree; the subtree is never copied.
type Frame struct {
	ID   string
	Name string
	Node *Node
}

// ExtractFrames collects every frame below root in pre-order. Frames nested inside
// frames are collected independently.
//
// When scope is not empty, collection is restricted to the subtree of the first page
// named exactly scope. If no such page exists the whole tree is scanned and scoped is
// false, so the caller can report the missing page without aborting.
func ExtractFrames(root *Node, scope string) (frames []Frame, scoped bool) {
	start := root
	if scope != "" {
		page := FindPage(root, scope)
		if page != nil {
			start = page
			scoped = true
		}
	}

	frames = []Frame{}
	Walk(start, func(n *Node) {
		if n.Kind == KindFrame {
			frames = append(frames, Frame{ID: n.ID, Name: n.Name, Node: n})
		}
	})
	return frames, scoped
}

// FindPage returns the first page in pre-order whose name equals name exactly.
func FindPage(root *Node, name string) *Node {
	var page *Node
	Walk(root, func(n *Node) {
		if page == nil && n.Kind == KindPage && n.Name == name {
			page = n
		}
	})
	return page
}

// Pages returns the names of every page in pre-order.
func Pages(root *Node) []string {
	names := []string{}
	Walk(root, func(n *Node) {
		if n.Kind == KindPage {
			names = append(names, n.Name)
		}
	})
	return names
}
