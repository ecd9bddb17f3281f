package design

// Walk visits root and then every descendant in pre-order, children in list order.
// A nil root is a no-op. The tree is assumed to be acyclic.
func Walk(root *Node, visit func(*Node)) {
	if root == nil {
		return
	}
	visit(root)
	for _, child := range root.Children {
		Walk(child, visit)
	}
}
