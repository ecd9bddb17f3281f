// Package design models the design file the catalog is built from and talks to the
// design service that hosts it.
//
// # Document Model
//
// A design file is a tree of nodes. Every node carries a Kind discriminant:
//
//   - KindRoot: the document itself (wire type DOCUMENT)
//   - KindPage: a top-level section (wire type CANVAS)
//   - KindFrame: a container holding one product's layout (wire type FRAME)
//   - KindText: a text layer (wire type TEXT)
//   - KindOther: everything else (groups, vectors, components, ...)
//
// Children are owned top-down and nodes never point back at their parent. Document keeps
// an index of every node by id so callers can address nodes without walking the tree.
//
// # Traversal
//
// Walk is the only traversal in the code base: pre-order, children in list order.
// ExtractFrames builds on it to collect frames, optionally restricted to one page.
//
// # Client
//
// Client fetches the document JSON and asks the service to render frames as PDF pages.
//
//	client := design.NewClient(cfg.Design)
//	doc, err := client.FetchDocument(ctx)
//	frames, scoped := design.ExtractFrames(doc.Root, "Products")
package design
