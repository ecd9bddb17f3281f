package design

import (
	"encoding/json"
	"fmt"
	"io"
)

// wireNode mirrors the node JSON returned by the design service.
type wireNode struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Characters string      `json:"characters"`
	Children   []*wireNode `json:"children"`
}

// wireFile mirrors the file JSON returned by GET /v1/files/:key.
type wireFile struct {
	Name     string    `json:"name"`
	Document *wireNode `json:"document"`
}

// Decode parses a design file JSON document.
func Decode(r io.Reader) (*Document, error) {
	var file wireFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode design file: %w", err)
	}
	if file.Document == nil {
		return nil, fmt.Errorf("design file has no document node")
	}
	return NewDocument(file.Name, convert(file.Document)), nil
}

func convert(w *wireNode) *Node {
	n := &Node{
		ID:         w.ID,
		Kind:       ParseKind(w.Type),
		Name:       w.Name,
		Characters: w.Characters,
	}
	if len(w.Children) > 0 {
		n.Children = make([]*Node, 0, len(w.Children))
		for _, c := range w.Children {
			if c == nil {
				continue
			}
			n.Children = append(n.Children, convert(c))
		}
	}
	return n
}
