package reconcile

import (
	"fmt"
	"strings"

	"catalog-builder/core/design"

	"go.uber.org/zap"
)

// SpecialFrames names the fixed-role frames spliced around the requested pages.
// An empty name leaves its slot out without a diagnostic.
type SpecialFrames struct {
	Cover string `json:"cover"`
	TOC   string `json:"toc"`
	Back  string `json:"back"`
}

// Assembly is the final export ordering.
type Assembly struct {
	IDs         []string     `json:"ids"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Assembler derives the page order of an exported catalog.
type Assembler struct {
	names  SpecialFrames
	logger *zap.Logger
}

// NewAssembler creates an assembler for the given special frame names.
// A nil logger disables diagnostic logging.
func NewAssembler(names SpecialFrames, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{names: names, logger: logger}
}

// Assemble returns cover, contents, the requested ids and the back cover, in that order,
// keeping only the first occurrence of every id. Special frames are located by trimmed
// name among frames; a name that matches nothing is reported and its slot omitted.
func (a *Assembler) Assemble(requested []string, frames []design.Frame) Assembly {
	assembly := Assembly{IDs: []string{}, Diagnostics: []Diagnostic{}}

	locate := func(role, name string) (string, bool) {
		name = strings.TrimSpace(name)
		if name == "" {
			return "", false
		}
		if id, ok := FindFrameID(frames, name); ok {
			return id, true
		}
		assembly.Diagnostics = append(assembly.Diagnostics, Diagnostic{
			Kind:    DiagnosticMissingSpecialFrame,
			Subject: name,
			Message: fmt.Sprintf("%s frame %q not found", role, name),
		})
		a.logger.Warn("Special frame not found", zap.String("role", role), zap.String("frame", name))
		return "", false
	}

	working := make([]string, 0, len(requested)+3)
	if id, ok := locate("cover", a.names.Cover); ok {
		working = append(working, id)
	}
	if id, ok := locate("contents", a.names.TOC); ok {
		working = append(working, id)
	}
	working = append(working, requested...)
	if id, ok := locate("back", a.names.Back); ok {
		working = append(working, id)
	}

	assembly.IDs = Dedupe(working)
	return assembly
}

// FindFrameID returns the id of the first frame whose trimmed name equals name.
func FindFrameID(frames []design.Frame, name string) (string, bool) {
	for _, f := range frames {
		if strings.TrimSpace(f.Name) == name {
			return f.ID, true
		}
	}
	return "", false
}

// Dedupe removes repeated ids, keeping each at its first position.
func Dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
