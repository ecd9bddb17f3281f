package reconcile

import (
	"testing"

	"catalog-builder/core/design"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func specialFrames() []design.Frame {
	return []design.Frame{
		frame("cov", "Cover"),
		frame("toc", " Table of Contents "),
		frame("p1", "Chair"),
		frame("p2", "Desk"),
		frame("bak", "Back Cover"),
	}
}

func defaultNames() SpecialFrames {
	return SpecialFrames{Cover: "Cover", TOC: "Table of Contents", Back: "Back Cover"}
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		names     SpecialFrames
		want      []string
		wantDiags int
	}{
		{
			name:      "AllSpecialFramesFound",
			requested: []string{"p1", "p2"},
			names:     defaultNames(),
			want:      []string{"cov", "toc", "p1", "p2", "bak"},
		},
		{
			name:      "RequestedContainsCover",
			requested: []string{"p1", "cov", "p2"},
			names:     defaultNames(),
			want:      []string{"cov", "toc", "p1", "p2", "bak"},
		},
		{
			name:      "RequestedDuplicates",
			requested: []string{"p2", "p1", "p2", "p1"},
			names:     defaultNames(),
			want:      []string{"cov", "toc", "p2", "p1", "bak"},
		},
		{
			name:      "BackRequestedEarly",
			requested: []string{"bak", "p1"},
			names:     defaultNames(),
			want:      []string{"cov", "toc", "bak", "p1"},
		},
		{
			name:      "MissingCoverAndContents",
			requested: []string{"x", "y"},
			names:     SpecialFrames{Cover: "cov-missing", TOC: "toc-missing", Back: "Back Cover"},
			want:      []string{"x", "y", "bak"},
			wantDiags: 2,
		},
		{
			name:      "BackOverride",
			requested: []string{"p1"},
			names:     SpecialFrames{Cover: "Cover", TOC: "Table of Contents", Back: "Desk"},
			want:      []string{"cov", "toc", "p1", "p2"},
		},
		{
			name:      "EmptyNamesSkipSlots",
			requested: []string{"p1"},
			names:     SpecialFrames{},
			want:      []string{"p1"},
		},
		{
			name:      "NothingRequested",
			requested: nil,
			names:     defaultNames(),
			want:      []string{"cov", "toc", "bak"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssembler(tt.names, zap.NewNop())
			got := a.Assemble(tt.requested, specialFrames())
			assert.Equal(t, tt.want, got.IDs)
			assert.Len(t, got.Diagnostics, tt.wantDiags)
		})
	}
}

func TestAssemble_DiagnosticContent(t *testing.T) {
	a := NewAssembler(SpecialFrames{Cover: "Nope", TOC: "Table of Contents", Back: "Back Cover"}, nil)
	got := a.Assemble([]string{"p1"}, specialFrames())

	require.Len(t, got.Diagnostics, 1)
	assert.Equal(t, DiagnosticMissingSpecialFrame, got.Diagnostics[0].Kind)
	assert.Equal(t, "Nope", got.Diagnostics[0].Subject)
	assert.Contains(t, got.Diagnostics[0].Message, "cover")
}

func TestAssemble_FirstFrameWins(t *testing.T) {
	frames := []design.Frame{frame("c1", "Cover"), frame("c2", "Cover")}
	got := NewAssembler(SpecialFrames{Cover: "Cover"}, nil).Assemble(nil, frames)
	assert.Equal(t, []string{"c1"}, got.IDs)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{}, Dedupe(nil))
}
