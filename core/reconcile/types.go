package reconcile

import "strings"

// Record is one row of the product spreadsheet.
// A field is defined when its key is present in Fields, even if the value is empty.
type Record struct {
	// Name is the record key, matched against frame names.
	Name string `json:"name"`

	// Fields maps field keys (e.g. "productName") to cell values.
	Fields map[string]string `json:"fields"`
}

// Field returns the value of key and whether it is defined.
func (r Record) Field(key string) (string, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// RecordSet is an ordered mapping of record name to Record.
// Insertion order is significant: it defines the rank of each record.
type RecordSet struct {
	order   []string
	records map[string]Record
}

// NewRecordSet creates an empty record set.
func NewRecordSet() *RecordSet {
	return &RecordSet{records: make(map[string]Record)}
}

// RecordSetOf builds a record set from records in the given order.
func RecordSetOf(records ...Record) *RecordSet {
	s := NewRecordSet()
	for _, r := range records {
		s.Set(r)
	}
	return s
}

// Set stores a record under its trimmed name. When the name already exists the stored
// record is replaced but keeps its original position. It reports whether a record was replaced.
func (s *RecordSet) Set(r Record) bool {
	r.Name = strings.TrimSpace(r.Name)
	if s.records == nil {
		s.records = make(map[string]Record)
	}
	_, exists := s.records[r.Name]
	if !exists {
		s.order = append(s.order, r.Name)
	}
	s.records[r.Name] = r
	return exists
}

// Get returns the record stored under name.
func (s *RecordSet) Get(name string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	r, ok := s.records[name]
	return r, ok
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Names returns the record names in insertion order.
func (s *RecordSet) Names() []string {
	if s == nil {
		return []string{}
	}
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Patch instructs the host to replace the content of one text layer.
type Patch struct {
	// NodeID is the id of the text node to update.
	NodeID string `json:"nodeId"`

	// FrameName is the trimmed name of the enclosing frame.
	FrameName string `json:"frameName"`

	// LayerName is the name of the text node (a field mapping token).
	LayerName string `json:"layerName"`

	// NewText is the record value to write.
	NewText string `json:"newText"`
}

// DiagnosticKind classifies a recovered anomaly.
type DiagnosticKind string

const (
	// DiagnosticUnmatchedFrame is reported when a frame name has no record.
	DiagnosticUnmatchedFrame DiagnosticKind = "unmatched_frame"
	// DiagnosticMissingScope is reported when the requested page does not exist.
	DiagnosticMissingScope DiagnosticKind = "missing_scope"
	// DiagnosticMissingSpecialFrame is reported when a cover, contents or back frame is not found.
	DiagnosticMissingSpecialFrame DiagnosticKind = "missing_special_frame"
)

// Diagnostic describes an anomaly that was skipped rather than failing the operation.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`

	// Subject is the name the anomaly refers to (frame, page or special frame name).
	Subject string `json:"subject"`

	// FrameID is set when the anomaly concerns a specific frame.
	FrameID string `json:"frameId,omitempty"`

	Message string `json:"message"`
}

// Result is the output of Reconcile.
type Result struct {
	// Patches are in frame extraction order, then depth-first node order.
	Patches []Patch `json:"patches"`

	// OrderedFrameIDs holds matched frame ids sorted by record rank.
	OrderedFrameIDs []string `json:"orderedFrameIds"`

	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Report is the reconciliation summary exposed to API and CLI consumers.
type Report struct {
	Patches         []Patch      `json:"patches"`
	MatchedFrameIDs []string     `json:"matchedFrameIds"`
	TotalFrames     int          `json:"totalFrames"`
	MatchedCount    int          `json:"matchedCount"`
	Diagnostics     []Diagnostic `json:"diagnostics"`
}
