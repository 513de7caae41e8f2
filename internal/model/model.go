package model

import "github.com/google/uuid"

// CellID is an opaque identifier, stable for a cell's lifetime.
type CellID string

func NewCellID() CellID {
	return CellID("cell-" + uuid.NewString())
}

type CellType string

const (
	CellTypeCode     CellType = "code"
	CellTypeMarkdown CellType = "markdown"
	CellTypeRaw      CellType = "raw"
)

func (t CellType) Valid() bool {
	switch t {
	case CellTypeCode, CellTypeMarkdown, CellTypeRaw:
		return true
	}
	return false
}

type CellStatus string

const (
	StatusIdle   CellStatus = "idle"
	StatusQueued CellStatus = "queued"
	StatusBusy   CellStatus = "busy"
	StatusError  CellStatus = "error"
)

// Output is an opaque result payload attached to a code cell. The editor
// only tracks count and per-index metadata; Data is never interpreted here.
type Output struct {
	Index    int            `json:"index"`
	Data     map[string]any `json:"data,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type Cell struct {
	ID       CellID       `json:"id"`
	CellType CellType     `json:"cell_type"`
	Source   string       `json:"source"`
	Metadata CellMetadata `json:"metadata"`
	Outputs  []Output     `json:"outputs,omitempty"`

	ExecutionCount *int       `json:"execution_count,omitempty"`
	Status         CellStatus `json:"-"`
}

// FocusState is process-wide UI state. If FocusedEditorID is set it must
// equal FocusedCellID; the store's command handlers keep that invariant by
// always moving cell focus before (or with) editor focus.
type FocusState struct {
	FocusedCellID   *CellID
	FocusedEditorID *CellID
}
