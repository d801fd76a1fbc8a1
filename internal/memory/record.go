package memory

import "encoding/json"

// DefaultType is the record type used when the caller provides none.
const DefaultType = "fact"

// DefaultImportance is the importance assigned when the caller provides none.
const DefaultImportance = 5.0

// Record is a single stored memory.
type Record struct {
	ID         int64           `json:"id,omitempty"` // local backend only
	Type       string          `json:"type"`
	Content    string          `json:"content"`
	Reasoning  string          `json:"reasoning,omitempty"`
	Importance float64         `json:"importance"`
	Tags       json.RawMessage `json:"tags,omitempty"` // opaque, stored as-is
	CreatedAt  string          `json:"created_at,omitempty"`
}

// NewRecord creates a record with defaults applied.
func NewRecord(content string) Record {
	return Record{
		Type:       DefaultType,
		Content:    content,
		Importance: DefaultImportance,
	}
}

// Query selects records for a search.
type Query struct {
	Text  string // case-insensitive substring match on content; empty means any
	Type  string // exact type match; empty means any
	Limit int    // maximum records returned
}
