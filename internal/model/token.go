package model

// ThemeNone is the sentinel theme returned when no word survives filtering.
const ThemeNone = "none"

// CanonicalRecord is the deduplicated, merged view of one token: exactly one
// per unique address in a resolved set.
type CanonicalRecord struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Address     string `json:"address"`
	URL         string `json:"url"`
	Icon        string `json:"icon,omitempty"`
	Header      string `json:"header,omitempty"`
	Description string `json:"description,omitempty"`
}

// ThemeResult is the outcome of pattern detection over a canonical set.
type ThemeResult struct {
	Theme        string
	SupportCount int
	Evidence     []CanonicalRecord
}

// ScanResult is the success envelope for a completed scan.
type ScanResult struct {
	Success      bool              `json:"success"`
	TotalScanned int               `json:"total_scanned"`
	MetaKeyword  string            `json:"meta_keyword"`
	MetaCount    int               `json:"meta_count"`
	AIAnalysis   string            `json:"ai_analysis"`
	FilteredList []CanonicalRecord `json:"filtered_list"`
}

// ErrorResult is the failure envelope returned when the pipeline fails.
type ErrorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
