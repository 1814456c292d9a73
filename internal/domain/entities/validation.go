package entities

// IssueSeverity grades validator findings. Only error-severity findings make
// a result invalid; warnings are advisory. Whether to block a workflow step
// on them belongs to the host.

type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

type ValidationIssue struct {
	Severity IssueSeverity `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	ItemID   string        `json:"item_id,omitempty"`
	RoomID   string        `json:"room_id,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues"`
}
