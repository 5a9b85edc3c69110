package resolve

// UserAction records how a reviewer disposed of one extraction record.
type UserAction string

const (
	UserActionAccepted UserAction = "accepted"
	UserActionRejected UserAction = "rejected"
	UserActionEdited   UserAction = "edited"
)

// Mapping is one extraction result proposing a value for one request
// field, with provenance. Field is either a bare legacy name or a
// dot-delimited destination path.
type Mapping struct {
	Field       string     `json:"field"`
	Value       any        `json:"value"`
	Confidence  float64    `json:"confidence"`
	Source      string     `json:"source"`
	Reasoning   string     `json:"reasoning"`
	NeedsReview bool       `json:"needs_review"`
	UserAction  UserAction `json:"user_action"`
}
