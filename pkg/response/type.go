package response

// ErrResp is the standard JSON error body.
type ErrResp struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

const (
	// MessageValidationFailed is the error string for user-correctable input errors.
	MessageValidationFailed = "Validation failed"
)
