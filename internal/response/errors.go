package response

// ErrCode is a typed error code enum for consistent API error identification.
// Record-level problems (unknown id, malformed numeric input) never produce
// an error code: those requests succeed or no-op silently.
type ErrCode string

const (
	ErrUnknownModule   ErrCode = "UNKNOWN_MODULE"
	ErrInvalidID       ErrCode = "INVALID_ID"
	ErrInvalidPayload  ErrCode = "INVALID_PAYLOAD"
	ErrConfirmRequired ErrCode = "CONFIRMATION_REQUIRED"
	ErrInternal        ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrUnknownModule:
		return "Unknown module."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrConfirmRequired:
		return "Confirm Delete? This cannot be undone!"
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
