package console

// ErrCode identifies a class of rejected console input.
type ErrCode string

const (
	// ─── Input format ──────────────────────────────────────────────────
	ErrNotANumber ErrCode = "NOT_A_NUMBER"
	ErrEmptyInput ErrCode = "EMPTY_INPUT"

	// ─── Selection ─────────────────────────────────────────────────────
	ErrOutOfRange    ErrCode = "OUT_OF_RANGE"
	ErrUnknownChoice ErrCode = "UNKNOWN_CHOICE"
	ErrNotYesNo      ErrCode = "NOT_YES_NO"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrNotANumber:
		return "Please enter a whole number."
	case ErrEmptyInput:
		return "Input cannot be empty."
	case ErrOutOfRange:
		return "That value is not allowed here. Please try again."
	case ErrUnknownChoice:
		return "Unrecognized choice. Enter one of the listed options."
	case ErrNotYesNo:
		return "Please answer y or n."
	default:
		return "Invalid input. Please try again."
	}
}
