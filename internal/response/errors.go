package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_ALREADY_REGISTERED"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden    ErrCode = "FORBIDDEN"
	ErrNotFormOwner ErrCode = "NOT_FORM_OWNER"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Form building ─────────────────────────────────────────────────
	ErrEmptyTitle     ErrCode = "EMPTY_TITLE"
	ErrNoQuestions    ErrCode = "NO_QUESTIONS"
	ErrEmptyText      ErrCode = "EMPTY_TEXT"
	ErrMissingOptions ErrCode = "MISSING_OPTIONS"

	// ─── Submission ────────────────────────────────────────────────────
	ErrAnonymousNotAllowed   ErrCode = "ANONYMOUS_NOT_ALLOWED"
	ErrMissingRequiredAnswer ErrCode = "MISSING_REQUIRED_ANSWER"
	ErrKindMismatch          ErrCode = "KIND_MISMATCH"
	ErrUnknownQuestion       ErrCode = "UNKNOWN_QUESTION"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid email or password."
	case ErrEmailTaken:
		return "An account with this email already exists."
	case ErrSessionInvalidated:
		return "Your session has ended. Please log in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have access to this resource."
	case ErrNotFormOwner:
		return "Only the creator of this form can do that."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "The identifier has an invalid format."
	case ErrInvalidPayload:
		return "The request payload is invalid."

	// ─── Form building ─────────────────────────────────────────────────
	case ErrEmptyTitle:
		return "The form title cannot be empty."
	case ErrNoQuestions:
		return "A form needs at least one question."
	case ErrEmptyText:
		return "Question text cannot be empty."
	case ErrMissingOptions:
		return "Choice questions must define at least one option."

	// ─── Submission ────────────────────────────────────────────────────
	case ErrAnonymousNotAllowed:
		return "This form does not accept anonymous responses."
	case ErrMissingRequiredAnswer:
		return "A required question was left unanswered."
	case ErrKindMismatch:
		return "An answer does not match its question's type."
	case ErrUnknownQuestion:
		return "An answer references a question that is not part of this form."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "The requested resource was not found."
	case ErrConflict:
		return "The resource already exists."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
