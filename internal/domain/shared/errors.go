package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. All are surfaced synchronously to the caller of the
// write/read operation; retry policy belongs to the caller.
var (
	ErrNotFound               = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput           = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConstraintViolation    = NewDomainError("CONSTRAINT_VIOLATION", "Uniqueness constraint violated")
	ErrReferentialIntegrity   = NewDomainError("REFERENTIAL_INTEGRITY", "Referenced entity is missing or inconsistent")
	ErrInvalidStateTransition = NewDomainError("INVALID_STATE_TRANSITION", "Entity has been deleted and can no longer change")
	ErrScopeDenied            = NewDomainError("SCOPE_DENIED", "Operation outside the user's access scope")
)
