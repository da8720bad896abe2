package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Identity errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound         = errors.New("student not found")
	ErrRollNumberAlreadyExists = errors.New("roll number already exists")
)

// Staff errors
var (
	ErrStaffProfileNotFound = errors.New("staff profile not found")
	// ErrStaffProfileMissing marks an is_staff identity with no profile row;
	// staff login must fail terminally on it.
	ErrStaffProfileMissing = errors.New("staff identity has no staff profile")
	ErrInvalidStaffRole    = errors.New("invalid staff role")
)

// Catalog errors
var (
	ErrDriveNotFound    = errors.New("placement drive not found")
	ErrMaterialNotFound = errors.New("material not found")
	ErrMessageNotFound  = errors.New("contact message not found")
)

// Registration ledger errors
var (
	// ErrAlreadyRegistered is a warning-grade condition, not a failure: the
	// ledger already holds a row for the (student, drive) pair.
	ErrAlreadyRegistered = errors.New("already registered for this drive")
)

// CustomError carries an underlying sentinel plus a user-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
