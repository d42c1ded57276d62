package errs

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnsupported
	KindUnauthorized
	KindForbidden
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindUnsupported:
		return "UnsupportedOperationError"
	case KindUnauthorized:
		return "UnauthorizedError"
	case KindForbidden:
		return "ForbiddenError"
	case KindConflict:
		return "ConflictError"
	default:
		return "Error"
	}
}

// Error is a request-terminating failure whose message is safe to show to the caller.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, status int, format string, args ...any) *Error {
	return &Error{Kind: kind, Status: status, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return newError(KindValidation, http.StatusBadRequest, format, args...)
}

// UnsupportedFileType rejects an upload whose extension is not an allowed image type.
func UnsupportedFileType() *Error {
	return newError(KindValidation, http.StatusForbidden, "You can upload only image files!")
}

func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, http.StatusNotFound, format, args...)
}

func ProductNotFound(id string) *Error {
	return NotFound("product %s not found", id)
}

func ImageNotFound(id string) *Error {
	return NotFound("Image %s not found", id)
}

func Unsupported(format string, args ...any) *Error {
	return newError(KindUnsupported, http.StatusForbidden, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newError(KindUnauthorized, http.StatusUnauthorized, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newError(KindForbidden, http.StatusForbidden, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, http.StatusConflict, format, args...)
}

var (
	ErrInternalServer     = errors.New("Internal Server Error")
	ErrInvalidCredentials = errors.New("Username or password is incorrect")
	ErrUserAlreadyExists  = errors.New("User already exists")
	ErrNotAdmin           = errors.New("You are not authorized to perform this operation!")
)

var errorMap = map[error]int{
	ErrInternalServer:     http.StatusInternalServerError,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUserAlreadyExists:  http.StatusConflict,
	ErrNotAdmin:           http.StatusForbidden,
}

// GetErrorStatusCode maps err to the HTTP status it should be answered with.
// Anything unknown is an internal error.
func GetErrorStatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	for sentinel, status := range errorMap {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return errorMap[ErrInternalServer]
}

// PublicMessage returns the text the caller is allowed to see for err.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	for sentinel := range errorMap {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return ErrInternalServer.Error()
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
