package errdefs

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrConflict             = errors.New("conflict")
	ErrUnavailable          = errors.New("upstream unavailable")
	ErrNoCourseSelected     = errors.New("no course selected")
	ErrFormNotOpen          = errors.New("form is not open")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNothingSelected      = errors.New("nothing selected")
)
