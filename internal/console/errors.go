package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
)

// AlertError is a failure the instructor is shown. Message is what the
// console displays; Err is the cause, if any.
type AlertError struct {
	Message string
	Err     error
}

func (e *AlertError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AlertError) Unwrap() error {
	return e.Err
}

type serverMessenger interface {
	ServerMessage() string
}

// alertFor prefers the server's own explanation over fallback.
func alertFor(err error, fallback string) *AlertError {
	var sm serverMessenger
	if errors.As(err, &sm) {
		if msg := strings.TrimSpace(sm.ServerMessage()); msg != "" {
			return &AlertError{Message: msg, Err: err}
		}
	}
	return &AlertError{Message: fallback, Err: err}
}

func invalid(message string) *AlertError {
	return &AlertError{Message: message, Err: errdefs.ErrInvalidArgument}
}

func asAlert(err error) (*AlertError, bool) {
	var alert *AlertError
	if errors.As(err, &alert) {
		return alert, true
	}
	return nil, false
}

// validationAlert turns the first validator failure into a readable alert.
func validationAlert(err error) *AlertError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return invalid("Invalid form values.")
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return invalid(fmt.Sprintf("%s is required.", fieldLabel(fe.Field())))
	case "gte":
		return invalid(fmt.Sprintf("%s must be at least %s.", fieldLabel(fe.Field()), fe.Param()))
	default:
		return invalid(fmt.Sprintf("%s is invalid.", fieldLabel(fe.Field())))
	}
}

func fieldLabel(field string) string {
	switch field {
	case "ScheduledAt":
		return "Scheduled time"
	case "MaxPoints":
		return "Max points"
	case "VideoURL":
		return "Video URL"
	default:
		return field
	}
}
