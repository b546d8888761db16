package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all error responses shown to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be rendered into a terminal response and not to be passed
// around as a Go error.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
	// Message is the text rendered into the error page.
	Message() string
}

type PageError struct {
	Text   string
	Status int
}

func (p *PageError) Code() int {
	return p.Status
}

func (p *PageError) Message() string {
	return p.Text
}

// StructuredError carries per-field form problems.
type StructuredError struct {
	Errors map[string][]string
	Status int
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Message() string {
	fields := make([]string, 0, len(s.Errors))
	for field := range s.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(s.Errors[field], ", "))
	}
	return strings.Join(parts, "; ")
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedFormError  = NewSimple(400, "Malformed form body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError  = NewSimple(404, "Resource not found")
	InvalidIDError = NewSimple(400, "The provided ID is invalid, IDs are usually int32 > 0")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "number":
			problems[field] = append(problems[field], "Value must be a number")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *PageError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &PageError{Status: status, Text: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *PageError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
