package httperr

import (
	"errors"
	"fmt"
)

// Business error codes. Each one maps to a distinct HTTP status in Respond.
const (
	CodeInvalidParam     = "invalid_param"
	CodeMissingParam     = "missing_param"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeAlreadyExists    = "already_exists"
	CodeAlreadyBooked    = "already_booked"
	CodePastDate         = "past_date"
	CodeForbidden        = "forbidden"
	CodeWrongCredentials = "wrong_credentials"
)

// BusinessError is a rule violation reported to the caller as is.
// Subject is the offending field, entity or message depending on Code.
type BusinessError struct {
	Code    string
	Subject string
}

func (e BusinessError) Error() string {
	switch e.Code {
	case CodeInvalidParam:
		return fmt.Sprintf("Invalid param: %s", e.Subject)
	case CodeMissingParam:
		return fmt.Sprintf("Missing param: %s", e.Subject)
	case CodeNotFound:
		return fmt.Sprintf("%s not found", e.Subject)
	case CodeAlreadyExists:
		return fmt.Sprintf("%s already exists", e.Subject)
	case CodeAlreadyBooked:
		return fmt.Sprintf("%s is already booked", e.Subject)
	case CodePastDate:
		return fmt.Sprintf("%s can't be a past date", e.Subject)
	case CodeWrongCredentials:
		return "Wrong credentials"
	}
	if e.Subject != "" {
		return e.Subject
	}
	return e.Code
}

func InvalidParam(field string) error {
	return BusinessError{Code: CodeInvalidParam, Subject: field}
}

func MissingParam(field string) error {
	return BusinessError{Code: CodeMissingParam, Subject: field}
}

func NotFoundErr(entity string) error {
	return BusinessError{Code: CodeNotFound, Subject: entity}
}

func Conflict(message string) error {
	return BusinessError{Code: CodeConflict, Subject: message}
}

func AlreadyExists(entity string) error {
	return BusinessError{Code: CodeAlreadyExists, Subject: entity}
}

func AlreadyBooked(message string) error {
	return BusinessError{Code: CodeAlreadyBooked, Subject: message}
}

func PastDate(message string) error {
	return BusinessError{Code: CodePastDate, Subject: message}
}

func Forbidden(message string) error {
	return BusinessError{Code: CodeForbidden, Subject: message}
}

func WrongCredentials() error {
	return BusinessError{Code: CodeWrongCredentials}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError when it carries one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
