package service

import "fmt"

// ServiceError carries the HTTP status an error maps to. Anything else that
// bubbles out of a service is a store failure and surfaces as a 500.
type ServiceError struct {
	Status  int
	Message string
}

func (e ServiceError) Error() string {
	return e.Message
}

func ErrNotFound(msg string) error {
	return ServiceError{Status: 404, Message: msg}
}

func ErrInvalid(msg string) error {
	return ServiceError{Status: 400, Message: msg}
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
