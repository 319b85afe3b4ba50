package errors

import "fmt"

type StoreUnavailableError struct {
	message string
}

func (v *StoreUnavailableError) Error() string {
	return v.message
}

func StoreUnavailableErrorf(format string, args ...any) *StoreUnavailableError {
	return &StoreUnavailableError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &StoreUnavailableError{}
