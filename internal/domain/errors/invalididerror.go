package errors

import "fmt"

type InvalidIDError struct {
	message string
}

func (v *InvalidIDError) Error() string {
	return v.message
}

func InvalidIDErrorf(format string, args ...any) *InvalidIDError {
	return &InvalidIDError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &InvalidIDError{}
