package httperr

import "errors"

// BusinessError marks a rule rejection that handlers map to a precise HTTP
// status, as opposed to infrastructure faults which become generic 500s.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
