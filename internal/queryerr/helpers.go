package queryerr

import "errors"

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var qe *Error
	if !errors.As(err, &qe) {
		return false
	}
	return qe.kind == kind
}
