package service

import "errors"

// ValidationError is raised before any network call when a required field
// is missing or blank. The text is the user-facing (French) message.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// IsValidation reports whether err is a pre-flight validation failure, as
// opposed to a transport or server error from the repository.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
