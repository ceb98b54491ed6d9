package services

import "errors"

// Validation errors, reported to clients as 400s with the error text as
// the message.
var (
	ErrMissingID              = errors.New("missing id")
	ErrMissingProjectName     = errors.New("missing project name")
	ErrMissingTerm            = errors.New("missing term")
	ErrMissingTermDescription = errors.New("missing term description")
	ErrUnknownProject         = errors.New("referenced project does not exist")
)

var validationErrors = []error{
	ErrMissingID,
	ErrMissingProjectName,
	ErrMissingTerm,
	ErrMissingTermDescription,
	ErrUnknownProject,
}

func IsValidation(err error) bool {
	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			return true
		}
	}
	return false
}
