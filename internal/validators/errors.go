package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError reports the first field of a request body that failed
// validation. Message is the client-facing text taken from the field's
// `message` tag.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
