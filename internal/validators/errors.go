package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")
	ErrRequiredField = errors.New("field is required")
	ErrFieldTooLong  = errors.New("field is too long")
	ErrInvalidField  = errors.New("field is invalid")
)
