package patient

import "errors"

var (
	// ErrEmptyName is returned when creating or decoding a patient record without a name.
	ErrEmptyName = errors.New("patient name must be non-empty")

	// ErrUnknownDiagnosis is returned when creating or decoding a patient record with a diagnosis the
	// library has no severity for.
	ErrUnknownDiagnosis = errors.New("unknown diagnosis")
)
