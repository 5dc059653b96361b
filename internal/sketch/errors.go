package sketch

import "errors"

// Domain errors for sketch configuration.
var (
	// ErrUnknownScheme indicates a color scheme name that is not cool, warm or random.
	ErrUnknownScheme = errors.New("sketch: unknown color scheme")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("sketch: parameter out of valid bounds")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return e.Wrapped.Error() + ": " + e.Name
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
