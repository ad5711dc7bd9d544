// Released under an MIT license. See LICENSE.

package describe

// MorphError is returned when a value cannot be made into a type.
type MorphError struct {
	Type  string
	Value string
}

func (e *MorphError) Error() string {
	if e.Value == "" {
		return "cannot make value into a " + e.Type
	}

	return "cannot make " + e.Value + " into a " + e.Type
}

// GetError is returned when an accessor cannot fetch what was described.
type GetError struct {
	Type       string
	Descriptor Descriptor
	Err        error
}

func (e *GetError) Error() string {
	return because("cannot get "+e.Descriptor.Describe(e.Type), e.Err)
}

func (e *GetError) Unwrap() error {
	return e.Err
}

// CreateError is returned when an accessor cannot create what was described.
type CreateError struct {
	Type       string
	Descriptor Descriptor
	Err        error
}

func (e *CreateError) Error() string {
	return because("cannot create "+e.Descriptor.Describe(e.Type), e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

func because(msg string, err error) string {
	if err == nil {
		return msg
	}

	return msg + ": " + err.Error()
}
