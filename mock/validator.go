package mock

import "github.com/fwojciec/schemagen"

var _ schemagen.Validator = (*Validator)(nil)

// Validator is a mock implementation of schemagen.Validator.
type Validator struct {
	ValidateFn func(kind schemagen.Kind, schema any) error
}

func (v *Validator) Validate(kind schemagen.Kind, schema any) error {
	return v.ValidateFn(kind, schema)
}
