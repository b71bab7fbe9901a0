package inputs

import "context"

// Validatable - and interface that allows for validation of inputs and params
type Validatable interface {
	Validate(context.Context) error
}
