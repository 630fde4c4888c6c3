// Package validators checks inbound request payloads before the service
// layer sees them.
//
// The [Validator] interface accepts arbitrary values and an optional list of
// field names; with no fields given, every rule known for the value's type
// is applied. Handlers hold a Validator so validation rules stay out of the
// transport code and can be tested on their own.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
