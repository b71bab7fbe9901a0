package yookassa

import (
	"context"
	"encoding/json"

	"github.com/brave-intl/yookassa-go/inputs"
)

// validate checks an entity built in code against the decoding rules by
// encoding it and decoding the result. Empty mandatory strings and zero
// times count as missing here, unlike in gateway payloads.
func validate[T any, P decodable[T]](ctx context.Context, entity string, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var check T
	return runDecode(ctx, entity, data, true, P(&check).decode)
}

// Validatable entities can be checked before they are sent to the gateway
type Validatable = inputs.Validatable

// Marshal validates v and returns its wire encoding
func Marshal(ctx context.Context, v Validatable) ([]byte, error) {
	if err := v.Validate(ctx); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
