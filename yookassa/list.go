package yookassa

import (
	"context"

	"github.com/brave-intl/yookassa-go/inputs"
)

// PaymentsList is a page of the payments list endpoint
type PaymentsList struct {
	Type   *string   `json:"type,omitempty"`
	List   []Payment `json:"items"`
	Cursor *string   `json:"cursor,omitempty"`
}

func (l *PaymentsList) decode(o *object) {
	l.Type = o.str(false, "type")
	l.List = list[Payment](o, false, alias("items")...)
	if l.List == nil {
		l.List = []Payment{}
	}
	// the list endpoint names the cursor next_cursor
	l.Cursor = o.str(false, "cursor", "next_cursor")
}

// HasNext reports whether another page follows
func (l *PaymentsList) HasNext() bool {
	return l.Cursor != nil && *l.Cursor != ""
}

// Decode implements inputs.Decodable
func (l *PaymentsList) Decode(ctx context.Context, data []byte) error {
	return unmarshal(ctx, "payments_list", data, l)
}

// Validate implements inputs.Validatable
func (l *PaymentsList) Validate(ctx context.Context) error {
	return validate(ctx, "payments_list", l)
}

// UnmarshalJSON implements json.Unmarshaler
func (l *PaymentsList) UnmarshalJSON(data []byte) error {
	return l.Decode(context.Background(), data)
}

// ParsePaymentsList builds a PaymentsList from its wire form
func ParsePaymentsList(ctx context.Context, data []byte) (*PaymentsList, error) {
	var l PaymentsList
	if err := inputs.Decode(ctx, &l, data); err != nil {
		return nil, err
	}
	return &l, nil
}
