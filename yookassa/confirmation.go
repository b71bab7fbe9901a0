package yookassa

import (
	"context"

	"github.com/brave-intl/yookassa-go/ptr"
)

// Confirmation is the scenario the payer follows to confirm a payment
type Confirmation struct {
	Type      ConfirmationType `json:"type"`
	Enforce   *bool            `json:"enforce,omitempty"`
	Locale    *string          `json:"locale,omitempty"`
	ReturnURL *string          `json:"return_url,omitempty"`
	URL       *string          `json:"confirmation_url,omitempty"`
}

func (c *Confirmation) decode(o *object) {
	c.Type = ptr.Value(enum[ConfirmationType](o, true, "type"))
	c.Enforce = o.boolean(false, "enforce")
	c.Locale = o.str(false, "locale")
	c.ReturnURL = o.str(false, "return_url")
	c.URL = o.str(false, alias("confirmation_url")...)
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Confirmation) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "confirmation", data, c)
}

// Recipient is the shop and gateway a payment is credited to
type Recipient struct {
	AccountID string `json:"account_id"`
	GatewayID string `json:"gateway_id"`
}

func (r *Recipient) decode(o *object) {
	r.AccountID = ptr.String(o.str(true, "account_id"))
	r.GatewayID = ptr.String(o.str(true, "gateway_id"))
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Recipient) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "recipient", data, r)
}
