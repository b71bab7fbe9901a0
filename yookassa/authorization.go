package yookassa

import (
	"context"

	"github.com/brave-intl/yookassa-go/ptr"
)

// CancellationDetails tells who canceled a payment and why
type CancellationDetails struct {
	Party  CancellationParty  `json:"party"`
	Reason CancellationReason `json:"reason"`
}

func (c *CancellationDetails) decode(o *object) {
	c.Party = ptr.Value(enum[CancellationParty](o, true, "party"))
	c.Reason = ptr.Value(enum[CancellationReason](o, true, "reason"))
}

// UnmarshalJSON implements json.Unmarshaler
func (c *CancellationDetails) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "cancellation_details", data, c)
}

// ThreeDSInfo reports whether 3-D Secure was applied
type ThreeDSInfo struct {
	Applied bool `json:"applied"`
}

func (t *ThreeDSInfo) decode(o *object) {
	t.Applied = ptr.Bool(o.boolean(true, "applied"))
}

// AuthorizationDetails are the card network authorization results
type AuthorizationDetails struct {
	TransactionIdentifier *string     `json:"rrn,omitempty"`
	AuthorizationCode     *string     `json:"auth_code,omitempty"`
	ThreeDSecure          ThreeDSInfo `json:"three_d_secure"`
}

func (a *AuthorizationDetails) decode(o *object) {
	a.TransactionIdentifier = o.str(false, alias("rrn")...)
	a.AuthorizationCode = o.str(false, alias("auth_code")...)
	a.ThreeDSecure = ptr.Value(nested[ThreeDSInfo](o, true, "three_d_secure"))
}

// UnmarshalJSON implements json.Unmarshaler
func (a *AuthorizationDetails) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "authorization_details", data, a)
}

// UnmarshalJSON implements json.Unmarshaler
func (t *ThreeDSInfo) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "three_d_secure", data, t)
}
