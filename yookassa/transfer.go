package yookassa

import (
	"context"

	"github.com/brave-intl/yookassa-go/inputs"
	"github.com/brave-intl/yookassa-go/jsonutils"
	"github.com/brave-intl/yookassa-go/ptr"
)

// Transfer is the share of a split payment credited to a marketplace seller
type Transfer struct {
	AccountID   string             `json:"account_id"`
	Amount      Amount             `json:"amount"`
	Status      PaymentStatus      `json:"status"`
	FeeAmount   *Amount            `json:"platform_fee_amount,omitempty"`
	Description *string            `json:"description,omitempty"`
	Metadata    jsonutils.Metadata `json:"metadata,omitzero"`
}

func (t *Transfer) decode(o *object) {
	t.AccountID = ptr.String(o.str(true, "account_id"))
	t.Amount = ptr.Value(nested[Amount](o, true, "amount"))
	t.Status = ptr.Value(enum[PaymentStatus](o, true, "status"))
	t.FeeAmount = nested[Amount](o, false, alias("platform_fee_amount")...)
	t.Description = o.str(false, "description")
	t.Metadata = o.metadata("metadata")
}

// Decode implements inputs.Decodable
func (t *Transfer) Decode(ctx context.Context, data []byte) error {
	return unmarshal(ctx, "transfer", data, t)
}

// Validate implements inputs.Validatable
func (t *Transfer) Validate(ctx context.Context) error {
	return validate(ctx, "transfer", t)
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Transfer) UnmarshalJSON(data []byte) error {
	return t.Decode(context.Background(), data)
}

// ParseTransfer builds a Transfer from its wire form
func ParseTransfer(ctx context.Context, data []byte) (*Transfer, error) {
	var t Transfer
	if err := inputs.Decode(ctx, &t, data); err != nil {
		return nil, err
	}
	return &t, nil
}

// Settlement is one tranche of a safe deal payout
type Settlement struct {
	Type   string `json:"type"`
	Amount Amount `json:"amount"`
}

func (s *Settlement) decode(o *object) {
	s.Type = ptr.String(o.str(true, "type"))
	s.Amount = ptr.Value(nested[Amount](o, true, "amount"))
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Settlement) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "settlement", data, s)
}

// Deal links a payment to a safe deal
type Deal struct {
	ID          string       `json:"id"`
	Settlements []Settlement `json:"settlements"`
}

func (d *Deal) decode(o *object) {
	d.ID = ptr.String(o.str(true, "id"))
	d.Settlements = list[Settlement](o, true, "settlements")
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Deal) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "deal", data, d)
}
