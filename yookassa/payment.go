// Package yookassa models the payment objects of the YooKassa gateway API.
// Entities are built from the gateway's json by the Parse functions, which
// check the whole document and either return a complete entity or an
// *errors.ValidationError listing every failed field.
package yookassa

import (
	"context"
	"io"
	"time"

	"github.com/brave-intl/yookassa-go/inputs"
	"github.com/brave-intl/yookassa-go/jsonutils"
	"github.com/brave-intl/yookassa-go/ptr"
)

// Payment is a payment object of the gateway
type Payment struct {
	ID                   string                `json:"id"`
	Status               PaymentStatus         `json:"status"`
	Amount               Amount                `json:"amount"`
	IncomeAmount         *Amount               `json:"income_amount,omitempty"`
	Description          *string               `json:"description,omitempty"`
	Recipient            Recipient             `json:"recipient"`
	PaymentMethod        PaymentMethod         `json:"payment_method,omitempty"`
	CapturedAt           *time.Time            `json:"captured_at,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	ExpiresAt            *time.Time            `json:"expires_at,omitempty"`
	Confirmation         *Confirmation         `json:"confirmation,omitempty"`
	Test                 bool                  `json:"test"`
	RefundedAmount       *Amount               `json:"refunded_amount,omitempty"`
	Paid                 bool                  `json:"paid"`
	Refundable           bool                  `json:"refundable"`
	ReceiptRegistration  *ReceiptRegistration  `json:"receipt_registration,omitempty"`
	Metadata             jsonutils.Metadata    `json:"metadata,omitzero"`
	CancellationDetails  *CancellationDetails  `json:"cancellation_details,omitempty"`
	AuthorizationDetails *AuthorizationDetails `json:"authorization_details,omitempty"`
	Transfers            []Transfer            `json:"transfers,omitzero"`
	Deal                 *Deal                 `json:"deal,omitempty"`
	MerchantCustomerID   *string               `json:"merchant_customer_id,omitempty"`
}

func (p *Payment) decode(o *object) {
	p.ID = ptr.String(o.str(true, "id"))
	p.Status = ptr.Value(enum[PaymentStatus](o, true, "status"))
	p.Amount = ptr.Value(nested[Amount](o, true, "amount"))
	p.IncomeAmount = nested[Amount](o, false, "income_amount")
	p.Description = o.str(false, "description")
	p.Recipient = ptr.Value(nested[Recipient](o, true, "recipient"))
	p.PaymentMethod = decodeMethod(o, false, "payment_method")
	p.CapturedAt = o.timestamp(false, "captured_at")
	p.CreatedAt = ptr.Time(o.timestamp(true, "created_at"))
	p.ExpiresAt = o.timestamp(false, "expires_at")
	p.Confirmation = nested[Confirmation](o, false, "confirmation")
	p.Test = ptr.Bool(o.boolean(true, "test"))
	p.RefundedAmount = nested[Amount](o, false, "refunded_amount")
	p.Paid = ptr.Bool(o.boolean(true, "paid"))
	p.Refundable = ptr.Bool(o.boolean(true, "refundable"))
	p.ReceiptRegistration = enum[ReceiptRegistration](o, false, "receipt_registration")
	p.Metadata = o.metadata("metadata")
	p.CancellationDetails = nested[CancellationDetails](o, false, "cancellation_details")
	p.AuthorizationDetails = nested[AuthorizationDetails](o, false, "authorization_details")
	p.Transfers = list[Transfer](o, false, "transfers")
	p.Deal = nested[Deal](o, false, "deal")
	p.MerchantCustomerID = o.str(false, "merchant_customer_id")
}

// IsSucceeded reports whether the payment is captured
func (p *Payment) IsSucceeded() bool {
	return p.Status == PaymentStatusSucceeded
}

// IsCanceled reports whether the payment is canceled
func (p *Payment) IsCanceled() bool {
	return p.Status == PaymentStatusCanceled
}

// IsPending reports whether the payment waits for the payer
func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}

// IsWaitingForCapture reports whether the funds are held for capture
func (p *Payment) IsWaitingForCapture() bool {
	return p.Status == PaymentStatusWaitingForCapture
}

// Decode implements inputs.Decodable
func (p *Payment) Decode(ctx context.Context, data []byte) error {
	return unmarshal(ctx, "payment", data, p)
}

// Validate implements inputs.Validatable
func (p *Payment) Validate(ctx context.Context) error {
	return validate(ctx, "payment", p)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Payment) UnmarshalJSON(data []byte) error {
	return p.Decode(context.Background(), data)
}

// ParsePayment builds a Payment from its wire form
func ParsePayment(ctx context.Context, data []byte) (*Payment, error) {
	var p Payment
	if err := inputs.Decode(ctx, &p, data); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodePayment reads a Payment from r, e.g. an http response body
func DecodePayment(ctx context.Context, r io.Reader) (*Payment, error) {
	var p Payment
	if err := inputs.DecodeReader(ctx, &p, r); err != nil {
		return nil, err
	}
	return &p, nil
}
