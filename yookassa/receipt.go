package yookassa

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brave-intl/yookassa-go/inputs"
	"github.com/brave-intl/yookassa-go/ptr"
)

// Customer identifies the buyer on a fiscal receipt
type Customer struct {
	FullName *string `json:"full_name,omitempty"`
	INN      *string `json:"inn,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (c *Customer) decode(o *object) {
	c.FullName = o.str(false, "full_name")
	c.INN = o.str(false, "inn")
	c.Email = o.str(false, "email")
	c.Phone = o.str(false, "phone")
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Customer) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "customer", data, c)
}

// MarkQuantity is the fraction of a marked package being sold
type MarkQuantity struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

func (m *MarkQuantity) decode(o *object) {
	m.Numerator = ptr.Value(o.integer(true, "numerator"))
	m.Denominator = ptr.Value(o.integer(true, "denominator"))
}

// UnmarshalJSON implements json.Unmarshaler
func (m *MarkQuantity) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "mark_quantity", data, m)
}

// MarkCodeInfo is the product marking code, in one of its code families
type MarkCodeInfo struct {
	Code    *string `json:"mark_code_raw,omitempty"`
	Unknown *string `json:"unknown,omitempty"`
	EAN8    *string `json:"ean_8,omitempty"`
	EAN13   *string `json:"ean_13,omitempty"`
	ITF14   *string `json:"itf_14,omitempty"`
	GS10    *string `json:"gs_10,omitempty"`
	GS1M    *string `json:"gs_1m,omitempty"`
	Short   *string `json:"short,omitempty"`
	Fur     *string `json:"fur,omitempty"`
	EGAIS20 *string `json:"egais_20,omitempty"`
	EGAIS30 *string `json:"egais_30,omitempty"`
}

func (m *MarkCodeInfo) decode(o *object) {
	m.Code = o.str(false, alias("mark_code_raw")...)
	m.Unknown = o.str(false, "unknown")
	m.EAN8 = o.str(false, "ean_8")
	m.EAN13 = o.str(false, "ean_13")
	m.ITF14 = o.str(false, "itf_14")
	m.GS10 = o.str(false, "gs_10")
	m.GS1M = o.str(false, "gs_1m")
	m.Short = o.str(false, "short")
	m.Fur = o.str(false, "fur")
	m.EGAIS20 = o.str(false, "egais_20")
	m.EGAIS30 = o.str(false, "egais_30")
}

// UnmarshalJSON implements json.Unmarshaler
func (m *MarkCodeInfo) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "mark_code_info", data, m)
}

// IndustryDetails is an industry requisite referencing a regulatory document
type IndustryDetails struct {
	FederalID      string `json:"federal_id"`
	DocumentDate   Date   `json:"document_date"`
	DocumentNumber string `json:"document_number"`
	Value          string `json:"value"`
}

func (i *IndustryDetails) decode(o *object) {
	i.FederalID = ptr.String(o.str(true, "federal_id"))
	i.DocumentDate = ptr.Value(o.date(true, "document_date"))
	i.DocumentNumber = ptr.String(o.str(true, "document_number"))
	i.Value = ptr.String(o.str(true, "value"))
}

// UnmarshalJSON implements json.Unmarshaler
func (i *IndustryDetails) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "industry_details", data, i)
}

// PaymentItem is one line of a fiscal receipt
type PaymentItem struct {
	Description                   string           `json:"description"`
	Amount                        Amount           `json:"amount"`
	VatCode                       int              `json:"vat_code"`
	Quantity                      decimal.Decimal  `json:"quantity"`
	Measure                       *string          `json:"measure,omitempty"`
	MarkQuantity                  *MarkQuantity    `json:"mark_quantity,omitempty"`
	PaymentSubject                *string          `json:"payment_subject,omitempty"`
	PaymentMode                   *string          `json:"payment_mode,omitempty"`
	CountryOfOriginCode           *string          `json:"country_of_origin_code,omitempty"`
	CustomsDeclarationNumber      *string          `json:"customs_declaration_number,omitempty"`
	Excise                        *string          `json:"excise,omitempty"`
	ProductCode                   *string          `json:"product_code,omitempty"`
	MarkCodeInfo                  *MarkCodeInfo    `json:"mark_code_info,omitempty"`
	MarkMode                      *string          `json:"mark_mode,omitempty"`
	PaymentSubjectIndustryDetails *IndustryDetails `json:"payment_subject_industry_details,omitempty"`
}

func (p *PaymentItem) decode(o *object) {
	p.Description = ptr.String(o.str(true, "description"))
	p.Amount = ptr.Value(nested[Amount](o, true, "amount"))
	p.VatCode = ptr.Value(o.integer(true, "vat_code"))
	p.Quantity = ptr.Value(o.number(true, "quantity"))
	p.Measure = o.str(false, "measure")
	p.MarkQuantity = nested[MarkQuantity](o, false, "mark_quantity")
	p.PaymentSubject = o.str(false, "payment_subject")
	p.PaymentMode = o.str(false, "payment_mode")
	p.CountryOfOriginCode = o.str(false, "country_of_origin_code")
	p.CustomsDeclarationNumber = o.str(false, "customs_declaration_number")
	p.Excise = o.str(false, "excise")
	p.ProductCode = o.str(false, "product_code")
	p.MarkCodeInfo = nested[MarkCodeInfo](o, false, "mark_code_info")
	p.MarkMode = o.str(false, "mark_mode")
	p.PaymentSubjectIndustryDetails = nested[IndustryDetails](o, false, "payment_subject_industry_details")
}

// MarshalJSON emits the quantity as a number with its parsed precision
func (p PaymentItem) MarshalJSON() ([]byte, error) {
	type plain PaymentItem
	return json.Marshal(struct {
		plain
		Quantity json.Number `json:"quantity"`
	}{
		plain:    plain(p),
		Quantity: json.Number(formatDecimal(p.Quantity)),
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (p *PaymentItem) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "payment_item", data, p)
}

// OperationDetails is the operation requisite of a receipt
type OperationDetails struct {
	ID        int       `json:"operation_id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *OperationDetails) decode(o *object) {
	d.ID = ptr.Value(o.integer(true, alias("operation_id")...))
	d.Value = ptr.String(o.str(true, "value"))
	d.CreatedAt = ptr.Time(o.timestamp(true, "created_at"))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *OperationDetails) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "operation_details", data, d)
}

// Receipt is the fiscal receipt data of a payment
type Receipt struct {
	Customer                *Customer         `json:"customer,omitempty"`
	Items                   []PaymentItem     `json:"items"`
	Phone                   *string           `json:"phone,omitempty"`
	Email                   *string           `json:"email,omitempty"`
	TaxSystemCode           *int              `json:"tax_system_code,omitempty"`
	ReceiptIndustryDetails  *IndustryDetails  `json:"receipt_industry_details,omitempty"`
	ReceiptOperationDetails *OperationDetails `json:"receipt_operation_details,omitempty"`
}

func (r *Receipt) decode(o *object) {
	r.Customer = nested[Customer](o, false, "customer")
	r.Items = list[PaymentItem](o, true, "items")
	r.Phone = o.str(false, "phone")
	r.Email = o.str(false, "email")
	r.TaxSystemCode = o.integer(false, "tax_system_code")
	r.ReceiptIndustryDetails = nested[IndustryDetails](o, false, "receipt_industry_details")
	r.ReceiptOperationDetails = nested[OperationDetails](o, false, "receipt_operation_details")
}

// Decode implements inputs.Decodable
func (r *Receipt) Decode(ctx context.Context, data []byte) error {
	return unmarshal(ctx, "receipt", data, r)
}

// Validate implements inputs.Validatable
func (r *Receipt) Validate(ctx context.Context) error {
	return validate(ctx, "receipt", r)
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Receipt) UnmarshalJSON(data []byte) error {
	return r.Decode(context.Background(), data)
}

// ParseReceipt builds a Receipt from its wire form
func ParseReceipt(ctx context.Context, data []byte) (*Receipt, error) {
	var r Receipt
	if err := inputs.Decode(ctx, &r, data); err != nil {
		return nil, err
	}
	return &r, nil
}
