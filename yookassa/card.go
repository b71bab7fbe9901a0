package yookassa

import (
	"context"

	"github.com/brave-intl/yookassa-go/ptr"
)

// CardInfo describes the bank card a payment was made with
type CardInfo struct {
	FirstSix    *string `json:"first6,omitempty"`
	LastFour    string  `json:"last4"`
	ExpiryYear  string  `json:"expiry_year"`
	ExpiryMonth string  `json:"expiry_month"`
	CardType    string  `json:"card_type"`
	CardCountry *string `json:"issuer_country,omitempty"`
	BankName    *string `json:"issuer_name,omitempty"`
	Source      *string `json:"source,omitempty"`
}

func (c *CardInfo) decode(o *object) {
	c.FirstSix = o.str(false, alias("first6")...)
	c.LastFour = ptr.String(o.str(true, alias("last4")...))
	c.ExpiryYear = ptr.String(o.str(true, "expiry_year"))
	c.ExpiryMonth = ptr.String(o.str(true, "expiry_month"))
	c.CardType = ptr.String(o.str(true, "card_type"))
	c.CardCountry = o.str(false, alias("issuer_country")...)
	c.BankName = o.str(false, alias("issuer_name")...)
	c.Source = o.str(false, "source")
}

// UnmarshalJSON implements json.Unmarshaler
func (c *CardInfo) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "card", data, c)
}

// PayerBankDetails are the requisites of a legal entity paying by invoice
type PayerBankDetails struct {
	FullName    string  `json:"full_name"`
	ShortName   string  `json:"short_name"`
	Address     string  `json:"address"`
	INN         string  `json:"inn"`
	KPP         *string `json:"kpp,omitempty"`
	BankName    string  `json:"bank_name"`
	BankBranch  string  `json:"bank_branch"`
	BankBIK     string  `json:"bank_bik"`
	BankAccount string  `json:"bank_account"`
}

func (p *PayerBankDetails) decode(o *object) {
	p.FullName = ptr.String(o.str(true, "full_name"))
	p.ShortName = ptr.String(o.str(true, "short_name"))
	p.Address = ptr.String(o.str(true, "address"))
	p.INN = ptr.String(o.str(true, "inn"))
	p.KPP = o.str(false, "kpp")
	p.BankName = ptr.String(o.str(true, "bank_name"))
	p.BankBranch = ptr.String(o.str(true, "bank_branch"))
	p.BankBIK = ptr.String(o.str(true, "bank_bik"))
	p.BankAccount = ptr.String(o.str(true, "bank_account"))
}

// UnmarshalJSON implements json.Unmarshaler
func (p *PayerBankDetails) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "payer_bank_details", data, p)
}

// VatData is the VAT breakdown of an invoice payment
type VatData struct {
	Type   string  `json:"type"`
	Amount *Amount `json:"amount,omitempty"`
	Rate   *string `json:"rate,omitempty"`
}

func (v *VatData) decode(o *object) {
	v.Type = ptr.String(o.str(true, "type"))
	v.Amount = nested[Amount](o, false, "amount")
	v.Rate = o.str(false, "rate")
}

// UnmarshalJSON implements json.Unmarshaler
func (v *VatData) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "vat_data", data, v)
}
