package yookassa

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/brave-intl/yookassa-go/ptr"
)

// payment method types with a dedicated variant
const (
	MethodTypeBankCard              = "bank_card"
	MethodTypeYooMoney              = "yoo_money"
	MethodTypeSberbank              = "sberbank"
	MethodTypeTinkoffBank           = "tinkoff_bank"
	MethodTypeAlfabank              = "alfabank"
	MethodTypeMobileBalance         = "mobile_balance"
	MethodTypeCash                  = "cash"
	MethodTypeQiwi                  = "qiwi"
	MethodTypeB2BSberbank           = "b2b_sberbank"
	MethodTypeSBP                   = "sbp"
	MethodTypeInstallments          = "installments"
	MethodTypeApplePay              = "apple_pay"
	MethodTypeGooglePay             = "google_pay"
	MethodTypeWebmoney              = "webmoney"
	MethodTypeWechat                = "wechat"
	MethodTypeSberLoan              = "sber_loan"
	MethodTypeElectronicCertificate = "electronic_certificate"
)

// PaymentMethod is the means a payment was made with. The concrete type is
// selected by MethodType, types without a variant decode to *OtherMethod.
type PaymentMethod interface {
	MethodType() string
	Base() MethodBase
}

type methodVariant interface {
	PaymentMethod
	decode(*object)
}

var methodVariants = map[string]func(string) methodVariant{
	MethodTypeBankCard:      func(string) methodVariant { return &BankCardMethod{} },
	MethodTypeYooMoney:      func(string) methodVariant { return &YooMoneyMethod{} },
	MethodTypeSberbank:      func(string) methodVariant { return &SberbankMethod{} },
	MethodTypeTinkoffBank:   func(string) methodVariant { return &TinkoffBankMethod{} },
	MethodTypeAlfabank:      func(string) methodVariant { return &AlfabankMethod{} },
	MethodTypeMobileBalance: func(string) methodVariant { return &MobileBalanceMethod{} },
	MethodTypeCash:          func(string) methodVariant { return &CashMethod{} },
	MethodTypeQiwi:          func(string) methodVariant { return &QiwiMethod{} },
	MethodTypeB2BSberbank:   func(string) methodVariant { return &B2BSberbankMethod{} },
}

func init() {
	for _, t := range []string{
		MethodTypeSBP,
		MethodTypeInstallments,
		MethodTypeApplePay,
		MethodTypeGooglePay,
		MethodTypeWebmoney,
		MethodTypeWechat,
		MethodTypeSberLoan,
		MethodTypeElectronicCertificate,
	} {
		methodVariants[t] = func(t string) methodVariant { return &SimpleMethod{Type: t} }
	}
}

func decodeMethod(o *object, req bool, names ...string) PaymentMethod {
	c := o.child(req, names...)
	if c == nil {
		return nil
	}

	m := decodeVariant(c)
	c.finish()
	return m
}

func decodeVariant(o *object) methodVariant {
	typ := ptr.String(o.str(true, "type"))

	var m methodVariant = &OtherMethod{Type: typ}
	if variant, ok := methodVariants[typ]; ok {
		m = variant(typ)
	}
	m.decode(o)
	return m
}

// ParsePaymentMethod builds the variant matching the type of the method object
func ParsePaymentMethod(ctx context.Context, data []byte) (PaymentMethod, error) {
	var m PaymentMethod
	err := decodeDocument(ctx, "payment_method", data, func(o *object) {
		m = decodeVariant(o)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MethodBase holds the fields shared by every payment method
type MethodBase struct {
	ID    string  `json:"id"`
	Saved bool    `json:"saved"`
	Title *string `json:"title,omitempty"`
}

// Base returns the shared fields
func (b MethodBase) Base() MethodBase {
	return b
}

func (b *MethodBase) decodeBase(o *object) {
	b.ID = ptr.String(o.str(true, "id"))
	b.Saved = ptr.Bool(o.boolean(true, "saved"))
	b.Title = o.str(false, "title")
}

// withType encodes v, a json object, with the type discriminator in front
func withType(typ string, v interface{}) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	tag, err := json.Marshal(typ)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.Write(tag)
	if rest := bytes.TrimPrefix(body, []byte("{")); !bytes.Equal(rest, []byte("}")) {
		buf.WriteByte(',')
		buf.Write(rest)
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// BankCardMethod is a payment by bank card
type BankCardMethod struct {
	MethodBase
	Card *CardInfo `json:"card,omitempty"`
}

// MethodType implements PaymentMethod
func (BankCardMethod) MethodType() string { return MethodTypeBankCard }

func (m *BankCardMethod) decode(o *object) {
	m.decodeBase(o)
	m.Card = nested[CardInfo](o, false, "card")
}

// MarshalJSON implements json.Marshaler
func (m BankCardMethod) MarshalJSON() ([]byte, error) {
	type plain BankCardMethod
	return withType(m.MethodType(), plain(m))
}

// YooMoneyMethod is a payment from a YooMoney wallet
type YooMoneyMethod struct {
	MethodBase
	AccountNumber *string `json:"account_number,omitempty"`
}

// MethodType implements PaymentMethod
func (YooMoneyMethod) MethodType() string { return MethodTypeYooMoney }

func (m *YooMoneyMethod) decode(o *object) {
	m.decodeBase(o)
	m.AccountNumber = o.str(false, "account_number")
}

// MarshalJSON implements json.Marshaler
func (m YooMoneyMethod) MarshalJSON() ([]byte, error) {
	type plain YooMoneyMethod
	return withType(m.MethodType(), plain(m))
}

// SberbankMethod is a payment through SberPay
type SberbankMethod struct {
	MethodBase
	Phone *string   `json:"phone,omitempty"`
	Card  *CardInfo `json:"card,omitempty"`
}

// MethodType implements PaymentMethod
func (SberbankMethod) MethodType() string { return MethodTypeSberbank }

func (m *SberbankMethod) decode(o *object) {
	m.decodeBase(o)
	m.Phone = o.str(false, "phone")
	m.Card = nested[CardInfo](o, false, "card")
}

// MarshalJSON implements json.Marshaler
func (m SberbankMethod) MarshalJSON() ([]byte, error) {
	type plain SberbankMethod
	return withType(m.MethodType(), plain(m))
}

// TinkoffBankMethod is a payment through T-Pay
type TinkoffBankMethod struct {
	MethodBase
	Card *CardInfo `json:"card,omitempty"`
}

// MethodType implements PaymentMethod
func (TinkoffBankMethod) MethodType() string { return MethodTypeTinkoffBank }

func (m *TinkoffBankMethod) decode(o *object) {
	m.decodeBase(o)
	m.Card = nested[CardInfo](o, false, "card")
}

// MarshalJSON implements json.Marshaler
func (m TinkoffBankMethod) MarshalJSON() ([]byte, error) {
	type plain TinkoffBankMethod
	return withType(m.MethodType(), plain(m))
}

// AlfabankMethod is a payment through Alfa-Click
type AlfabankMethod struct {
	MethodBase
	Login *string `json:"login,omitempty"`
}

// MethodType implements PaymentMethod
func (AlfabankMethod) MethodType() string { return MethodTypeAlfabank }

func (m *AlfabankMethod) decode(o *object) {
	m.decodeBase(o)
	m.Login = o.str(false, "login")
}

// MarshalJSON implements json.Marshaler
func (m AlfabankMethod) MarshalJSON() ([]byte, error) {
	type plain AlfabankMethod
	return withType(m.MethodType(), plain(m))
}

// MobileBalanceMethod is a payment from a mobile phone balance
type MobileBalanceMethod struct {
	MethodBase
	Phone *string `json:"phone,omitempty"`
}

// MethodType implements PaymentMethod
func (MobileBalanceMethod) MethodType() string { return MethodTypeMobileBalance }

func (m *MobileBalanceMethod) decode(o *object) {
	m.decodeBase(o)
	m.Phone = o.str(false, "phone")
}

// MarshalJSON implements json.Marshaler
func (m MobileBalanceMethod) MarshalJSON() ([]byte, error) {
	type plain MobileBalanceMethod
	return withType(m.MethodType(), plain(m))
}

// CashMethod is a cash payment at a terminal
type CashMethod struct {
	MethodBase
	Phone *string `json:"phone,omitempty"`
}

// MethodType implements PaymentMethod
func (CashMethod) MethodType() string { return MethodTypeCash }

func (m *CashMethod) decode(o *object) {
	m.decodeBase(o)
	m.Phone = o.str(false, "phone")
}

// MarshalJSON implements json.Marshaler
func (m CashMethod) MarshalJSON() ([]byte, error) {
	type plain CashMethod
	return withType(m.MethodType(), plain(m))
}

// QiwiMethod is a payment from a QIWI wallet
type QiwiMethod struct {
	MethodBase
	Phone *string `json:"phone,omitempty"`
}

// MethodType implements PaymentMethod
func (QiwiMethod) MethodType() string { return MethodTypeQiwi }

func (m *QiwiMethod) decode(o *object) {
	m.decodeBase(o)
	m.Phone = o.str(false, "phone")
}

// MarshalJSON implements json.Marshaler
func (m QiwiMethod) MarshalJSON() ([]byte, error) {
	type plain QiwiMethod
	return withType(m.MethodType(), plain(m))
}

// B2BSberbankMethod is an invoice payment by a legal entity through SberBusinessOnline
type B2BSberbankMethod struct {
	MethodBase
	PayerBankDetails *PayerBankDetails `json:"payer_bank_details,omitempty"`
	PaymentPurpose   *string           `json:"payment_purpose,omitempty"`
	VatData          *VatData          `json:"vat_data,omitempty"`
}

// MethodType implements PaymentMethod
func (B2BSberbankMethod) MethodType() string { return MethodTypeB2BSberbank }

func (m *B2BSberbankMethod) decode(o *object) {
	m.decodeBase(o)
	m.PayerBankDetails = nested[PayerBankDetails](o, false, "payer_bank_details")
	m.PaymentPurpose = o.str(false, "payment_purpose")
	m.VatData = nested[VatData](o, false, "vat_data")
}

// MarshalJSON implements json.Marshaler
func (m B2BSberbankMethod) MarshalJSON() ([]byte, error) {
	type plain B2BSberbankMethod
	return withType(m.MethodType(), plain(m))
}

// SimpleMethod is a method without fields of its own, e.g. sbp or apple_pay
type SimpleMethod struct {
	MethodBase
	Type string `json:"-"`
}

// MethodType implements PaymentMethod
func (m SimpleMethod) MethodType() string { return m.Type }

func (m *SimpleMethod) decode(o *object) {
	m.decodeBase(o)
}

// MarshalJSON implements json.Marshaler
func (m SimpleMethod) MarshalJSON() ([]byte, error) {
	type plain SimpleMethod
	return withType(m.Type, plain(m))
}

// OtherMethod is a method type this package has no variant for. The object is
// kept as received and emitted unchanged.
type OtherMethod struct {
	MethodBase
	Type string          `json:"-"`
	Raw  json.RawMessage `json:"-"`
}

// MethodType implements PaymentMethod
func (m OtherMethod) MethodType() string { return m.Type }

func (m *OtherMethod) decode(o *object) {
	m.decodeBase(o)
	o.acceptAll()
	m.Raw = append(json.RawMessage(nil), o.raw...)
}

// MarshalJSON implements json.Marshaler
func (m OtherMethod) MarshalJSON() ([]byte, error) {
	if len(m.Raw) > 0 {
		return m.Raw, nil
	}
	type plain OtherMethod
	return withType(m.Type, plain(m))
}
