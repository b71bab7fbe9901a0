package yookassa

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"

	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/ptr"
)

func TestParsePaymentMethod(t *testing.T) {
	type tcExpected struct {
		typ   string
		check func(t *testing.T, m PaymentMethod)
	}

	type testCase struct {
		name  string
		given string
		exp   tcExpected
	}

	tests := []testCase{
		{
			name:  "bank_card",
			given: `{"type":"bank_card","id":"m1","saved":true,"card":{"last4":"4444","expiry_year":"2030","expiry_month":"01","card_type":"Visa"}}`,
			exp: tcExpected{
				typ: MethodTypeBankCard,
				check: func(t *testing.T, m PaymentMethod) {
					card := m.(*BankCardMethod).Card
					must.NotNil(t, card)
					should.Equal(t, "4444", card.LastFour)
					should.Nil(t, card.FirstSix)
					should.True(t, m.Base().Saved)
				},
			},
		},

		{
			name:  "yoo_money",
			given: `{"type":"yoo_money","id":"m2","saved":false,"account_number":"4100"}`,
			exp: tcExpected{
				typ: MethodTypeYooMoney,
				check: func(t *testing.T, m PaymentMethod) {
					should.Equal(t, "4100", ptr.String(m.(*YooMoneyMethod).AccountNumber))
				},
			},
		},

		{
			name:  "sberbank",
			given: `{"type":"sberbank","id":"m3","saved":false,"phone":"79000000000"}`,
			exp: tcExpected{
				typ: MethodTypeSberbank,
				check: func(t *testing.T, m PaymentMethod) {
					should.Equal(t, "79000000000", ptr.String(m.(*SberbankMethod).Phone))
				},
			},
		},

		{
			name:  "tinkoff_bank",
			given: `{"type":"tinkoff_bank","id":"m4","saved":false}`,
			exp: tcExpected{
				typ: MethodTypeTinkoffBank,
				check: func(t *testing.T, m PaymentMethod) {
					should.Nil(t, m.(*TinkoffBankMethod).Card)
				},
			},
		},

		{
			name:  "alfabank",
			given: `{"type":"alfabank","id":"m5","saved":false,"login":"alfa"}`,
			exp: tcExpected{
				typ: MethodTypeAlfabank,
				check: func(t *testing.T, m PaymentMethod) {
					should.Equal(t, "alfa", ptr.String(m.(*AlfabankMethod).Login))
				},
			},
		},

		{
			name:  "mobile_balance",
			given: `{"type":"mobile_balance","id":"m6","saved":false,"phone":"79000000001"}`,
			exp: tcExpected{
				typ: MethodTypeMobileBalance,
				check: func(t *testing.T, m PaymentMethod) {
					should.Equal(t, "79000000001", ptr.String(m.(*MobileBalanceMethod).Phone))
				},
			},
		},

		{
			name:  "cash",
			given: `{"type":"cash","id":"m7","saved":false}`,
			exp: tcExpected{
				typ: MethodTypeCash,
				check: func(t *testing.T, m PaymentMethod) {
					should.Nil(t, m.(*CashMethod).Phone)
				},
			},
		},

		{
			name:  "qiwi",
			given: `{"type":"qiwi","id":"m8","saved":false,"phone":"79000000002"}`,
			exp: tcExpected{
				typ: MethodTypeQiwi,
				check: func(t *testing.T, m PaymentMethod) {
					should.Equal(t, "79000000002", ptr.String(m.(*QiwiMethod).Phone))
				},
			},
		},

		{
			name: "b2b_sberbank",
			given: `{"type":"b2b_sberbank","id":"m9","saved":false,"payment_purpose":"Invoice 1",
				"payer_bank_details":{"full_name":"OOO Romashka","short_name":"Romashka","address":"Moscow","inn":"7700000000",
				"bank_name":"Sberbank","bank_branch":"Moscow","bank_bik":"044525225","bank_account":"40702810000000000000"},
				"vat_data":{"type":"calculated","rate":"20","amount":{"value":"16.67","currency":"RUB"}}}`,
			exp: tcExpected{
				typ: MethodTypeB2BSberbank,
				check: func(t *testing.T, m PaymentMethod) {
					b2b := m.(*B2BSberbankMethod)
					must.NotNil(t, b2b.PayerBankDetails)
					should.Equal(t, "7700000000", b2b.PayerBankDetails.INN)
					should.Nil(t, b2b.PayerBankDetails.KPP)
					must.NotNil(t, b2b.VatData)
					should.Equal(t, "calculated", b2b.VatData.Type)
					should.Equal(t, "16.67 RUB", b2b.VatData.Amount.String())
				},
			},
		},

		{
			name:  "simple",
			given: `{"type":"electronic_certificate","id":"m10","saved":false,"title":"certificate"}`,
			exp: tcExpected{
				typ: MethodTypeElectronicCertificate,
				check: func(t *testing.T, m PaymentMethod) {
					_, ok := m.(*SimpleMethod)
					should.True(t, ok)
					should.Equal(t, "certificate", ptr.String(m.Base().Title))
				},
			},
		},

		{
			name:  "other",
			given: `{"type":"crypto_wallet","id":"m11","saved":false,"network":"ton","limits":{"daily":10}}`,
			exp: tcExpected{
				typ: "crypto_wallet",
				check: func(t *testing.T, m PaymentMethod) {
					other, ok := m.(*OtherMethod)
					must.True(t, ok)
					should.Equal(t, "m11", other.ID)
				},
			},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParsePaymentMethod(context.Background(), []byte(tc.given))
			must.NoError(t, err)

			should.Equal(t, tc.exp.typ, actual.MethodType())
			tc.exp.check(t, actual)

			out, err := json.Marshal(actual)
			must.NoError(t, err)
			should.JSONEq(t, tc.given, string(out))
		})
	}
}

func TestParsePaymentMethod_Invalid(t *testing.T) {
	type testCase struct {
		name   string
		given  string
		fields []string
	}

	tests := []testCase{
		{
			name:   "missing_base",
			given:  `{"type":"bank_card"}`,
			fields: []string{"id", "saved"},
		},
		{
			name:   "unknown_type_missing_base",
			given:  `{"type":"crypto_wallet","id":"m1"}`,
			fields: []string{"saved"},
		},
		{
			name:   "incomplete_card",
			given:  `{"type":"sberbank","id":"m1","saved":false,"card":{"first6":"123456"}}`,
			fields: []string{"card.card_type", "card.expiry_month", "card.expiry_year", "card.last4"},
		},
		{
			name:  "incomplete_bank_details",
			given: `{"type":"b2b_sberbank","id":"m1","saved":false,"payer_bank_details":{"full_name":"A"}}`,
			fields: []string{
				"payer_bank_details.address",
				"payer_bank_details.bank_account",
				"payer_bank_details.bank_bik",
				"payer_bank_details.bank_branch",
				"payer_bank_details.bank_name",
				"payer_bank_details.inn",
				"payer_bank_details.short_name",
			},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParsePaymentMethod(context.Background(), []byte(tc.given))
			must.Error(t, err)
			should.Nil(t, actual)
			should.Equal(t, tc.fields, errorutils.FieldPaths(err))
			should.True(t, errors.Is(err, errorutils.ErrMissingField))
		})
	}
}

func TestCardInfo_Aliases(t *testing.T) {
	type testCase struct {
		name  string
		given string
	}

	tests := []testCase{
		{
			name:  "wire",
			given: `{"first6":"555555","last4":"4444","expiry_year":"2030","expiry_month":"07","card_type":"MasterCard","issuer_country":"RU","issuer_name":"Sberbank"}`,
		},
		{
			name:  "canonical",
			given: `{"first_six":"555555","last_four":"4444","expiry_year":"2030","expiry_month":"07","card_type":"MasterCard","card_country":"RU","bank_name":"Sberbank"}`,
		},
		{
			name:  "both_wire_wins",
			given: `{"first6":"555555","first_six":"000000","last4":"4444","last_four":"0000","expiry_year":"2030","expiry_month":"07","card_type":"MasterCard","issuer_country":"RU","issuer_name":"Sberbank"}`,
		},
	}

	exp := CardInfo{
		FirstSix:    ptr.FromString("555555"),
		LastFour:    "4444",
		ExpiryYear:  "2030",
		ExpiryMonth: "07",
		CardType:    "MasterCard",
		CardCountry: ptr.FromString("RU"),
		BankName:    ptr.FromString("Sberbank"),
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			var actual CardInfo
			must.NoError(t, json.Unmarshal([]byte(tc.given), &actual))
			should.Equal(t, exp, actual)

			out, err := json.Marshal(actual)
			must.NoError(t, err)
			should.JSONEq(t, tests[0].given, string(out))
		})
	}
}

func TestWithType(t *testing.T) {
	out, err := withType("sbp", struct{}{})
	must.NoError(t, err)
	should.Equal(t, `{"type":"sbp"}`, string(out))

	out, err = withType("cash", MethodBase{ID: "x"})
	must.NoError(t, err)
	should.Equal(t, `{"type":"cash","id":"x","saved":false}`, string(out))
}
