// Package report flattens gateway payments for reconciliation exports.
package report

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/brave-intl/yookassa-go/closers"
	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/logging"
	_ "github.com/brave-intl/yookassa-go/validators"
	"github.com/brave-intl/yookassa-go/yookassa"
)

// PaymentRow is the structure of a row of the payments export
type PaymentRow struct {
	ID                 string `csv:"id" valid:"gatewayid,required"`
	Status             string `csv:"status" valid:"required"`
	Amount             string `csv:"amount" valid:"decimal,required"`
	Currency           string `csv:"currency" valid:"ISO4217"`
	IncomeAmount       string `csv:"income_amount" valid:"decimal"`
	RefundedAmount     string `csv:"refunded_amount" valid:"decimal"`
	CreatedAt          string `csv:"created_at" valid:"iso8601,required"`
	CapturedAt         string `csv:"captured_at" valid:"iso8601"`
	Paid               bool   `csv:"paid"`
	Refundable         bool   `csv:"refundable"`
	Test               bool   `csv:"test"`
	PaymentMethod      string `csv:"payment_method"`
	CancellationParty  string `csv:"cancellation_party"`
	CancellationReason string `csv:"cancellation_reason"`
}

// NewPaymentRow turns a payment into a PaymentRow
func NewPaymentRow(p *yookassa.Payment) *PaymentRow {
	row := &PaymentRow{
		ID:         p.ID,
		Status:     p.Status.String(),
		Amount:     p.Amount.ValueString(),
		Currency:   p.Amount.Currency,
		CreatedAt:  formatTime(&p.CreatedAt),
		CapturedAt: formatTime(p.CapturedAt),
		Paid:       p.Paid,
		Refundable: p.Refundable,
		Test:       p.Test,
	}
	if p.IncomeAmount != nil {
		row.IncomeAmount = p.IncomeAmount.ValueString()
	}
	if p.RefundedAmount != nil {
		row.RefundedAmount = p.RefundedAmount.ValueString()
	}
	if p.PaymentMethod != nil {
		row.PaymentMethod = p.PaymentMethod.MethodType()
	}
	if cd := p.CancellationDetails; cd != nil {
		row.CancellationParty = cd.Party.String()
		row.CancellationReason = cd.Reason.String()
	}
	return row
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

// PaymentsCSV renders payments as csv, one row per payment with a header line
func PaymentsCSV(ctx context.Context, payments []yookassa.Payment) (string, error) {
	logger := logging.Logger(ctx, "report")

	rows := make([]*PaymentRow, 0, len(payments))
	for i := range payments {
		row := NewPaymentRow(&payments[i])
		if _, err := govalidator.ValidateStruct(row); err != nil {
			return "", logging.LogAndError(logger, "invalid payments csv row",
				errorutils.New(err, "invalid payments csv row", map[string]int{"row": i}))
		}
		rows = append(rows, row)
	}

	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", logging.LogAndError(logger, "failed to render payments csv", err)
	}

	logger.Debug().
		Int("rows", len(rows)).
		Msg("rendered payments csv")
	return data, nil
}

// WritePaymentsCSV writes the payments csv to outPath
func WritePaymentsCSV(ctx context.Context, outPath string, payments []yookassa.Payment) error {
	data, err := PaymentsCSV(ctx, payments)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer closers.Log(ctx, f)

	_, err = f.WriteString(data)
	return err
}

// Total aggregates the succeeded payments of one currency
type Total struct {
	Currency string
	Count    int
	Amount   decimal.Decimal
	Income   decimal.Decimal
	Refunded decimal.Decimal
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (t Total) MarshalZerologObject(e *zerolog.Event) {
	e.Str("currency", t.Currency).
		Int("count", t.Count).
		Str("amount", t.Amount.String()).
		Str("income", t.Income.String()).
		Str("refunded", t.Refunded.String())
}

// Totals sums the succeeded payments per currency, ordered by currency code.
// Income falls back to the amount when the gateway did not report it.
func Totals(payments []yookassa.Payment) []Total {
	byCurrency := map[string]*Total{}
	for i := range payments {
		p := &payments[i]
		if !p.IsSucceeded() {
			continue
		}

		t, ok := byCurrency[p.Amount.Currency]
		if !ok {
			t = &Total{Currency: p.Amount.Currency}
			byCurrency[p.Amount.Currency] = t
		}

		t.Count++
		t.Amount = t.Amount.Add(p.Amount.Value)
		if p.IncomeAmount != nil {
			t.Income = t.Income.Add(p.IncomeAmount.Value)
		} else {
			t.Income = t.Income.Add(p.Amount.Value)
		}
		if p.RefundedAmount != nil {
			t.Refunded = t.Refunded.Add(p.RefundedAmount.Value)
		}
	}

	result := make([]Total, 0, len(byCurrency))
	for _, t := range byCurrency {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Currency < result[j].Currency
	})
	return result
}
