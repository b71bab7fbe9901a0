package yookassa

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/ptr"
	timeutils "github.com/brave-intl/yookassa-go/time"
)

// Amount is a sum of money in a currency, e.g. {"value": "100.50", "currency": "RUB"}.
type Amount struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// NewAmount parses value as a decimal literal
func NewAmount(value, currency string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Value: d, Currency: currency}, nil
}

func (a *Amount) decode(o *object) {
	if v := o.number(true, "value"); v != nil {
		if v.IsNegative() {
			o.fail("value", errorutils.ErrInvalidAmount)
		} else {
			a.Value = *v
		}
	}
	a.Currency = ptr.String(o.str(true, "currency"))
}

// ValueString renders the value with its parsed number of fractional digits
func (a Amount) ValueString() string {
	return formatDecimal(a.Value)
}

// String renders the amount as "100.50 RUB"
func (a Amount) String() string {
	return formatDecimal(a.Value) + " " + a.Currency
}

// MarshalJSON emits the value as a string with the parsed number of fractional digits
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    string `json:"value"`
		Currency string `json:"currency"`
	}{
		Value:    formatDecimal(a.Value),
		Currency: a.Currency,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "amount", data, a)
}

// formatDecimal keeps trailing zeros, decimal.String would drop them
func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Date is a calendar date, serialized as YYYY-MM-DD. A value read from a full
// timestamp, or built from a time.Time, is serialized as a timestamp again.
type Date struct {
	time.Time
	dateOnly bool
}

// NewDate returns the calendar date at midnight UTC
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), dateOnly: true}
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.dateOnly {
		return json.Marshal(timeutils.FormatDate(d.Time))
	}
	return json.Marshal(d.Time)
}

// UnmarshalJSON accepts a calendar date or a full ISO-8601 timestamp
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := timeutils.ParseISO8601(s)
	if err != nil {
		return err
	}
	*d = Date{Time: t, dateOnly: len(s) == len(timeutils.DateLayout)}
	return nil
}

func (o *object) date(req bool, names ...string) *Date {
	t := o.timestamp(req, names...)
	if t == nil {
		return nil
	}
	var s string
	_, raw, _ := o.lookup(names...)
	_ = json.Unmarshal(raw, &s)
	return &Date{Time: *t, dateOnly: len(s) == len(timeutils.DateLayout)}
}
