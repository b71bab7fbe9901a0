package yookassa

import (
	"context"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"

	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/validators"
)

const (
	// MinListLimit is the smallest page size the list endpoint accepts
	MinListLimit = 1
	// MaxListLimit is the largest page size the list endpoint accepts
	MaxListLimit = 100
)

// ListPaymentsParams are the query parameters of the payments list endpoint.
// Zero values are left out of the query.
type ListPaymentsParams struct {
	CreatedAtGTE  *time.Time    `url:"created_at.gte,omitempty" layout:"2006-01-02T15:04:05.000Z07:00"`
	CreatedAtGT   *time.Time    `url:"created_at.gt,omitempty" layout:"2006-01-02T15:04:05.000Z07:00"`
	CreatedAtLTE  *time.Time    `url:"created_at.lte,omitempty" layout:"2006-01-02T15:04:05.000Z07:00"`
	CreatedAtLT   *time.Time    `url:"created_at.lt,omitempty" layout:"2006-01-02T15:04:05.000Z07:00"`
	CapturedAtGTE *time.Time    `url:"captured_at.gte,omitempty" layout:"2006-01-02T15:04:05.000Z07:00"`
	CapturedAtGT  *time.Time    `url:"captured_at.gt,omitempty" layout:"2006-01-02T15:04:05.000Z07:00"`
	CapturedAtLTE *time.Time    `url:"captured_at.lte,omitempty" layout:"2006-01-02T15:04:05.000Z07:00"`
	CapturedAtLT  *time.Time    `url:"captured_at.lt,omitempty" layout:"2006-01-02T15:04:05.000Z07:00"`
	PaymentMethod string        `url:"payment_method,omitempty"`
	Status        PaymentStatus `url:"status,omitempty"`
	Limit         int           `url:"limit,omitempty"`
	Cursor        string        `url:"cursor,omitempty"`
}

// Validate implements inputs.Validatable
func (p *ListPaymentsParams) Validate(ctx context.Context) error {
	ve := errorutils.NewValidationError("list payments params")
	if p.Status != "" && !p.Status.IsValid() {
		ve.Add("status", errorutils.ErrInvalidEnumValue)
	}
	if p.Limit != 0 && !validators.InRange(p.Limit, MinListLimit, MaxListLimit) {
		ve.Add("limit", errorutils.ErrInvalidRange)
	}
	return ve.ErrorOrNil()
}

// Values validates the parameters and encodes them as a query string.
// Timestamps are sent in UTC with millisecond precision.
func (p *ListPaymentsParams) Values(ctx context.Context) (url.Values, error) {
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	utc := *p
	for _, t := range []**time.Time{
		&utc.CreatedAtGTE, &utc.CreatedAtGT, &utc.CreatedAtLTE, &utc.CreatedAtLT,
		&utc.CapturedAtGTE, &utc.CapturedAtGT, &utc.CapturedAtLTE, &utc.CapturedAtLT,
	} {
		if *t != nil {
			v := (*t).UTC()
			*t = &v
		}
	}
	return query.Values(utc)
}

// Next returns the parameters of the page following l
func (p *ListPaymentsParams) Next(l *PaymentsList) (*ListPaymentsParams, bool) {
	if l == nil || !l.HasNext() {
		return nil, false
	}
	next := *p
	next.Cursor = *l.Cursor
	return &next, true
}
