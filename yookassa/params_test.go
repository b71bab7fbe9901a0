package yookassa

import (
	"context"
	"errors"
	"testing"
	"time"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"

	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/ptr"
	testutils "github.com/brave-intl/yookassa-go/test"
)

func TestListPaymentsParams_Values(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)

	params := ListPaymentsParams{
		CreatedAtGTE:  ptr.FromTime(time.Date(2018, 7, 18, 13, 0, 0, 0, msk)),
		CapturedAtLT:  ptr.FromTime(time.Date(2018, 7, 19, 10, 0, 0, 123456789, time.UTC)),
		PaymentMethod: MethodTypeBankCard,
		Status:        PaymentStatusSucceeded,
		Limit:         50,
	}

	v, err := params.Values(context.Background())
	must.NoError(t, err)

	should.Equal(t, "2018-07-18T10:00:00.000Z", v.Get("created_at.gte"))
	should.Equal(t, "2018-07-19T10:00:00.123Z", v.Get("captured_at.lt"))
	should.Equal(t, "bank_card", v.Get("payment_method"))
	should.Equal(t, "succeeded", v.Get("status"))
	should.Equal(t, "50", v.Get("limit"))
	should.NotContains(t, v, "cursor")
	should.NotContains(t, v, "created_at.lt")

	// the caller's values are not converted in place
	should.Equal(t, msk, params.CreatedAtGTE.Location())
}

func TestListPaymentsParams_Validate(t *testing.T) {
	type testCase struct {
		name   string
		given  ListPaymentsParams
		fields []string
	}

	tests := []testCase{
		{name: "zero", given: ListPaymentsParams{}},
		{name: "limit_min", given: ListPaymentsParams{Limit: MinListLimit}},
		{name: "limit_max", given: ListPaymentsParams{Limit: MaxListLimit}},
		{name: "limit_random", given: ListPaymentsParams{Limit: testutils.RandomIntWithMax(MaxListLimit)}},
		{name: "limit_too_big", given: ListPaymentsParams{Limit: 101}, fields: []string{"limit"}},
		{name: "limit_negative", given: ListPaymentsParams{Limit: -1}, fields: []string{"limit"}},
		{name: "unknown_status", given: ListPaymentsParams{Status: "refunded"}, fields: []string{"status"}},
		{
			name:   "both",
			given:  ListPaymentsParams{Status: "refunded", Limit: 1000},
			fields: []string{"limit", "status"},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			err := tc.given.Validate(context.Background())
			if tc.fields == nil {
				should.NoError(t, err)
				return
			}

			must.Error(t, err)
			should.Equal(t, tc.fields, errorutils.FieldPaths(err))

			_, err = tc.given.Values(context.Background())
			should.True(t, errorutils.IsErrValidation(err))
		})
	}

	err := (&ListPaymentsParams{Limit: 0x7fff}).Validate(context.Background())
	should.True(t, errors.Is(err, errorutils.ErrInvalidRange))
}

func TestListPaymentsParams_Next(t *testing.T) {
	params := ListPaymentsParams{Status: PaymentStatusSucceeded, Limit: 10}

	_, ok := params.Next(&PaymentsList{List: []Payment{}})
	should.False(t, ok)

	_, ok = params.Next(nil)
	should.False(t, ok)

	next, ok := params.Next(&PaymentsList{Cursor: ptr.FromString("c1")})
	must.True(t, ok)
	should.Equal(t, "c1", next.Cursor)
	should.Equal(t, PaymentStatusSucceeded, next.Status)
	should.Equal(t, "", params.Cursor)
}
