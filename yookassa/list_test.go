package yookassa

import (
	"context"
	"encoding/json"
	"testing"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"

	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/ptr"
)

func TestParsePaymentsList(t *testing.T) {
	l, err := ParsePaymentsList(context.Background(), fixture(t, "payments_list.json"))
	must.NoError(t, err)

	should.Equal(t, "list", ptr.String(l.Type))
	must.Len(t, l.List, 2)
	should.True(t, l.List[0].IsWaitingForCapture())
	should.True(t, l.List[1].IsSucceeded())
	should.True(t, l.HasNext())
	should.Equal(t, "37a5c87d-3984-51e8-a7f3-8de646d39ec15", ptr.String(l.Cursor))

	out, err := json.Marshal(l)
	must.NoError(t, err)

	again, err := ParsePaymentsList(context.Background(), out)
	must.NoError(t, err)

	out2, err := json.Marshal(again)
	must.NoError(t, err)
	should.JSONEq(t, string(out), string(out2))

	for i := range l.List {
		should.True(t, l.List[i].CreatedAt.Equal(again.List[i].CreatedAt))
		should.True(t, l.List[i].Amount.Value.Equal(again.List[i].Amount.Value))
	}
}

func TestParsePaymentsList_Defaults(t *testing.T) {
	type tcExpected struct {
		size    int
		hasNext bool
		cursor  *string
	}

	type testCase struct {
		name  string
		given string
		exp   tcExpected
	}

	tests := []testCase{
		{
			name:  "empty_object",
			given: `{}`,
		},

		{
			name:  "null_items",
			given: `{"items": null, "cursor": null}`,
		},

		{
			name:  "canonical_name",
			given: `{"list": [], "cursor": "c1"}`,
			exp:   tcExpected{hasNext: true, cursor: ptr.FromString("c1")},
		},

		{
			name:  "next_cursor",
			given: `{"type": "list", "items": [], "next_cursor": "c2"}`,
			exp:   tcExpected{hasNext: true, cursor: ptr.FromString("c2")},
		},

		{
			name:  "empty_cursor",
			given: `{"items": [], "cursor": ""}`,
			exp:   tcExpected{cursor: ptr.FromString("")},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParsePaymentsList(context.Background(), []byte(tc.given))
			must.NoError(t, err)

			should.NotNil(t, actual.List)
			should.Len(t, actual.List, tc.exp.size)
			should.Equal(t, tc.exp.hasNext, actual.HasNext())
			should.Equal(t, tc.exp.cursor, actual.Cursor)
		})
	}
}

func TestParsePaymentsList_InvalidItem(t *testing.T) {
	data := modify(t, fixture(t, "payments_list.json"), func(doc map[string]interface{}) {
		items := doc["items"].([]interface{})
		delete(items[1].(map[string]interface{}), "created_at")
		items = append(items, nil)
		doc["items"] = items
	})

	actual, err := ParsePaymentsList(context.Background(), data)
	must.Error(t, err)
	should.Nil(t, actual)
	should.Equal(t, []string{"items[1].created_at", "items[2]"}, errorutils.FieldPaths(err))
}
