package jsonutils

import (
	"encoding/json"
	"testing"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	type tcExpected struct {
		val Metadata
		err error
	}

	type testCase struct {
		name  string
		given string
		exp   tcExpected
	}

	tests := []testCase{
		{
			name:  "flat",
			given: `{"order_id":"37","attempt":2}`,
			exp: tcExpected{
				val: Metadata{"order_id": "37", "attempt": json.Number("2")},
			},
		},

		{
			name:  "nested",
			given: `{"cart":{"sku":"a1","gift":true}}`,
			exp: tcExpected{
				val: Metadata{"cart": map[string]interface{}{"sku": "a1", "gift": true}},
			},
		},

		{
			name:  "array",
			given: `["a"]`,
			exp:   tcExpected{err: ErrMetadataNotObject},
		},

		{
			name:  "string",
			given: `"a"`,
			exp:   tcExpected{err: ErrMetadataNotObject},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParseMetadata([]byte(tc.given))
			if tc.exp.err != nil {
				should.ErrorIs(t, err, tc.exp.err)
				return
			}

			must.NoError(t, err)
			should.Equal(t, tc.exp.val, actual)
		})
	}
}

func TestMetadata_Get(t *testing.T) {
	m := Metadata{"order_id": "37", "attempt": json.Number("2")}

	v, ok := m.Get("order_id")
	should.True(t, ok)
	should.Equal(t, "37", v)

	_, ok = m.Get("attempt")
	should.False(t, ok)

	_, ok = m.Get("missing")
	should.False(t, ok)
}

func TestMetadata_ScanValue(t *testing.T) {
	m := Metadata{"order_id": "37", "amount": json.Number("10.50")}

	v, err := m.Value()
	must.NoError(t, err)

	var scanned Metadata
	must.NoError(t, scanned.Scan(v))
	should.Equal(t, m, scanned)

	must.NoError(t, scanned.Scan(nil))
	should.Nil(t, scanned)

	nilValue, err := Metadata(nil).Value()
	must.NoError(t, err)
	should.Nil(t, nilValue)

	should.Error(t, scanned.Scan(42))
}
