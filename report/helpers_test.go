package report

import (
	"testing"

	"github.com/shopspring/decimal"
	must "github.com/stretchr/testify/require"
)

func testDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	must.NoError(t, err)
	return d
}
