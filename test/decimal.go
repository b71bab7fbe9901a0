package test

import (
	"testing"

	"github.com/shopspring/decimal"
)

// DecEq fails the test unless expected and actual hold the same value and scale.
func DecEq(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()

	exp := decimal.RequireFromString(expected)
	if !exp.Equal(actual) || exp.Exponent() != actual.Exponent() {
		t.Errorf("expected decimal %s (exp %d), got %s (exp %d)", expected, exp.Exponent(), actual.String(), actual.Exponent())
	}
}
