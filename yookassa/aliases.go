package yookassa

// wire name -> canonical name. Decoding accepts either, the wire name wins
// when both are present. Encoding always emits the wire name.
var aliasTable = map[string]string{
	"first6":              "first_six",
	"last4":               "last_four",
	"issuer_country":      "card_country",
	"issuer_name":         "bank_name",
	"confirmation_url":    "url",
	"rrn":                 "transaction_identifier",
	"auth_code":           "authorization_code",
	"platform_fee_amount": "fee_amount",
	"operation_id":        "id",
	"mark_code_raw":       "code",
	"legs":                "flights",
	"items":               "list",
}

// Aliases returns the wire name to canonical name mapping of aliased fields
func Aliases() map[string]string {
	result := make(map[string]string, len(aliasTable))
	for wire, canonical := range aliasTable {
		result[wire] = canonical
	}
	return result
}

// alias returns the names a field is looked up by, wire name first
func alias(wire string) []string {
	if canonical, ok := aliasTable[wire]; ok {
		return []string{wire, canonical}
	}
	return []string{wire}
}
