package validators

import (
	"github.com/asaskevich/govalidator"
	timeutils "github.com/brave-intl/yookassa-go/time"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

func init() {
	govalidator.TagMap["iso8601"] = govalidator.Validator(IsISO8601)
	govalidator.TagMap["decimal"] = govalidator.Validator(IsDecimal)
	govalidator.TagMap["gatewayid"] = govalidator.Validator(IsUUID)
}

// IsOneOf returns true if str is one of the members of a closed set
func IsOneOf(str string, members ...string) bool {
	return govalidator.IsIn(str, members...)
}

// InRange returns true if v lies in the closed interval [min, max]
func InRange(v, min, max int) bool {
	return govalidator.InRangeInt(v, min, max)
}

// IsDecimal returns true if str is a decimal literal, e.g. "100", "100.50" or "1e3"
func IsDecimal(str string) bool {
	_, err := decimal.NewFromString(str)
	return err == nil
}

// IsISO8601 returns true if str is an accepted ISO-8601 date-time or date
func IsISO8601(str string) bool {
	_, err := timeutils.ParseISO8601(str)
	return err == nil
}

// IsUUID checks if the string is a valid UUID
func IsUUID(v string) bool {
	_, err := uuid.FromString(v)
	return err == nil
}
