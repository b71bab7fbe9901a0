// Package schema generates json schemas of the gateway wire format.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/alecthomas/jsonschema"

	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/yookassa"
)

// ErrUnknownSchema - no schema is registered under the name
var ErrUnknownSchema = errors.New("unknown schema")

const decimalPattern = `^[0-9]+(\.[0-9]+)?$`

// root entities by schema name
var roots = map[string]reflect.Type{
	"airline":       reflect.TypeOf(yookassa.Airline{}),
	"payment":       reflect.TypeOf(yookassa.Payment{}),
	"payments_list": reflect.TypeOf(yookassa.PaymentsList{}),
	"receipt":       reflect.TypeOf(yookassa.Receipt{}),
	"transfer":      reflect.TypeOf(yookassa.Transfer{}),
}

// fields that decode with a default even though they are always encoded
var defaulted = map[string][]string{
	"PaymentsList": {"items"},
}

// definitions whose wire form differs from their go layout
var overrides = map[string]map[string]interface{}{
	"Amount": {
		"type":                 "object",
		"required":             []string{"value", "currency"},
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"value":    map[string]interface{}{"type": "string", "pattern": decimalPattern},
			"currency": map[string]interface{}{"type": "string"},
		},
	},
	"Decimal": {
		"oneOf": []interface{}{
			map[string]interface{}{"type": "number"},
			map[string]interface{}{"type": "string", "pattern": decimalPattern},
		},
	},
	"Date": {
		"type": "string",
		"anyOf": []interface{}{
			map[string]interface{}{"format": "date"},
			map[string]interface{}{"format": "date-time"},
		},
	},
}

// paymentMethod is the schema shared by every method variant
var paymentMethod = map[string]interface{}{
	"type":                 "object",
	"required":             []string{"type", "id", "saved"},
	"additionalProperties": true,
	"properties": map[string]interface{}{
		"type":  map[string]interface{}{"type": "string"},
		"id":    map[string]interface{}{"type": "string"},
		"saved": map[string]interface{}{"type": "boolean"},
		"title": map[string]interface{}{"type": "string"},
	},
}

// Names returns the names of the available schemas
func Names() []string {
	names := make([]string, 0, len(roots))
	for name := range roots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate returns the indented json schema of the named root entity
func Generate(name string) ([]byte, error) {
	t, ok := roots[name]
	if !ok {
		return nil, errorutils.New(ErrUnknownSchema, "unknown schema "+name, map[string][]string{"available": Names()})
	}

	raw, err := jsonschema.ReflectFromType(t).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to generate json schema: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse json schema: %w", err)
	}

	definitions, _ := doc["definitions"].(map[string]interface{})
	for typeName, fields := range optionalFields(t) {
		def, ok := definitions[typeName].(map[string]interface{})
		if !ok {
			continue
		}
		dropRequired(def, fields)
	}
	for typeName, override := range overrides {
		if _, ok := definitions[typeName]; ok {
			definitions[typeName] = override
		}
	}
	if def, ok := definitions["Payment"].(map[string]interface{}); ok {
		if props, ok := def["properties"].(map[string]interface{}); ok {
			props["payment_method"] = paymentMethod
		}
	}

	return json.MarshalIndent(doc, "", "  ")
}

// optionalFields collects, per struct type reachable from t, the json names
// that may be left out of a document besides the omitempty ones
func optionalFields(t reflect.Type) map[string][]string {
	result := map[string][]string{}
	for name, fields := range defaulted {
		result[name] = append(result[name], fields...)
	}

	seen := map[reflect.Type]bool{}
	var walk func(reflect.Type)
	walk = func(t reflect.Type) {
		for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Map {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct || seen[t] {
			return
		}
		seen[t] = true

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			tag := strings.Split(f.Tag.Get("json"), ",")
			for _, opt := range tag[1:] {
				if opt == "omitzero" {
					result[t.Name()] = append(result[t.Name()], tag[0])
				}
			}
			walk(f.Type)
		}
	}
	walk(t)
	return result
}

func dropRequired(def map[string]interface{}, fields []string) {
	required, ok := def["required"].([]interface{})
	if !ok {
		return
	}

	drop := map[string]bool{}
	for _, f := range fields {
		drop[f] = true
	}

	kept := make([]interface{}, 0, len(required))
	for _, r := range required {
		if s, ok := r.(string); ok && drop[s] {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		delete(def, "required")
		return
	}
	def["required"] = kept
}
