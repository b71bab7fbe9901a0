package yookassa

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	appctx "github.com/brave-intl/yookassa-go/context"
	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/jsonutils"
	"github.com/brave-intl/yookassa-go/logging"
	timeutils "github.com/brave-intl/yookassa-go/time"
)

// maxExponent bounds the decimal exponent of numbers, "1e-300000000" would
// otherwise render as hundreds of megabytes of zeros.
const maxExponent = 64

// object is a json object being decoded together with its wire path. Every
// failure is recorded in errs; decoding carries on so that a single pass
// reports all of them.
type object struct {
	path   string
	raw    json.RawMessage
	fields map[string]json.RawMessage
	seen   map[string]struct{}
	errs   *errorutils.ValidationError
	strict bool
	// built marks entities constructed in code, where an empty mandatory
	// string or a zero time means the field was never set.
	built bool
}

func newObject(path string, data []byte, errs *errorutils.ValidationError, strict, built bool) *object {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		if json.Valid(data) {
			errs.Add(path, errorutils.ErrTypeMismatch)
		} else {
			errs.Add(path, errorutils.ErrMalformedJSON)
		}
		return nil
	}

	return &object{
		path:   path,
		raw:    data,
		fields: fields,
		seen:   make(map[string]struct{}, len(fields)),
		errs:   errs,
		strict: strict,
		built:  built,
	}
}

// decodeDocument decodes data as the root entity through fn. It reports a
// *errors.ValidationError listing every failed field, or nil.
func decodeDocument(ctx context.Context, entity string, data []byte, fn func(*object)) error {
	return runDecode(ctx, entity, data, false, fn)
}

func runDecode(ctx context.Context, entity string, data []byte, built bool, fn func(*object)) error {
	strict, _ := appctx.GetBoolFromContext(ctx, appctx.StrictDecodingCTXKey)

	ve := errorutils.NewValidationError(entity)
	if o := newObject("", data, ve, strict, built); o != nil {
		fn(o)
		o.finish()
	}

	err := ve.ErrorOrNil()
	if err != nil {
		decodeFailures.WithLabelValues(entity).Inc()
		logging.Logger(ctx, "yookassa").Debug().
			Str("entity", entity).
			Strs("fields", ve.Fields()).
			Msg("rejected gateway payload")
	}
	return err
}

// decodable is implemented by every entity of the schema.
type decodable[T any] interface {
	*T
	decode(*object)
}

// unmarshal decodes data into dst. dst is only written when the whole
// document is valid.
func unmarshal[T any, P decodable[T]](ctx context.Context, entity string, data []byte, dst *T) error {
	var v T
	if err := decodeDocument(ctx, entity, data, P(&v).decode); err != nil {
		return err
	}
	*dst = v
	return nil
}

func (o *object) at(name string) string {
	return errorutils.JoinPath(o.path, name)
}

func (o *object) fail(name string, err error) {
	o.errs.Add(o.at(name), err)
}

// lookup returns the raw value under the first present name. The wire name
// comes first, canonical fallbacks follow. json null counts as absent.
func (o *object) lookup(names ...string) (string, json.RawMessage, bool) {
	for _, n := range names {
		o.seen[n] = struct{}{}
	}
	for _, n := range names {
		if raw, ok := o.fields[n]; ok && !isNull(raw) {
			return n, raw, true
		}
	}
	return names[0], nil, false
}

// present is lookup with the missing-field check for mandatory fields.
func (o *object) present(req bool, names ...string) (string, json.RawMessage, bool) {
	name, raw, ok := o.lookup(names...)
	if !ok && req {
		o.fail(name, errorutils.ErrMissingField)
	}
	return name, raw, ok
}

// finish reports unknown fields when strict decoding is on.
func (o *object) finish() {
	if !o.strict {
		return
	}
	var unknown []string
	for name := range o.fields {
		if _, ok := o.seen[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		o.fail(name, errorutils.ErrUnknownField)
	}
}

// acceptAll marks every field as known, for objects kept verbatim.
func (o *object) acceptAll() {
	for name := range o.fields {
		o.seen[name] = struct{}{}
	}
}

func (o *object) str(req bool, names ...string) *string {
	name, raw, ok := o.present(req, names...)
	if !ok {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		o.fail(name, errorutils.ErrTypeMismatch)
		return nil
	}
	if req && o.built && s == "" {
		o.fail(name, errorutils.ErrMissingField)
		return nil
	}
	return &s
}

func (o *object) boolean(req bool, names ...string) *bool {
	name, raw, ok := o.present(req, names...)
	if !ok {
		return nil
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		o.fail(name, errorutils.ErrTypeMismatch)
		return nil
	}
	return &b
}

// integer accepts integral json numbers only.
func (o *object) integer(req bool, names ...string) *int {
	name, raw, ok := o.present(req, names...)
	if !ok {
		return nil
	}

	var i int
	if err := json.Unmarshal(raw, &i); err != nil {
		o.fail(name, errorutils.ErrTypeMismatch)
		return nil
	}
	return &i
}

// number accepts a json number or a string holding a decimal literal and
// keeps every fractional digit.
func (o *object) number(req bool, names ...string) *decimal.Decimal {
	name, raw, ok := o.present(req, names...)
	if !ok {
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		o.fail(name, errorutils.ErrTypeMismatch)
		return nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		o.fail(name, errorutils.ErrTypeMismatch)
		return nil
	}
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent {
		o.fail(name, errorutils.ErrInvalidRange)
		return nil
	}
	return &d
}

func (o *object) timestamp(req bool, names ...string) *time.Time {
	name, raw, ok := o.present(req, names...)
	if !ok {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		o.fail(name, errorutils.ErrTypeMismatch)
		return nil
	}
	t, err := timeutils.ParseISO8601(s)
	if err != nil {
		o.fail(name, errorutils.ErrMalformedTimestamp)
		return nil
	}
	// the zero instant is how an unset time.Time serializes
	if req && o.built && t.IsZero() {
		o.fail(name, errorutils.ErrMissingField)
		return nil
	}
	return &t
}

func (o *object) metadata(names ...string) jsonutils.Metadata {
	name, raw, ok := o.lookup(names...)
	if !ok {
		return nil
	}

	m, err := jsonutils.ParseMetadata(raw)
	if err != nil {
		o.fail(name, errorutils.ErrTypeMismatch)
		return nil
	}
	return m
}

// child returns the nested object under names, nil when absent or invalid.
func (o *object) child(req bool, names ...string) *object {
	name, raw, ok := o.present(req, names...)
	if !ok {
		return nil
	}
	return newObject(o.at(name), raw, o.errs, o.strict, o.built)
}

// elements returns the objects of the list under names. A present list is
// never nil, even when empty.
func (o *object) elements(req bool, names ...string) ([]*object, bool) {
	name, raw, ok := o.present(req, names...)
	if !ok {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		o.fail(name, errorutils.ErrTypeMismatch)
		return nil, false
	}

	result := make([]*object, 0, len(items))
	for i, item := range items {
		path := errorutils.IndexPath(o.at(name), i)
		if isNull(item) {
			o.errs.Add(path, errorutils.ErrTypeMismatch)
			continue
		}
		if c := newObject(path, item, o.errs, o.strict, o.built); c != nil {
			result = append(result, c)
		}
	}
	return result, true
}

// nested decodes the entity under names.
func nested[T any, P decodable[T]](o *object, req bool, names ...string) *T {
	c := o.child(req, names...)
	if c == nil {
		return nil
	}

	var v T
	P(&v).decode(c)
	c.finish()
	return &v
}

// list decodes the list of entities under names.
func list[T any, P decodable[T]](o *object, req bool, names ...string) []T {
	items, ok := o.elements(req, names...)
	if !ok {
		return nil
	}

	result := make([]T, len(items))
	for i, c := range items {
		P(&result[i]).decode(c)
		c.finish()
	}
	return result
}

// member is a closed enumeration.
type member interface {
	~string
	IsValid() bool
}

func enum[E member](o *object, req bool, names ...string) *E {
	s := o.str(req, names...)
	if s == nil {
		return nil
	}

	e := E(*s)
	if !e.IsValid() {
		name, _, _ := o.lookup(names...)
		o.fail(name, errorutils.ErrInvalidEnumValue)
		return nil
	}
	return &e
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
