package schema

import (
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// BindString coerces a raw string from a path, query, header, cookie, or
// form source to the field's declared type and applies its constraints.
// All failures are returned, never panicked.
func (f FieldSpec) BindString(raw string) (any, Errors) {
	path := []string{f.Name}
	value, errs := f.coerceString(raw, path)
	if len(errs) > 0 {
		return nil, errs
	}
	if errs := f.constrain(value, path); len(errs) > 0 {
		return nil, errs
	}
	return value, nil
}

// BindValue coerces a decoded body value to the field's declared type and
// applies its constraints. Nested models and unions conform recursively.
func (f FieldSpec) BindValue(v any) (any, Errors) {
	path := []string{f.Name}
	if v == nil {
		if f.Required && !f.HasDefault {
			return nil, Errors{mismatchError(f.Source, path, "null is not allowed", nil)}
		}
		return nil, nil
	}
	value, errs := f.coerceValue(v, path)
	if len(errs) > 0 {
		return nil, errs
	}
	if errs := f.constrain(value, path); len(errs) > 0 {
		return nil, errs
	}
	return value, nil
}

// BindStrings coerces repeated raw strings from a query or form source into
// the field's declared list or set type. Element failures are indexed by
// position and aggregated.
func (f FieldSpec) BindStrings(raws []string) (any, Errors) {
	path := []string{f.Name}
	t := f.Type
	if t.kind != KindList && t.kind != KindSet {
		return nil, Errors{mismatchError(f.Source, path,
			fmt.Sprintf("%s values cannot be bound from repeated parameters", t.kind), nil)}
	}
	elem := FieldSpec{Name: f.Name, Source: f.Source, Type: *t.elem, Required: true}
	var errs Errors
	out := make([]any, 0, len(raws))
	for i, raw := range raws {
		v, eerrs := elem.coerceString(raw, childPath(path, strconv.Itoa(i)))
		if len(eerrs) > 0 {
			errs = append(errs, eerrs...)
			continue
		}
		out = append(out, v)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if t.kind == KindSet {
		out = dedupe(out)
	}
	return out, nil
}

// MissingValue resolves the field when the request carries no value for it:
// the declared default, absence-as-null for optional fields, or a Missing
// error for required ones.
func (f FieldSpec) MissingValue() (any, Presence, Errors) {
	return f.missing([]string{f.Name})
}

// coerceString converts a raw request string to the declared type.
// Collection and object kinds cannot come from string sources.
func (f FieldSpec) coerceString(raw string, path []string) (any, Errors) {
	t := f.Type
	switch t.kind {
	case KindString:
		return raw, nil

	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, Errors{mismatchError(f.Source, path,
				fmt.Sprintf("value is not a valid integer: %q", raw), nil)}
		}
		return n, nil

	case KindFloat:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, Errors{mismatchError(f.Source, path,
				fmt.Sprintf("value is not a valid number: %q", raw), nil)}
		}
		return x, nil

	case KindBool:
		b, err := parseBool(raw)
		if err != nil {
			return nil, Errors{mismatchError(f.Source, path,
				fmt.Sprintf("value is not a valid boolean: %q", raw), nil)}
		}
		return b, nil

	case KindEnum:
		return coerceEnum(f.Source, t.enum, raw, path)

	case KindURL:
		return coerceURL(f.Source, raw, path)

	case KindEmail:
		return coerceEmail(f.Source, raw, path)

	default:
		return nil, Errors{mismatchError(f.Source, path,
			fmt.Sprintf("%s values cannot be bound from a %s parameter", t.kind, f.Source), nil)}
	}
}

// coerceValue converts a decoded body value to the declared type.
func (f FieldSpec) coerceValue(raw any, path []string) (any, Errors) {
	t := f.Type
	switch t.kind {
	case KindString, KindURL, KindEmail:
		s, ok := raw.(string)
		if !ok {
			return nil, Errors{mismatchError(f.Source, path, "value is not a valid string", nil)}
		}
		switch t.kind {
		case KindURL:
			return coerceURL(f.Source, s, path)
		case KindEmail:
			return coerceEmail(f.Source, s, path)
		}
		return s, nil

	case KindInt:
		return coerceInt(f.Source, raw, path)

	case KindFloat:
		return coerceFloat(f.Source, raw, path)

	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, Errors{mismatchError(f.Source, path, "value is not a valid boolean", nil)}
		}
		return b, nil

	case KindEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, Errors{mismatchError(f.Source, path, "value is not a valid string", nil)}
		}
		return coerceEnum(f.Source, t.enum, s, path)

	case KindModel:
		doc, ok := raw.(map[string]any)
		if !ok {
			return nil, Errors{mismatchError(f.Source, path, "value is not a valid object", nil)}
		}
		inst, errs := t.model.conform(doc, path)
		if len(errs) > 0 {
			return nil, errs
		}
		return inst, nil

	case KindUnion:
		doc, ok := raw.(map[string]any)
		if !ok {
			return nil, Errors{mismatchError(f.Source, path, "value is not a valid object", nil)}
		}
		inst, errs := t.union.conform(doc, path)
		if len(errs) > 0 {
			return nil, errs
		}
		return inst, nil

	case KindList, KindSet:
		items, ok := raw.([]any)
		if !ok {
			return nil, Errors{mismatchError(f.Source, path, "value is not a valid array", nil)}
		}
		elem := FieldSpec{Name: f.Name, Source: f.Source, Type: *t.elem, Required: true}
		var errs Errors
		out := make([]any, 0, len(items))
		for i, item := range items {
			epath := childPath(path, strconv.Itoa(i))
			if item == nil {
				errs = append(errs, mismatchError(f.Source, epath, "null is not allowed", nil))
				continue
			}
			v, eerrs := elem.coerceValue(item, epath)
			if len(eerrs) > 0 {
				errs = append(errs, eerrs...)
				continue
			}
			out = append(out, v)
		}
		if len(errs) > 0 {
			return nil, errs
		}
		if t.kind == KindSet {
			out = dedupe(out)
		}
		return out, nil

	default:
		return nil, Errors{mismatchError(f.Source, path, "unsupported field type", nil)}
	}
}

// constrain applies the declared constraints to an already coerced value.
func (f FieldSpec) constrain(value any, path []string) Errors {
	var errs Errors

	if s, ok := value.(string); ok {
		if f.minLen != nil && len(s) < *f.minLen {
			errs = append(errs, constraintError(f.Source, path,
				fmt.Sprintf("value is shorter than %d characters", *f.minLen),
				map[string]any{"min_length": *f.minLen, "length": len(s)}))
		}
		if f.maxLen != nil && len(s) > *f.maxLen {
			errs = append(errs, constraintError(f.Source, path,
				fmt.Sprintf("value is longer than %d characters", *f.maxLen),
				map[string]any{"max_length": *f.maxLen, "length": len(s)}))
		}
	}

	if f.gt != nil {
		var x float64
		switch n := value.(type) {
		case int64:
			x = float64(n)
		case float64:
			x = n
		default:
			return errs
		}
		if x <= *f.gt {
			errs = append(errs, constraintError(f.Source, path,
				fmt.Sprintf("value must be greater than %v", *f.gt),
				map[string]any{"greater_than": *f.gt, "value": x}))
		}
	}

	return errs
}

func coerceEnum(source Source, permitted []string, raw string, path []string) (any, Errors) {
	for _, v := range permitted {
		if raw == v {
			return raw, nil
		}
	}
	return nil, Errors{mismatchError(source, path,
		fmt.Sprintf("value must be one of: %s", strings.Join(permitted, ", ")),
		map[string]any{"permitted": permitted})}
}

func coerceURL(source Source, raw string, path []string) (any, Errors) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, Errors{mismatchError(source, path,
			fmt.Sprintf("value is not a valid URL: %q", raw), nil)}
	}
	return raw, nil
}

func coerceEmail(source Source, raw string, path []string) (any, Errors) {
	if _, err := mail.ParseAddress(raw); err != nil {
		return nil, Errors{mismatchError(source, path,
			fmt.Sprintf("value is not a valid email address: %q", raw), nil)}
	}
	return raw, nil
}

func coerceInt(source Source, raw any, path []string) (any, Errors) {
	switch n := raw.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return i, nil
		}
		// integral floats coerce; fractional values are a mismatch
		if x, err := strconv.ParseFloat(n.String(), 64); err == nil && x == math.Trunc(x) {
			return int64(x), nil
		}
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		// integral floats coerce; fractional values are a mismatch
		if n == math.Trunc(n) {
			return int64(n), nil
		}
	}
	return nil, Errors{mismatchError(source, path, "value is not a valid integer", nil)}
}

func coerceFloat(source Source, raw any, path []string) (any, Errors) {
	switch n := raw.(type) {
	case json.Number:
		if x, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return x, nil
		}
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return nil, Errors{mismatchError(source, path, "value is not a valid number", nil)}
}

// parseBool accepts strconv forms plus common form-value spellings.
func parseBool(raw string) (bool, error) {
	b, err := strconv.ParseBool(raw)
	if err == nil {
		return b, nil
	}
	switch strings.ToLower(raw) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return false, err
}

// dedupe removes duplicate scalar values preserving first-occurrence order.
func dedupe(values []any) []any {
	seen := make(map[any]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
