package binder

import (
	"net/http"

	"github.com/TylerBromley/bindkit/core/schema"
)

// PathParams carries the named segment captures extracted by the router.
type PathParams map[string]string

// Bind extracts every declared field from the request, coerces it to its
// declared type, applies constraints, and returns the bound values as an
// ordered instance.
//
// Binding never stops at the first failure: every field is attempted and all
// validation errors come back together as schema.Errors, in the order the
// fields were declared. Transport-level failures (malformed JSON, unsupported
// media types, oversized bodies) are returned as wrapped sentinel errors
// instead, since no per-field result exists for them.
func Bind(r *http.Request, params PathParams, specs []schema.FieldSpec) (*schema.Instance, error) {
	inst := schema.NewInstance()
	var errs schema.Errors

	var (
		bodyDoc    any
		bodyObj    map[string]any
		hasBody    bool
		formValues map[string][]string
	)

	bodyFields := 0
	needsForm := false
	for _, f := range specs {
		switch f.Source {
		case schema.SourceBody:
			bodyFields++
		case schema.SourceForm:
			needsForm = true
		}
	}

	if bodyFields > 0 {
		var err error
		bodyDoc, hasBody, err = decodeBody(r)
		if err != nil {
			return nil, err
		}
		if hasBody {
			bodyObj, _ = bodyDoc.(map[string]any)
		}
	}
	if needsForm {
		var err error
		formValues, err = parseFormValues(r)
		if err != nil {
			return nil, err
		}
	}

	// A single body field consumes the whole payload; with several body
	// fields each one binds to its own top-level key.
	wholeBody := bodyFields == 1

	bodyNotObject := bodyFields > 1 && hasBody && bodyObj == nil
	if bodyNotObject {
		errs = append(errs, schema.Error{
			Source:  schema.SourceBody,
			Kind:    schema.TypeMismatch,
			Message: "request body is not a valid object",
		})
	}

	var query map[string][]string
	for _, f := range specs {
		switch f.Source {
		case schema.SourcePath:
			raw, ok := params[f.Key()]
			bindRaw(inst, &errs, f, raw, ok)

		case schema.SourceQuery:
			if query == nil {
				query = r.URL.Query()
			}
			bindRaws(inst, &errs, f, query[f.Key()])

		case schema.SourceHeader:
			bindRaws(inst, &errs, f, r.Header.Values(f.Key()))

		case schema.SourceCookie:
			c, err := r.Cookie(f.Key())
			if err != nil {
				bindRaw(inst, &errs, f, "", false)
				continue
			}
			bindRaw(inst, &errs, f, c.Value, true)

		case schema.SourceForm:
			bindRaws(inst, &errs, f, formValues[f.Key()])

		case schema.SourceBody:
			if wholeBody {
				bindBody(inst, &errs, f, bodyDoc, hasBody)
				continue
			}
			if bodyNotObject {
				continue
			}
			raw, ok := bodyObj[f.Key()]
			bindBody(inst, &errs, f, raw, hasBody && ok)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return inst, nil
}

// bindRaw resolves a single raw string value for f, falling back to the
// field's missing-value rules when the request carries none.
func bindRaw(inst *schema.Instance, errs *schema.Errors, f schema.FieldSpec, raw string, ok bool) {
	if !ok {
		bindMissing(inst, errs, f)
		return
	}
	value, ferrs := f.BindString(raw)
	if len(ferrs) > 0 {
		*errs = append(*errs, ferrs...)
		return
	}
	inst.Put(f.Name, value, schema.PresenceSeen)
}

// bindRaws resolves repeated raw values: list and set fields consume every
// occurrence, scalar fields take the first.
func bindRaws(inst *schema.Instance, errs *schema.Errors, f schema.FieldSpec, raws []string) {
	if len(raws) == 0 {
		bindMissing(inst, errs, f)
		return
	}
	switch f.Type.Kind() {
	case schema.KindList, schema.KindSet:
		value, ferrs := f.BindStrings(raws)
		if len(ferrs) > 0 {
			*errs = append(*errs, ferrs...)
			return
		}
		inst.Put(f.Name, value, schema.PresenceSeen)
	default:
		bindRaw(inst, errs, f, raws[0], true)
	}
}

// bindBody resolves a decoded body value, preserving the distinction between
// an absent key and an explicit null.
func bindBody(inst *schema.Instance, errs *schema.Errors, f schema.FieldSpec, raw any, ok bool) {
	if !ok {
		bindMissing(inst, errs, f)
		return
	}
	if raw == nil {
		value, ferrs := f.BindValue(nil)
		if len(ferrs) > 0 {
			*errs = append(*errs, ferrs...)
			return
		}
		inst.Put(f.Name, value, schema.PresenceSeen|schema.PresenceWasNull)
		return
	}
	value, ferrs := f.BindValue(raw)
	if len(ferrs) > 0 {
		*errs = append(*errs, ferrs...)
		return
	}
	inst.Put(f.Name, value, schema.PresenceSeen)
}

func bindMissing(inst *schema.Instance, errs *schema.Errors, f schema.FieldSpec) {
	value, p, ferrs := f.MissingValue()
	if len(ferrs) > 0 {
		*errs = append(*errs, ferrs...)
		return
	}
	inst.Put(f.Name, value, p)
}
