package schema

// ModelSpec is an ordered set of field specs describing a structured body.
// Models may nest through Model, List, and Set types, or reference a union.
// Specs are defined once at process start and are read-only afterwards.
type ModelSpec struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// NewModel builds a model from the given fields. The source of every field
// is forced to SourceBody. It panics on duplicate field names, since models
// are static schema built at startup.
func NewModel(name string, fields ...FieldSpec) *ModelSpec {
	m := &ModelSpec{
		name:   name,
		fields: make([]FieldSpec, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, dup := m.index[f.Name]; dup {
			panic("schema: model " + name + " has duplicate field " + f.Name)
		}
		f.Source = SourceBody
		m.fields[i] = f
		m.index[f.Name] = i
	}
	return m
}

// Name returns the model's name.
func (m *ModelSpec) Name() string { return m.name }

// Fields returns the field specs in declaration order.
func (m *ModelSpec) Fields() []FieldSpec { return m.fields }

// Field returns the spec for name and whether it exists.
func (m *ModelSpec) Field(name string) (FieldSpec, bool) {
	i, ok := m.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return m.fields[i], true
}

// Conform validates doc against the model and returns the resulting ordered
// instance. Unknown keys in doc are ignored. On failure it returns every
// field error collected in declaration order.
func (m *ModelSpec) Conform(doc map[string]any) (*Instance, error) {
	inst, errs := m.conform(doc, nil)
	if len(errs) > 0 {
		return nil, errs
	}
	return inst, nil
}

func (m *ModelSpec) conform(doc map[string]any, path []string) (*Instance, Errors) {
	inst := NewInstance()
	var errs Errors

	for _, f := range m.fields {
		fpath := childPath(path, f.Name)
		raw, ok := doc[f.Name]

		if !ok {
			value, p, ferrs := f.missing(fpath)
			if len(ferrs) > 0 {
				errs = append(errs, ferrs...)
				continue
			}
			inst.Put(f.Name, value, p)
			continue
		}

		if raw == nil {
			if f.Required && !f.HasDefault {
				errs = append(errs, mismatchError(f.Source, fpath, "null is not allowed", nil))
				continue
			}
			inst.Put(f.Name, nil, PresenceSeen|PresenceWasNull)
			continue
		}

		value, ferrs := f.coerceValue(raw, fpath)
		if len(ferrs) > 0 {
			errs = append(errs, ferrs...)
			continue
		}
		if ferrs := f.constrain(value, fpath); len(ferrs) > 0 {
			errs = append(errs, ferrs...)
			continue
		}
		inst.Put(f.Name, value, PresenceSeen)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return inst, nil
}

// missing resolves an absent field: default value, absence-as-null for
// optional fields, or a Missing error for required ones.
func (f FieldSpec) missing(path []string) (any, Presence, Errors) {
	if f.HasDefault {
		return f.Default, PresenceDefaultApplied, nil
	}
	if f.Required {
		return nil, 0, Errors{missingError(f.Source, path)}
	}
	return nil, 0, nil
}

func childPath(path []string, name string) []string {
	// full-slice expression prevents sibling paths from aliasing
	return append(path[:len(path):len(path)], name)
}
