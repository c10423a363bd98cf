package schema

// FieldSpec declares a single bindable field: where its raw value lives in
// the request, what type it coerces to, and which constraints apply after
// coercion. Specs are built once at startup and are read-only afterwards.
type FieldSpec struct {
	Name        string
	Source      Source
	Type        Type
	Required    bool
	Default     any
	HasDefault  bool
	Alias       string // overrides the lookup key for query parameters
	Title       string // metadata only, never validated
	Description string // metadata only, never validated

	minLen *int
	maxLen *int
	gt     *float64
}

// FieldOption configures a FieldSpec during construction.
type FieldOption func(*FieldSpec)

// Field declares a field bound from the given source.
func Field(name string, source Source, typ Type, opts ...FieldOption) FieldSpec {
	f := FieldSpec{
		Name:   name,
		Source: source,
		Type:   typ,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Required marks the field as mandatory when it has no default.
func Required() FieldOption {
	return func(f *FieldSpec) { f.Required = true }
}

// Default sets the value used when the field is absent from the request.
// A field with a default is never reported missing.
func Default(v any) FieldOption {
	return func(f *FieldSpec) {
		f.Default = v
		f.HasDefault = true
	}
}

// Alias overrides the request key used to look up the field. The field keeps
// its declared name in bound output and error paths.
func Alias(name string) FieldOption {
	return func(f *FieldSpec) { f.Alias = name }
}

// Title attaches a display title. Metadata only.
func Title(s string) FieldOption {
	return func(f *FieldSpec) { f.Title = s }
}

// Description attaches a description. Metadata only.
func Description(s string) FieldOption {
	return func(f *FieldSpec) { f.Description = s }
}

// MinLength requires string values to have at least n bytes.
// Values exactly at the bound pass.
func MinLength(n int) FieldOption {
	return func(f *FieldSpec) { f.minLen = &n }
}

// MaxLength requires string values to have at most n bytes.
// Values exactly at the bound pass.
func MaxLength(n int) FieldOption {
	return func(f *FieldSpec) { f.maxLen = &n }
}

// GreaterThan requires numeric values to be strictly greater than x.
// A value exactly equal to the bound fails.
func GreaterThan(x float64) FieldOption {
	return func(f *FieldSpec) { f.gt = &x }
}

// key returns the request lookup key: the alias when declared, the field
// name otherwise.
func (f FieldSpec) key() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Key returns the request lookup key for the field.
func (f FieldSpec) Key() string { return f.key() }
