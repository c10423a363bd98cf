package schema

// Source identifies where in an HTTP request a field's raw value comes from.
type Source string

const (
	SourcePath   Source = "path"
	SourceQuery  Source = "query"
	SourceHeader Source = "header"
	SourceCookie Source = "cookie"
	SourceForm   Source = "form"
	SourceBody   Source = "body"
)

// Params builds a parameter table for a route from the given field specs.
// It panics when two specs share the same name within one source category,
// since tables are built once at startup and a duplicate is a programming
// error, not a runtime condition.
func Params(fields ...FieldSpec) []FieldSpec {
	type key struct {
		source Source
		name   string
	}
	seen := make(map[key]struct{}, len(fields))
	for _, f := range fields {
		k := key{f.Source, f.Name}
		if _, dup := seen[k]; dup {
			panic("schema: duplicate field " + string(f.Source) + " " + f.Name)
		}
		seen[k] = struct{}{}
	}
	return fields
}
