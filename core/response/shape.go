package response

import (
	"net/http"

	"github.com/TylerBromley/bindkit/core/handler"
	"github.com/TylerBromley/bindkit/core/schema"
)

// Policy decides which top-level fields of an instance make it into the
// response body. Policies are declared per route at registration time.
type Policy struct {
	include      map[string]struct{}
	exclude      map[string]struct{}
	excludeUnset bool
}

// AllFields keeps every field. The zero Policy behaves the same.
func AllFields() Policy { return Policy{} }

// IncludeOnly keeps only the named fields. Field order still follows the
// instance, not the argument order.
func IncludeOnly(names ...string) Policy {
	p := Policy{include: make(map[string]struct{}, len(names))}
	for _, n := range names {
		p.include[n] = struct{}{}
	}
	return p
}

// ExcludeOnly drops the named fields and keeps the rest.
func ExcludeOnly(names ...string) Policy {
	p := Policy{exclude: make(map[string]struct{}, len(names))}
	for _, n := range names {
		p.exclude[n] = struct{}{}
	}
	return p
}

// ExcludeUnset drops every field that was not explicitly present in the
// input: defaulted and absent fields disappear, explicitly supplied values
// stay, including explicit nulls.
func ExcludeUnset() Policy {
	return Policy{excludeUnset: true}
}

// Apply shapes inst into a new instance, preserving field order and presence
// flags. The input instance is never modified.
func (p Policy) Apply(inst *schema.Instance) *schema.Instance {
	out := schema.NewInstance()
	for _, name := range inst.Names() {
		if p.include != nil {
			if _, ok := p.include[name]; !ok {
				continue
			}
		}
		if p.exclude != nil {
			if _, ok := p.exclude[name]; ok {
				continue
			}
		}
		if p.excludeUnset && !inst.Seen(name) {
			continue
		}
		out.Put(name, inst.Value(name), inst.Presence(name))
	}
	return out
}

// Shaped renders inst as JSON after applying the policy.
func Shaped(inst *schema.Instance, p Policy) handler.Response {
	return JSONWithStatus(p.Apply(inst), http.StatusOK)
}

// ShapedWithStatus renders inst as JSON with a custom status code after
// applying the policy.
func ShapedWithStatus(inst *schema.Instance, p Policy, status int) handler.Response {
	return JSONWithStatus(p.Apply(inst), status)
}
