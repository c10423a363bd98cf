package schema

import (
	"fmt"
	"strings"
)

// UnionSpec is a closed tagged union over a small set of model variants.
// A discriminant field selects the variant during deserialization; when the
// input omits the discriminant, the first declared variant whose required
// fields all validate wins. The tie-break is deterministic: declaration
// order decides.
type UnionSpec struct {
	name     string
	disc     string
	tags     []string
	variants map[string]*ModelSpec
}

// UnionVariant pairs a discriminant tag with its model.
type UnionVariant struct {
	Tag   string
	Model *ModelSpec
}

// Variant builds a union variant.
func Variant(tag string, model *ModelSpec) UnionVariant {
	return UnionVariant{Tag: tag, Model: model}
}

// NewUnion builds a union discriminated by the named field. It panics on
// duplicate tags or an empty variant set, since unions are static schema
// built at startup.
func NewUnion(name, discriminant string, variants ...UnionVariant) *UnionSpec {
	if len(variants) == 0 {
		panic("schema: union " + name + " requires at least one variant")
	}
	u := &UnionSpec{
		name:     name,
		disc:     discriminant,
		variants: make(map[string]*ModelSpec, len(variants)),
	}
	for _, v := range variants {
		if v.Model == nil {
			panic("schema: union " + name + " has nil variant model")
		}
		if _, dup := u.variants[v.Tag]; dup {
			panic("schema: union " + name + " has duplicate tag " + v.Tag)
		}
		u.tags = append(u.tags, v.Tag)
		u.variants[v.Tag] = v.Model
	}
	return u
}

// Name returns the union's name.
func (u *UnionSpec) Name() string { return u.name }

// Discriminant returns the name of the tag field.
func (u *UnionSpec) Discriminant() string { return u.disc }

// Tags returns the variant tags in declaration order.
func (u *UnionSpec) Tags() []string { return u.tags }

// Conform validates doc against the union and returns the instance of the
// selected variant.
func (u *UnionSpec) Conform(doc map[string]any) (*Instance, error) {
	inst, errs := u.conform(doc, nil)
	if len(errs) > 0 {
		return nil, errs
	}
	return inst, nil
}

func (u *UnionSpec) conform(doc map[string]any, path []string) (*Instance, Errors) {
	dpath := childPath(path, u.disc)

	if raw, ok := doc[u.disc]; ok {
		tag, isString := raw.(string)
		if !isString {
			return nil, Errors{mismatchError(SourceBody, dpath, "value is not a valid string", nil)}
		}
		variant, known := u.variants[tag]
		if !known {
			return nil, Errors{mismatchError(SourceBody, dpath,
				fmt.Sprintf("value must be one of: %s", strings.Join(u.tags, ", ")),
				map[string]any{"permitted": u.tags})}
		}
		return variant.conform(doc, path)
	}

	// No discriminant given: try variants in declaration order with the tag
	// filled in, and take the first that validates cleanly.
	for _, tag := range u.tags {
		trial := make(map[string]any, len(doc)+1)
		for k, v := range doc {
			trial[k] = v
		}
		trial[u.disc] = tag

		inst, errs := u.variants[tag].conform(trial, path)
		if len(errs) == 0 {
			inst.Put(u.disc, tag, PresenceDefaultApplied)
			return inst, nil
		}
	}

	return nil, Errors{mismatchError(SourceBody, dpath,
		fmt.Sprintf("value must be one of: %s", strings.Join(u.tags, ", ")),
		map[string]any{"permitted": u.tags})}
}
