package schema

// Kind enumerates the value kinds a field can declare.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindEnum
	KindURL
	KindEmail
	KindModel
	KindList
	KindSet
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	case KindModel:
		return "object"
	case KindList:
		return "array"
	case KindSet:
		return "set"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Type describes the declared shape of a field value. Types are built via the
// constructor functions below and are immutable afterwards.
type Type struct {
	kind  Kind
	enum  []string
	elem  *Type
	model *ModelSpec
	union *UnionSpec
}

// Kind returns the kind of the type.
func (t Type) Kind() Kind { return t.kind }

// EnumValues returns the permitted literals of an enum type.
func (t Type) EnumValues() []string { return t.enum }

// String declares a plain string value.
func String() Type { return Type{kind: KindString} }

// Int declares an integer value.
func Int() Type { return Type{kind: KindInt} }

// Float declares a floating point value.
func Float() Type { return Type{kind: KindFloat} }

// Bool declares a boolean value.
func Bool() Type { return Type{kind: KindBool} }

// URL declares a string that must carry a scheme and a host.
func URL() Type { return Type{kind: KindURL} }

// Email declares a string that must parse as a mail address.
func Email() Type { return Type{kind: KindEmail} }

// Enum declares a closed set of permitted string literals.
// It panics when called without values; an empty enum can never validate.
func Enum(values ...string) Type {
	if len(values) == 0 {
		panic("schema: enum requires at least one value")
	}
	return Type{kind: KindEnum, enum: values}
}

// Model declares a nested object conforming to the given model.
func Model(m *ModelSpec) Type {
	if m == nil {
		panic("schema: nil model")
	}
	return Type{kind: KindModel, model: m}
}

// List declares an ordered sequence of elements of the given type.
func List(elem Type) Type {
	e := elem
	return Type{kind: KindList, elem: &e}
}

// Set declares a sequence deduplicated by value equality after coercion.
// Element types are restricted to scalars, since value equality on nested
// objects is not defined here.
func Set(elem Type) Type {
	switch elem.kind {
	case KindModel, KindList, KindSet, KindUnion:
		panic("schema: set elements must be scalar")
	}
	e := elem
	return Type{kind: KindSet, elem: &e}
}

// Union declares a value that conforms to one of the union's variants.
func Union(u *UnionSpec) Type {
	if u == nil {
		panic("schema: nil union")
	}
	return Type{kind: KindUnion, union: u}
}
