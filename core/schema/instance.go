package schema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Presence records how a field value made it into an instance. Response
// shaping relies on it to tell explicitly supplied fields apart from
// default fill-in.
type Presence uint8

const (
	// PresenceSeen marks a field that appeared in the input.
	PresenceSeen Presence = 1 << iota
	// PresenceWasNull marks a field whose input value was an explicit null.
	PresenceWasNull
	// PresenceDefaultApplied marks a field filled from its declared default.
	PresenceDefaultApplied
)

// Instance is an ordered name→value mapping produced by binding or by
// conforming server-side data against a model. Field order follows the
// declaration order of the underlying specs.
type Instance struct {
	names    []string
	values   map[string]any
	presence map[string]Presence
}

// NewInstance creates an empty instance.
func NewInstance() *Instance {
	return &Instance{
		values:   make(map[string]any),
		presence: make(map[string]Presence),
	}
}

// Put appends a field. Intended for binders and conformers; putting the same
// name twice replaces the value but keeps the original position.
func (i *Instance) Put(name string, value any, p Presence) {
	if _, exists := i.values[name]; !exists {
		i.names = append(i.names, name)
	}
	i.values[name] = value
	i.presence[name] = p
}

// Names returns the field names in declaration order.
func (i *Instance) Names() []string { return i.names }

// Len returns the number of fields.
func (i *Instance) Len() int { return len(i.names) }

// Get returns the value for name and whether the field exists.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.values[name]
	return v, ok
}

// Value returns the value for name, or nil when absent.
func (i *Instance) Value(name string) any { return i.values[name] }

// Presence returns the presence flags for name.
func (i *Instance) Presence(name string) Presence { return i.presence[name] }

// Seen reports whether the field was explicitly supplied in the input,
// as opposed to filled from a default or left absent.
func (i *Instance) Seen(name string) bool {
	return i.presence[name]&PresenceSeen != 0
}

// String returns the value for name as a string, or "" when absent or of a
// different type.
func (i *Instance) String(name string) string {
	s, _ := i.values[name].(string)
	return s
}

// Int returns the value for name as an int64, or 0.
func (i *Instance) Int(name string) int64 {
	n, _ := i.values[name].(int64)
	return n
}

// Float returns the value for name as a float64, or 0. Integer-typed values
// are converted.
func (i *Instance) Float(name string) float64 {
	switch v := i.values[name].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns the value for name as a bool, or false.
func (i *Instance) Bool(name string) bool {
	b, _ := i.values[name].(bool)
	return b
}

// Model returns the value for name as a nested instance, or nil.
func (i *Instance) Model(name string) *Instance {
	m, _ := i.values[name].(*Instance)
	return m
}

// MarshalJSON encodes the instance as a JSON object preserving field order.
// Nested instances and lists of instances encode recursively; enum values
// encode as their underlying string.
func (i *Instance) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, name := range i.names {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(i.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
