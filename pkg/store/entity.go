package store

// Entity is a generic record: named boxed values with deterministic field
// order. The zero value is ready to use. Generated wrapper types embed Entity
// and expose its fields through typed accessors.
type Entity struct {
	fields map[string]*Value
	order  []string
}

// NewEntity returns an empty record.
func NewEntity() Entity { return Entity{} }

// Get returns the boxed value stored under name, or nil if the field is
// absent.
func (e *Entity) Get(name string) *Value {
	return e.fields[name]
}

// Set stores a boxed value under name, preserving the position of an existing
// field.
func (e *Entity) Set(name string, v *Value) {
	if e.fields == nil {
		e.fields = make(map[string]*Value)
	}

	if _, exists := e.fields[name]; !exists {
		e.order = append(e.order, name)
	}

	e.fields[name] = v
}

// Unset removes the field from the record.
func (e *Entity) Unset(name string) {
	if _, exists := e.fields[name]; !exists {
		return
	}

	delete(e.fields, name)

	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// FieldNames returns the field names in first-set order.
func (e *Entity) FieldNames() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)

	return out
}

// clone returns a copy of the record. Values are immutable and shared.
func (e *Entity) clone() *Entity {
	c := &Entity{
		fields: make(map[string]*Value, len(e.fields)),
		order:  make([]string, len(e.order)),
	}

	copy(c.order, e.order)

	for name, v := range e.fields {
		c.fields[name] = v
	}

	return c
}
