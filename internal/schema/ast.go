package schema

// Type is a schema type reference with non-null and list nesting made
// explicit. The union is closed; consumers dispatch with an exhaustive type
// switch over NamedType, NonNullType and ListType.
type Type interface {
	isType()
	// String returns the SDL spelling of the reference.
	String() string
}

// NamedType references a scalar, enum or object type by name.
type NamedType struct {
	Name string
}

// NonNullType marks the inner reference as non-null (the SDL "!" suffix).
type NonNullType struct {
	Type Type
}

// ListType wraps the inner reference in a list (the SDL "[...]" form).
type ListType struct {
	Type Type
}

func (NamedType) isType()   {}
func (NonNullType) isType() {}
func (ListType) isType()    {}

func (t NamedType) String() string { return t.Name }

func (t NonNullType) String() string { return t.Type.String() + "!" }

func (t ListType) String() string { return "[" + t.Type.String() + "]" }

// HasDirective reports whether the definition carries a directive with the
// given name.
func (o *ObjectTypeDefinition) HasDirective(name string) bool {
	for _, d := range o.Directives {
		if d.Name == name {
			return true
		}
	}

	return false
}

// Objects returns the object type definitions in declaration order.
func (d *Document) Objects() []*ObjectTypeDefinition {
	var objs []*ObjectTypeDefinition

	for _, def := range d.Definitions {
		if def.Object != nil {
			objs = append(objs, def.Object)
		}
	}

	return objs
}
