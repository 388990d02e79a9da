package model

// TargetType describes the exposed type of an accessor. It mirrors the schema
// type reference, but nullability is structural: a NamedType is wrapped in
// NullableType only when the declared type permits null and the underlying
// storage type can represent it.
//
// The union is closed; consumers dispatch with an exhaustive type switch.
type TargetType interface {
	isTargetType()
	// TypeName returns a readable spelling of the type, used in diagnostics.
	TypeName() string
}

// NamedType is a direct reference to a scalar or record type by its
// storage-level name (e.g. "string", "i32", "Bytes", "BigInt").
type NamedType struct {
	Name string
}

// NullableType marks the inner type as permitting a null value.
type NullableType struct {
	Inner TargetType
}

// ArrayType is an ordered collection of the element type.
type ArrayType struct {
	Elem TargetType
}

func (NamedType) isTargetType()    {}
func (NullableType) isTargetType() {}
func (ArrayType) isTargetType()    {}

func (t NamedType) TypeName() string { return t.Name }

func (t NullableType) TypeName() string { return t.Inner.TypeName() + " | null" }

func (t ArrayType) TypeName() string { return "Array<" + t.Elem.TypeName() + ">" }

// IsNullable reports whether the outermost layer of t permits null.
func IsNullable(t TargetType) bool {
	_, ok := t.(NullableType)
	return ok
}

// StripNullable removes the outermost NullableType wrapper, if present.
func StripNullable(t TargetType) TargetType {
	if n, ok := t.(NullableType); ok {
		return n.Inner
	}

	return t
}

// storagePrimitives are the storage-level types with no null state. A value of
// one of these kinds can never be wrapped in NullableType; absence is instead
// detected by an explicit null check on the boxed value at the accessor level.
var storagePrimitives = map[string]struct{}{
	"boolean": {},
	"u8":      {},
	"i8":      {},
	"u16":     {},
	"i16":     {},
	"u32":     {},
	"i32":     {},
	"u64":     {},
	"i64":     {},
	"f32":     {},
	"f64":     {},
	"usize":   {},
	"isize":   {},
}

// IsPrimitive reports whether name is a storage primitive.
func IsPrimitive(name string) bool {
	_, ok := storagePrimitives[name]
	return ok
}
