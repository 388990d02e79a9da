package codegen

import (
	"entitygen/internal/model"
	"entitygen/internal/schema"
)

// StorageTag encodes a type reference as the tag string that selects
// boxing/unboxing logic for the value store. Non-null wrappers carry no
// storage distinction and are stripped; list nesting is preserved as bracket
// notation (e.g. "[Bytes]").
func StorageTag(t schema.Type) string {
	switch r := t.(type) {
	case schema.NonNullType:
		return StorageTag(r.Type)
	case schema.ListType:
		return "[" + StorageTag(r.Type) + "]"
	case schema.NamedType:
		return r.Name
	default:
		return ""
	}
}

// TargetOf maps a type reference to the accessor's exposed type descriptor.
//
// References are nullable by default; a NonNull wrapper suppresses the
// nullability of the layer directly beneath it, mirroring the left-to-right
// reading of the nesting grammar ("[T!]!" is a non-null list of non-null T).
// Storage primitives are never wrapped in NullableType regardless of the
// declared nullability, since they have no null state; their accessors rely
// on the boxed value's null check instead.
func TargetOf(t schema.Type) model.TargetType {
	return targetOf(t, true)
}

func targetOf(t schema.Type, nullable bool) model.TargetType {
	switch r := t.(type) {
	case schema.NonNullType:
		return targetOf(r.Type, false)

	case schema.ListType:
		var out model.TargetType = model.ArrayType{Elem: targetOf(r.Type, true)}
		if nullable {
			out = model.NullableType{Inner: out}
		}

		return out

	case schema.NamedType:
		name := storageTypeName(r.Name)

		var out model.TargetType = model.NamedType{Name: name}
		if nullable && !model.IsPrimitive(name) {
			out = model.NullableType{Inner: out}
		}

		return out

	default:
		return model.NamedType{Name: ""}
	}
}
