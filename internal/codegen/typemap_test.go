package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"entitygen/internal/model"
	"entitygen/internal/schema"
)

func named(name string) schema.Type { return schema.NamedType{Name: name} }

func nonNull(t schema.Type) schema.Type { return schema.NonNullType{Type: t} }

func list(t schema.Type) schema.Type { return schema.ListType{Type: t} }

func TestStorageTag(t *testing.T) {
	tests := []struct {
		name string
		ref  schema.Type
		want string
	}{
		{"named", named("Bytes"), "Bytes"},
		{"non-null stripped", nonNull(named("Bytes")), "Bytes"},
		{"list", list(named("Bytes")), "[Bytes]"},
		{"non-null list of non-null", nonNull(list(nonNull(named("Bytes")))), "[Bytes]"},
		{"nested lists", list(list(named("String"))), "[[String]]"},
		{"entity reference kept verbatim", named("Token"), "Token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StorageTag(tt.ref))
		})
	}
}

func TestStorageTag_NonNullIsTransparent(t *testing.T) {
	refs := []schema.Type{
		named("String"),
		list(named("Int")),
		nonNull(list(named("BigInt"))),
	}

	for _, ref := range refs {
		assert.Equal(t, StorageTag(ref), StorageTag(nonNull(ref)))
	}
}

func TestTargetOf(t *testing.T) {
	tests := []struct {
		name string
		ref  schema.Type
		want model.TargetType
	}{
		{
			"nullable string",
			named("String"),
			model.NullableType{Inner: model.NamedType{Name: "string"}},
		},
		{
			"non-null string",
			nonNull(named("String")),
			model.NamedType{Name: "string"},
		},
		{
			"nullable boolean is never wrapped",
			named("Boolean"),
			model.NamedType{Name: "boolean"},
		},
		{
			"nullable int is never wrapped",
			named("Int"),
			model.NamedType{Name: "i32"},
		},
		{
			"id translates to string",
			nonNull(named("ID")),
			model.NamedType{Name: "string"},
		},
		{
			"entity reference stored as string id",
			named("Token"),
			model.NullableType{Inner: model.NamedType{Name: "string"}},
		},
		{
			"nullable list of nullable bytes",
			list(named("Bytes")),
			model.NullableType{Inner: model.ArrayType{
				Elem: model.NullableType{Inner: model.NamedType{Name: "Bytes"}},
			}},
		},
		{
			"non-null list of non-null bytes",
			nonNull(list(nonNull(named("Bytes")))),
			model.ArrayType{Elem: model.NamedType{Name: "Bytes"}},
		},
		{
			"non-null list of nullable bytes",
			nonNull(list(named("Bytes"))),
			model.ArrayType{Elem: model.NullableType{Inner: model.NamedType{Name: "Bytes"}}},
		},
		{
			"big numbers are nullable references",
			named("BigInt"),
			model.NullableType{Inner: model.NamedType{Name: "BigInt"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetOf(tt.ref))
		})
	}
}

func TestTargetOf_Deterministic(t *testing.T) {
	ref := nonNull(list(nonNull(named("BigDecimal"))))

	first := TargetOf(ref)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, TargetOf(ref))
	}
}

func TestTargetOf_PrimitiveNeverNullableUnderNonNull(t *testing.T) {
	for _, name := range []string{"Boolean", "Int"} {
		target := TargetOf(nonNull(named(name)))
		assert.False(t, model.IsNullable(target), "primitive %s must not be nullable", name)

		target = TargetOf(named(name))
		assert.False(t, model.IsNullable(target), "primitive %s must not be nullable", name)
	}
}
