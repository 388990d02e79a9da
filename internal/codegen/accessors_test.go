package codegen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitygen/internal/model"
	"entitygen/internal/schema"
)

// parseField parses a single field declaration inside a throwaway entity type.
func parseField(t *testing.T, decl string) *schema.FieldDefinition {
	t.Helper()

	doc, err := schema.ParseString("", fmt.Sprintf("type T @entity { %s }", decl))
	require.NoError(t, err)
	require.Len(t, doc.Objects(), 1)
	require.Len(t, doc.Objects()[0].Fields, 1)

	return doc.Objects()[0].Fields[0]
}

func TestSynthesizeAccessors_NullableField(t *testing.T) {
	field := parseField(t, "owner: Bytes")

	getter, setter, diags, err := synthesizeAccessors("T", field)
	require.NoError(t, err)
	assert.Empty(t, diags.Warnings)

	// Getter: read, branch on absence, null result or unbox.
	assert.Equal(t, model.MethodGetter, getter.Kind)
	assert.Equal(t, "owner", getter.Name)
	assert.True(t, model.IsNullable(getter.Return))
	require.Len(t, getter.Body, 2)
	assert.Equal(t, model.Declare{Name: "value", Value: model.GetField{Name: "owner"}}, getter.Body[0])

	branch, ok := getter.Body[1].(model.If)
	require.True(t, ok, "nullable getter must branch on absence")
	assert.Equal(t, model.IsNull{X: model.Ident{Name: "value"}}, branch.Cond)
	assert.Equal(t, []model.Stmt{model.Return{Value: model.NullLit{}}}, branch.Then)
	assert.Equal(t, []model.Stmt{
		model.Return{Value: model.Unbox{X: model.Ident{Name: "value"}, Tag: "Bytes"}},
	}, branch.Else)

	// Setter: null clears, present value is cast and boxed.
	assert.Equal(t, model.MethodSetter, setter.Kind)
	require.Len(t, setter.Params, 1)
	assert.True(t, model.IsNullable(setter.Params[0].Type))
	require.Len(t, setter.Body, 1)

	branch, ok = setter.Body[0].(model.If)
	require.True(t, ok)
	assert.Equal(t, []model.Stmt{model.UnsetField{Name: "owner"}}, branch.Then)
	assert.Equal(t, []model.Stmt{model.SetField{
		Name:  "owner",
		Value: model.Box{X: model.NonNull{X: model.Ident{Name: "value"}}, Tag: "Bytes"},
	}}, branch.Else)
}

func TestSynthesizeAccessors_NonNullField(t *testing.T) {
	field := parseField(t, "name: String!")

	getter, setter, diags, err := synthesizeAccessors("T", field)
	require.NoError(t, err)
	assert.Empty(t, diags.Warnings)

	// Getter unboxes unconditionally, no null branch.
	require.Len(t, getter.Body, 2)
	assert.Equal(t, model.Return{
		Value: model.Unbox{X: model.Ident{Name: "value"}, Tag: "String"},
	}, getter.Body[1])

	// Setter boxes and stores unconditionally.
	require.Len(t, setter.Body, 1)
	assert.Equal(t, model.SetField{
		Name:  "name",
		Value: model.Box{X: model.Ident{Name: "value"}, Tag: "String"},
	}, setter.Body[0])
}

func TestSynthesizeAccessors_NonNullListOfNullableElements(t *testing.T) {
	field := parseField(t, "owners: [Bytes]!")

	_, _, _, err := synthesizeAccessors("T", field)
	require.Error(t, err)

	var listErr *UnsupportedListError
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, "owners", listErr.Field)
	assert.Equal(t, "[Bytes]!", listErr.Declared)
	assert.Equal(t, "[Bytes!]!", listErr.Suggested)
	assert.Contains(t, err.Error(), "owners")
	assert.Contains(t, err.Error(), "[Bytes!]!")
}

func TestSynthesizeAccessors_NonNullListOfNonNullElements(t *testing.T) {
	field := parseField(t, "owners: [Bytes!]!")

	getter, _, diags, err := synthesizeAccessors("T", field)
	require.NoError(t, err)
	assert.Empty(t, diags.Warnings)
	assert.Equal(t, model.ArrayType{Elem: model.NamedType{Name: "Bytes"}}, getter.Return)
}

func TestSynthesizeAccessors_NullableListOfNullableElements(t *testing.T) {
	// A nullable outer list bypasses the nesting check; it is flagged as a
	// warning instead.
	field := parseField(t, "owners: [Bytes]")

	_, _, diags, err := synthesizeAccessors("T", field)
	require.NoError(t, err)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "nullable_list_elements", diags.Warnings[0].Code)
	assert.Equal(t, "owners", diags.Warnings[0].Field)
}

func TestSynthesizeAccessors_ReservedFieldName(t *testing.T) {
	field := parseField(t, "save: String")

	_, _, diags, err := synthesizeAccessors("T", field)
	require.NoError(t, err)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "reserved_field_name", diags.Warnings[0].Code)
}

func TestForceNonNullElem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[Bytes]!", "[Bytes!]!"},
		{"[Bytes]", "[Bytes!]"},
		{"[Bytes!]!", "[Bytes!]!"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			field := parseField(t, "f: "+tt.in)
			assert.Equal(t, tt.want, forceNonNullElem(field.Type()).String())
		})
	}
}
