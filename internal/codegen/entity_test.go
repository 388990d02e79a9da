package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitygen/internal/model"
	"entitygen/internal/schema"
)

const tokenSchema = `
# A minted token and its current owner.
type Token @entity {
  id: ID!
  owner: Bytes
}

type Metadata {
  uri: String
}

enum Status {
  ACTIVE
  RETIRED
}
`

func TestEntityClass_Token(t *testing.T) {
	doc, err := schema.ParseString("", tokenSchema)
	require.NoError(t, err)

	cls, diags, err := EntityClass(doc.Objects()[0])
	require.NoError(t, err)
	assert.Empty(t, diags.Warnings)

	assert.Equal(t, "Token", cls.Name)
	assert.Equal(t, BaseClass, cls.Base)

	// Constructor, save, load, then a getter/setter pair per field in order.
	require.Len(t, cls.Methods, 7)
	assert.Equal(t, model.MethodConstructor, cls.Methods[0].Kind)
	assert.Equal(t, model.MethodSave, cls.Methods[1].Kind)
	assert.Equal(t, model.MethodLoad, cls.Methods[2].Kind)
	assert.Equal(t, model.MethodGetter, cls.Methods[3].Kind)
	assert.Equal(t, "id", cls.Methods[3].Name)
	assert.Equal(t, model.MethodSetter, cls.Methods[4].Kind)
	assert.Equal(t, "id", cls.Methods[4].Name)
	assert.Equal(t, model.MethodGetter, cls.Methods[5].Kind)
	assert.Equal(t, "owner", cls.Methods[5].Name)
	assert.Equal(t, model.MethodSetter, cls.Methods[6].Kind)
	assert.Equal(t, "owner", cls.Methods[6].Name)

	// The id accessor pair is non-nullable; owner branches on absence.
	assert.False(t, model.IsNullable(cls.Methods[3].Return))
	assert.True(t, model.IsNullable(cls.Methods[5].Return))
}

func TestEntityClass_Constructor(t *testing.T) {
	m := synthesizeConstructor()

	require.Len(t, m.Params, 1)
	assert.Equal(t, "id", m.Params[0].Name)
	assert.Equal(t, model.NamedType{Name: "string"}, m.Params[0].Type)
	assert.Equal(t, []model.Stmt{
		model.SetField{Name: "id", Value: model.Box{X: model.Ident{Name: "id"}, Tag: "String"}},
	}, m.Body)
}

func TestEntityClass_Save(t *testing.T) {
	m := synthesizeSave("Token")

	require.Len(t, m.Body, 4)
	assert.Equal(t, model.Declare{Name: "id", Value: model.GetField{Name: "id"}}, m.Body[0])

	presence, ok := m.Body[1].(model.Assert)
	require.True(t, ok)
	assert.Contains(t, presence.Message, "without an id")
	assert.Contains(t, presence.Message, "Token")

	kind, ok := m.Body[2].(model.Assert)
	require.True(t, ok)
	assert.Equal(t, model.KindIs{X: model.Ident{Name: "id"}, Kind: "String"}, kind.Cond)
	assert.Contains(t, kind.Message, "non-string id")
	assert.Contains(t, kind.Message, "hex")

	assert.Equal(t, model.StoreSet{
		TypeName: "Token",
		ID:       model.Unbox{X: model.Ident{Name: "id"}, Tag: "String"},
	}, m.Body[3])
}

func TestEntityClass_Load(t *testing.T) {
	m := synthesizeLoad("Token")

	assert.True(t, m.Static)
	assert.Equal(t, model.NullableType{Inner: model.NamedType{Name: "Token"}}, m.Return)
	assert.Equal(t, []model.Stmt{
		model.Return{Value: model.StoreGet{TypeName: "Token", ID: model.Ident{Name: "id"}}},
	}, m.Body)
}

func TestGenerate_FiltersToEntityTypes(t *testing.T) {
	doc, err := schema.ParseString("", `
type A @entity { id: ID! }
type Skipped { id: ID! }
type B @entity(immutable: true) { id: ID! }
interface Named { name: String }
`)
	require.NoError(t, err)

	res, err := Generate(doc)
	require.NoError(t, err)

	require.Len(t, res.Classes, 2)
	assert.Equal(t, "A", res.Classes[0].Name)
	assert.Equal(t, "B", res.Classes[1].Name)
}

func TestGenerate_FailsFastOnConfigurationError(t *testing.T) {
	doc, err := schema.ParseString("", `
type A @entity { id: ID! }
type B @entity { owners: [Bytes]! }
`)
	require.NoError(t, err)

	res, err := Generate(doc)
	require.Error(t, err)
	assert.Nil(t, res, "no partial output on configuration error")
}

func TestImports_Fixed(t *testing.T) {
	assert.Equal(t, []string{"Entity", "Value", "ValueKind", "Store"}, Imports())
}
