package codegen

import (
	"fmt"

	"entitygen/internal/diagnostic"
	"entitygen/internal/model"
	"entitygen/internal/schema"
)

// BaseClass is the generic record base every generated class extends.
const BaseClass = "Entity"

// reservedNames are field names that collide with built-in methods. The id
// field is deliberately not listed: every entity declares one, and the
// renderer gives built-ins and accessors distinct names, so the id accessor
// pair is well-defined.
var reservedNames = map[string]struct{}{
	"save": {},
	"load": {},
}

func isReservedName(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

// synthesizeConstructor builds the identity-setting constructor: one string
// id parameter, boxed and stored under the record's id field.
func synthesizeConstructor() model.Method {
	return model.Method{
		Kind:   model.MethodConstructor,
		Params: []model.Param{{Name: "id", Type: model.NamedType{Name: "string"}}},
		Body: []model.Stmt{
			model.SetField{
				Name:  "id",
				Value: model.Box{X: model.Ident{Name: "id"}, Tag: "String"},
			},
		},
	}
}

// synthesizeSave builds the persistence write method. It asserts the id field
// is present and string-kinded before writing the whole record under
// (type name, id).
func synthesizeSave(typeName string) model.Method {
	id := model.Ident{Name: "id"}

	return model.Method{
		Kind: model.MethodSave,
		Name: "save",
		Body: []model.Stmt{
			model.Declare{Name: "id", Value: model.GetField{Name: "id"}},
			model.Assert{
				Cond:    model.Not{X: model.IsNull{X: id}},
				Message: fmt.Sprintf("cannot save %s entity without an id", typeName),
			},
			model.Assert{
				Cond: model.KindIs{X: id, Kind: "String"},
				Message: fmt.Sprintf(
					"cannot save %s entity with a non-string id; use a hex encoding to turn the id into a string",
					typeName),
			},
			model.StoreSet{
				TypeName: typeName,
				ID:       model.Unbox{X: id, Tag: "String"},
			},
		},
	}
}

// synthesizeLoad builds the static persistence read method: given an id, it
// yields the reconstructed record or a null result on miss, never an error.
func synthesizeLoad(typeName string) model.Method {
	return model.Method{
		Kind:   model.MethodLoad,
		Name:   "load",
		Static: true,
		Params: []model.Param{{Name: "id", Type: model.NamedType{Name: "string"}}},
		Return: model.NullableType{Inner: model.NamedType{Name: typeName}},
		Body: []model.Stmt{
			model.Return{Value: model.StoreGet{
				TypeName: typeName,
				ID:       model.Ident{Name: "id"},
			}},
		},
	}
}

// EntityClass assembles the class description for one entity type definition:
// constructor, save, load, then a getter/setter pair per declared field in
// declaration order.
func EntityClass(obj *schema.ObjectTypeDefinition) (model.Class, diagnostic.Diagnostics, error) {
	cls := model.Class{
		Name: obj.Name,
		Base: BaseClass,
		Methods: []model.Method{
			synthesizeConstructor(),
			synthesizeSave(obj.Name),
			synthesizeLoad(obj.Name),
		},
	}

	var diags diagnostic.Diagnostics

	for _, field := range obj.Fields {
		getter, setter, fieldDiags, err := synthesizeAccessors(obj.Name, field)
		if err != nil {
			return model.Class{}, diags, err
		}

		diags.Merge(fieldDiags)
		cls.Methods = append(cls.Methods, getter, setter)
	}

	return cls, diags, nil
}
