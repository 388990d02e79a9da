package codegen

import (
	"fmt"

	"entitygen/internal/diagnostic"
	"entitygen/internal/model"
	"entitygen/internal/schema"
)

// UnsupportedListError reports a declared list type whose elements permit
// null, which the storage representation cannot hold. It carries the declared
// type spelling and the corrected spelling with the element forced non-null,
// so the schema author can fix the declaration directly.
type UnsupportedListError struct {
	Field     string
	Declared  string
	Suggested string
}

func (e *UnsupportedListError) Error() string {
	return fmt.Sprintf(
		"field %q: list type %s permits null elements, which the value store cannot represent; "+
			"declare the element type non-null (change %s to %s)",
		e.Field, e.Declared, e.Declared, e.Suggested)
}

// synthesizeAccessors produces the getter/setter pair for one field, plus any
// non-fatal findings. The returned error is the unsupported-list configuration
// error and aborts the whole pass.
func synthesizeAccessors(
	entity string,
	field *schema.FieldDefinition,
) (getter, setter model.Method, diags diagnostic.Diagnostics, err error) {
	ref := field.Type()
	tag := StorageTag(ref)
	target := TargetOf(ref)

	if err = checkListNesting(field.Name, ref, target); err != nil {
		return getter, setter, diags, err
	}

	// A nullable outer list with nullable elements passes the check above;
	// whether the store supports null elements there is undefined, so flag it.
	if outer, ok := target.(model.NullableType); ok {
		if arr, ok := outer.Inner.(model.ArrayType); ok && model.IsNullable(arr.Elem) {
			diags.AddWarning("nullable_list_elements",
				fmt.Sprintf("list type %s permits null elements; store support for null list elements is undefined, "+
					"consider declaring the element type non-null", ref.String()),
				entity, field.Name)
		}
	}

	if isReservedName(field.Name) {
		diags.AddWarning("reserved_field_name",
			fmt.Sprintf("field name %q shadows the built-in %s method", field.Name, field.Name),
			entity, field.Name)
	}

	getter = synthesizeGetter(field.Name, tag, target)
	setter = synthesizeSetter(field.Name, tag, target)

	return getter, setter, diags, nil
}

// checkListNesting rejects a non-null list whose element descriptor is
// nullable. The check applies only when the outer list itself is non-null:
// a nullable outer list never maps to a bare ArrayType descriptor, so it
// bypasses the assertion.
func checkListNesting(fieldName string, ref schema.Type, target model.TargetType) error {
	arr, ok := target.(model.ArrayType)
	if !ok || !model.IsNullable(arr.Elem) {
		return nil
	}

	return &UnsupportedListError{
		Field:     fieldName,
		Declared:  ref.String(),
		Suggested: forceNonNullElem(ref).String(),
	}
}

// forceNonNullElem rewrites the innermost list element of ref to be non-null.
func forceNonNullElem(ref schema.Type) schema.Type {
	switch r := ref.(type) {
	case schema.NonNullType:
		return schema.NonNullType{Type: forceNonNullElem(r.Type)}
	case schema.ListType:
		elem := r.Type
		if _, ok := elem.(schema.NonNullType); !ok {
			elem = schema.NonNullType{Type: elem}
		}

		return schema.ListType{Type: elem}
	default:
		return ref
	}
}

// synthesizeGetter builds the field read accessor.
//
// Nullable fields branch on the boxed value's absence and return a null
// result; non-nullable fields unbox unconditionally, trusting the store once
// the setter has validated writes.
func synthesizeGetter(name, tag string, target model.TargetType) model.Method {
	value := model.Ident{Name: "value"}

	body := []model.Stmt{
		model.Declare{Name: "value", Value: model.GetField{Name: name}},
	}

	if model.IsNullable(target) {
		body = append(body, model.If{
			Cond: model.IsNull{X: value},
			Then: []model.Stmt{model.Return{Value: model.NullLit{}}},
			Else: []model.Stmt{model.Return{Value: model.Unbox{X: value, Tag: tag}}},
		})
	} else {
		body = append(body, model.Return{Value: model.Unbox{X: value, Tag: tag}})
	}

	return model.Method{
		Kind:   model.MethodGetter,
		Name:   name,
		Return: target,
		Body:   body,
	}
}

// synthesizeSetter builds the field write accessor.
//
// For nullable fields a null input clears the field; a present value is cast
// to the non-null inner type before boxing. Non-nullable fields box and store
// unconditionally.
func synthesizeSetter(name, tag string, target model.TargetType) model.Method {
	value := model.Ident{Name: "value"}

	var body []model.Stmt

	if model.IsNullable(target) {
		body = []model.Stmt{model.If{
			Cond: model.IsNull{X: value},
			Then: []model.Stmt{model.UnsetField{Name: name}},
			Else: []model.Stmt{model.SetField{
				Name:  name,
				Value: model.Box{X: model.NonNull{X: value}, Tag: tag},
			}},
		}}
	} else {
		body = []model.Stmt{model.SetField{
			Name:  name,
			Value: model.Box{X: value, Tag: tag},
		}}
	}

	return model.Method{
		Kind:   model.MethodSetter,
		Name:   name,
		Params: []model.Param{{Name: "value", Type: target}},
		Body:   body,
	}
}
