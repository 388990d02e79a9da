package render

import (
	"path"
	"strings"

	"entitygen/internal/model"
)

// goPrimitives maps storage-level primitive names to Go types.
var goPrimitives = map[string]string{
	"boolean": "bool",
	"u8":      "uint8",
	"i8":      "int8",
	"u16":     "uint16",
	"i16":     "int16",
	"u32":     "uint32",
	"i32":     "int32",
	"u64":     "uint64",
	"i64":     "int64",
	"f32":     "float32",
	"f64":     "float64",
	"usize":   "uint",
	"isize":   "int",
}

// unboxBase maps a scalar storage tag to the Value accessor method base name.
var unboxBase = map[string]string{
	"ID":         "Str",
	"String":     "Str",
	"Int":        "Int",
	"Boolean":    "Bool",
	"Bytes":      "Bytes",
	"BigInt":     "BigInt",
	"BigDecimal": "BigDecimal",
}

// boxBase maps a scalar storage tag to the From* constructor base name.
var boxBase = map[string]string{
	"ID":         "String",
	"String":     "String",
	"Int":        "Int",
	"Boolean":    "Bool",
	"Bytes":      "Bytes",
	"BigInt":     "BigInt",
	"BigDecimal": "BigDecimal",
}

// fileRenderer holds per-file rendering state.
type fileRenderer struct {
	opts      Options
	storePkg  string              // package qualifier of the store import
	imports   map[string]struct{} // import paths collected while rendering
	className string
}

func newFileRenderer(opts Options, className string) *fileRenderer {
	f := &fileRenderer{
		opts:      opts,
		storePkg:  path.Base(opts.StoreImport),
		imports:   make(map[string]struct{}),
		className: className,
	}
	// Every generated file embeds the record base and boxes values.
	f.imports[opts.StoreImport] = struct{}{}

	return f
}

// goType maps a target type descriptor to its Go spelling.
//
// Nullability maps to nil-ability: types that are already nil-able (slices,
// pointers) express null as nil; value types gain a pointer wrapper. Lists
// render as typed slices one level deep, matching the typed slice accessors
// of the value store; deeper nesting falls back to the generic boxed slice.
func (f *fileRenderer) goType(t model.TargetType) string {
	switch r := t.(type) {
	case model.NamedType:
		return f.goNamed(r.Name)

	case model.NullableType:
		inner := f.goType(r.Inner)
		if nilable(inner) {
			return inner
		}

		return "*" + inner

	case model.ArrayType:
		elem := model.StripNullable(r.Elem)
		if _, nested := elem.(model.ArrayType); nested {
			return "[]*" + f.storePkg + ".Value"
		}

		return "[]" + f.goType(elem)

	default:
		return "any"
	}
}

func (f *fileRenderer) goNamed(name string) string {
	if g, ok := goPrimitives[name]; ok {
		return g
	}

	switch name {
	case "string":
		return "string"
	case "Bytes":
		return "[]byte"
	case "BigInt":
		f.imports["math/big"] = struct{}{}
		return "*big.Int"
	case "BigDecimal":
		f.imports["math/big"] = struct{}{}
		return "*big.Float"
	default:
		// A generated class name (load's return type).
		return "*" + name
	}
}

func nilable(goType string) bool {
	return strings.HasPrefix(goType, "*") ||
		strings.HasPrefix(goType, "[") ||
		strings.HasPrefix(goType, "map[")
}

// addrNeeded reports whether a nullable target renders as a pointer wrapper
// around a Go value type, requiring an address-of when produced from an
// unboxed value.
func (f *fileRenderer) addrNeeded(t model.TargetType) bool {
	n, ok := t.(model.NullableType)
	if !ok {
		return false
	}

	return !nilable(f.goType(n.Inner))
}

// unboxMethod selects the Value accessor for a storage tag.
func unboxMethod(tag string) string {
	if inner, ok := listElem(tag); ok {
		if _, nested := listElem(inner); nested {
			return "List"
		}

		return scalarUnbox(inner) + "Slice"
	}

	return scalarUnbox(tag)
}

// boxFunc selects the From* constructor for a storage tag.
func boxFunc(tag string) string {
	if inner, ok := listElem(tag); ok {
		if _, nested := listElem(inner); nested {
			return "FromList"
		}

		return "From" + scalarBox(inner) + "Slice"
	}

	return "From" + scalarBox(tag)
}

func scalarUnbox(tag string) string {
	if m, ok := unboxBase[tag]; ok {
		return m
	}
	// References to other schema types are stored as string ids.
	return "Str"
}

func scalarBox(tag string) string {
	if m, ok := boxBase[tag]; ok {
		return m
	}

	return "String"
}

func listElem(tag string) (string, bool) {
	if strings.HasPrefix(tag, "[") && strings.HasSuffix(tag, "]") {
		return tag[1 : len(tag)-1], true
	}

	return "", false
}
