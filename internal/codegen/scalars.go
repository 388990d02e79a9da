package codegen

// scalarTypes translates schema scalar names to storage-level type names.
// Boolean and Int translate to value primitives with no null state; the rest
// are reference types that can hold null.
var scalarTypes = map[string]string{
	"ID":         "string",
	"String":     "string",
	"Boolean":    "boolean",
	"Int":        "i32",
	"BigInt":     "BigInt",
	"BigDecimal": "BigDecimal",
	"Bytes":      "Bytes",
}

// storageTypeName translates a schema type name to its storage-level type
// name. Names outside the scalar table are references to other schema types
// (entities, enums) and are stored as their string ids.
func storageTypeName(name string) string {
	if t, ok := scalarTypes[name]; ok {
		return t
	}

	return "string"
}
