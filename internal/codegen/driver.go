package codegen

import (
	"entitygen/internal/diagnostic"
	"entitygen/internal/model"
	"entitygen/internal/schema"
)

// EntityDirective is the marker that opts a schema type into code generation
// and persistence.
const EntityDirective = "entity"

// Result is the output of one generation pass: class descriptions in schema
// declaration order, plus any non-fatal findings.
type Result struct {
	Classes []model.Class
	Diags   diagnostic.Diagnostics
}

// Imports returns the runtime symbols every generated file depends on. The
// list is fixed; the renderer resolves it against the configured store
// package.
func Imports() []string {
	return []string{"Entity", "Value", "ValueKind", "Store"}
}

// Generate maps every object type definition carrying the entity marker to a
// class description. Definitions without the marker are skipped silently;
// relative declaration order among the kept ones is preserved. The first
// configuration error aborts the pass with no partial output.
func Generate(doc *schema.Document) (*Result, error) {
	res := &Result{}

	for _, obj := range doc.Objects() {
		if !obj.HasDirective(EntityDirective) {
			continue
		}

		cls, diags, err := EntityClass(obj)
		if err != nil {
			return nil, err
		}

		res.Diags.Merge(diags)
		res.Classes = append(res.Classes, cls)
	}

	return res, nil
}
