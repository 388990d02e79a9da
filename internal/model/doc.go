// Package model defines the language-independent output of entity code
// generation: class descriptions with typed methods, and a small
// statement/expression model for method bodies.
//
// The model deliberately knows nothing about Go syntax (or any other target
// syntax). Bodies are built from abstract operations over the boxed-value
// record (field get/set, box/unbox by storage tag, null checks, store
// reads and writes) and a separate renderer serializes them to source text.
// This keeps the core synthesis logic independently testable by comparing
// structured output rather than strings.
package model
