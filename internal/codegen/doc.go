// Package codegen turns schema entity definitions into class descriptions.
//
// The heart of the package is the type reference mapper: two recursive walks
// over one schema type reference that produce (a) the storage tag selecting
// the boxing logic for the value store, and (b) the accessor's exposed type
// with nullability made structural. Everything else (accessor bodies, the
// identity constructor, save/load) is assembly of the statement model once
// the type decision is made.
//
// The transformation is pure: output depends only on the parsed schema and
// the fixed scalar translation table. The one fatal condition is a non-null
// list type with nullable elements, which the storage representation cannot
// hold; it aborts the whole pass with no partial output.
package codegen
