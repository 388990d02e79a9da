// Package schema parses the GraphQL SDL subset that entity code generation
// consumes: object type definitions with directives and typed fields, plus
// interface, enum and scalar definitions (parsed so schemas using them remain
// readable, skipped by the generator).
//
// The grammar lives in participle struct tags. Parsed type references are
// normalized into a closed tagged union (NamedType, NonNullType, ListType)
// matching the nesting grammar T, T!, [T], [T]! recursively, so downstream
// code dispatches with exhaustive type switches instead of inspecting parser
// structs.
package schema
