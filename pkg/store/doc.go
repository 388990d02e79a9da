// Package store is the runtime the generated entity wrappers compile against:
// a boxed value type carrying a runtime kind tag, a generic record made of
// named boxed values, and a key/value store API addressing records by
// (type name, id).
//
// Boxed value accessors trust the generated code: unboxing a value with the
// wrong kind is a logic error in the caller and panics rather than failing
// softly.
package store
