// Package render serializes class descriptions into formatted Go source.
//
// This is the one place that knows Go syntax: it maps target type descriptors
// to Go types, derives method names and signatures from method kinds, walks
// the statement model into Go statements, and runs everything through
// go/format before returning it. Generation is deterministic: one file per
// class, sorted imports, stable naming.
package render
