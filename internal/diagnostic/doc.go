// Package diagnostic carries non-fatal findings from entity code generation.
//
// The one fatal condition (an unsupported list nesting) aborts generation
// through an ordinary error return. Everything else that deserves the schema
// author's attention, like field names shadowing built-in methods, is
// collected here and surfaced by the CLI without failing the run.
package diagnostic
