package model

// MethodKind classifies a synthesized method so renderers can apply
// target-language naming and signature conventions.
type MethodKind int

const (
	MethodUnknown MethodKind = iota
	MethodConstructor
	MethodSave
	MethodLoad
	MethodGetter
	MethodSetter
)

// String returns a human-readable kind name.
func (k MethodKind) String() string {
	switch k {
	case MethodConstructor:
		return "constructor"
	case MethodSave:
		return "save"
	case MethodLoad:
		return "load"
	case MethodGetter:
		return "getter"
	case MethodSetter:
		return "setter"
	default:
		return "unknown"
	}
}

// Class describes one generated wrapper type. Name is the schema type name,
// Base the generic record base it extends, and Methods the ordered method
// sequence: constructor, save, load, then per-field accessors in declared
// field order.
type Class struct {
	Name    string
	Base    string
	Methods []Method
}

// Method describes one generated method.
//
// For accessors, Name is the schema field name; the renderer derives the
// exposed method name from Kind and Name. Static reports that the method does
// not operate on an instance (load is the only static method today).
type Method struct {
	Kind   MethodKind
	Name   string
	Static bool
	Params []Param
	Return TargetType // nil for methods with no return value
	Body   []Stmt
}

// Param is a named, typed method parameter.
type Param struct {
	Name string
	Type TargetType
}
