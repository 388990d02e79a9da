package model

// Stmt is a statement in a synthesized method body. The union is closed.
type Stmt interface{ isStmt() }

// Expr is an expression in a synthesized method body. The union is closed.
type Expr interface{ isExpr() }

// Statements.

// Declare introduces a local binding.
type Declare struct {
	Name  string
	Value Expr
}

// If branches on a condition. Else may be empty.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// Return exits the method, optionally with a value. A nil Value is a bare
// return.
type Return struct {
	Value Expr
}

// Assert fails the running operation with Message unless Cond holds.
type Assert struct {
	Cond    Expr
	Message string
}

// SetField stores a boxed value under the named field of the receiver record.
type SetField struct {
	Name  string
	Value Expr
}

// UnsetField removes the named field from the receiver record.
type UnsetField struct {
	Name string
}

// StoreSet writes the whole receiver record into the store under
// (TypeName, ID).
type StoreSet struct {
	TypeName string
	ID       Expr
}

func (Declare) isStmt()    {}
func (If) isStmt()         {}
func (Return) isStmt()     {}
func (Assert) isStmt()     {}
func (SetField) isStmt()   {}
func (UnsetField) isStmt() {}
func (StoreSet) isStmt()   {}

// Expressions.

// Self refers to the receiver record.
type Self struct{}

// Ident refers to a parameter or local binding by name.
type Ident struct {
	Name string
}

// StringLit is a literal string value.
type StringLit struct {
	Value string
}

// NullLit is the null result.
type NullLit struct{}

// GetField reads the boxed value stored under the named field of the
// receiver record. The result may be a null box when the field is absent.
type GetField struct {
	Name string
}

// Box wraps a concrete value into a boxed value, selecting the boxing logic
// by storage tag (e.g. "String", "Bytes", "[BigInt]").
type Box struct {
	X   Expr
	Tag string
}

// Unbox extracts the concrete value from a boxed value, selecting the
// unboxing logic by storage tag.
type Unbox struct {
	X   Expr
	Tag string
}

// NonNull asserts that X, whose exposed type is nullable, holds a present
// value, and yields that value with the non-null inner type.
type NonNull struct {
	X Expr
}

// IsNull tests whether X is absent or holds a null box.
type IsNull struct {
	X Expr
}

// Not negates a boolean condition.
type Not struct {
	X Expr
}

// KindIs tests whether the boxed value X carries the given storage kind
// (e.g. "String").
type KindIs struct {
	X    Expr
	Kind string
}

// StoreGet reads the record stored under (TypeName, ID) from the store,
// yielding a null result on miss.
type StoreGet struct {
	TypeName string
	ID       Expr
}

func (Self) isExpr()      {}
func (Ident) isExpr()     {}
func (StringLit) isExpr() {}
func (NullLit) isExpr()   {}
func (GetField) isExpr()  {}
func (Box) isExpr()       {}
func (Unbox) isExpr()     {}
func (NonNull) isExpr()   {}
func (IsNull) isExpr()    {}
func (Not) isExpr()       {}
func (KindIs) isExpr()    {}
func (StoreGet) isExpr()  {}
