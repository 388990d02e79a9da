package render

import (
	"fmt"
	"strconv"
	"strings"

	"entitygen/internal/model"
)

// receiver is the receiver name used by all generated methods.
const receiver = "e"

// storeParam is the store parameter name of save/load.
const storeParam = "s"

// bodyWriter serializes one method body from the statement model into Go
// statement lines.
type bodyWriter struct {
	f      *fileRenderer
	method *model.Method
	lines  []string
	indent int
	// boxed tracks locals bound to boxed values, so null checks render as
	// IsNull() calls instead of nil comparisons.
	boxed map[string]bool
}

func (f *fileRenderer) methodBody(m *model.Method) []string {
	w := &bodyWriter{f: f, method: m, boxed: make(map[string]bool)}

	switch m.Kind {
	case model.MethodConstructor:
		w.line("%s := &%s{}", receiver, f.className)
		w.stmts(m.Body)
		w.line("return %s", receiver)

	default:
		w.stmts(m.Body)
	}

	return w.lines
}

func endsInReturn(stmts []model.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}

	_, ok := stmts[len(stmts)-1].(model.Return)

	return ok
}

func (w *bodyWriter) line(format string, args ...any) {
	w.lines = append(w.lines, strings.Repeat("\t", w.indent)+fmt.Sprintf(format, args...))
}

func (w *bodyWriter) stmts(stmts []model.Stmt) {
	for _, s := range stmts {
		w.stmt(s)
	}
}

func (w *bodyWriter) stmt(s model.Stmt) {
	switch st := s.(type) {
	case model.Declare:
		if _, fromField := st.Value.(model.GetField); fromField {
			w.boxed[st.Name] = true
		}

		w.line("%s := %s", st.Name, w.expr(st.Value))

	case model.If:
		w.line("if %s {", w.cond(st.Cond))
		w.indent++
		w.stmts(st.Then)
		w.indent--

		// When the then-branch returns, the else-branch flattens into
		// early-return style.
		if len(st.Else) > 0 && !endsInReturn(st.Then) {
			w.line("} else {")
			w.indent++
			w.stmts(st.Else)
			w.indent--
			w.line("}")
		} else {
			w.line("}")
			w.stmts(st.Else)
		}

	case model.Return:
		w.returnStmt(st)

	case model.Assert:
		w.f.imports["errors"] = struct{}{}
		w.line("if %s {", w.negate(st.Cond))
		w.indent++
		w.line("return errors.New(%s)", strconv.Quote(st.Message))
		w.indent--
		w.line("}")

	case model.SetField:
		w.line("%s.Set(%q, %s)", receiver, st.Name, w.expr(st.Value))

	case model.UnsetField:
		w.line("%s.Unset(%q)", receiver, st.Name)

	case model.StoreSet:
		w.line("return %s.Set(%q, %s, &%s.Entity)",
			storeParam, st.TypeName, w.expr(st.ID), receiver)
	}
}

func (w *bodyWriter) returnStmt(st model.Return) {
	switch v := st.Value.(type) {
	case nil:
		w.line("return")

	case model.NullLit:
		w.line("return nil")

	case model.StoreGet:
		// Load shape: a store miss is a nil record, not an error.
		w.line("rec, err := %s.Get(%q, %s)", storeParam, v.TypeName, w.expr(v.ID))
		w.line("if err != nil {")
		w.indent++
		w.line("return nil, err")
		w.indent--
		w.line("}")
		w.line("if rec == nil {")
		w.indent++
		w.line("return nil, nil")
		w.indent--
		w.line("}")
		w.line("return &%s{Entity: *rec}, nil", v.TypeName)

	case model.Unbox:
		expr := w.expr(v)
		if w.method.Return != nil && w.f.addrNeeded(w.method.Return) {
			w.line("v := %s", expr)
			w.line("return &v")

			return
		}

		w.line("return %s", expr)

	default:
		w.line("return %s", w.expr(v))
	}
}

// cond renders a boolean expression for an if condition.
func (w *bodyWriter) cond(e model.Expr) string {
	switch c := e.(type) {
	case model.IsNull:
		return w.nullCheck(c.X, true)
	case model.Not:
		return w.negate(c.X)
	case model.KindIs:
		return fmt.Sprintf("%s.Kind() == %s.Kind%s", w.expr(c.X), w.f.storePkg, c.Kind)
	default:
		return w.expr(e)
	}
}

// negate renders the logical negation of a boolean expression.
func (w *bodyWriter) negate(e model.Expr) string {
	switch c := e.(type) {
	case model.Not:
		return w.cond(c.X)
	case model.IsNull:
		return w.nullCheck(c.X, false)
	case model.KindIs:
		return fmt.Sprintf("%s.Kind() != %s.Kind%s", w.expr(c.X), w.f.storePkg, c.Kind)
	default:
		return "!(" + w.cond(e) + ")"
	}
}

// nullCheck renders a presence test for x. Boxed values answer IsNull();
// plain Go values compare against nil.
func (w *bodyWriter) nullCheck(x model.Expr, isNull bool) string {
	expr := w.expr(x)

	if id, ok := x.(model.Ident); ok && !w.boxed[id.Name] {
		if isNull {
			return expr + " == nil"
		}

		return expr + " != nil"
	}

	if isNull {
		return expr + ".IsNull()"
	}

	return "!" + expr + ".IsNull()"
}

func (w *bodyWriter) expr(e model.Expr) string {
	switch x := e.(type) {
	case model.Self:
		return receiver

	case model.Ident:
		return x.Name

	case model.StringLit:
		return strconv.Quote(x.Value)

	case model.NullLit:
		return "nil"

	case model.GetField:
		return fmt.Sprintf("%s.Get(%q)", receiver, x.Name)

	case model.Unbox:
		return w.expr(x.X) + "." + unboxMethod(x.Tag) + "()"

	case model.Box:
		return fmt.Sprintf("%s.%s(%s)", w.f.storePkg, boxFunc(x.Tag), w.expr(x.X))

	case model.NonNull:
		return w.nonNull(x)

	case model.IsNull:
		return w.nullCheck(x.X, true)

	case model.Not:
		return w.negate(x.X)

	case model.KindIs:
		return fmt.Sprintf("%s.Kind() == %s.Kind%s", w.expr(x.X), w.f.storePkg, x.Kind)

	default:
		return ""
	}
}

// nonNull renders the cast of a nullable value to its non-null inner type.
// Pointer-wrapped value types dereference; already-nilable types pass
// through unchanged.
func (w *bodyWriter) nonNull(x model.NonNull) string {
	expr := w.expr(x.X)

	if id, ok := x.X.(model.Ident); ok {
		if t := w.paramType(id.Name); t != nil && w.f.addrNeeded(t) {
			return "*" + expr
		}
	}

	return expr
}

func (w *bodyWriter) paramType(name string) model.TargetType {
	for _, p := range w.method.Params {
		if p.Name == name {
			return p.Type
		}
	}

	return nil
}
