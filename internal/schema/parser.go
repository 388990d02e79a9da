package schema

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Document is the root of a parsed schema file.
type Document struct {
	Definitions []*Definition `parser:"@@*"`
}

// Definition is one top-level schema definition.
type Definition struct {
	Object    *ObjectTypeDefinition    `parser:"@@"`
	Interface *InterfaceTypeDefinition `parser:"| @@"`
	Enum      *EnumTypeDefinition      `parser:"| @@"`
	Scalar    *ScalarTypeDefinition    `parser:"| @@"`
}

// ObjectTypeDefinition is an SDL "type" definition.
type ObjectTypeDefinition struct {
	Pos        lexer.Position
	Name       string             `parser:"'type' @Ident"`
	Directives []*Directive       `parser:"@@*"`
	Fields     []*FieldDefinition `parser:"'{' @@* '}'"`
}

// InterfaceTypeDefinition is an SDL "interface" definition.
type InterfaceTypeDefinition struct {
	Pos        lexer.Position
	Name       string             `parser:"'interface' @Ident"`
	Directives []*Directive       `parser:"@@*"`
	Fields     []*FieldDefinition `parser:"'{' @@* '}'"`
}

// EnumTypeDefinition is an SDL "enum" definition.
type EnumTypeDefinition struct {
	Pos        lexer.Position
	Name       string       `parser:"'enum' @Ident"`
	Directives []*Directive `parser:"@@*"`
	Values     []string     `parser:"'{' @Ident* '}'"`
}

// ScalarTypeDefinition is an SDL "scalar" definition.
type ScalarTypeDefinition struct {
	Pos        lexer.Position
	Name       string       `parser:"'scalar' @Ident"`
	Directives []*Directive `parser:"@@*"`
}

// Directive is an "@name" annotation, optionally with arguments.
type Directive struct {
	Name string          `parser:"'@' @Ident"`
	Args []*DirectiveArg `parser:"('(' @@* ')')?"`
}

// DirectiveArg is one "name: value" directive argument. Values are kept as
// raw token text; the generator has no use for them beyond display.
type DirectiveArg struct {
	Name  string `parser:"@Ident ':'"`
	Value string `parser:"@(String | Ident | Number)"`
}

// FieldDefinition is one field of an object or interface definition.
type FieldDefinition struct {
	Pos        lexer.Position
	Name       string       `parser:"@Ident ':'"`
	TypeRef    *typeRef     `parser:"@@"`
	Directives []*Directive `parser:"@@*"`
}

// Type returns the field's type reference as the normalized tagged union.
func (f *FieldDefinition) Type() Type {
	return f.TypeRef.normalize()
}

// typeRef is the raw parsed spelling of a type reference. The "!" suffix is
// parsed as a flag here and normalized into a NonNullType wrapper.
type typeRef struct {
	List    *typeRef `parser:"( '[' @@ ']'"`
	Named   string   `parser:"| @Ident )"`
	NonNull bool     `parser:"@'!'?"`
}

func (r *typeRef) normalize() Type {
	var t Type
	if r.List != nil {
		t = ListType{Type: r.List.normalize()}
	} else {
		t = NamedType{Name: r.Named}
	}

	if r.NonNull {
		t = NonNullType{Type: t}
	}

	return t
}

var sdlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[-+]?(\d*\.)?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[@!(){}\[\]:=]`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
})

// Commas count as whitespace in GraphQL, so they are elided with it.
var parser = participle.MustBuild[Document](
	participle.Lexer(sdlLexer),
	participle.Elide("Whitespace", "Comment", "Comma"),
)

// ParseString parses SDL source text. The filename is used in error positions
// only and may be empty.
func ParseString(filename, src string) (*Document, error) {
	doc, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	return doc, nil
}

// ParseFile reads and parses an SDL schema file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file %s: %w", path, err)
	}

	return ParseString(path, string(data))
}
