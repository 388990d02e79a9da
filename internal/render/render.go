package render

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"entitygen/internal/model"
)

// Options holds configuration for code rendering.
type Options struct {
	// PackageName is the name of the generated package.
	PackageName string
	// StoreImport is the import path of the boxed-value store runtime.
	StoreImport string
	// OutputDir is where generated files will be written. Rendering itself
	// does not write, but on a formatting failure an unformatted sidecar is
	// dropped here to aid debugging.
	OutputDir string
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		PackageName: "model",
		StoreImport: "entitygen/pkg/store",
		OutputDir:   "./generated",
	}
}

// Renderer renders class descriptions to Go source files.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// GeneratedFile is one generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g. "token.go").
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

// Render produces one source file per class, in input order.
func (r *Renderer) Render(classes []model.Class) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range classes {
		file, err := r.renderClass(&classes[i])
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", classes[i].Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// templateData holds all data needed for the entity file template.
type templateData struct {
	PackageName string
	ClassName   string
	StorePkg    string
	Imports     []string
	Methods     []methodData
}

type methodData struct {
	Doc       string
	Signature string
	Body      []string
}

var entityTemplate = template.Must(template.New("entity").Parse(`// Code generated by entitygen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	"{{.}}"
{{end}})

// {{.ClassName}} is a typed view over a generic store record.
type {{.ClassName}} struct {
	{{.StorePkg}}.Entity
}
{{range .Methods}}
{{if .Doc}}{{.Doc}}
{{end}}{{.Signature}} {
{{range .Body}}{{.}}
{{end}}}
{{end}}`))

func (r *Renderer) renderClass(cls *model.Class) (*GeneratedFile, error) {
	f := newFileRenderer(r.opts, cls.Name)

	data := &templateData{
		PackageName: r.opts.PackageName,
		ClassName:   cls.Name,
		StorePkg:    f.storePkg,
	}

	for i := range cls.Methods {
		m := &cls.Methods[i]

		body := f.methodBody(m)
		for j := range body {
			body[j] = "\t" + body[j]
		}

		data.Methods = append(data.Methods, methodData{
			Doc:       f.methodDoc(m),
			Signature: f.methodSignature(m),
			Body:      body,
		})
	}

	// Imports are collected while rendering bodies and signatures.
	for imp := range f.imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Strings(data.Imports)

	var buf bytes.Buffer
	if err := entityTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := strings.ToLower(cls.Name) + ".go"

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort sidecar with the raw output to aid debugging; the
		// write attempt is intentionally non-fatal.
		if r.opts.OutputDir != "" {
			_ = writeDebugUnformatted(r.opts.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// methodDoc returns the doc comment for built-in methods. Accessors carry no
// comment; their names speak for themselves.
func (f *fileRenderer) methodDoc(m *model.Method) string {
	switch m.Kind {
	case model.MethodConstructor:
		return fmt.Sprintf("// New%s creates a %s record with the given id.", f.className, f.className)
	case model.MethodSave:
		return fmt.Sprintf("// Save writes the %s to %s under its id.", f.className, storeParam)
	case model.MethodLoad:
		return fmt.Sprintf("// Load%s reads the %s with the given id from %s. It returns nil when no record exists.",
			f.className, f.className, storeParam)
	default:
		return ""
	}
}

func (f *fileRenderer) methodSignature(m *model.Method) string {
	switch m.Kind {
	case model.MethodConstructor:
		return fmt.Sprintf("func New%s(id string) *%s", f.className, f.className)

	case model.MethodSave:
		return fmt.Sprintf("func (%s *%s) Save(%s %s.Store) error",
			receiver, f.className, storeParam, f.storePkg)

	case model.MethodLoad:
		return fmt.Sprintf("func Load%s(%s %s.Store, id string) (*%s, error)",
			f.className, storeParam, f.storePkg, f.className)

	case model.MethodGetter:
		return fmt.Sprintf("func (%s *%s) %s() %s",
			receiver, f.className, capitalize(m.Name), f.goType(m.Return))

	case model.MethodSetter:
		return fmt.Sprintf("func (%s *%s) Set%s(value %s)",
			receiver, f.className, capitalize(m.Name), f.goType(m.Params[0].Type))

	default:
		return ""
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
