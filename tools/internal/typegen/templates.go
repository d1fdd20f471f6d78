package typegen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

type TemplateLibrary struct {
	functions template.FuncMap
	templates map[string]*template.Template
}

func NewTemplateLibrary(funcs template.FuncMap) *TemplateLibrary {
	return &TemplateLibrary{
		functions: funcs,
		templates: map[string]*template.Template{},
	}
}

func (lib *TemplateLibrary) Register(src, name string, funcs template.FuncMap, altNames ...string) *template.Template {
	tmpl := lib.new(name, funcs)
	tmpl, err := tmpl.Parse(src)
	if err != nil {
		panic(err)
	}
	lib.templates[name] = tmpl
	for _, name := range altNames {
		lib.templates[name] = tmpl
	}
	return tmpl
}

// Has returns true if name is a registered template.
func (lib *TemplateLibrary) Has(name string) bool {
	_, ok := lib.templates[strings.Split(name, ":")[0]]
	return ok
}

// Execute executes the named template. A name that is not registered is
// treated as the path of a template file. A name of the form 'a:b' executes
// the sub-template b of a.
func (lib *TemplateLibrary) Execute(w io.Writer, name string, data interface{}) error {
	names := strings.Split(name, ":")
	name, names = names[0], names[1:]

	tmpl, ok := lib.templates[name]
	if ok {
		return execute(tmpl, names, w, data)
	}

	b, err := os.ReadFile(name)
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%q is not a known template or a template file", name)
	default:
		return err
	}

	tmpl, err = lib.new(name, nil).Parse(string(b))
	if err != nil {
		return fmt.Errorf("error parsing %q: %v", name, err)
	}

	return execute(tmpl, names, w, data)
}

func (lib *TemplateLibrary) new(name string, funcs template.FuncMap) *template.Template {
	tmpl := template.New(name)
	if lib.functions != nil {
		tmpl = tmpl.Funcs(lib.functions)
	}
	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}
	return tmpl
}

func execute(tmpl *template.Template, names []string, w io.Writer, data interface{}) error {
	for _, name := range names {
		tmpl = tmpl.Lookup(name)
		if tmpl == nil {
			return fmt.Errorf("unknown sub-template %q", name)
		}
	}
	return tmpl.Execute(w, data)
}
