package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/morphic-dev/morphic/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ModulePath is the Go module path.
	ModulePath string

	// Port is the server port written into morphic.json.
	Port int
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"counter": counterTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E145").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: counter, minimal")
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create generates a project from the template.
func (t *Template) Create(dir string, cfg Config) error {
	for relPath, content := range t.Files {
		tmpl, err := template.New(relPath).Parse(content)
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}

		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return err
		}
	}

	return nil
}

func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A bare server with a static page component",
		Files: map[string]string{
			"main.go": `package main

import (
	"context"
	"log"

	"github.com/morphic-dev/morphic/pkg/component"
	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/server"
)

type page struct {
	c *component.Controller
}

func (p *page) Bind(c *component.Controller) { p.c = c }

func (p *page) Render() any {
	doc := p.c.Document()
	return []*dom.Node{
		doc.El("h1", "{{.ProjectName}}"),
		doc.El("p", "Edit main.go to get started."),
	}
}

func root(doc *dom.Document) *dom.Node {
	return component.New(doc, "app-page", nil, nil, &page{})
}

func main() {
	srv := server.New(&server.Config{Address: ":{{.Port}}"}, root)
	if err := srv.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
`,
			"go.mod": `module {{.ModulePath}}

go 1.24

require github.com/morphic-dev/morphic v0.1.0
`,
			"morphic.json": `{
  "name": "{{.ProjectName}}",
  "version": "0.1.0",
  "port": {{.Port}}
}
`,
		},
	}
}

func counterTemplate() *Template {
	return &Template{
		Name:        "counter",
		Description: "An interactive counter wired over the live protocol",
		Files: map[string]string{
			"main.go": `package main

import (
	"context"
	"log"

	"github.com/morphic-dev/morphic/pkg/component"
	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/schema"
	"github.com/morphic-dev/morphic/pkg/server"
)

var counterSchema = schema.Config{
	{Name: "count", Type: schema.TypeNumber, Default: float64(0), Attribute: true, Event: "count-changed"},
}

type counter struct {
	c *component.Controller
}

func (v *counter) Bind(c *component.Controller) { v.c = c }

func (v *counter) Render() any {
	doc := v.c.Document()
	count, _ := v.c.Prop("count").(float64)
	return []*dom.Node{
		doc.El("h1", "{{.ProjectName}}"),
		doc.El("p", dom.Attr{Key: "id", Value: "count"}, schema.Stringify(count)),
		doc.El("button",
			dom.Attr{Key: "id", Value: "increment"},
			dom.On{Name: "click", Fn: func(dom.Event) {
				n, _ := v.c.PeekProp("count").(float64)
				v.c.SetProp("count", n+1)
			}},
			"+1",
		),
	}
}

func root(doc *dom.Document) *dom.Node {
	return component.New(doc, "app-counter", counterSchema, nil, &counter{})
}

func main() {
	srv := server.New(&server.Config{Address: ":{{.Port}}"}, root)
	if err := srv.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
`,
			"go.mod": `module {{.ModulePath}}

go 1.24

require github.com/morphic-dev/morphic v0.1.0
`,
			"morphic.json": `{
  "name": "{{.ProjectName}}",
  "version": "0.1.0",
  "port": {{.Port}}
}
`,
		},
	}
}
