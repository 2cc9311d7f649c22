// Package templates provides project scaffolding templates.
//
// This package contains embedded templates for creating new morphic
// projects. Templates include everything needed for a running
// application: a main.go, a go.mod, and a morphic.json.
//
// # Available Templates
//
//   - minimal: a bare server with a static page component
//   - counter: an interactive counter wired over the live protocol
//
// # Usage
//
//	tmpl, err := templates.Get("counter")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tmpl.Create(projectDir, config); err != nil {
//	    log.Fatal(err)
//	}
//
// # Template Variables
//
// Templates support variable substitution:
//
//	{{.ProjectName}}  - Name of the project
//	{{.ModulePath}}   - Go module path
//	{{.Port}}         - Server port
package templates
