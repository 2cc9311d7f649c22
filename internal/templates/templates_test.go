package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/morphic-dev/morphic/internal/errors"
)

func TestGet(t *testing.T) {
	tmpl, err := Get("counter")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Name != "counter" {
		t.Errorf("Name = %q, want counter", tmpl.Name)
	}

	_, err = Get("spaceship")
	me, ok := err.(*errors.MorphicError)
	if !ok || me.Code != "E145" {
		t.Errorf("Get(spaceship) = %v, want E145", err)
	}
}

func TestList(t *testing.T) {
	got := List()
	if len(got) != 2 || got[0] != "counter" || got[1] != "minimal" {
		t.Errorf("List() = %v, want [counter minimal]", got)
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	tmpl, err := Get("counter")
	if err != nil {
		t.Fatal(err)
	}

	err = tmpl.Create(dir, Config{
		ProjectName: "demo",
		ModulePath:  "example.com/demo",
		Port:        4000,
	})
	if err != nil {
		t.Fatal(err)
	}

	mainGo, err := os.ReadFile(filepath.Join(dir, "main.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(mainGo), `doc.El("h1", "demo")`) {
		t.Error("main.go missing substituted project name")
	}

	goMod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(goMod), "module example.com/demo") {
		t.Error("go.mod missing substituted module path")
	}

	cfgJSON, err := os.ReadFile(filepath.Join(dir, "morphic.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cfgJSON), `"port": 4000`) {
		t.Error("morphic.json missing substituted port")
	}
}
