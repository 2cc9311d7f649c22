package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morphic-dev/morphic/internal/errors"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %q, want %q", cfg.Host, DefaultHost)
	}
	if cfg.Static.Prefix != "/static" {
		t.Errorf("Static.Prefix = %q, want /static", cfg.Static.Prefix)
	}
	if cfg.Session.IdleTimeout != "5m" {
		t.Errorf("Session.IdleTimeout = %q, want 5m", cfg.Session.IdleTimeout)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := New()
	cfg.Name = "demo"
	cfg.Port = 8080
	cfg.Metrics = true
	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, loaded, cmp.AllowUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if got := loaded.Path(); got != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", got)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"name":"bare"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "bare" {
		t.Errorf("Name = %q, want bare", cfg.Name)
	}
	if cfg.Port != DefaultPort || cfg.Host != DefaultHost {
		t.Errorf("defaults not applied: %s", cfg.Address())
	}
	if cfg.Static.Dir != "public" {
		t.Errorf("Static.Dir = %q, want public", cfg.Static.Dir)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("Load on empty dir succeeded")
	}
	me, ok := err.(*errors.MorphicError)
	if !ok || me.Code != "E141" {
		t.Errorf("err = %v, want E141", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	me, ok := err.(*errors.MorphicError)
	if !ok || me.Code != "E120" {
		t.Errorf("err = %v, want E120", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v for defaults", err)
	}

	cfg.Port = 70000
	err := cfg.Validate()
	me, ok := err.(*errors.MorphicError)
	if !ok || me.Code != "E122" {
		t.Errorf("err = %v, want E122", err)
	}
}

func TestAddressAndURL(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: 4000}
	if got := cfg.Address(); got != "0.0.0.0:4000" {
		t.Errorf("Address() = %q", got)
	}
	if got := cfg.URL(); got != "http://0.0.0.0:4000" {
		t.Errorf("URL() = %q", got)
	}
}

func TestStaticPath(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.StaticPath(), filepath.Join(dir, "public"); got != want {
		t.Errorf("StaticPath() = %q, want %q", got, want)
	}

	cfg.Static.Dir = "/var/www"
	if got := cfg.StaticPath(); got != "/var/www" {
		t.Errorf("StaticPath() = %q, want /var/www", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := New().SaveTo(filepath.Join(root, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("FindProjectRoot() = %q, want %q", got, root)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists() = true for empty dir")
	}
	if err := New().SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	if !Exists(dir) {
		t.Error("Exists() = false after SaveTo")
	}
}
