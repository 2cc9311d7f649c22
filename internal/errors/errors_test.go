package errors

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("registered code", func(t *testing.T) {
		err := New("E001")
		if err.Code != "E001" {
			t.Errorf("Code = %q, want E001", err.Code)
		}
		if err.Category != CategoryRuntime {
			t.Errorf("Category = %q, want runtime", err.Category)
		}
		if err.Message != "Invalid render output" {
			t.Errorf("Message = %q", err.Message)
		}
		if err.DocURL == "" {
			t.Error("DocURL empty for registered code")
		}
	})

	t.Run("unregistered code", func(t *testing.T) {
		err := New("E999")
		if err.Code != "E999" || err.Message != "Unknown error" {
			t.Errorf("got %q / %q", err.Code, err.Message)
		}
	})
}

func TestErrorInterface(t *testing.T) {
	if got := New("E020").Error(); got != "E020: Container already being morphed" {
		t.Errorf("Error() = %q", got)
	}
	if got := Newf(CategoryCLI, "bad flag %q", "x").Error(); got != `bad flag "x"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapUnwrap(t *testing.T) {
	inner := stderrors.New("disk full")
	err := New("E120").Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is does not see the wrapped error")
	}
	var me *MorphicError
	if !stderrors.As(err, &me) || me.Code != "E120" {
		t.Error("errors.As failed to recover the MorphicError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E120") != nil {
		t.Error("FromError(nil) != nil")
	}

	me := New("E122")
	if got := FromError(me, "E120"); got != me {
		t.Error("FromError re-wrapped an existing MorphicError")
	}

	plain := stderrors.New("boom")
	got := FromError(plain, "E120")
	if got.Code != "E120" || got.Wrapped != plain {
		t.Errorf("FromError = %+v", got)
	}
}

func TestLookup(t *testing.T) {
	tmpl, ok := Lookup("E141")
	if !ok {
		t.Fatal("Lookup(E141) not found")
	}
	if tmpl.Category != CategoryConfig {
		t.Errorf("Category = %q, want config", tmpl.Category)
	}
	if _, ok := Lookup("E999"); ok {
		t.Error("Lookup(E999) found")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E141").
		WithDetail("No morphic.json found in /tmp/app").
		WithSuggestion("Run 'morphic init' to create one")

	out := err.Format()
	for _, want := range []string{
		"E141",
		"Configuration file not found",
		"No morphic.json found in /tmp/app",
		"Hint: Run 'morphic init' to create one",
		"https://morphic.dev/docs/errors/E141",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	if got := New("E100").FormatCompact(); got != "E100: Malformed patch frame" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	out := New("E122").WithDetail("Port must be between 0 and 65535").FormatJSON()

	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("FormatJSON produced invalid JSON: %v\n%s", err, out)
	}
	if decoded["code"] != "E122" || decoded["category"] != "config" {
		t.Errorf("decoded = %v", decoded)
	}
	if decoded["detail"] != "Port must be between 0 and 65535" {
		t.Errorf("detail = %q", decoded["detail"])
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range lines {
		if len(line) > 15 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if got := strings.Join(lines, " "); got != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("wrapped text lost words: %q", got)
	}
}
