package luarules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmarchant/highlite/highlight"
)

const headingScript = `
return {
  {
    pattern = [[^(#+)\s.*$]],
    multiline = true,
    attrs = {
      { key = "bold", value = true },
      { key = "fontscale", fn = function(full, target)
          local hashes = string.match(full, "^#+")
          return 2.0 - 0.1 * #hashes
        end },
    },
  },
}
`

func TestLoadStringStaticAndDynamic(t *testing.T) {
	s, err := LoadString(headingScript)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	defer s.Close()

	st := highlight.Highlight("## Two\nbody", s.Rules())

	at := st.AttrsAt(0)
	if at[highlight.KeyBold] != true {
		t.Error("static attr should apply")
	}
	if got := at[highlight.KeyFontScale]; got != 1.8 {
		t.Errorf("fontscale = %v, want 1.8", got)
	}
	if body := st.AttrsAt(strings.Index(st.Text(), "body")); len(body) != 0 {
		t.Errorf("body should be unstyled, got %v", body)
	}
}

func TestLoadStringGroupTargeting(t *testing.T) {
	s, err := LoadString(`
return {
  {
    pattern = [[(\w+)=(\w+)]],
    attrs = {
      { key = "bold", value = true, group = 1 },
      { key = "italic", value = true, group = 2 },
    },
  },
}
`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	defer s.Close()

	st := highlight.Highlight("name=value", s.Rules())
	if st.AttrsAt(0)[highlight.KeyBold] != true {
		t.Error("group 1 should be bold")
	}
	if st.AttrsAt(5)[highlight.KeyBold] == true {
		t.Error("bold should not cover group 2")
	}
	if st.AttrsAt(5)[highlight.KeyItalic] != true {
		t.Error("group 2 should be italic")
	}
}

func TestDynamicFailuresAreLocal(t *testing.T) {
	s, err := LoadString(`
return {
  {
    pattern = [[\w+]],
    attrs = {
      { key = "hyperlink", fn = function(full, target)
          if target == "bad" then error("no target") end
          return "https://example.com/" .. target
        end },
      { key = "underline", value = true },
    },
  },
}
`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	defer s.Close()

	st := highlight.Highlight("good bad", s.Rules())

	if st.AttrsAt(0)[highlight.KeyHyperlink] != "https://example.com/good" {
		t.Errorf("good match hyperlink = %v", st.AttrsAt(0)[highlight.KeyHyperlink])
	}
	at := st.AttrsAt(5)
	if _, ok := at[highlight.KeyHyperlink]; ok {
		t.Error("erroring function should omit the attribute")
	}
	if at[highlight.KeyUnderline] != true {
		t.Error("other attrs in the rule should still apply")
	}
}

func TestNilReturnOmitsAttribute(t *testing.T) {
	s, err := LoadString(`
return {
  {
    pattern = [[x+]],
    attrs = {
      { key = "bold", fn = function() return nil end },
    },
  },
}
`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	defer s.Close()

	st := highlight.Highlight("xxx", s.Rules())
	if _, ok := st.AttrsAt(0)[highlight.KeyBold]; ok {
		t.Error("nil return should omit the attribute")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"syntax error", `return {`, "rule script"},
		{"not a table", `return 42`, "must return a table"},
		{"no rules", `return {}`, "no rules"},
		{"missing pattern", `return { { attrs = { { key = "bold", value = true } } } }`, "missing pattern"},
		{"bad pattern", `return { { pattern = "[oops", attrs = { { key = "bold", value = true } } } }`, "error parsing regexp"},
		{"missing attrs", `return { { pattern = "a" } }`, "missing attrs"},
		{"attr missing key", `return { { pattern = "a", attrs = { { value = true } } } }`, "missing key"},
		{"unsupported value", `return { { pattern = "a", attrs = { { key = "k", value = {} } } } }`, "unsupported attribute value"},
		{"group beyond the pattern's captures", `return { { pattern = "(a)", attrs = { { key = "bold", value = true, group = 2 } } } }`, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.script)
			if err == nil {
				t.Fatal("LoadString() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestClosedScriptOmitsDynamicValues(t *testing.T) {
	s, err := LoadString(`
return {
  {
    pattern = [[\w+]],
    attrs = {
      { key = "bold", fn = function() return true end },
      { key = "italic", value = true },
    },
  },
}
`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	rules := s.Rules()
	s.Close()
	s.Close() // safe to repeat

	st := highlight.Highlight("word", rules)
	if _, ok := st.AttrsAt(0)[highlight.KeyBold]; ok {
		t.Error("dynamic value should be omitted after Close")
	}
	if st.AttrsAt(0)[highlight.KeyItalic] != true {
		t.Error("static values are unaffected by Close")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.lua")
	if err := os.WriteFile(path, []byte(headingScript), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	defer s.Close()

	if len(s.Rules()) != 1 {
		t.Errorf("Rules() length = %d, want 1", len(s.Rules()))
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.lua"))
		if err == nil {
			t.Error("LoadFile() should fail for a missing file")
		}
	})
}
