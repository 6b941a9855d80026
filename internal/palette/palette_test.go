package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePalette = `
meta {
  name   = "Rose Pine"
  author = "Test Author"
}

palette {
  base    = "#191724"
  surface = "#1f1d2e"
  love    = "#eb6f92"
  gold    = "#f6c177"
  pine    = "#31748f"
  foam    = "#9ccfd8"
}
`

func writeTempPalette(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMeta(t *testing.T) {
	path := writeTempPalette(t, samplePalette)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Meta.Name != "Rose Pine" {
		t.Errorf("Meta.Name = %q, want %q", p.Meta.Name, "Rose Pine")
	}
	if p.Meta.Author != "Test Author" {
		t.Errorf("Meta.Author = %q, want %q", p.Meta.Author, "Test Author")
	}
}

func TestLoadEntries(t *testing.T) {
	path := writeTempPalette(t, samplePalette)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	wantOrder := []string{"base", "surface", "love", "gold", "pine", "foam"}
	if len(p.Entries) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(p.Entries), len(wantOrder))
	}
	for i, name := range wantOrder {
		if p.Entries[i].Name != name {
			t.Errorf("entry %d = %q, want %q", i, p.Entries[i].Name, name)
		}
	}

	love, ok := p.Get("love")
	if !ok {
		t.Fatal("missing love entry")
	}
	if got := love.Hex(); got != "#eb6f92" {
		t.Errorf("love = %q, want %q", got, "#eb6f92")
	}

	if _, ok := p.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}
}

func TestParseNamedColorReference(t *testing.T) {
	p, err := Parse([]byte(`
palette {
  accent = red
  paper  = white
}
`), "test.hcl")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	accent, _ := p.Get("accent")
	if got := accent.Hex(); got != "#ff0000" {
		t.Errorf("accent = %q, want %q", got, "#ff0000")
	}
	paper, _ := p.Get("paper")
	if got := paper.Hex(); got != "#ffffff" {
		t.Errorf("paper = %q, want %q", got, "#ffffff")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"no palette block", `meta { name = "x" }`, "no palette block"},
		{"bad hex", `palette { base = "#zz0000" }`, "palette.base"},
		{"short hex", `palette { base = "#fff" }`, "palette.base"},
		{"nested block", "palette {\n  base = \"#191724\"\n  sub {\n    x = \"#000000\"\n  }\n}", "nested blocks"},
		{"not a string", `palette { base = 42 }`, "expected a color string"},
		{"syntax error", `palette { base = `, "parsing HCL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), "test.hcl")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `palette{base="#191724"love="#eb6f92"}`,
			expected: `palette { base = "#191724" love = "#eb6f92" }`,
		},
		{
			name: "already formatted stays same",
			input: `palette {
  base = "#191724"
}
`,
			expected: `palette {
  base = "#191724"
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `meta   {   name   =   "Test"   }`,
			expected: `meta { name = "Test" }`,
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "meta { name = \"Test\" }\n\n\n\npalette { base = \"#191724\" }",
			expected: "meta { name = \"Test\" }\n\npalette { base = \"#191724\" }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "palette {\n\n  base = \"#191724\"\n}",
			expected: "palette {\n  base = \"#191724\"\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "palette {\n  base = \"#191724\"\n\n}",
			expected: "palette {\n  base = \"#191724\"\n}",
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}
