package frontmatter

import (
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	content := "---\nname: reviewer\ndescription: \"Reviews code.\"\n---\n\n# Reviewer\n\nBody text.\n"

	header, body := Parse(content)

	if header["name"] != "reviewer" {
		t.Errorf("name = %q, want %q", header["name"], "reviewer")
	}
	if header["description"] != "Reviews code." {
		t.Errorf("description = %q, want %q (quotes stripped)", header["description"], "Reviews code.")
	}
	if body != "# Reviewer\n\nBody text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseSingleQuotes(t *testing.T) {
	header, _ := Parse("---\ntitle: 'Plan Mode'\n---\nbody")
	if header["title"] != "Plan Mode" {
		t.Errorf("title = %q, want %q", header["title"], "Plan Mode")
	}
}

func TestParseNoHeader(t *testing.T) {
	content := "# Just a document\n\nNo header here.\n"
	header, body := Parse(content)
	if len(header) != 0 {
		t.Errorf("header = %v, want empty", header)
	}
	if body != content {
		t.Errorf("body = %q, want original content", body)
	}
}

func TestParseUnclosedDelimiter(t *testing.T) {
	content := "---\nname: broken\nno closing line\n"
	header, body := Parse(content)
	if len(header) != 0 {
		t.Errorf("header = %v, want empty for unclosed block", header)
	}
	if body != content {
		t.Errorf("body = %q, want original content", body)
	}
}

func TestParseIgnoresMalformedLines(t *testing.T) {
	content := "---\nname: ok\njust some prose\n- a list item\ndescription: fine\n---\nbody"
	header, _ := Parse(content)
	if len(header) != 2 {
		t.Fatalf("header has %d keys, want 2: %v", len(header), header)
	}
	if header["name"] != "ok" || header["description"] != "fine" {
		t.Errorf("header = %v", header)
	}
}

func TestParseValueWithColon(t *testing.T) {
	header, _ := Parse("---\nurl: https://example.com/path\n---\nbody")
	if header["url"] != "https://example.com/path" {
		t.Errorf("url = %q", header["url"])
	}
}

func TestBuildBooleansAndStrings(t *testing.T) {
	out := Build([]Field{
		{Key: "name", Value: "sp-reviewer"},
		{Key: "disable-model-invocation", Value: true},
	})

	want := "---\nname: sp-reviewer\ndisable-model-invocation: true\n---\n"
	if out != want {
		t.Errorf("Build = %q, want %q", out, want)
	}
}

func TestBuildCollapsesNewlines(t *testing.T) {
	out := Build([]Field{{Key: "description", Value: "  line one\nline two  \n  line three "}})
	if !strings.Contains(out, "description: line one line two line three\n") {
		t.Errorf("newlines not collapsed: %q", out)
	}
}

func TestRoundTripPreservesPairs(t *testing.T) {
	fields := []Field{
		{Key: "name", Value: "sp-planner"},
		{Key: "description", Value: "Plans multi-step work"},
		{Key: "model", Value: "inherit"},
	}

	header, body := Parse(Compose(fields, "# Body\n"))

	if body != "# Body\n" {
		t.Errorf("body = %q", body)
	}
	if len(header) != len(fields) {
		t.Fatalf("header has %d keys, want %d", len(header), len(fields))
	}
	for _, f := range fields {
		if header[f.Key] != f.Value.(string) {
			t.Errorf("header[%q] = %q, want %q", f.Key, header[f.Key], f.Value)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	header, body := Parse("")
	if len(header) != 0 || body != "" {
		t.Errorf("Parse(\"\") = %v, %q", header, body)
	}
}

func TestParseCRLF(t *testing.T) {
	header, body := Parse("---\r\nname: windows\r\n---\r\n\r\nbody\r\n")
	if header["name"] != "windows" {
		t.Errorf("name = %q", header["name"])
	}
	if !strings.HasPrefix(body, "body") {
		t.Errorf("body = %q", body)
	}
}
