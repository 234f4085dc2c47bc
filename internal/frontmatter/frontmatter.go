package frontmatter

import (
	"fmt"
	"regexp"
	"strings"
)

// Delimiter is the line that opens and closes a header block.
const Delimiter = "---"

// Field is one header entry. Build serializes fields in slice order.
type Field struct {
	Key   string
	Value any
}

var newlineRun = regexp.MustCompile(`[ \t]*\r?\n[ \t]*`)

// Parse splits content into its header fields and body. A header is a leading
// Delimiter line, any number of `key: value` lines, and a closing Delimiter
// line. Lines inside the block that do not look like `key: value` are
// ignored. When no delimiter pair is present the whole input is body.
func Parse(content string) (map[string]string, string) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r") != Delimiter {
		return map[string]string{}, content
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") == Delimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		return map[string]string{}, content
	}

	header := make(map[string]string)
	for _, line := range lines[1:closing] {
		rawKey, rawValue, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key := strings.TrimSpace(rawKey)
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}
		header[key] = unquote(strings.TrimSpace(rawValue))
	}

	body := strings.Join(lines[closing+1:], "\n")
	// The conventional blank line between header and body belongs to the
	// header, not the body.
	body = strings.TrimPrefix(body, "\r\n")
	body = strings.TrimPrefix(body, "\n")
	return header, body
}

// Build serializes fields into a delimiter-bounded header block, one
// `key: value` line per field, in slice order. Booleans serialize bare.
// String values have embedded newlines collapsed to single spaces and outer
// whitespace trimmed — the target format has no block-scalar support.
func Build(fields []Field) string {
	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(formatValue(f.Value))
		b.WriteString("\n")
	}
	b.WriteString(Delimiter)
	b.WriteString("\n")
	return b.String()
}

// Compose renders a complete document: header block, blank line, body.
func Compose(fields []Field, body string) string {
	return Build(fields) + "\n" + body
}

func formatValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return strings.TrimSpace(newlineRun.ReplaceAllString(val, " "))
	default:
		return fmt.Sprint(val)
	}
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
