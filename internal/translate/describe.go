package translate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallbackDescription is the last resort when nothing better exists.
const fallbackDescription = "Imported from a Cursor configuration pack."

// maxInferredLen caps descriptions inferred from document bodies.
const maxInferredLen = 200

var titler = cases.Title(language.English)

// resolveDescription applies the fixed precedence: override table, source
// header field, inferred first paragraph, bare title, generic fallback.
func resolveDescription(override string, hasOverride bool, header map[string]string, body, title string) string {
	if hasOverride {
		return override
	}
	if d := strings.TrimSpace(header["description"]); d != "" {
		return d
	}
	if d := inferDescription(body); d != "" {
		return d
	}
	if title != "" {
		return title
	}
	return fallbackDescription
}

// inferDescription returns the first non-heading paragraph of body,
// whitespace-collapsed, truncated to maxInferredLen with an ellipsis when
// cut. Code fences, tables, and rule lines are not prose and are skipped.
func inferDescription(body string) string {
	for _, block := range strings.Split(body, "\n\n") {
		text := strings.TrimSpace(block)
		if text == "" {
			continue
		}
		switch {
		case strings.HasPrefix(text, "#"),
			strings.HasPrefix(text, "```"),
			strings.HasPrefix(text, "|"),
			strings.HasPrefix(text, "---"),
			strings.HasPrefix(text, ">"):
			continue
		}

		text = strings.Join(strings.Fields(text), " ")
		if runes := []rune(text); len(runes) > maxInferredLen {
			text = string(runes[:maxInferredLen-3]) + "..."
		}
		return text
	}
	return ""
}

// firstHeading returns the text of the first markdown heading in body.
func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}
	return ""
}

// titleFromBase turns a hyphenated base name into a display title
// ("release-notes" → "Release Notes").
func titleFromBase(base string) string {
	return titler.String(strings.ReplaceAll(base, "-", " "))
}
