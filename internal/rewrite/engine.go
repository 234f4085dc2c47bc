package rewrite

import (
	"regexp"

	"github.com/skillport-dev/skillport/internal/curated"
)

// blankRuns matches runs of three or more blank lines, the usual artifact
// left behind by the strip pass.
var blankRuns = regexp.MustCompile(`\n{4,}`)

// Apply rewrites body for the given prefix. sourcePath is the document's
// source-relative path and selects the section-strip list; pass "" to skip
// the strip pass. Each rule is applied once, globally, in pipeline order.
func Apply(body, prefix, sourcePath string) string {
	if sourcePath != "" {
		body = strip(body, sourcePath)
	}

	for _, rule := range Pipeline(prefix) {
		body = rule.apply(body)
	}

	return blankRuns.ReplaceAllString(body, "\n\n")
}

// strip deletes the spans matched by the document's registered strip
// patterns, in list order, each pattern operating on the already-edited
// text.
func strip(body, sourcePath string) string {
	for _, pattern := range curated.Strips(sourcePath) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		body = re.ReplaceAllString(body, "")
	}
	return body
}
