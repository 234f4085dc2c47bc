package translate

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/skillport-dev/skillport/internal/curated"
	"github.com/skillport-dev/skillport/internal/layout"
	"github.com/skillport-dev/skillport/internal/naming"
)

// coding standards container shared with the common rule-set.
const standardsContainer = "coding-standards"

// translateHooks writes the curated guideline set when the source pack
// ships a hooks configuration. Cursor hooks run imperative automation with
// no Claude Code equivalent, so only their intent is captured: the hook
// file's presence gates the output, its content is never parsed.
func translateHooks(j job) ([]string, error) {
	if curated.Skipped(sourceHooksFile) {
		return nil, nil
	}
	if _, err := os.Stat(filepath.Join(j.source, filepath.FromSlash(sourceHooksFile))); err != nil {
		return nil, nil
	}

	container := naming.Name(j.prefix, standardsContainer)

	var written []string
	for _, g := range curated.Guidelines() {
		body := "# " + g.Title + "\n\n" + strings.TrimSpace(g.Body) + "\n"
		rel := path.Join(layout.SkillsDir, container, layout.RulesDir, g.File)
		if _, err := j.writeDoc(rel, body); err != nil {
			return nil, err
		}
		written = append(written, rel)
	}

	return written, nil
}
