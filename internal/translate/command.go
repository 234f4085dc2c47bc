package translate

import (
	"fmt"
	"path"
	"strings"

	"github.com/skillport-dev/skillport/internal/curated"
	"github.com/skillport-dev/skillport/internal/frontmatter"
	"github.com/skillport-dev/skillport/internal/layout"
	"github.com/skillport-dev/skillport/internal/naming"
	"github.com/skillport-dev/skillport/internal/rewrite"
)

// translateCommands fans each source command out into two artifacts: a full
// skill container with the complete rewritten content, and a short command
// wrapper that points at it. The wrapper keeps slash-command ergonomics
// while the container carries the real instructions.
func translateCommands(j job) ([]string, error) {
	files, err := j.listMarkdown(sourceCommandsDir)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range files {
		rel := path.Join(sourceCommandsDir, name)
		if curated.Skipped(rel) {
			continue
		}

		raw, err := j.readSource(rel)
		if err != nil {
			return nil, err
		}
		header, body := frontmatter.Parse(raw)
		body = rewrite.Apply(body, j.prefix, rel)

		base := strings.TrimSuffix(name, ".md")
		installed := naming.Name(j.prefix, base)

		title := firstHeading(body)
		if title == "" {
			title = titleFromBase(base)
		}
		override, hasOverride := curated.CommandDescription(base)
		desc := resolveDescription(override, hasOverride, header, body, title)

		// Full container.
		containerRel := path.Join(layout.SkillsDir, installed, layout.SkillIndexFile)
		containerDoc := frontmatter.Compose([]frontmatter.Field{
			{Key: "name", Value: installed},
			{Key: "description", Value: desc},
		}, body)
		if _, err := j.writeDoc(containerRel, containerDoc); err != nil {
			return nil, err
		}
		written = append(written, containerRel)

		// Wrapper.
		wrapperRel := path.Join(layout.CommandsDir, installed+".md")
		if _, err := j.writeDoc(wrapperRel, commandWrapper(installed, title, desc)); err != nil {
			return nil, err
		}
		written = append(written, wrapperRel)
	}

	return written, nil
}

// commandWrapper renders the wrapper document: title, one-line description,
// and the fixed pointer to the full container.
func commandWrapper(installed, title, desc string) string {
	pointer := fmt.Sprintf("Read and follow the full instructions in `.claude/%s/%s/%s`.",
		layout.SkillsDir, installed, layout.SkillIndexFile)

	body := fmt.Sprintf("# %s\n\n%s\n\n%s\n", title, desc, pointer)
	return frontmatter.Compose([]frontmatter.Field{
		{Key: "description", Value: desc},
	}, body)
}
