package translate

import (
	"path"
	"strings"

	"github.com/skillport-dev/skillport/internal/curated"
	"github.com/skillport-dev/skillport/internal/frontmatter"
	"github.com/skillport-dev/skillport/internal/layout"
	"github.com/skillport-dev/skillport/internal/naming"
	"github.com/skillport-dev/skillport/internal/rewrite"
)

// translateContexts wraps each source context document in its own skill
// container named {prefix-}ctx-{basename}. The ctx- marker keeps background
// material visually separate from actionable skills.
func translateContexts(j job) ([]string, error) {
	files, err := j.listMarkdown(sourceContextDir)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range files {
		rel := path.Join(sourceContextDir, name)
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
		installed := naming.Name(j.prefix, "ctx-"+base)

		title := firstHeading(body)
		if title == "" {
			title = titleFromBase(base)
		}
		desc := resolveDescription("", false, header, body, title)

		doc := frontmatter.Compose([]frontmatter.Field{
			{Key: "name", Value: installed},
			{Key: "description", Value: desc},
		}, body)

		relOut := path.Join(layout.SkillsDir, installed, layout.SkillIndexFile)
		if _, err := j.writeDoc(relOut, doc); err != nil {
			return nil, err
		}
		written = append(written, relOut)
	}

	return written, nil
}
