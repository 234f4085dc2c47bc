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

// translateAgents maps each source agent document to one target agent file.
// The installed name comes from the header's name field when present, else
// the filename.
func translateAgents(j job) ([]string, error) {
	files, err := j.listMarkdown(sourceAgentsDir)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range files {
		rel := path.Join(sourceAgentsDir, name)
		if curated.Skipped(rel) {
			continue
		}

		raw, err := j.readSource(rel)
		if err != nil {
			return nil, err
		}
		header, body := frontmatter.Parse(raw)

		base := strings.TrimSuffix(name, ".md")
		if h := strings.TrimSpace(header["name"]); h != "" {
			base = h
		}
		installed := naming.Name(j.prefix, base)

		desc := ""
		if override, ok := curated.AgentDescription(strings.TrimSuffix(name, ".md")); ok {
			desc = override
		} else {
			desc = header["description"]
		}

		fields := []frontmatter.Field{
			{Key: "name", Value: installed},
			{Key: "description", Value: desc},
		}
		if model := strings.TrimSpace(header["model"]); model != "" {
			fields = append(fields, frontmatter.Field{Key: "model", Value: model})
		}

		out := frontmatter.Compose(fields, rewrite.Apply(body, j.prefix, rel))

		relOut := path.Join(layout.AgentsDir, installed+".md")
		if _, err := j.writeDoc(relOut, out); err != nil {
			return nil, err
		}
		written = append(written, relOut)
	}

	return written, nil
}
