package translate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/skillport-dev/skillport/internal/curated"
	"github.com/skillport-dev/skillport/internal/frontmatter"
	"github.com/skillport-dev/skillport/internal/layout"
	"github.com/skillport-dev/skillport/internal/naming"
	"github.com/skillport-dev/skillport/internal/rewrite"
)

// ruleEntry feeds one row of a rule-set index table.
type ruleEntry struct {
	file        string
	title       string
	description string
}

// translateRuleSets maps each selected language directory under rules/ to a
// skill container holding the rule files plus a generated index document.
func translateRuleSets(j job) ([]string, error) {
	rulesRoot := filepath.Join(j.source, sourceRulesDir)
	if _, err := os.Stat(rulesRoot); os.IsNotExist(err) {
		return nil, nil
	}

	languages := j.languages
	if len(languages) == 0 {
		discovered, err := discoverLanguages(rulesRoot)
		if err != nil {
			return nil, err
		}
		languages = discovered
	}

	var written []string
	for _, lang := range languages {
		langWritten, err := translateLanguage(j, lang)
		if err != nil {
			return nil, err
		}
		written = append(written, langWritten...)
	}
	return written, nil
}

// discoverLanguages lists the language subdirectories, excluding dotfiles
// and the reserved index file.
func discoverLanguages(rulesRoot string) ([]string, error) {
	entries, err := os.ReadDir(rulesRoot)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", rulesRoot, err)
	}

	var langs []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") || name == reservedIndexFile {
			continue
		}
		langs = append(langs, name)
	}
	return langs, nil
}

func translateLanguage(j job, lang string) ([]string, error) {
	langDir := path.Join(sourceRulesDir, lang)
	files, err := j.listMarkdown(langDir)
	if err != nil {
		return nil, err
	}
	if files == nil {
		return nil, nil
	}

	info, ok := curated.LanguageInfo(lang)
	if !ok {
		info = curated.Language{
			Title:     titleFromBase(lang),
			Container: lang + "-standards",
			Glob:      "**/*",
		}
	}
	container := naming.Name(j.prefix, info.Container)

	var written []string
	var entries []ruleEntry
	for _, name := range files {
		if name == reservedIndexFile {
			continue
		}
		rel := path.Join(langDir, name)
		if curated.Skipped(rel) {
			continue
		}

		raw, err := j.readSource(rel)
		if err != nil {
			return nil, err
		}
		header, body := frontmatter.Parse(raw)
		body = rewrite.Apply(body, j.prefix, rel)

		title := strings.TrimSpace(header["title"])
		if title == "" {
			title = firstHeading(body)
		}
		if title == "" {
			title = titleFromBase(strings.TrimSuffix(name, ".md"))
		}
		entries = append(entries, ruleEntry{
			file:        name,
			title:       title,
			description: resolveDescription("", false, header, body, title),
		})

		relOut := path.Join(layout.SkillsDir, container, layout.RulesDir, name)
		if _, err := j.writeDoc(relOut, body); err != nil {
			return nil, err
		}
		written = append(written, relOut)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	indexRel := path.Join(layout.SkillsDir, container, layout.SkillIndexFile)
	if _, err := j.writeDoc(indexRel, ruleSetIndex(container, info, entries)); err != nil {
		return nil, err
	}
	written = append(written, indexRel)

	return written, nil
}

// ruleSetIndex renders the SKILL.md index for one language container: the
// container header, an applicability line from the language table, and a
// table linking every rule.
func ruleSetIndex(container string, info curated.Language, entries []ruleEntry) string {
	fields := []frontmatter.Field{
		{Key: "name", Value: container},
		{Key: "description", Value: fmt.Sprintf("%s coding standards. Apply when working on matching files (%s).", info.Title, info.Glob)},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Coding Standards\n\n", info.Title)
	fmt.Fprintf(&b, "Standards applied to %s. Each rule lives in its own document under `rules/`.\n\n", info.Glob)
	b.WriteString("| Rule | Description |\n")
	b.WriteString("|------|-------------|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| [%s](rules/%s) | %s |\n", e.title, e.file, e.description)
	}

	return frontmatter.Compose(fields, b.String())
}
