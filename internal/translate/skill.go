package translate

import (
	"fmt"
	"io/fs"
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

// translateSkills copies source skill containers nearly as-is: the index
// gets its header rebuilt under the installed name, nested markdown files
// keep their structure and only pass through the rewrite pipeline.
func translateSkills(j job) ([]string, error) {
	skillsRoot := filepath.Join(j.source, sourceSkillsDir)
	entries, err := os.ReadDir(skillsRoot)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", sourceSkillsDir, err)
	}

	var written []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		rel := path.Join(sourceSkillsDir, e.Name())
		if curated.Skipped(rel) {
			continue
		}

		skillWritten, err := translateSkill(j, e.Name())
		if err != nil {
			return nil, err
		}
		written = append(written, skillWritten...)
	}
	return written, nil
}

func translateSkill(j job, dirname string) ([]string, error) {
	srcDir := path.Join(sourceSkillsDir, dirname)
	indexRel := path.Join(srcDir, layout.SkillIndexFile)

	// A directory without the index file is not a skill container.
	if _, err := os.Stat(filepath.Join(j.source, indexRel)); err != nil {
		return nil, nil
	}

	installed := naming.Name(j.prefix, dirname)

	raw, err := j.readSource(indexRel)
	if err != nil {
		return nil, err
	}
	header, body := frontmatter.Parse(raw)

	fields := []frontmatter.Field{
		{Key: "name", Value: installed},
		{Key: "description", Value: header["description"]},
	}
	indexDoc := frontmatter.Compose(fields, rewrite.Apply(body, j.prefix, indexRel))

	outIndex := path.Join(layout.SkillsDir, installed, layout.SkillIndexFile)
	if _, err := j.writeDoc(outIndex, indexDoc); err != nil {
		return nil, err
	}
	written := []string{outIndex}

	// Nested subdirectories: copy every markdown file with rewriting
	// applied, structure unchanged, headers untouched.
	srcAbs := filepath.Join(j.source, srcDir)
	subEntries, err := os.ReadDir(srcAbs)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", srcDir, err)
	}
	for _, sub := range subEntries {
		if !sub.IsDir() {
			continue
		}
		err := filepath.WalkDir(filepath.Join(srcAbs, sub.Name()), func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
				return nil
			}

			relInSkill, err := filepath.Rel(srcAbs, p)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("reading %s: %w", p, err)
			}

			content := rewrite.Apply(string(data), j.prefix, "")
			outRel := path.Join(layout.SkillsDir, installed, filepath.ToSlash(relInSkill))
			if _, err := j.writeDoc(outRel, content); err != nil {
				return err
			}
			written = append(written, outRel)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return written, nil
}
