package curated

import (
	"embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Guideline is one curated document written by the hook translator.
type Guideline struct {
	File  string `yaml:"file"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Language describes one rule-set language directory.
type Language struct {
	Title     string `yaml:"title"`
	Container string `yaml:"container"`
	Glob      string `yaml:"glob"`
}

type stripEntry struct {
	Path     string   `yaml:"path"`
	Patterns []string `yaml:"patterns"`
}

type tables struct {
	skip       map[string]bool
	strips     map[string][]string
	guidelines []Guideline
	agents     map[string]string
	commands   map[string]string
	languages  map[string]Language
}

var (
	once   sync.Once
	loaded tables
)

func load() {
	once.Do(func() {
		loaded = tables{
			skip:      make(map[string]bool),
			strips:    make(map[string][]string),
			agents:    make(map[string]string),
			commands:  make(map[string]string),
			languages: make(map[string]Language),
		}

		var skip struct {
			Paths []string `yaml:"paths"`
		}
		decode("data/skiplist.yaml", &skip)
		for _, p := range skip.Paths {
			loaded.skip[p] = true
		}

		var strips struct {
			Strips []stripEntry `yaml:"strips"`
		}
		decode("data/strips.yaml", &strips)
		for _, s := range strips.Strips {
			loaded.strips[s.Path] = s.Patterns
		}

		var guidelines struct {
			Guidelines []Guideline `yaml:"guidelines"`
		}
		decode("data/guidelines.yaml", &guidelines)
		loaded.guidelines = guidelines.Guidelines

		var overrides struct {
			Agents   map[string]string `yaml:"agents"`
			Commands map[string]string `yaml:"commands"`
		}
		decode("data/overrides.yaml", &overrides)
		if overrides.Agents != nil {
			loaded.agents = overrides.Agents
		}
		if overrides.Commands != nil {
			loaded.commands = overrides.Commands
		}

		var languages map[string]Language
		decode("data/languages.yaml", &languages)
		if languages != nil {
			loaded.languages = languages
		}
	})
}

// decode reads one embedded table. The files are compiled into the binary,
// so a decode failure is a packaging bug; the affected table stays empty.
func decode(name string, out any) {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, out)
}

// Skipped reports whether a source-relative path is on the skip list.
func Skipped(rel string) bool {
	load()
	return loaded.skip[rel]
}

// Strips returns the section-strip patterns registered for a source-relative
// path, or nil when the document is translated whole.
func Strips(rel string) []string {
	load()
	return loaded.strips[rel]
}

// Guidelines returns the hook guideline set, in write order.
func Guidelines() []Guideline {
	load()
	return loaded.guidelines
}

// AgentDescription returns the description override for an agent base name.
func AgentDescription(base string) (string, bool) {
	load()
	d, ok := loaded.agents[base]
	return d, ok
}

// CommandDescription returns the description override for a command base name.
func CommandDescription(base string) (string, bool) {
	load()
	d, ok := loaded.commands[base]
	return d, ok
}

// LanguageInfo returns the table entry for a rule-set language directory.
func LanguageInfo(name string) (Language, bool) {
	load()
	l, ok := loaded.languages[name]
	return l, ok
}
