package rewrite

import (
	"regexp"

	"github.com/skillport-dev/skillport/internal/naming"
)

// Rule is one ordered pattern→replacement step. Repl is a template expanded
// with captured groups; Fn, when set, computes the replacement from the
// captured groups instead.
type Rule struct {
	Pattern *regexp.Regexp
	Repl    string
	Fn      func(groups []string) string
}

func (r Rule) apply(text string) string {
	if r.Fn != nil {
		return r.Pattern.ReplaceAllStringFunc(text, func(m string) string {
			return r.Fn(r.Pattern.FindStringSubmatch(m))
		})
	}
	return r.Pattern.ReplaceAllString(text, r.Repl)
}

// commandNames is the closed set of slash commands rewritten with the
// prefix. Anything outside this list is left untouched so arbitrary
// slash-prefixed text (URLs, paths) is never mangled.
var commandNames = []string{
	"plan",
	"review",
	"commit",
	"refactor",
	"document",
	"debug",
	"optimize",
	"scaffold",
	"triage",
}

var (
	agentPathRe = regexp.MustCompile(`\.cursor/agents/([A-Za-z0-9_-]+)\.md`)
	skillPathRe = regexp.MustCompile(`\.cursor/skills/([A-Za-z0-9_-]+)`)
	useAgentRe  = regexp.MustCompile("\\b(U|u)se the `?([a-z][a-z0-9-]*)`? (?:sub)?agent\\b")
	askAgentRe  = regexp.MustCompile("\\b(A|a)sk the `?([a-z][a-z0-9-]*)`? (?:sub)?agent\\b")
	commandRe   = regexp.MustCompile("(?m)(^|[\\s`(])/((?:[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*-)?)(" + altern(commandNames) + `)\b`)
	rootRe      = regexp.MustCompile(`\.cursor/`)
	rulesFileRe = regexp.MustCompile(`\.cursorrules\b`)
	agentToolRe = regexp.MustCompile(`\bcursor-agent\b`)
	productRe   = regexp.MustCompile(`\bCursor\b`)
)

func altern(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "|"
		}
		out += regexp.QuoteMeta(n)
	}
	return out
}

// Pipeline builds the full ordered rule pipeline for a prefix. The
// prefix-aware rules embed the prefix string, so the pipeline is constructed
// fresh per call. Order is load-bearing: the scoped path rules (1) and
// cross-reference rules (2) must see the original `.cursor/` root before the
// generic root substitution (4) rewrites it away.
func Pipeline(prefix string) []Rule {
	crossRef := func(verb string) func([]string) string {
		return func(groups []string) string {
			v := verb
			if groups[1] >= "A" && groups[1] <= "Z" {
				v = string(v[0]-'a'+'A') + v[1:]
			}
			return v + " the `" + naming.Name(prefix, groups[2]) + "` skill"
		}
	}

	return []Rule{
		// 1. Scoped path references, most specific first.
		{Pattern: agentPathRe, Repl: ".claude/agents/" + naming.Name(prefix, "$1") + ".md"},
		{Pattern: skillPathRe, Repl: ".claude/skills/" + naming.Name(prefix, "$1")},

		// 2. Cross-category references: agent mentions become skill mentions.
		{Pattern: useAgentRe, Fn: crossRef("follow")},
		{Pattern: askAgentRe, Fn: crossRef("consult")},

		// 3. Known slash commands gain the prefix. A command that already
		// carries one (any hyphenated lead) is left alone, so the rule
		// stays idempotent even when the prefix is itself a command name.
		{Pattern: commandRe, Fn: func(groups []string) string {
			if groups[2] != "" {
				return groups[0]
			}
			return groups[1] + "/" + naming.Name(prefix, groups[3])
		}},

		// 4. Generic path-root substitution, after the scoped rules above.
		{Pattern: rootRe, Repl: ".claude/"},

		// 5. Static vocabulary.
		{Pattern: rulesFileRe, Repl: "CLAUDE.md"},
		{Pattern: agentToolRe, Repl: "claude"},
		{Pattern: productRe, Repl: "Claude Code"},
	}
}
