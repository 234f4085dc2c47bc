package mcp

import (
	"encoding/json"
	"regexp"
)

// denylist names servers that are never auto-installed, regardless of what
// the heuristic says: they need machine-local setup (paths, databases, a
// running browser) that a fresh install cannot provide.
var denylist = map[string]bool{
	"filesystem": true,
	"postgres":   true,
	"puppeteer":  true,
}

// credentialPatterns is a best-effort scan of an entry's serialized form for
// credential-shaped content: secret vocabulary, templated placeholders,
// environment interpolation, all-caps placeholder tokens, and placeholder
// filesystem paths. Denylist membership is checked first; this heuristic
// runs second and may be strengthened, never reordered.
var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|token|secret|password|auth|bearer|credential)`),
	regexp.MustCompile(`\$\{[^}]*\}`),
	regexp.MustCompile(`\$[A-Z][A-Z0-9_]{2,}`),
	regexp.MustCompile(`<[A-Z][A-Z0-9_]{2,}>`),
	regexp.MustCompile(`YOUR_[A-Z0-9_]+`),
	regexp.MustCompile(`/path/to/`),
}

// credentialEnvKey disqualifies an entry whose env mapping carries a
// credential-shaped variable name.
var credentialEnvKey = regexp.MustCompile(`(?i)(key|token|secret|password|auth|api|bearer)`)

// requiresCredentials reports whether a serialized server entry appears to
// need a credential. False negatives are a known limit of the heuristic: an
// undetected credential field means the server installs "token-free" and
// fails at runtime instead.
func requiresCredentials(raw json.RawMessage) bool {
	for _, re := range credentialPatterns {
		if re.Match(raw) {
			return true
		}
	}

	var entry struct {
		Env map[string]string `json:"env"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return true
	}
	for key := range entry.Env {
		if credentialEnvKey.MatchString(key) {
			return true
		}
	}

	return false
}
