package mcp

import "strings"

// SourceFile is the service map filename at the source pack root.
const SourceFile = ".mcp.json"

// serversField is the top-level service map key in both the source file and
// the target registry.
const serversField = "mcpServers"

// Server is one MCP server definition.
type Server struct {
	Name        string            `json:"-"`
	Command     string            `json:"command"`
	Args        []string          `json:"args,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
	Description string            `json:"description,omitempty"`
}

// SelectionKind enumerates the caller's service choices.
type SelectionKind int

const (
	// SelectNone installs no services.
	SelectNone SelectionKind = iota
	// SelectAll installs every available (filtered) service.
	SelectAll
	// SelectNamed installs an explicit set of names.
	SelectNamed
)

// Selection is the caller's choice of which available services to install.
type Selection struct {
	Kind  SelectionKind
	Names []string
}

// ParseSelection interprets a CLI selection string: "none", "all", or a
// comma-separated list of service names.
func ParseSelection(s string) Selection {
	switch s {
	case "", "none":
		return Selection{Kind: SelectNone}
	case "all":
		return Selection{Kind: SelectAll}
	}
	var names []string
	for _, n := range splitComma(s) {
		names = append(names, n)
	}
	return Selection{Kind: SelectNamed, Names: names}
}

// Resolve applies a selection against the available (already filtered)
// server list. Unknown names in an explicit selection are silently ignored.
func Resolve(available []Server, sel Selection) []Server {
	switch sel.Kind {
	case SelectAll:
		return available
	case SelectNamed:
		wanted := make(map[string]bool, len(sel.Names))
		for _, n := range sel.Names {
			wanted[n] = true
		}
		var out []Server
		for _, s := range available {
			if wanted[s.Name] {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
