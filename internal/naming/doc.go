// Package naming defines the deterministic installed-name scheme. The prefix
// doubles as the install manifest: every document this tool writes carries
// it, and the scanner recovers the installed set from names alone.
package naming
