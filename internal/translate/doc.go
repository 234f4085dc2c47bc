// Package translate converts one category of a Cursor-style source pack at
// a time into the Claude Code target layout. Each file in this package
// implements one category translator; translate.go holds the shared plumbing
// and the orchestrator that runs an enabled set of translators plus the
// service registry merge.
//
// Translators are not incremental: every run recomputes and overwrites its
// outputs, so re-running a sync is always safe.
package translate
