// Package rewrite converts document bodies from Cursor conventions to
// Claude Code conventions through an ordered, prefix-parameterized rule
// pipeline, with an optional per-document section-strip pre-pass.
//
// Every rule must be idempotent: either its replacement text no longer
// matches its own pattern, or the rule recognizes already-translated forms
// and leaves them unchanged. Re-running a sync over translated text is safe.
package rewrite
