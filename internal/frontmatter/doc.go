// Package frontmatter encodes and decodes the restricted key-value header
// block carried at the top of pack and skill documents. The format is a
// single-level `key: value` list bounded by `---` lines — deliberately not
// full YAML. Parsing is tolerant and never fails: documents without a valid
// header are returned whole as body.
package frontmatter
