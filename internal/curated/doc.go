// Package curated holds the hand-maintained data tables that steer a
// translation: the skip list of source paths with no target equivalent, the
// section-strip table, the hook guideline documents, description overrides,
// and the rule-set language table. The tables live in embedded YAML files so
// they can be versioned and reviewed independently of engine code.
package curated
