// Package pack reads the optional pack.yaml manifest a source pack may ship
// at its root. The manifest is informational except for min_cli_version,
// which gates a compatibility warning during sync.
package pack
