// Package config manages persistent CLI preferences stored in
// ~/.skillport/config.yaml, backed by Viper with SKILLPORT_* environment
// variable overrides.
package config
