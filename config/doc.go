// Package config holds the settings of the slink command: where the data
// lives, which k values to evaluate, how the graph and MST are built, and
// how results and logs are written.
//
// Settings are layered: Default(), then an optional YAML file (Load), then
// SLINK_* environment variables (ApplyEnv), then command-line flags, each
// layer overriding the previous one. Validate checks the merged result.
package config
