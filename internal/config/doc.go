// Package config holds MonkeyApp runtime configuration.
//
// Values come from, in increasing priority: built-in defaults, a YAML config
// file, MONKEYAPP_* environment variables and command-line flags. The
// resulting Config is built once in main and passed down explicitly.
package config
