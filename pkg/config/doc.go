// Package config handles configuration management for tagtmpl.
// It layers the embedded defaults, the user TOML file, TAGTMPL_*
// environment variables and command-line overrides, in that order.
package config
