// Package config handles configuration management for dohook.
// Configuration is layered: embedded defaults, then an optional TOML
// file, then DOHOOK_* environment variables.
package config
