// Package registry provides a generic, type-safe registry of named
// items. dohook uses it for the catalog of built-in plugins.
package registry
