// Package cli defines the Cobra command tree for the types-local CLI. Each
// file registers one top-level command (create, remove, list, etc.) with the
// root command. Commands resolve the project root and settings, delegate to
// internal/typeslocal for the work, and only handle flags and output.
package cli
