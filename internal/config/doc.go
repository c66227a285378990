// Package config manages user-level settings stored at
// ~/.types-local/config.yaml, overridable through TYPES_LOCAL_* environment
// variables. Settings supply defaults for the tsconfig file name, the version
// written into generated stubs, and whether an emptied compilerOptions object
// is dropped on removal.
package config
