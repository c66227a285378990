// Package typeslocal is the entry point for managing local type stubs. Create
// and Remove apply the stub scaffolding and the tsconfig path alias for each
// requested module as a pair, loading tsconfig.json once and writing it back
// once per call. List and Check report how the stub tree and the configured
// aliases line up.
package typeslocal
