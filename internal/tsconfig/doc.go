// Package tsconfig reads, edits, and writes a TypeScript project's
// tsconfig.json. It owns compilerOptions.baseUrl and compilerOptions.paths;
// every other key is carried through untouched and in its original order, so a
// rewrite only changes what the tool manages.
package tsconfig
