// Package stub creates and removes local type-declaration stub packages. Each
// stub lives at types-local/<module>/ inside a project and holds an index.d.ts
// rendered from an embedded template plus a package.json descriptor named
// @types/<module>, so the TypeScript compiler can resolve the module without a
// published @types package.
package stub
