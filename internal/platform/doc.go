// Package platform provides the filesystem primitives shared by the stub
// scaffolder and the tsconfig writer: atomic file replacement, permission
// management, and pruning of directories left empty after a removal. On Unix
// systems chmod is applied directly; on Windows permission bits are ignored.
package platform
