//go:build !glbind_release

package glprog

// Debug enables shader compile and link status checks in generated code.
// Build with -tags glbind_release to skip them.
const Debug = true
