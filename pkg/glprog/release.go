//go:build glbind_release

package glprog

// Debug enables shader compile and link status checks in generated code.
const Debug = false
