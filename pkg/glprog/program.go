package glprog

// ProgramData holds the GL objects backing one generated program.
// A program struct has exactly one field of this type.
type ProgramData struct {
	Program        ProgramID
	VertexShader   ShaderID
	FragmentShader ShaderID
}

// Lifecycle is implemented by every generated program. The phases must run
// in order: Allocate, CompileShaders, LinkShaders.
type Lifecycle interface {
	// Allocate creates the program and shader objects and resets every
	// cached location.
	Allocate(ctx Context)
	// CompileShaders uploads and compiles the vertex and fragment sources.
	CompileShaders(ctx Context)
	// LinkShaders attaches both shaders and links the program.
	LinkShaders(ctx Context)
}

// Create runs every lifecycle phase of p.
func Create(ctx Context, p Lifecycle) {
	CreatePrograms(ctx, p)
}

// CreatePrograms allocates all programs, then compiles all of them, then
// links all of them. Drivers that compile in the background can overlap
// the work of several programs this way.
func CreatePrograms(ctx Context, progs ...Lifecycle) {
	for _, p := range progs {
		p.Allocate(ctx)
	}
	for _, p := range progs {
		p.CompileShaders(ctx)
	}
	for _, p := range progs {
		p.LinkShaders(ctx)
	}
}
