// Package glprog holds the runtime types that code generated by glbindgen
// builds on: GL object handles, lazily resolved attribute and uniform
// locations, vertex and index buffers, and the draw helpers.
//
// The GL entry points themselves are reached through [Context], which is
// implemented for desktop OpenGL by package gogl and for WebGL by package
// webgl. All calls are expected to happen on the goroutine that owns the
// GL context.
package glprog

// ProgramID identifies a program object. Zero means allocation failed.
type ProgramID uint32

// ShaderID identifies a shader object. Zero means allocation failed.
type ShaderID uint32

// BufferID identifies a buffer object. Zero means allocation failed.
type BufferID uint32

// UniformLocation identifies a uniform within a linked program.
type UniformLocation int32

// GL enum values shared by OpenGL ES 2.0, WebGL 1 and desktop OpenGL.
const (
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STREAM_DRAW          = 0x88E0
	STATIC_DRAW          = 0x88E4
	DYNAMIC_DRAW         = 0x88E8

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
)

// Context is the set of GL calls generated programs and the helpers in
// this package issue. Implementations translate them to a concrete API.
type Context interface {
	CreateProgram() ProgramID
	CreateShader(kind uint32) ShaderID
	ShaderSource(s ShaderID, src string)
	CompileShader(s ShaderID)
	ShaderCompileStatus(s ShaderID) bool
	ShaderInfoLog(s ShaderID) string
	AttachShader(p ProgramID, s ShaderID)
	BindAttribLocation(p ProgramID, index uint32, name string)
	LinkProgram(p ProgramID)
	ProgramLinkStatus(p ProgramID) bool
	ProgramInfoLog(p ProgramID) string
	UseProgram(p ProgramID)

	// AttribLocation returns -1 when the attribute is not active.
	AttribLocation(p ProgramID, name string) int32
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr)

	// UniformLocation reports false when the uniform is not active.
	UniformLocation(p ProgramID, name string) (UniformLocation, bool)
	Uniform1i(l UniformLocation, x int32)
	Uniform2i(l UniformLocation, x, y int32)
	Uniform3i(l UniformLocation, x, y, z int32)
	Uniform4i(l UniformLocation, x, y, z, w int32)
	Uniform1f(l UniformLocation, x float32)
	Uniform2f(l UniformLocation, x, y float32)
	Uniform3f(l UniformLocation, x, y, z float32)
	Uniform4f(l UniformLocation, x, y, z, w float32)
	// Matrices are column-major and never transposed.
	UniformMatrix2fv(l UniformLocation, m []float32)
	UniformMatrix3fv(l UniformLocation, m []float32)
	UniformMatrix4fv(l UniformLocation, m []float32)

	CreateBuffer() BufferID
	BindBuffer(target uint32, b BufferID)
	BufferData(target uint32, data []byte, usage uint32)

	DrawArrays(mode uint32, first, count int32)
	// DrawElements takes offset in bytes into the bound element buffer.
	DrawElements(mode uint32, count int32, typ uint32, offset int)

	// Extension enables the named extension and reports whether it is available.
	Extension(name string) bool
}
