// Package gogl implements glprog.Context on desktop OpenGL 4.1 core
// through go-gl.
package gogl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glbind/pkg/glprog"
)

// Context issues glprog calls on the current OpenGL context.
// IMPORTANT: Must be created AFTER the OpenGL context is made current,
// and used only from the thread owning it.
type Context struct {
	vao        uint32
	extensions map[string]bool
}

// New initializes the GL function pointers and binds a vertex array
// object, which the core profile requires for attribute setup.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	return c, nil
}

// Close releases the vertex array object.
func (c *Context) Close() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}

// Version returns the GL version and renderer strings.
func (c *Context) Version() (version, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER))
}

func (c *Context) CreateProgram() glprog.ProgramID {
	return glprog.ProgramID(gl.CreateProgram())
}

func (c *Context) CreateShader(kind uint32) glprog.ShaderID {
	return glprog.ShaderID(gl.CreateShader(kind))
}

func (c *Context) ShaderSource(s glprog.ShaderID, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
}

func (c *Context) CompileShader(s glprog.ShaderID) {
	gl.CompileShader(uint32(s))
}

func (c *Context) ShaderCompileStatus(s glprog.ShaderID) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(s glprog.ShaderID) string {
	var logLen int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(uint32(s), logLen, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (c *Context) AttachShader(p glprog.ProgramID, s glprog.ShaderID) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) BindAttribLocation(p glprog.ProgramID, index uint32, name string) {
	gl.BindAttribLocation(uint32(p), index, gl.Str(name+"\x00"))
}

func (c *Context) LinkProgram(p glprog.ProgramID) {
	gl.LinkProgram(uint32(p))
}

func (c *Context) ProgramLinkStatus(p glprog.ProgramID) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(p glprog.ProgramID) string {
	var logLen int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(uint32(p), logLen, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (c *Context) UseProgram(p glprog.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (c *Context) AttribLocation(p glprog.ProgramID, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, typ, normalized, stride, offset)
}

func (c *Context) UniformLocation(p glprog.ProgramID, name string) (glprog.UniformLocation, bool) {
	loc := gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
	return glprog.UniformLocation(loc), loc >= 0
}

func (c *Context) Uniform1i(l glprog.UniformLocation, x int32) {
	gl.Uniform1i(int32(l), x)
}

func (c *Context) Uniform2i(l glprog.UniformLocation, x, y int32) {
	gl.Uniform2i(int32(l), x, y)
}

func (c *Context) Uniform3i(l glprog.UniformLocation, x, y, z int32) {
	gl.Uniform3i(int32(l), x, y, z)
}

func (c *Context) Uniform4i(l glprog.UniformLocation, x, y, z, w int32) {
	gl.Uniform4i(int32(l), x, y, z, w)
}

func (c *Context) Uniform1f(l glprog.UniformLocation, x float32) {
	gl.Uniform1f(int32(l), x)
}

func (c *Context) Uniform2f(l glprog.UniformLocation, x, y float32) {
	gl.Uniform2f(int32(l), x, y)
}

func (c *Context) Uniform3f(l glprog.UniformLocation, x, y, z float32) {
	gl.Uniform3f(int32(l), x, y, z)
}

func (c *Context) Uniform4f(l glprog.UniformLocation, x, y, z, w float32) {
	gl.Uniform4f(int32(l), x, y, z, w)
}

func (c *Context) UniformMatrix2fv(l glprog.UniformLocation, m []float32) {
	gl.UniformMatrix2fv(int32(l), 1, false, &m[0])
}

func (c *Context) UniformMatrix3fv(l glprog.UniformLocation, m []float32) {
	gl.UniformMatrix3fv(int32(l), 1, false, &m[0])
}

func (c *Context) UniformMatrix4fv(l glprog.UniformLocation, m []float32) {
	gl.UniformMatrix4fv(int32(l), 1, false, &m[0])
}

func (c *Context) CreateBuffer() glprog.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return glprog.BufferID(id)
}

func (c *Context) BindBuffer(target uint32, b glprog.BufferID) {
	gl.BindBuffer(target, uint32(b))
}

func (c *Context) BufferData(target uint32, data []byte, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (c *Context) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	gl.DrawElementsWithOffset(mode, count, typ, uintptr(offset))
}

// Extension reports whether the context supports name. 32 bit element
// indices are core in desktop OpenGL, so the OES extension always is.
func (c *Context) Extension(name string) bool {
	if name == "OES_element_index_uint" {
		return true
	}
	if c.extensions == nil {
		c.extensions = make(map[string]bool)
		var n int32
		gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
		for i := int32(0); i < n; i++ {
			c.extensions[gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i)))] = true
		}
	}
	return c.extensions[name]
}

var _ glprog.Context = (*Context)(nil)
