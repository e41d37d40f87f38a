// Package gltest provides a glprog.Context that records calls instead of
// talking to a driver, for testing generated programs without a GPU.
package gltest

import (
	"fmt"
	"strings"

	"github.com/Faultbox/glbind/pkg/glprog"
)

// Context records every GL call as a string such as
// "BindAttribLocation(1, 0, a_pos)" and simulates the little driver state
// that generated code observes: object allocation, compile and link
// status, and attribute and uniform locations.
type Context struct {
	Calls []string

	// FailAlloc makes every Create* call return 0.
	FailAlloc bool
	// CompileErrors maps a shader kind to the info log of a failed compile.
	CompileErrors map[uint32]string
	// LinkError, when set, fails every link with this info log.
	LinkError string
	// Inactive names have no attribute or uniform location.
	Inactive map[string]bool
	// Extensions lists the extensions Extension reports as available.
	Extensions map[string]bool

	// Sources holds the last source uploaded to each shader.
	Sources map[glprog.ShaderID]string
	// Buffers holds the last data uploaded to each buffer.
	Buffers map[glprog.BufferID][]byte

	nextID   uint32
	kinds    map[glprog.ShaderID]uint32
	attribs  map[glprog.ProgramID]map[string]int32
	uniforms map[glprog.ProgramID]map[string]glprog.UniformLocation
	bound    map[uint32]glprog.BufferID
}

// New returns an empty recording context.
func New() *Context {
	return &Context{
		CompileErrors: make(map[uint32]string),
		Inactive:      make(map[string]bool),
		Extensions:    make(map[string]bool),
		Sources:       make(map[glprog.ShaderID]string),
		Buffers:       make(map[glprog.BufferID][]byte),
		kinds:         make(map[glprog.ShaderID]uint32),
		attribs:       make(map[glprog.ProgramID]map[string]int32),
		uniforms:      make(map[glprog.ProgramID]map[string]glprog.UniformLocation),
		bound:         make(map[uint32]glprog.BufferID),
	}
}

// Filter returns the recorded calls starting with prefix.
func (c *Context) Filter(prefix string) []string {
	var out []string
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			out = append(out, call)
		}
	}
	return out
}

// Clear drops the recorded calls but keeps the simulated state.
func (c *Context) Clear() {
	c.Calls = nil
}

func (c *Context) record(format string, args ...any) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) alloc() uint32 {
	if c.FailAlloc {
		return 0
	}
	c.nextID++
	return c.nextID
}

func (c *Context) CreateProgram() glprog.ProgramID {
	id := glprog.ProgramID(c.alloc())
	c.record("CreateProgram() = %d", id)
	return id
}

func (c *Context) CreateShader(kind uint32) glprog.ShaderID {
	id := glprog.ShaderID(c.alloc())
	c.kinds[id] = kind
	c.record("CreateShader(%s) = %d", kindName(kind), id)
	return id
}

func (c *Context) ShaderSource(s glprog.ShaderID, src string) {
	c.Sources[s] = src
	c.record("ShaderSource(%d)", s)
}

func (c *Context) CompileShader(s glprog.ShaderID) {
	c.record("CompileShader(%d)", s)
}

func (c *Context) ShaderCompileStatus(s glprog.ShaderID) bool {
	return c.CompileErrors[c.kinds[s]] == ""
}

func (c *Context) ShaderInfoLog(s glprog.ShaderID) string {
	return c.CompileErrors[c.kinds[s]]
}

func (c *Context) AttachShader(p glprog.ProgramID, s glprog.ShaderID) {
	c.record("AttachShader(%d, %d)", p, s)
}

func (c *Context) BindAttribLocation(p glprog.ProgramID, index uint32, name string) {
	c.programAttribs(p)[name] = int32(index)
	c.record("BindAttribLocation(%d, %d, %s)", p, index, name)
}

func (c *Context) LinkProgram(p glprog.ProgramID) {
	c.record("LinkProgram(%d)", p)
}

func (c *Context) ProgramLinkStatus(glprog.ProgramID) bool {
	return c.LinkError == ""
}

func (c *Context) ProgramInfoLog(glprog.ProgramID) string {
	return c.LinkError
}

func (c *Context) UseProgram(p glprog.ProgramID) {
	c.record("UseProgram(%d)", p)
}

func (c *Context) AttribLocation(p glprog.ProgramID, name string) int32 {
	c.record("AttribLocation(%d, %s)", p, name)
	if c.Inactive[name] {
		return -1
	}
	attribs := c.programAttribs(p)
	loc, ok := attribs[name]
	if !ok {
		loc = int32(len(attribs))
		attribs[name] = loc
	}
	return loc
}

func (c *Context) programAttribs(p glprog.ProgramID) map[string]int32 {
	m, ok := c.attribs[p]
	if !ok {
		m = make(map[string]int32)
		c.attribs[p] = m
	}
	return m
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray(%d)", index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	c.record("VertexAttribPointer(%d, %d, %#x, %t, %d, %d)", index, size, typ, normalized, stride, offset)
}

func (c *Context) UniformLocation(p glprog.ProgramID, name string) (glprog.UniformLocation, bool) {
	c.record("UniformLocation(%d, %s)", p, name)
	if c.Inactive[name] {
		return 0, false
	}
	m, ok := c.uniforms[p]
	if !ok {
		m = make(map[string]glprog.UniformLocation)
		c.uniforms[p] = m
	}
	loc, ok := m[name]
	if !ok {
		loc = glprog.UniformLocation(len(m))
		m[name] = loc
	}
	return loc, true
}

func (c *Context) Uniform1i(l glprog.UniformLocation, x int32) {
	c.record("Uniform1i(%d, %d)", l, x)
}

func (c *Context) Uniform2i(l glprog.UniformLocation, x, y int32) {
	c.record("Uniform2i(%d, %d, %d)", l, x, y)
}

func (c *Context) Uniform3i(l glprog.UniformLocation, x, y, z int32) {
	c.record("Uniform3i(%d, %d, %d, %d)", l, x, y, z)
}

func (c *Context) Uniform4i(l glprog.UniformLocation, x, y, z, w int32) {
	c.record("Uniform4i(%d, %d, %d, %d, %d)", l, x, y, z, w)
}

func (c *Context) Uniform1f(l glprog.UniformLocation, x float32) {
	c.record("Uniform1f(%d, %v)", l, x)
}

func (c *Context) Uniform2f(l glprog.UniformLocation, x, y float32) {
	c.record("Uniform2f(%d, %v, %v)", l, x, y)
}

func (c *Context) Uniform3f(l glprog.UniformLocation, x, y, z float32) {
	c.record("Uniform3f(%d, %v, %v, %v)", l, x, y, z)
}

func (c *Context) Uniform4f(l glprog.UniformLocation, x, y, z, w float32) {
	c.record("Uniform4f(%d, %v, %v, %v, %v)", l, x, y, z, w)
}

func (c *Context) UniformMatrix2fv(l glprog.UniformLocation, m []float32) {
	c.record("UniformMatrix2fv(%d, %v)", l, m)
}

func (c *Context) UniformMatrix3fv(l glprog.UniformLocation, m []float32) {
	c.record("UniformMatrix3fv(%d, %v)", l, m)
}

func (c *Context) UniformMatrix4fv(l glprog.UniformLocation, m []float32) {
	c.record("UniformMatrix4fv(%d, %v)", l, m)
}

func (c *Context) CreateBuffer() glprog.BufferID {
	id := glprog.BufferID(c.alloc())
	c.record("CreateBuffer() = %d", id)
	return id
}

func (c *Context) BindBuffer(target uint32, b glprog.BufferID) {
	c.bound[target] = b
	c.record("BindBuffer(%#x, %d)", target, b)
}

func (c *Context) BufferData(target uint32, data []byte, usage uint32) {
	c.Buffers[c.bound[target]] = append([]byte(nil), data...)
	c.record("BufferData(%#x, %d, %#x)", target, len(data), usage)
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.record("DrawArrays(%d, %d, %d)", mode, first, count)
}

func (c *Context) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	c.record("DrawElements(%d, %d, %#x, %d)", mode, count, typ, offset)
}

func (c *Context) Extension(name string) bool {
	c.record("Extension(%s)", name)
	return c.Extensions[name]
}

func kindName(kind uint32) string {
	switch kind {
	case glprog.VERTEX_SHADER:
		return "VERTEX"
	case glprog.FRAGMENT_SHADER:
		return "FRAGMENT"
	}
	return fmt.Sprintf("%#x", kind)
}

var _ glprog.Context = (*Context)(nil)
