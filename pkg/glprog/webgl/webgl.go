//go:build js && wasm

// Package webgl implements glprog.Context on a browser WebGL rendering
// context through syscall/js.
package webgl

import (
	"errors"
	"syscall/js"

	"github.com/Faultbox/glbind/pkg/glprog"
)

// Context maps glprog handles to the JavaScript objects WebGL hands out.
// Handle 0 is never issued, so a failed allocation reads as 0.
type Context struct {
	gl js.Value

	programs map[glprog.ProgramID]js.Value
	shaders  map[glprog.ShaderID]js.Value
	buffers  map[glprog.BufferID]js.Value
	uniforms locations[js.Value]
	next     uint32

	extensions map[string]bool
}

// New wraps the "webgl" context of the given canvas element.
func New(canvas js.Value) (*Context, error) {
	gl := canvas.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		return nil, errors.New("webgl: context unavailable")
	}
	return Wrap(gl), nil
}

// Wrap uses an already acquired WebGLRenderingContext.
func Wrap(gl js.Value) *Context {
	return &Context{
		gl:         gl,
		programs:   make(map[glprog.ProgramID]js.Value),
		shaders:    make(map[glprog.ShaderID]js.Value),
		buffers:    make(map[glprog.BufferID]js.Value),
		extensions: make(map[string]bool),
	}
}

func (c *Context) id(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	c.next++
	return c.next
}

func (c *Context) CreateProgram() glprog.ProgramID {
	v := c.gl.Call("createProgram")
	id := glprog.ProgramID(c.id(v))
	if id != 0 {
		c.programs[id] = v
	}
	return id
}

func (c *Context) CreateShader(kind uint32) glprog.ShaderID {
	v := c.gl.Call("createShader", kind)
	id := glprog.ShaderID(c.id(v))
	if id != 0 {
		c.shaders[id] = v
	}
	return id
}

func (c *Context) ShaderSource(s glprog.ShaderID, src string) {
	c.gl.Call("shaderSource", c.shaders[s], src)
}

func (c *Context) CompileShader(s glprog.ShaderID) {
	c.gl.Call("compileShader", c.shaders[s])
}

func (c *Context) ShaderCompileStatus(s glprog.ShaderID) bool {
	return c.gl.Call("getShaderParameter", c.shaders[s], c.gl.Get("COMPILE_STATUS")).Truthy()
}

func (c *Context) ShaderInfoLog(s glprog.ShaderID) string {
	return str(c.gl.Call("getShaderInfoLog", c.shaders[s]))
}

func (c *Context) AttachShader(p glprog.ProgramID, s glprog.ShaderID) {
	c.gl.Call("attachShader", c.programs[p], c.shaders[s])
}

func (c *Context) BindAttribLocation(p glprog.ProgramID, index uint32, name string) {
	c.gl.Call("bindAttribLocation", c.programs[p], index, name)
}

func (c *Context) LinkProgram(p glprog.ProgramID) {
	c.gl.Call("linkProgram", c.programs[p])
	c.uniforms.refresh(p, func(name string) js.Value {
		return c.gl.Call("getUniformLocation", c.programs[p], name)
	})
}

func (c *Context) ProgramLinkStatus(p glprog.ProgramID) bool {
	return c.gl.Call("getProgramParameter", c.programs[p], c.gl.Get("LINK_STATUS")).Truthy()
}

func (c *Context) ProgramInfoLog(p glprog.ProgramID) string {
	return str(c.gl.Call("getProgramInfoLog", c.programs[p]))
}

func (c *Context) UseProgram(p glprog.ProgramID) {
	c.gl.Call("useProgram", c.programs[p])
}

func (c *Context) AttribLocation(p glprog.ProgramID, name string) int32 {
	return int32(c.gl.Call("getAttribLocation", c.programs[p], name).Int())
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.gl.Call("enableVertexAttribArray", index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	c.gl.Call("vertexAttribPointer", index, size, typ, normalized, stride, offset)
}

// UniformLocation returns an index into a per-context table of
// WebGLUniformLocation objects, one slot per program and name.
func (c *Context) UniformLocation(p glprog.ProgramID, name string) (glprog.UniformLocation, bool) {
	l := c.uniforms.resolve(p, name, func() js.Value {
		return c.gl.Call("getUniformLocation", c.programs[p], name)
	})
	if c.uniforms.value(l).IsNull() {
		return -1, false
	}
	return l, true
}

func (c *Context) uniform(l glprog.UniformLocation) js.Value {
	return c.uniforms.value(l)
}

func (c *Context) Uniform1i(l glprog.UniformLocation, x int32) {
	c.gl.Call("uniform1i", c.uniform(l), x)
}

func (c *Context) Uniform2i(l glprog.UniformLocation, x, y int32) {
	c.gl.Call("uniform2i", c.uniform(l), x, y)
}

func (c *Context) Uniform3i(l glprog.UniformLocation, x, y, z int32) {
	c.gl.Call("uniform3i", c.uniform(l), x, y, z)
}

func (c *Context) Uniform4i(l glprog.UniformLocation, x, y, z, w int32) {
	c.gl.Call("uniform4i", c.uniform(l), x, y, z, w)
}

func (c *Context) Uniform1f(l glprog.UniformLocation, x float32) {
	c.gl.Call("uniform1f", c.uniform(l), x)
}

func (c *Context) Uniform2f(l glprog.UniformLocation, x, y float32) {
	c.gl.Call("uniform2f", c.uniform(l), x, y)
}

func (c *Context) Uniform3f(l glprog.UniformLocation, x, y, z float32) {
	c.gl.Call("uniform3f", c.uniform(l), x, y, z)
}

func (c *Context) Uniform4f(l glprog.UniformLocation, x, y, z, w float32) {
	c.gl.Call("uniform4f", c.uniform(l), x, y, z, w)
}

func (c *Context) UniformMatrix2fv(l glprog.UniformLocation, m []float32) {
	c.gl.Call("uniformMatrix2fv", c.uniform(l), false, float32Array(m))
}

func (c *Context) UniformMatrix3fv(l glprog.UniformLocation, m []float32) {
	c.gl.Call("uniformMatrix3fv", c.uniform(l), false, float32Array(m))
}

func (c *Context) UniformMatrix4fv(l glprog.UniformLocation, m []float32) {
	c.gl.Call("uniformMatrix4fv", c.uniform(l), false, float32Array(m))
}

func (c *Context) CreateBuffer() glprog.BufferID {
	v := c.gl.Call("createBuffer")
	id := glprog.BufferID(c.id(v))
	if id != 0 {
		c.buffers[id] = v
	}
	return id
}

func (c *Context) BindBuffer(target uint32, b glprog.BufferID) {
	if b == 0 {
		c.gl.Call("bindBuffer", target, js.Null())
		return
	}
	c.gl.Call("bindBuffer", target, c.buffers[b])
}

func (c *Context) BufferData(target uint32, data []byte, usage uint32) {
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	c.gl.Call("bufferData", target, arr, usage)
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.gl.Call("drawArrays", mode, first, count)
}

func (c *Context) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	c.gl.Call("drawElements", mode, count, typ, offset)
}

// Extension enables the named extension and reports whether the browser
// provides it.
func (c *Context) Extension(name string) bool {
	ok, seen := c.extensions[name]
	if !seen {
		ext := c.gl.Call("getExtension", name)
		ok = !ext.IsNull() && !ext.IsUndefined()
		c.extensions[name] = ok
	}
	return ok
}

func float32Array(m []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(m))
	for i, v := range m {
		arr.SetIndex(i, v)
	}
	return arr
}

func str(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

var _ glprog.Context = (*Context)(nil)
