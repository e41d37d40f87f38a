package programs_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glbind/internal/programs"
	"github.com/Faultbox/glbind/pkg/glprog"
	"github.com/Faultbox/glbind/pkg/glprog/gltest"
	"github.com/Faultbox/glbind/pkg/math"
)

func TestTriangleAttrLayout(t *testing.T) {
	var a programs.TriangleAttr
	require.Equal(t, 2, a.FieldsCount())

	tests := []struct {
		name       string
		offset     uintptr
		typ        uint32
		comps      int
		normalized bool
	}{
		{"a_pos", unsafe.Offsetof(a.Pos), glprog.FLOAT, 3, false},
		{"a_color", unsafe.Offsetof(a.Color), glprog.UNSIGNED_BYTE, 4, true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, a.FieldGLName(i))
			assert.Equal(t, tt.offset, a.FieldOffset(i))
			assert.Equal(t, tt.typ, a.FieldType(i))
			assert.Equal(t, tt.comps, a.FieldNumComps(i))
			assert.Equal(t, tt.normalized, a.FieldNormalized(i))
		})
	}

	assert.PanicsWithValue(t, "glbind: nonexistent field 2 of TriangleAttr", func() { a.FieldGLName(2) })
	assert.PanicsWithValue(t, "glbind: nonexistent field -1 of TriangleAttr", func() { a.FieldOffset(-1) })
	assert.Panics(t, func() { a.FieldType(2) })
	assert.Panics(t, func() { a.FieldNumComps(2) })
	assert.Panics(t, func() { a.FieldNormalized(2) })
}

func TestQuadAttrLayout(t *testing.T) {
	var a programs.QuadAttr
	assert.Equal(t, 1, a.FieldsCount())
	assert.Equal(t, "a_corner", a.FieldGLName(0))
	assert.Equal(t, uintptr(0), a.FieldOffset(0))
	assert.Equal(t, uint32(glprog.FLOAT), a.FieldType(0))
	assert.Equal(t, 2, a.FieldNumComps(0))
	assert.False(t, a.FieldNormalized(0))
	assert.Panics(t, func() { a.FieldGLName(1) })
}

func TestCreatePrograms(t *testing.T) {
	ctx := gltest.New()
	tri, quad := new(programs.Triangle), new(programs.Quad)
	glprog.CreatePrograms(ctx, tri, quad)

	assert.Equal(t, glprog.ProgramData{Program: 1, VertexShader: 2, FragmentShader: 3}, tri.Data)
	assert.Equal(t, glprog.ProgramData{Program: 4, VertexShader: 5, FragmentShader: 6}, quad.Data)

	// Every program is allocated before any shader compiles.
	assert.Equal(t, []string{
		"CreateProgram() = 1",
		"CreateShader(VERTEX) = 2",
		"CreateShader(FRAGMENT) = 3",
		"CreateProgram() = 4",
		"CreateShader(VERTEX) = 5",
		"CreateShader(FRAGMENT) = 6",
		"ShaderSource(2)",
		"CompileShader(2)",
		"ShaderSource(3)",
		"CompileShader(3)",
		"ShaderSource(5)",
		"CompileShader(5)",
		"ShaderSource(6)",
		"CompileShader(6)",
		"AttachShader(1, 2)",
		"AttachShader(1, 3)",
		"BindAttribLocation(1, 0, a_pos)",
		"BindAttribLocation(1, 1, a_color)",
		"LinkProgram(1)",
		"AttachShader(4, 5)",
		"AttachShader(4, 6)",
		"BindAttribLocation(4, 0, a_corner)",
		"LinkProgram(4)",
	}, ctx.Calls)

	assert.Contains(t, ctx.Sources[2], "in vec3 a_pos;")
	assert.Contains(t, ctx.Sources[3], "uniform vec4 u_tint;")
	assert.Contains(t, ctx.Sources[5], "uniform mat4 u_transform;")
	assert.Contains(t, ctx.Sources[6], "uniform vec4 u_color;")
}

func TestAllocationFailure(t *testing.T) {
	ctx := gltest.New()
	ctx.FailAlloc = true
	assert.PanicsWithValue(t, "glbind: cannot initialize program for Quad", func() {
		programs.NewQuad(ctx)
	})
}

func TestCompileAndLinkFailures(t *testing.T) {
	if !glprog.Debug {
		t.Skip("status checks are compiled out under glbind_release")
	}

	ctx := gltest.New()
	ctx.CompileErrors[glprog.FRAGMENT_SHADER] = "0:7: 'frag_colour' : undeclared identifier"
	assert.PanicsWithValue(t,
		"glbind: error compiling fragment shader of Triangle: 0:7: 'frag_colour' : undeclared identifier",
		func() { programs.NewTriangle(ctx) })

	ctx = gltest.New()
	ctx.LinkError = "vertex output v_color not read by fragment shader"
	assert.PanicsWithValue(t,
		"glbind: error linking Quad: vertex output v_color not read by fragment shader",
		func() { programs.NewQuad(ctx) })
}

func TestTriangleDrawWithUniforms(t *testing.T) {
	ctx := gltest.New()
	tri := programs.NewTriangle(ctx)
	buf := tri.PrepareBuffer(ctx, programs.TriangleVertices(), glprog.StaticDraw)
	assert.Len(t, ctx.Buffers[buf.ID], 3*int(unsafe.Sizeof(programs.TriangleAttr{})))
	ctx.Clear()

	u := tri.WithUniforms().Time(1.5).Tint(math.Vec4{1, 0.5, 0.25, 1})
	require.NoError(t, tri.DrawWithUniforms(ctx, u, glprog.Triangles, buf, glprog.All()))

	assert.Equal(t, []string{
		"UseProgram(1)",
		"UniformLocation(1, u_tint)",
		"Uniform4f(0, 1, 0.5, 0.25, 1)",
		"UniformLocation(1, u_time)",
		"Uniform1f(1, 1.5)",
		"BindBuffer(0x8892, 4)",
		"AttribLocation(1, a_pos)",
		"EnableVertexAttribArray(0)",
		"VertexAttribPointer(0, 3, 0x1406, false, 16, 0)",
		"AttribLocation(1, a_color)",
		"EnableVertexAttribArray(1)",
		"VertexAttribPointer(1, 4, 0x1401, true, 16, 12)",
		"DrawArrays(4, 0, 3)",
	}, ctx.Calls)

	// Locations are resolved once.
	ctx.Clear()
	require.NoError(t, tri.DrawWithUniforms(ctx, u, glprog.Points, buf, glprog.Vertices(1, glprog.OpenEnd)))
	assert.Empty(t, ctx.Filter("UniformLocation"))
	assert.Empty(t, ctx.Filter("AttribLocation"))
	assert.Empty(t, ctx.Filter("EnableVertexAttribArray"))
	assert.Equal(t, []string{"DrawArrays(0, 1, 2)"}, ctx.Filter("Draw"))
}

func TestQuadDrawIndexed(t *testing.T) {
	ctx := gltest.New()
	quad := programs.NewQuad(ctx)
	buf := quad.PrepareBuffer(ctx, programs.QuadVertices(), glprog.StaticDraw)
	ix := glprog.NewIndices(ctx, programs.QuadIndices, glprog.StaticDraw)
	ctx.Clear()

	u := quad.WithUniforms().Transform(math.Identity()).Color(math.Vec4{1, 0.5, 0, 1})
	require.NoError(t, quad.DrawWithUniforms(ctx, u, glprog.Triangles, buf, glprog.Indexed(ix)))

	assert.Equal(t, []string{
		"UseProgram(1)",
		"UniformLocation(1, u_transform)",
		"UniformMatrix4fv(0, [1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1])",
		"UniformLocation(1, u_color)",
		"Uniform4f(1, 1, 0.5, 0, 1)",
		"BindBuffer(0x8892, 4)",
		"AttribLocation(1, a_corner)",
		"EnableVertexAttribArray(0)",
		"VertexAttribPointer(0, 2, 0x1406, false, 8, 0)",
		"BindBuffer(0x8893, 5)",
		"DrawElements(4, 6, 0x1403, 0)",
	}, ctx.Calls)

	ctx.Clear()
	require.NoError(t, quad.DrawWithUniforms(ctx, u, glprog.Triangles, buf, glprog.IndexedRange(ix, 3, glprog.OpenEnd)))
	assert.Equal(t, []string{"DrawElements(4, 3, 0x1403, 6)"}, ctx.Filter("DrawElements"))

	assert.PanicsWithValue(t, "glprog: draw range [0, 7) out of bounds for 6 elements", func() {
		quad.Draw(ctx, glprog.Triangles, buf, glprog.IndexedRange(ix, 0, 7))
	})
}

func TestDefaultUniforms(t *testing.T) {
	ctx := gltest.New()
	tri := programs.NewTriangle(ctx)
	buf := tri.PrepareBuffer(ctx, programs.TriangleVertices(), glprog.DynamicDraw)
	ctx.Clear()

	require.NoError(t, tri.DrawWithUniforms(ctx, tri.WithDefaultUniforms(), glprog.Triangles, buf, glprog.All()))
	assert.Equal(t, []string{"Uniform4f(0, 0, 0, 0, 0)"}, ctx.Filter("Uniform4f"))
	assert.Equal(t, []string{"Uniform1f(1, 0)"}, ctx.Filter("Uniform1f"))
}

func TestMissingUniform(t *testing.T) {
	ctx := gltest.New()
	ctx.Inactive["u_time"] = true
	tri := programs.NewTriangle(ctx)
	buf := tri.PrepareBuffer(ctx, programs.TriangleVertices(), glprog.StaticDraw)
	ctx.Clear()

	u := tri.WithUniforms().Tint(math.Vec4{1, 1, 1, 1}).Time(0)
	err := tri.DrawWithUniforms(ctx, u, glprog.Triangles, buf, glprog.All())
	require.Error(t, err)
	assert.True(t, errors.Is(err, glprog.ErrUniformNotFound))
	assert.Equal(t, `Triangle.Time: glprog: uniform location not found: "u_time"`, err.Error())
	assert.Empty(t, ctx.Filter("Draw"))

	// The miss is cached like a hit.
	ctx.Clear()
	require.Error(t, tri.DrawWithUniforms(ctx, u, glprog.Triangles, buf, glprog.All()))
	assert.Empty(t, ctx.Filter("UniformLocation"))
}

func TestInactiveAttributeSkipped(t *testing.T) {
	ctx := gltest.New()
	ctx.Inactive["a_color"] = true
	tri := programs.NewTriangle(ctx)
	buf := tri.PrepareBuffer(ctx, programs.TriangleVertices(), glprog.StaticDraw)
	ctx.Clear()

	tri.UseProgram(ctx)
	tri.Draw(ctx, glprog.Triangles, buf, glprog.All())
	assert.Equal(t, []string{"VertexAttribPointer(0, 3, 0x1406, false, 16, 0)"}, ctx.Filter("VertexAttribPointer"))
	assert.Equal(t, []string{"DrawArrays(4, 0, 3)"}, ctx.Filter("DrawArrays"))
}

func TestUniformsBoundToProgram(t *testing.T) {
	ctx := gltest.New()
	a, b := programs.NewTriangle(ctx), programs.NewTriangle(ctx)
	buf := a.PrepareBuffer(ctx, programs.TriangleVertices(), glprog.StaticDraw)

	u := a.WithUniforms().Tint(math.Vec4{}).Time(0)
	assert.PanicsWithValue(t, "glbind: uniforms built for another Triangle", func() {
		_ = b.DrawWithUniforms(ctx, u, glprog.Triangles, buf, glprog.All())
	})

	// A zero builder has no program and is accepted by any of them.
	assert.NoError(t, b.DrawWithUniforms(ctx, programs.TriangleUniforms{}, glprog.Triangles, buf, glprog.All()))
}

func TestReallocateResetsLocations(t *testing.T) {
	ctx := gltest.New()
	tri := programs.NewTriangle(ctx)
	buf := tri.PrepareBuffer(ctx, programs.TriangleVertices(), glprog.StaticDraw)
	require.NoError(t, tri.DrawWithUniforms(ctx, tri.WithDefaultUniforms(), glprog.Triangles, buf, glprog.All()))

	glprog.Create(ctx, tri)
	ctx.Clear()
	require.NoError(t, tri.DrawWithUniforms(ctx, tri.WithDefaultUniforms(), glprog.Triangles, buf, glprog.All()))
	assert.Equal(t, []string{"UniformLocation(5, u_tint)", "UniformLocation(5, u_time)"}, ctx.Filter("UniformLocation"))
}

func TestSetterRepeatedWithSetValuePanics(t *testing.T) {
	tri := programs.NewTriangle(gltest.New())
	u := tri.WithUniforms().Time(1).Tint(math.Vec4{})

	// Time now takes a glprog.Set, which only Take can reject.
	assert.PanicsWithValue(t, "glbind: uniform set twice or with wrong type: got glprog.Set, want float32", func() {
		u.Time(glprog.Set{})
	})
}
