package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glbind/pkg/glprog"
	"github.com/Faultbox/glbind/pkg/glprog/gltest"
)

func TestFlatAttrReflection(t *testing.T) {
	var a FlatAttr
	assert.Equal(t, 1, a.FieldsCount())
	assert.Equal(t, "a_pos", a.FieldGLName(0))
	assert.Equal(t, 3, a.FieldNumComps(0))
	assert.Equal(t, uint32(glprog.FLOAT), a.FieldType(0))
	assert.Equal(t, uintptr(0), a.FieldOffset(0))
	assert.False(t, a.FieldNormalized(0))
	assert.PanicsWithValue(t, "glbind: nonexistent field 1 of FlatAttr", func() { a.FieldGLName(1) })
}

func TestFlatDrawWithUniforms(t *testing.T) {
	ctx := gltest.New()
	flat := NewFlat(ctx)
	assert.Contains(t, ctx.Sources[flat.data.VertexShader], "in vec3 a_pos;")
	assert.Contains(t, ctx.Sources[flat.data.FragmentShader], "uniform vec4 u_color;")

	buf := flat.PrepareBuffer(ctx, FlatVertices([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}), glprog.StaticDraw)
	assert.Len(t, ctx.Buffers[buf.ID], 3*12)
	ctx.Clear()

	u := flat.WithUniforms().u_color([4]float32{1, 0, 0, 1})
	require.NoError(t, flat.DrawWithUniforms(ctx, u, glprog.Triangles, buf, glprog.All()))
	assert.Equal(t, []string{
		"UseProgram(1)",
		"UniformLocation(1, u_color)",
		"Uniform4f(0, 1, 0, 0, 1)",
		"BindBuffer(0x8892, 4)",
		"AttribLocation(1, a_pos)",
		"EnableVertexAttribArray(0)",
		"VertexAttribPointer(0, 3, 0x1406, false, 12, 0)",
		"DrawArrays(4, 0, 3)",
	}, ctx.Calls)
}
