package glprog_test

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glbind/pkg/glprog"
	"github.com/Faultbox/glbind/pkg/glprog/gltest"
)

type vertex struct {
	Pos   [2]float32
	Color [4]uint8
}

func (vertex) FieldsCount() int { return 2 }

func (vertex) FieldGLName(i int) string {
	return [...]string{"a_pos", "a_color"}[i]
}

func (vertex) FieldOffset(i int) uintptr {
	var v vertex
	return [...]uintptr{unsafe.Offsetof(v.Pos), unsafe.Offsetof(v.Color)}[i]
}

func (vertex) FieldType(i int) uint32 {
	return [...]uint32{glprog.AttribType[[2]float32](), glprog.AttribType[[4]uint8]()}[i]
}

func (vertex) FieldNumComps(i int) int {
	return [...]int{glprog.AttribComps[[2]float32](), glprog.AttribComps[[4]uint8]()}[i]
}

func (vertex) FieldNormalized(i int) bool { return i == 1 }

type binder struct {
	applied int
}

func (b *binder) ApplyAttrs(ctx glprog.Context, buffer *glprog.Buffer[vertex]) {
	b.applied++
	buffer.Bind(ctx)
}

var triangle = []vertex{
	{Pos: [2]float32{0, 1}, Color: [4]uint8{255, 0, 0, 255}},
	{Pos: [2]float32{-1, -1}, Color: [4]uint8{0, 255, 0, 255}},
	{Pos: [2]float32{1, -1}, Color: [4]uint8{0, 0, 255, 255}},
}

func TestNewBuffer(t *testing.T) {
	ctx := gltest.New()
	buf := glprog.NewBuffer(ctx, triangle, glprog.StaticDraw)

	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, []string{
		"CreateBuffer() = 1",
		"BindBuffer(0x8892, 1)",
		"BufferData(0x8892, 36, 0x88e4)",
	}, ctx.Calls)
	assert.Len(t, ctx.Buffers[buf.ID], 36)
	assert.Equal(t, byte(255), ctx.Buffers[buf.ID][8], "first color byte of the first record")

	ctx.Clear()
	buf.BindToAttr(ctx, 5, 1)
	assert.Equal(t, []string{"VertexAttribPointer(5, 4, 0x1401, true, 12, 8)"}, ctx.Calls)
}

func TestNewBufferFailure(t *testing.T) {
	ctx := gltest.New()
	ctx.FailAlloc = true
	assert.Panics(t, func() {
		glprog.NewBuffer(ctx, triangle, glprog.StaticDraw)
	})
}

func TestDrawArrays(t *testing.T) {
	tests := []struct {
		sel  glprog.Selection
		want string
	}{
		{glprog.All(), "DrawArrays(4, 0, 3)"},
		{glprog.Vertices(1, 3), "DrawArrays(4, 1, 2)"},
		{glprog.Vertices(1, glprog.OpenEnd), "DrawArrays(4, 1, 2)"},
		{glprog.Vertices(2, 2), "DrawArrays(4, 2, 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ctx := gltest.New()
			buf := glprog.NewBuffer(ctx, triangle, glprog.StaticDraw)
			b := &binder{}
			glprog.Draw[vertex](ctx, glprog.Triangles, b, buf, tt.sel)

			assert.Equal(t, 1, b.applied)
			assert.Equal(t, tt.want, ctx.Calls[len(ctx.Calls)-1])
		})
	}
}

func TestDrawElements(t *testing.T) {
	ctx := gltest.New()
	buf := glprog.NewBuffer(ctx, triangle, glprog.StaticDraw)
	ix := glprog.NewIndices(ctx, []uint16{0, 1, 2, 2, 1, 0}, glprog.StaticDraw)
	require.Equal(t, uint32(glprog.UNSIGNED_SHORT), ix.Type())

	b := &binder{}
	glprog.Draw[vertex](ctx, glprog.Triangles, b, buf, glprog.Indexed(ix))
	assert.Equal(t, "DrawElements(4, 6, 0x1403, 0)", ctx.Calls[len(ctx.Calls)-1])

	glprog.Draw[vertex](ctx, glprog.Lines, b, buf, glprog.IndexedRange(ix, 2, glprog.OpenEnd))
	assert.Equal(t, "DrawElements(1, 4, 0x1403, 4)", ctx.Calls[len(ctx.Calls)-1])
	assert.Equal(t, fmt.Sprintf("BindBuffer(0x8893, %d)", ix.ID), ctx.Calls[len(ctx.Calls)-2])
}

func TestDrawOutOfRange(t *testing.T) {
	ctx := gltest.New()
	buf := glprog.NewBuffer(ctx, triangle, glprog.StaticDraw)
	ix := glprog.NewIndices(ctx, []uint16{0, 1, 2}, glprog.StaticDraw)

	for name, sel := range map[string]glprog.Selection{
		"past end":      glprog.Vertices(2, 5),
		"inverted":      glprog.Vertices(2, 1),
		"negative":      glprog.Vertices(-1, 2),
		"indices":       glprog.IndexedRange(ix, 0, 4),
		"open past end": glprog.IndexedRange(ix, 4, glprog.OpenEnd),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, func() {
				glprog.Draw[vertex](ctx, glprog.Triangles, &binder{}, buf, sel)
			})
		})
	}
}

func TestIndices32(t *testing.T) {
	ctx := gltest.New()
	_, err := glprog.NewIndices32(ctx, []uint32{0, 1, 2}, glprog.StaticDraw)
	require.ErrorIs(t, err, glprog.ErrExtensionUnavailable)

	ctx.Extensions["OES_element_index_uint"] = true
	ix, err := glprog.NewIndices32(ctx, []uint32{0, 1, 2, 2, 1, 0}, glprog.DynamicDraw)
	require.NoError(t, err)
	assert.Equal(t, uint32(glprog.UNSIGNED_INT), ix.Type())
	assert.Equal(t, 6, ix.Len())
	assert.Len(t, ctx.Buffers[ix.ID], 24)

	buf := glprog.NewBuffer(ctx, triangle, glprog.StaticDraw)
	glprog.Draw[vertex](ctx, glprog.Triangles, &binder{}, buf, glprog.IndexedRange(ix, 3, 6))
	assert.Equal(t, "DrawElements(4, 3, 0x1405, 12)", ctx.Calls[len(ctx.Calls)-1])
}
