package glprog

import "fmt"

// Mode is the primitive type of a draw call.
type Mode uint32

const (
	Points        Mode = POINTS
	Lines         Mode = LINES
	LineLoop      Mode = LINE_LOOP
	LineStrip     Mode = LINE_STRIP
	Triangles     Mode = TRIANGLES
	TriangleStrip Mode = TRIANGLE_STRIP
	TriangleFan   Mode = TRIANGLE_FAN
)

// OpenEnd as the end of a range means "up to the last element".
const OpenEnd = -1

// Selection picks the vertices or indices consumed by a draw call.
// Ranges are half open.
type Selection struct {
	indices    *Indices
	start, end int
}

// All selects every vertex of the buffer.
func All() Selection {
	return Selection{end: OpenEnd}
}

// Vertices selects vertices [start, end).
func Vertices(start, end int) Selection {
	return Selection{start: start, end: end}
}

// Indexed draws every index of ix.
func Indexed(ix *Indices) Selection {
	return Selection{indices: ix, end: OpenEnd}
}

// IndexedRange draws indices [start, end) of ix.
func IndexedRange(ix *Indices, start, end int) Selection {
	return Selection{indices: ix, start: start, end: end}
}

// AttrBinder binds the attributes of a program to a buffer of T.
type AttrBinder[T AttrStruct] interface {
	ApplyAttrs(ctx Context, buffer *Buffer[T])
}

// Draw applies the program's attributes to buffer and draws sel.
// The program must be in use. Draw panics when sel does not fit the
// buffer or index count.
func Draw[T AttrStruct](ctx Context, mode Mode, prog AttrBinder[T], buffer *Buffer[T], sel Selection) {
	prog.ApplyAttrs(ctx, buffer)
	if sel.indices == nil {
		start, end := resolveRange(sel.start, sel.end, buffer.Len())
		ctx.DrawArrays(uint32(mode), int32(start), int32(end-start))
		return
	}
	ix := sel.indices
	start, end := resolveRange(sel.start, sel.end, ix.Len())
	ix.Bind(ctx)
	ctx.DrawElements(uint32(mode), int32(end-start), ix.typ, start*ix.elemSize())
}

func resolveRange(start, end, n int) (int, int) {
	if end == OpenEnd {
		end = n
	}
	if start < 0 || start > end || end > n {
		panic(fmt.Sprintf("glprog: draw range [%d, %d) out of bounds for %d elements", start, end, n))
	}
	return start, end
}
