package glprog

import "fmt"

// Indices is an element array buffer of 16 or 32 bit indices.
type Indices struct {
	ID    BufferID
	count int
	typ   uint32
}

// NewIndices creates an element buffer of 16 bit indices.
func NewIndices(ctx Context, indices []uint16, usage Usage) *Indices {
	ix := newIndices(ctx, UNSIGNED_SHORT, len(indices))
	ctx.BufferData(ELEMENT_ARRAY_BUFFER, recordBytes(indices), uint32(usage))
	return ix
}

// NewIndices32 creates an element buffer of 32 bit indices. WebGL 1 and
// OpenGL ES 2.0 need the OES_element_index_uint extension for those.
func NewIndices32(ctx Context, indices []uint32, usage Usage) (*Indices, error) {
	if !ctx.Extension("OES_element_index_uint") {
		return nil, fmt.Errorf("32 bit indices: %w: OES_element_index_uint", ErrExtensionUnavailable)
	}
	ix := newIndices(ctx, UNSIGNED_INT, len(indices))
	ctx.BufferData(ELEMENT_ARRAY_BUFFER, recordBytes(indices), uint32(usage))
	return ix, nil
}

func newIndices(ctx Context, typ uint32, count int) *Indices {
	id := ctx.CreateBuffer()
	if id == 0 {
		panic("glprog: cannot create index buffer")
	}
	ix := &Indices{ID: id, count: count, typ: typ}
	ix.Bind(ctx)
	return ix
}

// Len returns the number of indices.
func (ix *Indices) Len() int {
	return ix.count
}

// Type returns UNSIGNED_SHORT or UNSIGNED_INT.
func (ix *Indices) Type() uint32 {
	return ix.typ
}

// Bind makes ix the current element array buffer.
func (ix *Indices) Bind(ctx Context) {
	ctx.BindBuffer(ELEMENT_ARRAY_BUFFER, ix.ID)
}

func (ix *Indices) elemSize() int {
	if ix.typ == UNSIGNED_INT {
		return 4
	}
	return 2
}
