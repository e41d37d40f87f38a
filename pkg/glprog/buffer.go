package glprog

import "unsafe"

// Usage hints how often buffer contents change.
type Usage uint32

const (
	StaticDraw  Usage = STATIC_DRAW
	DynamicDraw Usage = DYNAMIC_DRAW
	StreamDraw  Usage = STREAM_DRAW
)

// AttrStruct describes the vertex layout of a record type. Generated
// attribute structs implement it with value receivers, so the zero value
// answers every query.
type AttrStruct interface {
	FieldsCount() int
	FieldGLName(i int) string
	FieldOffset(i int) uintptr
	FieldType(i int) uint32
	FieldNumComps(i int) int
	FieldNormalized(i int) bool
}

// Buffer is a vertex buffer holding records of type T.
type Buffer[T AttrStruct] struct {
	ID    BufferID
	count int
}

// NewBuffer creates a vertex buffer and uploads items into it.
func NewBuffer[T AttrStruct](ctx Context, items []T, usage Usage) *Buffer[T] {
	id := ctx.CreateBuffer()
	if id == 0 {
		panic("glprog: cannot create vertex buffer")
	}
	b := &Buffer[T]{ID: id}
	b.Upload(ctx, items, usage)
	return b
}

// Upload replaces the buffer contents with items.
func (b *Buffer[T]) Upload(ctx Context, items []T, usage Usage) {
	b.Bind(ctx)
	ctx.BufferData(ARRAY_BUFFER, recordBytes(items), uint32(usage))
	b.count = len(items)
}

// Len returns the number of records in the buffer.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Bind makes b the current array buffer.
func (b *Buffer[T]) Bind(ctx Context) {
	ctx.BindBuffer(ARRAY_BUFFER, b.ID)
}

// BindToAttr points the attribute at location to field of every record.
// The buffer must be bound.
func (b *Buffer[T]) BindToAttr(ctx Context, location uint32, field int) {
	var rec T
	ctx.VertexAttribPointer(
		location,
		int32(rec.FieldNumComps(field)),
		rec.FieldType(field),
		rec.FieldNormalized(field),
		int32(unsafe.Sizeof(rec)),
		rec.FieldOffset(field),
	)
}

// recordBytes views items as raw bytes without copying.
func recordBytes[T any](items []T) []byte {
	if len(items) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(items[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&items[0])), len(items)*size)
}
