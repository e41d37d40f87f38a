package glprog

import (
	"fmt"
	"reflect"

	"github.com/Faultbox/glbind/pkg/math"
)

// AttributeValue is the set of types a vertex attribute may hold.
type AttributeValue interface {
	~int8 | ~int16 | ~uint8 | ~uint16 | ~float32 |
		~[2]int8 | ~[3]int8 | ~[4]int8 |
		~[2]int16 | ~[3]int16 | ~[4]int16 |
		~[2]uint8 | ~[3]uint8 | ~[4]uint8 |
		~[2]uint16 | ~[3]uint16 | ~[4]uint16 |
		~[2]float32 | ~[3]float32 | ~[4]float32
}

// UniformValue is the set of types a uniform may hold. [9]float32 and
// [16]float32 upload as 3x3 and 4x4 matrices; a 2x2 matrix needs the
// math.Mat2 type since its layout matches a vec4.
type UniformValue interface {
	~int32 | ~float32 |
		~[2]int32 | ~[3]int32 | ~[4]int32 |
		~[2]float32 | ~[3]float32 | ~[4]float32 |
		~[9]float32 | ~[16]float32
}

// UniformUploader lets a uniform value type choose its own upload call.
// It is checked before the built-in rules.
type UniformUploader interface {
	UploadUniform(ctx Context, loc UniformLocation)
}

// Set marks a builder type parameter whose uniform has been assigned.
type Set struct{}

// Take converts a builder setter argument to the uniform's value type.
//
// Generated setters take the builder's type parameter as argument, so a
// second call to a setter normally fails to compile. Set is an ordinary
// type, though, and Time(glprog.Set{}) type-checks once Time has been
// called. Go has no way to forbid that value, so Take panics at run time
// instead: a repeated setter passed a Set is caught when the builder is
// built, not when it is compiled.
func Take[T any](v any) T {
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("glbind: uniform set twice or with wrong type: got %T, want %T", v, t))
	}
	return t
}

// AttribComps returns the number of components (1 to 4) of an attribute
// value type.
func AttribComps[T AttributeValue]() int {
	comps, _ := attribMeta(reflect.TypeFor[T]())
	return comps
}

// AttribType returns the GL scalar type of an attribute value type.
func AttribType[T AttributeValue]() uint32 {
	_, typ := attribMeta(reflect.TypeFor[T]())
	return typ
}

func attribMeta(t reflect.Type) (comps int, typ uint32) {
	comps = 1
	if t.Kind() == reflect.Array {
		comps = t.Len()
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int8:
		typ = BYTE
	case reflect.Uint8:
		typ = UNSIGNED_BYTE
	case reflect.Int16:
		typ = SHORT
	case reflect.Uint16:
		typ = UNSIGNED_SHORT
	case reflect.Float32:
		typ = FLOAT
	default:
		panic("glprog: unsupported attribute type " + t.String())
	}
	return comps, typ
}

// Upload sends v to the uniform at loc using the call matching its type.
func Upload[T UniformValue](ctx Context, loc UniformLocation, v T) {
	switch m := any(v).(type) {
	case UniformUploader:
		m.UploadUniform(ctx, loc)
		return
	case math.Mat2:
		ctx.UniformMatrix2fv(loc, m[:])
		return
	case math.Mat3:
		ctx.UniformMatrix3fv(loc, m[:])
		return
	case math.Mat4:
		ctx.UniformMatrix4fv(loc, m[:])
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int32:
		ctx.Uniform1i(loc, int32(rv.Int()))
	case reflect.Float32:
		ctx.Uniform1f(loc, float32(rv.Float()))
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Int32 {
			uploadInts(ctx, loc, rv)
		} else {
			uploadFloats(ctx, loc, rv)
		}
	}
}

func uploadInts(ctx Context, loc UniformLocation, rv reflect.Value) {
	var x [4]int32
	for i := 0; i < rv.Len(); i++ {
		x[i] = int32(rv.Index(i).Int())
	}
	switch rv.Len() {
	case 2:
		ctx.Uniform2i(loc, x[0], x[1])
	case 3:
		ctx.Uniform3i(loc, x[0], x[1], x[2])
	case 4:
		ctx.Uniform4i(loc, x[0], x[1], x[2], x[3])
	}
}

func uploadFloats(ctx Context, loc UniformLocation, rv reflect.Value) {
	x := make([]float32, rv.Len())
	for i := range x {
		x[i] = float32(rv.Index(i).Float())
	}
	switch len(x) {
	case 2:
		ctx.Uniform2f(loc, x[0], x[1])
	case 3:
		ctx.Uniform3f(loc, x[0], x[1], x[2])
	case 4:
		ctx.Uniform4f(loc, x[0], x[1], x[2], x[3])
	case 9:
		ctx.UniformMatrix3fv(loc, x)
	case 16:
		ctx.UniformMatrix4fv(loc, x)
	}
}
