package glprog

import "fmt"

// Attribute caches the location of one vertex attribute of a program.
// The zero value is unresolved.
type Attribute[T AttributeValue] struct {
	location int32
	resolved bool
}

// Reset forgets the cached location. Allocate calls it for every field.
func (a *Attribute[T]) Reset() {
	*a = Attribute[T]{}
}

// Location returns the attribute location, querying the program and
// enabling the vertex attribute array the first time. It reports false when
// the attribute is not active in the linked program.
func (a *Attribute[T]) Location(ctx Context, data *ProgramData, name string) (uint32, bool) {
	if !a.resolved {
		a.location = ctx.AttribLocation(data.Program, name)
		a.resolved = true
		if a.location >= 0 {
			ctx.EnableVertexAttribArray(uint32(a.location))
		}
	}
	return uint32(a.location), a.location >= 0
}

// Uniform caches the location of one uniform of a program.
// The zero value is unresolved.
type Uniform[T UniformValue] struct {
	location UniformLocation
	found    bool
	resolved bool
}

// Reset forgets the cached location. Allocate calls it for every field.
func (u *Uniform[T]) Reset() {
	*u = Uniform[T]{}
}

// Location returns the uniform location, querying the program the first
// time. A uniform that is not active stays not found until Reset.
func (u *Uniform[T]) Location(ctx Context, data *ProgramData, name string) (UniformLocation, error) {
	if !u.resolved {
		u.location, u.found = ctx.UniformLocation(data.Program, name)
		u.resolved = true
	}
	if !u.found {
		return 0, fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	return u.location, nil
}

// Apply uploads v to the uniform. The program must be in use.
func (u *Uniform[T]) Apply(ctx Context, data *ProgramData, name string, v T) error {
	loc, err := u.Location(ctx, data, name)
	if err != nil {
		return err
	}
	Upload(ctx, loc, v)
	return nil
}
