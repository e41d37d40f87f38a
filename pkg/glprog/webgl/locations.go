package webgl

import "github.com/Faultbox/glbind/pkg/glprog"

type uniformKey struct {
	program glprog.ProgramID
	name    string
}

// locations hands out one glprog.UniformLocation per program and uniform
// name. Resolving the same uniform again returns its slot, so the table
// only grows with the number of distinct uniforms.
type locations[V any] struct {
	slots  map[uniformKey]glprog.UniformLocation
	values []V
}

// resolve returns the slot of name in p, calling lookup only when the
// uniform has no slot yet.
func (t *locations[V]) resolve(p glprog.ProgramID, name string, lookup func() V) glprog.UniformLocation {
	key := uniformKey{p, name}
	if l, ok := t.slots[key]; ok {
		return l
	}
	if t.slots == nil {
		t.slots = make(map[uniformKey]glprog.UniformLocation)
	}
	l := glprog.UniformLocation(len(t.values))
	t.slots[key] = l
	t.values = append(t.values, lookup())
	return l
}

// refresh looks up every slot of p again. Linking a program invalidates
// the locations it handed out before.
func (t *locations[V]) refresh(p glprog.ProgramID, lookup func(name string) V) {
	for key, l := range t.slots {
		if key.program == p {
			t.values[l] = lookup(key.name)
		}
	}
}

func (t *locations[V]) value(l glprog.UniformLocation) V {
	return t.values[l]
}
