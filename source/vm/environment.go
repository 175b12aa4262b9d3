package vm

type Environment struct {
	Store map[string]Value
	Ext   *Environment
}

func NewEnvironment(ext *Environment) *Environment {
	return &Environment{Store: make(map[string]Value), Ext: ext}
}

// Lookup searches outward from the innermost scope, and returns a copy of what it finds so that
// nothing the caller does with the value can be seen through any other binding of it.
func (env *Environment) Lookup(name string) (Value, bool) {
	for e := env; e != nil; e = e.Ext {
		if v, ok := e.Store[name]; ok {
			return v.DeepCopy(), true
		}
	}
	return Value{}, false
}

// Bind only ever affects the innermost scope.
func (env *Environment) Bind(name string, v Value) {
	env.Store[name] = v
}

func (env *Environment) depth() int {
	d := 0
	for e := env; e != nil; e = e.Ext {
		d++
	}
	return d
}
