package vm

import (
	"strconv"
	"strings"

	"src.elv.sh/pkg/persistent/vector"
)

type ValueType uint32

const (
	INT ValueType = iota
	STRING
	BOOL
	DUMMY
	TUPLE   // V is a vector.Vector of Values.
	CLOSURE // V is a *Closure.
	ETA     // V is the *Closure that the fixpoint wraps.
	YSTAR
	BUILTIN // V is the name of the builtin.
	CONC    // V is the first string given to a Conc still waiting for its second.
)

var VALUE_MAP = map[ValueType]string{
	INT:     "integer",
	STRING:  "string",
	BOOL:    "truthvalue",
	DUMMY:   "dummy",
	TUPLE:   "tuple",
	CLOSURE: "function",
	ETA:     "function",
	YSTAR:   "Y*",
	BUILTIN: "builtin",
	CONC:    "builtin",
}

func (t ValueType) String() string {
	return VALUE_MAP[t]
}

type Value struct {
	T ValueType
	V any
}

var (
	TRUE   = Value{BOOL, true}
	FALSE  = Value{BOOL, false}
	U_OBJ  = Value{DUMMY, nil}
	Y_STAR = Value{YSTAR, nil}
)

func Int(i int) Value {
	return Value{INT, i}
}

func Str(s string) Value {
	return Value{STRING, s}
}

func Bool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

func Tuple(vs ...Value) Value {
	vec := vector.Empty
	for _, v := range vs {
		vec = vec.Conj(v)
	}
	return Value{TUPLE, vec}
}

// A Closure is a function value: the template made by the compiler together with the environment
// that was current when the template was reached.
type Closure struct {
	Delta *Delta
	Env   *Environment
}

// Elements returns the members of a tuple in order.
func (v Value) Elements() []Value {
	vec := v.V.(vector.Vector)
	result := make([]Value, 0, vec.Len())
	for it := vec.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(Value))
	}
	return result
}

// Element returns the ith member of a tuple, counting from 1.
func (v Value) Element(i int) (Value, bool) {
	el, ok := v.V.(vector.Vector).Index(i - 1)
	if !ok {
		return Value{}, false
	}
	return el.(Value), true
}

func (v Value) Order() int {
	return v.V.(vector.Vector).Len()
}

func (v Value) IsFunction() bool {
	return v.T == CLOSURE || v.T == ETA
}

// DeepCopy rebuilds tuples all the way down so that the copy shares no structure with v.
// Closures keep their environment, which stays shared.
func (v Value) DeepCopy() Value {
	switch v.T {
	case TUPLE:
		vec := vector.Empty
		for _, el := range v.Elements() {
			vec = vec.Conj(el.DeepCopy())
		}
		return Value{TUPLE, vec}
	case CLOSURE, ETA:
		cl := *v.V.(*Closure)
		return Value{v.T, &cl}
	}
	return v
}

// Inspect gives the form in which Print shows a value.
func (v Value) Inspect() string {
	switch v.T {
	case INT:
		return strconv.Itoa(v.V.(int))
	case STRING:
		return v.V.(string)
	case BOOL:
		if v.V.(bool) {
			return "true"
		}
		return "false"
	case DUMMY:
		return "dummy"
	case TUPLE:
		if v.Order() == 0 {
			return "nil"
		}
		strs := []string{}
		for _, el := range v.Elements() {
			strs = append(strs, el.Inspect())
		}
		return "(" + strings.Join(strs, ", ") + ")"
	case CLOSURE:
		cl := v.V.(*Closure)
		return "[lambda closure: " + cl.Delta.firstVar() + ": " + strconv.Itoa(cl.Delta.Index) + "]"
	case ETA:
		cl := v.V.(*Closure)
		return "[eta closure: " + cl.Delta.firstVar() + ": " + strconv.Itoa(cl.Delta.Index) + "]"
	case YSTAR:
		return "Y*"
	case BUILTIN:
		return v.V.(string)
	case CONC:
		return "Conc '" + v.V.(string) + "'"
	}
	panic("can't inspect value")
}

// describe is used in error messages and traces, and quotes what Inspect doesn't.
func (v Value) describe() string {
	if v.T == STRING {
		return "'" + v.V.(string) + "'"
	}
	return v.Inspect()
}

// Equal compares values structurally. It is for tests and the REPL: the eq operator has
// its own rules.
func (v Value) Equal(w Value) bool {
	if v.T != w.T {
		return false
	}
	switch v.T {
	case TUPLE:
		if v.Order() != w.Order() {
			return false
		}
		for i, el := range v.Elements() {
			other, _ := w.Element(i + 1)
			if !el.Equal(other) {
				return false
			}
		}
		return true
	case CLOSURE, ETA:
		return v.V.(*Closure).Delta == w.V.(*Closure).Delta
	}
	return v.V == w.V
}

var unescaper = strings.NewReplacer(`\t`, "\t", `\n`, "\n")

// Unescape turns tab and newline escapes into the characters they stand for. Other escapes are printed as written.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
