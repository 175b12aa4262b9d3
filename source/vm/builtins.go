package vm

import (
	"io"
	"strconv"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/ast"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
)

// Names which mean something to the machine even though nothing binds them. A binding of the
// same name shadows the builtin.
var BUILTINS = map[string]bool{
	"Isinteger":    true,
	"Isstring":     true,
	"Istuple":      true,
	"Isdummy":      true,
	"Istruthvalue": true,
	"Isfunction":   true,
	"ItoS":         true,
	"Order":        true,
	"Conc":         true,
	"conc":         true,
	"Stern":        true,
	"Stem":         true,
	"Null":         true,
	"Print":        true,
	"print":        true,
	"neg":          true,
}

func IsBuiltin(name string) bool {
	return BUILTINS[name]
}

var typePredicates = map[string]func(Value) bool{
	"Isinteger":    func(v Value) bool { return v.T == INT },
	"Isstring":     func(v Value) bool { return v.T == STRING },
	"Istuple":      func(v Value) bool { return v.T == TUPLE },
	"Isdummy":      func(v Value) bool { return v.T == DUMMY },
	"Istruthvalue": func(v Value) bool { return v.T == BOOL },
	"Isfunction":   func(v Value) bool { return v.IsFunction() },
}

func (m *Machine) applyBuiltin(gamma *ast.Node, name string, rand Value, control []Control) ([]Control, error) {
	if pred, ok := typePredicates[name]; ok {
		m.push(Bool(pred(rand)))
		return control, nil
	}
	switch name {
	case "Print", "print":
		io.WriteString(m.out, Unescape(rand.Inspect()))
		m.push(U_OBJ)
	case "Stem", "Stern":
		if rand.T != STRING {
			return nil, err.CreateErr("eval/string", gamma.Line, rand.Inspect())
		}
		runes := []rune(rand.V.(string))
		if len(runes) == 0 {
			m.push(Str(""))
		} else if name == "Stem" {
			m.push(Str(string(runes[:1])))
		} else {
			m.push(Str(string(runes[1:])))
		}
	case "Conc", "conc":
		if rand.T != STRING {
			return nil, err.CreateErr("eval/conc", gamma.Line, rand.Inspect(), "")
		}
		// Conc takes its second argument from the application that follows if there is one.
		// Otherwise it has been partially applied and waits as a value.
		if len(control) > 0 {
			if next, ok := control[len(control)-1].(Instruction); ok && next.Node.Type == ast.GAMMA {
				control = control[:len(control)-1]
				rand2, e := m.pop(next.Node.Line, "Conc")
				if e != nil {
					return nil, e
				}
				if rand2.T != STRING {
					return nil, err.CreateErr("eval/conc", next.Node.Line, rand.Inspect(), rand2.Inspect())
				}
				m.push(Str(rand.V.(string) + rand2.V.(string)))
				return control, nil
			}
		}
		m.push(Value{CONC, rand.V.(string)})
	case "ItoS":
		if rand.T != INT {
			return nil, err.CreateErr("eval/itos", gamma.Line, rand.Inspect())
		}
		m.push(Str(strconv.Itoa(rand.V.(int))))
	case "Order", "Null":
		if rand.T != TUPLE {
			return nil, err.CreateErr("eval/tuple", gamma.Line, rand.Inspect())
		}
		if name == "Order" {
			m.push(Int(rand.Order()))
		} else {
			m.push(Bool(rand.Order() == 0))
		}
	case "neg":
		if rand.T != INT {
			return nil, err.CreateErr("eval/neg", gamma.Line, rand.Inspect())
		}
		m.push(Int(-rand.V.(int)))
	default:
		return nil, err.CreateErr("eval/apply", gamma.Line, name)
	}
	return control, nil
}
