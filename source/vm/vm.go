package vm

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/ast"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
)

// The machine evaluates a program with one value stack shared by every activation. Each
// application of a closure gets its own control stack and runs to completion before the
// application returns, so nesting on the Go call stack mirrors nesting in the program.
type Machine struct {
	program *Program
	stack   []Value
	out     io.Writer
	Trace   io.Writer // If non-nil, each control item is written to it as it is executed.
}

func NewMachine(program *Program, out io.Writer) *Machine {
	return &Machine{program: program, out: out}
}

// Run evaluates delta 0 in a fresh environment. The result is whatever is left on top of the value
// stack, or dummy if there is nothing.
func (m *Machine) Run() (Value, error) {
	m.stack = []Value{}
	if e := m.execute(m.program.Root().Body, NewEnvironment(nil)); e != nil {
		return Value{}, e
	}
	if len(m.stack) == 0 {
		return U_OBJ, nil
	}
	return m.stack[len(m.stack)-1], nil
}

func (m *Machine) push(v Value) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop(line int, consumer string) (Value, *err.Error) {
	if len(m.stack) == 0 {
		return Value{}, err.CreateErr("eval/stack", line, consumer)
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

func (m *Machine) pop2(line int, consumer string) (Value, Value, *err.Error) {
	rand1, e := m.pop(line, consumer)
	if e != nil {
		return Value{}, Value{}, e
	}
	rand2, e := m.pop(line, consumer)
	if e != nil {
		return Value{}, Value{}, e
	}
	return rand1, rand2, nil
}

func (m *Machine) execute(body []Control, env *Environment) error {
	control := make([]Control, len(body))
	copy(control, body)
	for len(control) > 0 {
		item := control[len(control)-1]
		control = control[:len(control)-1]
		if m.Trace != nil {
			m.trace(item, env)
		}
		switch item := item.(type) {
		case *Delta:
			m.push(Value{CLOSURE, &Closure{Delta: item, Env: env}})
		case *Beta:
			cond, e := m.pop(item.Line, "->")
			if e != nil {
				return e
			}
			if cond.T != BOOL {
				return err.CreateErr("eval/bool/b", item.Line, cond.Inspect())
			}
			if cond.V.(bool) {
				control = append(control, item.Then...)
			} else {
				control = append(control, item.Else...)
			}
		case Instruction:
			var e error
			control, e = m.executeNode(item.Node, control, env)
			if e != nil {
				return e
			}
		}
	}
	return nil
}

// Returns the control stack, since the rule for applying a fixpoint adds to it and Conc may take
// from it.
func (m *Machine) executeNode(node *ast.Node, control []Control, env *Environment) ([]Control, error) {
	switch {
	case node.Type.IsBinaryOperator():
		rand1, rand2, e := m.pop2(node.Line, node.Label())
		if e != nil {
			return nil, e
		}
		result, e := binaryOp(node, rand1, rand2)
		if e != nil {
			return nil, e
		}
		m.push(result)
		return control, nil
	case node.Type.IsUnaryOperator():
		rand, e := m.pop(node.Line, node.Label())
		if e != nil {
			return nil, e
		}
		result, e := unaryOp(node, rand)
		if e != nil {
			return nil, e
		}
		m.push(result)
		return control, nil
	}
	switch node.Type {
	case ast.IDENTIFIER:
		if v, ok := env.Lookup(node.Value); ok {
			m.push(v)
			return control, nil
		}
		if IsBuiltin(node.Value) {
			m.push(Value{BUILTIN, node.Value})
			return control, nil
		}
		return nil, err.CreateErr("eval/ident", node.Line, node.Value)
	case ast.INTEGER:
		i, e := parseInt(node)
		if e != nil {
			return nil, e
		}
		m.push(Int(i))
	case ast.STRING:
		m.push(Str(node.Value))
	case ast.TRUE:
		m.push(TRUE)
	case ast.FALSE:
		m.push(FALSE)
	case ast.NIL:
		m.push(Tuple())
	case ast.DUMMY:
		m.push(U_OBJ)
	case ast.YSTAR:
		m.push(Y_STAR)
	case ast.TAU:
		elements := make([]Value, len(node.Children))
		for i := range elements {
			v, e := m.pop(node.Line, "tau")
			if e != nil {
				return nil, e
			}
			elements[i] = v
		}
		m.push(Tuple(elements...))
	case ast.GAMMA:
		return m.apply(node, control)
	default:
		return nil, err.CreateErr("eval/apply", node.Line, node.Label())
	}
	return control, nil
}

func (m *Machine) apply(gamma *ast.Node, control []Control) ([]Control, error) {
	rator, rand, e := m.pop2(gamma.Line, "gamma")
	if e != nil {
		return nil, e
	}
	switch rator.T {
	case CLOSURE:
		cl := rator.V.(*Closure)
		env := NewEnvironment(cl.Env)
		vars := cl.Delta.BoundVars
		if len(vars) == 1 {
			env.Bind(vars[0], rand)
		} else {
			if rand.T != TUPLE {
				return nil, err.CreateErr("eval/bind/tuple", gamma.Line, rand.Inspect())
			}
			if rand.Order() < len(vars) {
				return nil, err.CreateErr("eval/bind/size", gamma.Line, len(vars), rand.Inspect())
			}
			for i, name := range vars {
				el, _ := rand.Element(i + 1)
				env.Bind(name, el)
			}
		}
		return control, m.execute(cl.Delta.Body, env)
	case YSTAR:
		if rand.T != CLOSURE {
			return nil, err.CreateErr("eval/ystar", gamma.Line, rand.Inspect())
		}
		m.push(Value{ETA, rand.V.(*Closure)})
	case ETA:
		// Y F x = F (Y F) x, one step at a time.
		m.push(rand)
		m.push(rator)
		m.push(Value{CLOSURE, rator.V.(*Closure)})
		control = append(control, Instruction{gamma}, Instruction{gamma})
	case TUPLE:
		if rand.T != INT {
			return nil, err.CreateErr("eval/select/type", gamma.Line, rand.Inspect())
		}
		el, ok := rator.Element(rand.V.(int))
		if !ok {
			return nil, err.CreateErr("eval/select/range", gamma.Line, rand.V.(int))
		}
		m.push(el)
	case BUILTIN:
		return m.applyBuiltin(gamma, rator.V.(string), rand, control)
	case CONC:
		if rand.T != STRING {
			return nil, err.CreateErr("eval/conc", gamma.Line, rator.V.(string), rand.Inspect())
		}
		m.push(Str(rator.V.(string) + rand.V.(string)))
	default:
		return nil, err.CreateErr("eval/apply", gamma.Line, rator.Inspect())
	}
	return control, nil
}

func (m *Machine) trace(item Control, env *Environment) {
	top := []string{}
	for i := len(m.stack) - 1; i >= 0 && i >= len(m.stack)-3; i-- {
		top = append(top, m.stack[i].describe())
	}
	fmt.Fprintf(m.Trace, "%-14s env %-3d stack %d [%s]\n", item.String(), env.depth(), len(m.stack), strings.Join(top, ", "))
}
