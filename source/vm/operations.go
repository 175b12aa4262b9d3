package vm

import (
	"strconv"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/ast"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"

	"src.elv.sh/pkg/persistent/vector"
)

// The first operand is the one that was on top of the stack, i.e. the left-hand one.
func binaryOp(node *ast.Node, rand1, rand2 Value) (Value, *err.Error) {
	switch node.Type {
	case ast.AUG:
		if rand1.T != TUPLE {
			return Value{}, err.CreateErr("eval/aug", node.Line, rand1.Inspect())
		}
		return Value{TUPLE, rand1.V.(vector.Vector).Conj(rand2)}, nil
	case ast.OR, ast.AND:
		if rand1.T != BOOL || rand2.T != BOOL {
			bad := rand1
			if rand1.T == BOOL {
				bad = rand2
			}
			return Value{}, err.CreateErr("eval/bool/a", node.Line, bad.Inspect())
		}
		if node.Type == ast.OR {
			return Bool(rand1.V.(bool) || rand2.V.(bool)), nil
		}
		return Bool(rand1.V.(bool) && rand2.V.(bool)), nil
	case ast.EQ, ast.NE:
		same, e := equal(node, rand1, rand2)
		if e != nil {
			return Value{}, e
		}
		return Bool(same == (node.Type == ast.EQ)), nil
	}
	if rand1.T != INT || rand2.T != INT {
		return Value{}, err.CreateErr("eval/arith", node.Line, rand1.Inspect(), rand2.Inspect())
	}
	a, b := rand1.V.(int), rand2.V.(int)
	switch node.Type {
	case ast.PLUS:
		return Int(a + b), nil
	case ast.MINUS:
		return Int(a - b), nil
	case ast.MULT:
		return Int(a * b), nil
	case ast.DIV:
		if b == 0 {
			return Value{}, err.CreateErr("eval/arith/zero", node.Line, a)
		}
		return Int(a / b), nil
	case ast.EXP:
		return Int(power(a, b)), nil
	case ast.GR:
		return Bool(a > b), nil
	case ast.GE:
		return Bool(a >= b), nil
	case ast.LS:
		return Bool(a < b), nil
	case ast.LE:
		return Bool(a <= b), nil
	}
	return Value{}, err.CreateErr("eval/apply", node.Line, node.Label())
}

func unaryOp(node *ast.Node, rand Value) (Value, *err.Error) {
	if node.Type == ast.NOT {
		if rand.T != BOOL {
			return Value{}, err.CreateErr("eval/bool/a", node.Line, rand.Inspect())
		}
		return Bool(!rand.V.(bool)), nil
	}
	if rand.T != INT {
		return Value{}, err.CreateErr("eval/neg", node.Line, rand.Inspect())
	}
	return Int(-rand.V.(int)), nil
}

// Integers, strings, and truthvalues can be compared with their own kind.
func equal(node *ast.Node, rand1, rand2 Value) (bool, *err.Error) {
	basic := func(v Value) bool { return v.T == INT || v.T == STRING || v.T == BOOL }
	if rand1.T != rand2.T {
		if basic(rand1) && basic(rand2) {
			return false, err.CreateErr("eval/compare", node.Line, rand1.Inspect(), rand2.Inspect())
		}
		return false, err.CreateErr("eval/eq", node.Line, rand1.Inspect(), rand2.Inspect())
	}
	if !basic(rand1) {
		return false, err.CreateErr("eval/eq", node.Line, rand1.Inspect(), rand2.Inspect())
	}
	return rand1.V == rand2.V, nil
}

// Integer exponentiation by squaring. A negative exponent truncates to zero as integer division
// would, except for the bases which have integer reciprocals.
func power(base, exp int) int {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}
	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func parseInt(node *ast.Node) (int, *err.Error) {
	i, e := strconv.Atoi(node.Value)
	if e != nil {
		return 0, err.CreateErr("eval/int", node.Line, node.Value)
	}
	return i, nil
}
