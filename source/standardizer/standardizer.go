package standardizer

import (
	"github.com/Aravinda-HWK/RPAL-interpreter/source/ast"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
)

// Standardize rewrites the sugared forms of the tree in place, bottom-up and left to right, so that
// what is left uses only lambda, gamma, tau, aug, the conditional, the operators, the literals, the
// comma and Y*. Standardizing a standardized tree changes nothing.
func Standardize(node *ast.Node) error {
	for _, child := range node.Children {
		if e := Standardize(child); e != nil {
			return e
		}
	}
	switch node.Type {
	case ast.LET:
		//       let              gamma
		//      /   \            /     \
		//     =     P   =>   lambda    E
		//    / \             /    \
		//   X   E           X      P
		if e := arity(node, 2); e != nil {
			return e
		}
		equal, p := node.Children[0], node.Children[1]
		if equal.Type != ast.EQUAL || len(equal.Children) != 2 {
			return err.CreateErr("std/let", node.Line)
		}
		x, e := equal.Children[0], equal.Children[1]
		node.Type = ast.GAMMA
		node.Children = []*ast.Node{ast.New(ast.LAMBDA, equal.Line, x, p), e}
	case ast.WHERE:
		// P where X = E is let X = E in P.
		if e := arity(node, 2); e != nil {
			return e
		}
		node.Children[0], node.Children[1] = node.Children[1], node.Children[0]
		node.Type = ast.LET
		return Standardize(node)
	case ast.FCNFORM:
		//    function_form         =
		//    /   |   \            / \
		//   P    V+   E    =>    P   lambda
		//                            /    \
		//                           V     .E
		if e := arity(node, 3); e != nil {
			return e
		}
		last := len(node.Children) - 1
		body := curry(node.Children[1:last], node.Children[last])
		node.Type = ast.EQUAL
		node.Children = []*ast.Node{node.Children[0], body}
	case ast.LAMBDA:
		// fn V1 ... Vn . E is fn V1 . fn V2 . ... fn Vn . E
		if e := arity(node, 2); e != nil {
			return e
		}
		last := len(node.Children) - 1
		if last > 1 {
			node.Children = []*ast.Node{node.Children[0], curry(node.Children[1:last], node.Children[last])}
		}
	case ast.AT:
		//       @               gamma
		//     / | \             /   \
		//   E1  N  E2   =>   gamma   E2
		//                    /   \
		//                   N     E1
		if e := arity(node, 3); e != nil {
			return e
		}
		e1, n, e2 := node.Children[0], node.Children[1], node.Children[2]
		node.Type = ast.GAMMA
		node.Children = []*ast.Node{ast.New(ast.GAMMA, e1.Line, n, e1), e2}
	case ast.WITHIN:
		//       within                 =
		//      /      \               / \
		//     =        =     =>     X2   gamma
		//    / \      / \                /   \
		//   X1  E1   X2  E2          lambda   E1
		//                            /    \
		//                           X1    E2
		if e := arity(node, 2); e != nil {
			return e
		}
		left, right := node.Children[0], node.Children[1]
		if left.Type != ast.EQUAL || right.Type != ast.EQUAL || len(left.Children) != 2 || len(right.Children) != 2 {
			return err.CreateErr("std/within", node.Line)
		}
		x1, e1 := left.Children[0], left.Children[1]
		x2, e2 := right.Children[0], right.Children[1]
		lambda := ast.New(ast.LAMBDA, left.Line, x1, e2)
		node.Type = ast.EQUAL
		node.Children = []*ast.Node{x2, ast.New(ast.GAMMA, left.Line, lambda, e1)}
	case ast.SIMULTDEF:
		//        and                 =
		//       / | \              /   \
		//      =  =  =    =>      ,     tau
		//     /\ /\ /\           /|\    /|\
		//    X E X E X E        X X X  E E E
		if e := arity(node, 2); e != nil {
			return e
		}
		comma := ast.New(ast.COMMA, node.Line)
		tau := ast.New(ast.TAU, node.Line)
		for _, def := range node.Children {
			if def.Type != ast.EQUAL || len(def.Children) != 2 {
				return err.CreateErr("std/and", node.Line)
			}
			comma.Children = append(comma.Children, def.Children[0])
			tau.Children = append(tau.Children, def.Children[1])
		}
		node.Type = ast.EQUAL
		node.Children = []*ast.Node{comma, tau}
	case ast.REC:
		//      rec             =
		//       |             / \
		//       =     =>     X   gamma
		//      / \               /   \
		//     X   E            Y*    lambda
		//                              /  \
		//                             X    E
		if e := arity(node, 1); e != nil {
			return e
		}
		equal := node.Children[0]
		if equal.Type != ast.EQUAL || len(equal.Children) != 2 {
			return err.CreateErr("std/rec", node.Line)
		}
		x, e := equal.Children[0], equal.Children[1]
		lambda := ast.New(ast.LAMBDA, equal.Line, x.Clone(), e)
		ystar := ast.NewLeaf(ast.YSTAR, "", node.Line)
		node.Type = ast.EQUAL
		node.Children = []*ast.Node{x, ast.New(ast.GAMMA, node.Line, ystar, lambda)}
	}
	return nil
}

// Makes the chain lambda V1 . lambda V2 . ... lambda Vn . body
func curry(vars []*ast.Node, body *ast.Node) *ast.Node {
	for i := len(vars) - 1; i >= 0; i-- {
		body = ast.New(ast.LAMBDA, vars[i].Line, vars[i], body)
	}
	return body
}

func arity(node *ast.Node, least int) error {
	if len(node.Children) < least {
		return err.CreateErr("std/arity", node.Line, node.Type.String(), len(node.Children))
	}
	return nil
}

// IsStandard reports whether no sugared form is left in the tree.
func IsStandard(node *ast.Node) bool {
	return node.Walk(func(n *ast.Node) bool {
		return !n.Type.Sugar() && !(n.Type == ast.LAMBDA && len(n.Children) != 2)
	})
}
