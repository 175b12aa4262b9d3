package ast

import (
	"bytes"
	"fmt"
	"io"
)

type NodeType int

// Node types in the order in which they're listed in the grammar. Other structures and functions
// are in a separate section at the bottom.
const (
	IDENTIFIER NodeType = iota
	STRING
	INTEGER

	LET
	LAMBDA
	WHERE

	TAU
	AUG
	CONDITIONAL

	OR
	AND
	NOT
	GR
	GE
	LS
	LE
	EQ
	NE

	PLUS
	MINUS
	NEG
	MULT
	DIV
	EXP
	AT

	GAMMA
	TRUE
	FALSE
	NIL
	DUMMY

	WITHIN
	SIMULTDEF
	REC
	EQUAL
	FCNFORM

	PAREN
	COMMA

	YSTAR
)

// The names used in printing trees. The three with payloads are format strings.
var printNames = map[NodeType]string{
	IDENTIFIER:  "<ID:%s>",
	STRING:      "<STR:'%s'>",
	INTEGER:     "<INT:%s>",
	LET:         "let",
	LAMBDA:      "lambda",
	WHERE:       "where",
	TAU:         "tau",
	AUG:         "aug",
	CONDITIONAL: "->",
	OR:          "or",
	AND:         "&",
	NOT:         "not",
	GR:          "gr",
	GE:          "ge",
	LS:          "ls",
	LE:          "le",
	EQ:          "eq",
	NE:          "ne",
	PLUS:        "+",
	MINUS:       "-",
	NEG:         "neg",
	MULT:        "*",
	DIV:         "/",
	EXP:         "**",
	AT:          "@",
	GAMMA:       "gamma",
	TRUE:        "<true>",
	FALSE:       "<false>",
	NIL:         "<nil>",
	DUMMY:       "<dummy>",
	WITHIN:      "within",
	SIMULTDEF:   "and",
	REC:         "rec",
	EQUAL:       "=",
	FCNFORM:     "function_form",
	PAREN:       "<()>",
	COMMA:       ",",
	YSTAR:       "<Y*>",
}

func (t NodeType) String() string {
	switch t {
	case IDENTIFIER:
		return "identifier"
	case STRING:
		return "string"
	case INTEGER:
		return "integer"
	}
	return printNames[t]
}

func (t NodeType) IsBinaryOperator() bool {
	switch t {
	case AUG, OR, AND, GR, GE, LS, LE, EQ, NE, PLUS, MINUS, MULT, DIV, EXP:
		return true
	}
	return false
}

func (t NodeType) IsUnaryOperator() bool {
	return t == NOT || t == NEG
}

// Sugar reports whether the standardizer rewrites nodes of this type away.
func (t NodeType) Sugar() bool {
	switch t {
	case LET, WHERE, WITHIN, SIMULTDEF, REC, FCNFORM, AT:
		return true
	}
	return false
}

// Nodes are owned by the tree that holds them. The standardizer rewrites them in place.
type Node struct {
	Type     NodeType
	Value    string // The lexeme, for identifiers, integers and strings.
	Line     int
	Children []*Node
}

func New(t NodeType, line int, children ...*Node) *Node {
	return &Node{Type: t, Line: line, Children: children}
}

func NewLeaf(t NodeType, value string, line int) *Node {
	return &Node{Type: t, Value: value, Line: line}
}

// Clone makes a deep copy of the subtree.
func (n *Node) Clone() *Node {
	result := &Node{Type: n.Type, Value: n.Value, Line: n.Line}
	if n.Children != nil {
		result.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			result.Children[i] = c.Clone()
		}
	}
	return result
}

// Label is what the node looks like in a printed tree, e.g. `<ID:x>` or `gamma`.
func (n *Node) Label() string {
	switch n.Type {
	case IDENTIFIER, STRING, INTEGER:
		return fmt.Sprintf(printNames[n.Type], n.Value)
	}
	return printNames[n.Type]
}

func (n *Node) String() string {
	var out bytes.Buffer
	n.Print(&out)
	return out.String()
}

// Print writes the tree in preorder, one node per line, each prefixed by a dot per level of depth.
func (n *Node) Print(out io.Writer) {
	n.print(out, "")
}

func (n *Node) print(out io.Writer, prefix string) {
	fmt.Fprintln(out, prefix+n.Label())
	for _, c := range n.Children {
		c.print(out, prefix+".")
	}
}

// Walk calls f on every node of the tree in preorder, stopping early if f returns false.
func (n *Node) Walk(f func(*Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(f) {
			return false
		}
	}
	return true
}
