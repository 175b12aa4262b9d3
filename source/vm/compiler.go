package vm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/ast"
)

// The compiler partitions a standardized tree into closure templates ("deltas"), each holding the
// instructions of one lambda body flattened in preorder. A conditional becomes a frame ("beta")
// holding its two branches, so that neither is evaluated before the condition is.
//
// The machine pops instructions off the end of a body, so the flattened form is run backwards:
// operands are evaluated before the operator that precedes them.

// Control is whatever can sit on a control stack: an instruction from the tree, a delta, or a beta.
type Control interface {
	String() string
}

type Instruction struct {
	Node *ast.Node
}

func (in Instruction) String() string {
	return in.Node.Label()
}

type Delta struct {
	Index     int
	BoundVars []string
	Body      []Control
	Line      int
}

func (d *Delta) String() string {
	return "delta " + strconv.Itoa(d.Index)
}

func (d *Delta) firstVar() string {
	if len(d.BoundVars) == 0 {
		return ""
	}
	return d.BoundVars[0]
}

type Beta struct {
	Then []Control
	Else []Control
	Line int
}

func (b *Beta) String() string {
	return "beta"
}

type Program struct {
	Deltas []*Delta // In order of their index.
}

func (p *Program) Root() *Delta {
	return p.Deltas[0]
}

// Print writes out each delta on its own line, its body in the order in which it was flattened.
func (p *Program) Print(out io.Writer) {
	for _, d := range p.Deltas {
		fmt.Fprintf(out, "delta %d [%s]: %s\n", d.Index, strings.Join(d.BoundVars, ", "), describeBody(d.Body))
	}
}

func describeBody(body []Control) string {
	strs := []string{}
	for _, c := range body {
		if b, ok := c.(*Beta); ok {
			strs = append(strs, "beta("+describeBody(b.Then)+" | "+describeBody(b.Else)+")")
			continue
		}
		strs = append(strs, c.String())
	}
	return strings.Join(strs, " ")
}

type pending struct {
	delta *Delta
	body  *ast.Node
}

// A compiler does one partitioning. Deltas are numbered when they are found but not flattened
// until their turn comes in the queue, which numbers them breadth-first.
type compiler struct {
	deltas []*Delta
	queue  []pending
}

func Compile(root *ast.Node) *Program {
	cp := &compiler{}
	cp.discover(nil, root)
	for len(cp.queue) > 0 {
		next := cp.queue[0]
		cp.queue = cp.queue[1:]
		next.delta.Body = cp.flatten(nil, next.body)
	}
	return &Program{Deltas: cp.deltas}
}

func (cp *compiler) discover(boundVars []string, body *ast.Node) *Delta {
	d := &Delta{Index: len(cp.deltas), BoundVars: boundVars, Line: body.Line}
	cp.deltas = append(cp.deltas, d)
	cp.queue = append(cp.queue, pending{d, body})
	return d
}

func (cp *compiler) flatten(code []Control, node *ast.Node) []Control {
	switch node.Type {
	case ast.LAMBDA:
		return append(code, cp.discover(boundVars(node.Children[0]), node.Children[1]))
	case ast.CONDITIONAL:
		beta := &Beta{Line: node.Line}
		beta.Then = cp.flatten(nil, node.Children[1])
		beta.Else = cp.flatten(nil, node.Children[2])
		code = append(code, beta)
		return cp.flatten(code, node.Children[0])
	}
	code = append(code, Instruction{node})
	for _, child := range node.Children {
		code = cp.flatten(code, child)
	}
	return code
}

func boundVars(node *ast.Node) []string {
	if node.Type == ast.COMMA {
		result := make([]string, len(node.Children))
		for i, c := range node.Children {
			result[i] = c.Value
		}
		return result
	}
	return []string{node.Value}
}
