package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/parser"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/standardizer"
)

func compileSource(t *testing.T, source string) *Program {
	tree, e := parser.Parse(source)
	if e != nil {
		t.Fatalf("Couldn't parse %s : %v", source, e)
	}
	if e := standardizer.Standardize(tree); e != nil {
		t.Fatalf("Couldn't standardize %s : %v", source, e)
	}
	return Compile(tree)
}

func TestDeltas(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`fn x. x`, []string{
			"delta 0 []: delta 1",
			"delta 1 [x]: <ID:x>",
		}},
		// Numbering is breadth-first: the closures in delta 0 come before any closure inside them.
		{`(fn a. fn b. b) (fn c. c)`, []string{
			"delta 0 []: gamma delta 1 delta 2",
			"delta 1 [a]: delta 3",
			"delta 2 [c]: <ID:c>",
			"delta 3 [b]: <ID:b>",
		}},
		{`let f = fn x. x in f (fn y. y)`, []string{
			"delta 0 []: gamma delta 1 delta 2",
			"delta 1 [f]: gamma <ID:f> delta 3",
			"delta 2 [x]: <ID:x>",
			"delta 3 [y]: <ID:y>",
		}},
		{`fn (a, b). a`, []string{
			"delta 0 []: delta 1",
			"delta 1 [a, b]: <ID:a>",
		}},
		{`let x = 1 in x eq 1 -> 'a' | 'b'`, []string{
			"delta 0 []: gamma delta 1 <INT:1>",
			"delta 1 [x]: beta(<STR:'a'> | <STR:'b'>) eq <ID:x> <INT:1>",
		}},
		{`true -> (fn x. x) | 1`, []string{
			"delta 0 []: beta(delta 1 | <INT:1>) <true>",
			"delta 1 [x]: <ID:x>",
		}},
	}
	for _, test := range tests {
		var out bytes.Buffer
		compileSource(t, test.input).Print(&out)
		got := strings.TrimSuffix(out.String(), "\n")
		want := strings.Join(test.want, "\n")
		if got != want {
			t.Fatalf("Test failed with input %s | Wanted :\n%s\nGot :\n%s", test.input, want, got)
		}
	}
}

func TestRootHasNoBoundVariables(t *testing.T) {
	program := compileSource(t, `let x = 1 in x`)
	if program.Root().Index != 0 || len(program.Root().BoundVars) != 0 {
		t.Fatalf("Root delta is %v with variables %v", program.Root().Index, program.Root().BoundVars)
	}
	for i, d := range program.Deltas {
		if d.Index != i {
			t.Fatalf("Delta in position %d has index %d", i, d.Index)
		}
	}
}

func TestTrace(t *testing.T) {
	var out, trace bytes.Buffer
	m := NewMachine(compileSource(t, `let x = 2 in x * 3`), &out)
	m.Trace = &trace
	v, e := m.Run()
	if e != nil {
		t.Fatal(e)
	}
	if !v.Equal(Int(6)) {
		t.Fatalf("Wanted 6, got %s", v.Inspect())
	}
	for _, s := range []string{"delta 1", "gamma", "*", "<INT:2>"} {
		if !strings.Contains(trace.String(), s) {
			t.Fatalf("Trace doesn't mention %q:\n%s", s, trace.String())
		}
	}
}

func TestEnvironment(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Bind("x", Tuple(Int(1), Int(2)))
	outer.Bind("y", Str("outer"))
	inner := NewEnvironment(outer)
	inner.Bind("y", Str("inner"))
	if v, ok := inner.Lookup("y"); !ok || !v.Equal(Str("inner")) {
		t.Fatalf("Inner binding doesn't shadow the outer one")
	}
	if v, ok := inner.Lookup("x"); !ok || !v.Equal(Tuple(Int(1), Int(2))) {
		t.Fatalf("Lookup didn't find the outer binding")
	}
	if _, ok := inner.Lookup("z"); ok {
		t.Fatalf("Lookup found an unbound name")
	}
	if inner.depth() != outer.depth()+1 {
		t.Fatalf("Wrong depth %d", inner.depth())
	}
}

func TestPower(t *testing.T) {
	tests := []struct{ base, exp, want int }{
		{2, 0, 1},
		{2, 10, 1024},
		{-3, 3, -27},
		{2, -1, 0},
		{1, -5, 1},
		{-1, -3, -1},
		{-1, -4, 1},
	}
	for _, test := range tests {
		if got := power(test.base, test.exp); got != test.want {
			t.Fatalf("%d ** %d: wanted %d, got %d", test.base, test.exp, test.want, got)
		}
	}
}
