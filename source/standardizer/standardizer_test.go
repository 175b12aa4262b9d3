package standardizer

import (
	"strings"
	"testing"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/ast"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/parser"
)

func standardized(t *testing.T, input string) *ast.Node {
	tree, e := parser.Parse(input)
	if e != nil {
		t.Fatalf("%s: %v", input, e)
	}
	if e := Standardize(tree); e != nil {
		t.Fatalf("%s: %v", input, e)
	}
	return tree
}

func TestRewrites(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`let x = 5 in x`, []string{
			"gamma",
			".lambda",
			"..<ID:x>",
			"..<ID:x>",
			".<INT:5>",
		}},
		{`let f x y = x in f`, []string{
			"gamma",
			".lambda",
			"..<ID:f>",
			"..<ID:f>",
			".lambda",
			"..<ID:x>",
			"..lambda",
			"...<ID:y>",
			"...<ID:x>",
		}},
		{`a @f b`, []string{
			"gamma",
			".gamma",
			"..<ID:f>",
			"..<ID:a>",
			".<ID:b>",
		}},
		{`let x = 1 within y = x in y`, []string{
			"gamma",
			".lambda",
			"..<ID:y>",
			"..<ID:y>",
			".gamma",
			"..lambda",
			"...<ID:x>",
			"...<ID:x>",
			"..<INT:1>",
		}},
		{`let a = 1 and b = 2 in a`, []string{
			"gamma",
			".lambda",
			"..,",
			"...<ID:a>",
			"...<ID:b>",
			"..<ID:a>",
			".tau",
			"..<INT:1>",
			"..<INT:2>",
		}},
		{`let rec f n = f n in f`, []string{
			"gamma",
			".lambda",
			"..<ID:f>",
			"..<ID:f>",
			".gamma",
			"..<Y*>",
			"..lambda",
			"...<ID:f>",
			"...lambda",
			"....<ID:n>",
			"....gamma",
			".....<ID:f>",
			".....<ID:n>",
		}},
		{`fn x () (a, b) . x`, []string{
			"lambda",
			".<ID:x>",
			".lambda",
			"..<()>",
			"..lambda",
			"...,",
			"....<ID:a>",
			"....<ID:b>",
			"...<ID:x>",
		}},
	}
	for _, tt := range tests {
		tree := standardized(t, tt.input)
		want := strings.Join(tt.want, "\n") + "\n"
		if tree.String() != want {
			t.Fatalf("%s: wanted\n%s\ngot\n%s", tt.input, want, tree.String())
		}
	}
}

func TestWhereIsLet(t *testing.T) {
	let := standardized(t, `let x = 3 in x * x`)
	where := standardized(t, `x * x where x = 3`)
	if let.String() != where.String() {
		t.Fatalf("wanted\n%s\ngot\n%s", let.String(), where.String())
	}
}

func TestIdempotence(t *testing.T) {
	programs := []string{
		`let rec fact n = n eq 0 -> 1 | n * fact (n-1) in fact 5`,
		`let f (x, y) z = x + y + z within g = f in g (1, 2) 3`,
		`(a where rec a = 1) @Conc 'x'`,
		`fn x y . (x, y) aug not true`,
	}
	for _, input := range programs {
		tree := standardized(t, input)
		if !IsStandard(tree) {
			t.Fatalf("%s: sugar remains after standardizing:\n%s", input, tree)
		}
		once := tree.String()
		if e := Standardize(tree); e != nil {
			t.Fatalf("%s: %v", input, e)
		}
		if tree.String() != once {
			t.Fatalf("%s: second pass changed the tree from\n%s\nto\n%s", input, once, tree)
		}
	}
}

func TestMalformedTrees(t *testing.T) {
	id := func(s string) *ast.Node { return ast.NewLeaf(ast.IDENTIFIER, s, 7) }
	tests := []struct {
		tree *ast.Node
		want string
	}{
		{ast.New(ast.LET, 7, id("x"), id("y")), "std/let"},
		{ast.New(ast.REC, 7, id("x")), "std/rec"},
		{ast.New(ast.WITHIN, 7, ast.New(ast.EQUAL, 7, id("a"), id("b")), id("c")), "std/within"},
		{ast.New(ast.SIMULTDEF, 7, ast.New(ast.EQUAL, 7, id("a"), id("b")), id("c")), "std/and"},
		{ast.New(ast.AT, 7, id("a"), id("b")), "std/arity"},
	}
	for _, tt := range tests {
		e := Standardize(tt.tree)
		got, ok := err.As(e)
		if !ok || got.ErrorId != tt.want || got.Kind() != err.StandardizeError {
			t.Fatalf("wanted %s, got %v", tt.want, e)
		}
	}
}
