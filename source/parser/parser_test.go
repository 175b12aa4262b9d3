package parser

import (
	"strings"
	"testing"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
)

func TestParseTrees(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`let x = 5 in x + 1`, []string{
			"let",
			".=",
			"..<ID:x>",
			"..<INT:5>",
			".+",
			"..<ID:x>",
			"..<INT:1>",
		}},
		{`let rec f n = n eq 0 -> 1 | n * f (n-1) in f 3`, []string{
			"let",
			".rec",
			"..function_form",
			"...<ID:f>",
			"...<ID:n>",
			"...->",
			"....eq",
			".....<ID:n>",
			".....<INT:0>",
			"....<INT:1>",
			"....*",
			".....<ID:n>",
			".....gamma",
			"......<ID:f>",
			"......-",
			".......<ID:n>",
			".......<INT:1>",
			".gamma",
			"..<ID:f>",
			"..<INT:3>",
		}},
		{`fn (x, y) () . x, 'a', nil aug true`, []string{
			"lambda",
			".,",
			"..<ID:x>",
			"..<ID:y>",
			".<()>",
			".tau",
			"..<ID:x>",
			"..<STR:'a'>",
			"..aug",
			"...<nil>",
			"...<true>",
		}},
		{`x @ f y where x = -2 ** 3 ** 2`, []string{
			"where",
			".@",
			"..<ID:x>",
			"..<ID:f>",
			"..<ID:y>",
			".=",
			"..<ID:x>",
			"..neg",
			"...**",
			"....<INT:2>",
			"....**",
			".....<INT:3>",
			".....<INT:2>",
		}},
		{`let a = 1 and b, c = 2, 3 within d = not a > 1 or dummy & false in d`, []string{
			"let",
			".within",
			"..and",
			"...=",
			"....<ID:a>",
			"....<INT:1>",
			"...=",
			"....,",
			".....<ID:b>",
			".....<ID:c>",
			"....tau",
			".....<INT:2>",
			".....<INT:3>",
			"..=",
			"...<ID:d>",
			"...or",
			"....not",
			".....gr",
			"......<ID:a>",
			"......<INT:1>",
			"....&",
			".....<dummy>",
			".....<false>",
			".<ID:d>",
		}},
		{`a - b - c / d * e`, []string{
			"-",
			".-",
			"..<ID:a>",
			"..<ID:b>",
			".*",
			"../",
			"...<ID:c>",
			"...<ID:d>",
			"..<ID:e>",
		}},
	}
	for _, tt := range tests {
		tree, e := Parse(tt.input)
		if e != nil {
			t.Fatalf("%s: unexpected error %v", tt.input, e)
		}
		want := strings.Join(tt.want, "\n") + "\n"
		if tree.String() != want {
			t.Fatalf("%s: wanted\n%s\ngot\n%s", tt.input, want, tree.String())
		}
	}
}

func TestLines(t *testing.T) {
	tree, e := Parse("let x = 1\nin\nx\n+ y")
	if e != nil {
		t.Fatal(e)
	}
	if tree.Line != 1 {
		t.Fatalf("let should be on line 1, got %d", tree.Line)
	}
	plus := tree.Children[1]
	if plus.Line != 3 || plus.Children[1].Line != 4 {
		t.Fatalf("wrong lines for '+': %d, %d", plus.Line, plus.Children[1].Line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		id    string
		line  int
	}{
		{`let x = 1 x`, "parse/expected", 1},
		{`(1 + 2`, "parse/expected", 1},
		{`1 +`, "parse/operand", 1},
		{`x y )`, "parse/extra", 1},
		{`fn . x`, "parse/vb", 1},
		{"let\nf = 1 in 1 -> 2", "parse/expected", 2},
		{`let in 3`, "parse/db", 1},
		{`a ? b`, "parse/extra", 1},
		{`'abc`, "lex/string", 1},
		{"1 +\n`", "lex/ill", 2},
	}
	for _, tt := range tests {
		_, e := Parse(tt.input)
		if e == nil {
			t.Fatalf("%s: expected an error", tt.input)
		}
		first, _ := err.As(e)
		if first.ErrorId != tt.id || first.Line != tt.line {
			t.Fatalf("%s: wanted %s on line %d, got %s on line %d (%s)", tt.input, tt.id, tt.line, first.ErrorId, first.Line, first.Message)
		}
	}
}
