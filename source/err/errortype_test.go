package err

import (
	"strings"
	"testing"
)

func TestErrorRendering(t *testing.T) {
	e := CreateErr("eval/ident", 3, "foo")
	if e.Error() != `:3: Undeclared identifier "foo"` {
		t.Fatalf("unexpected rendering %q", e.Error())
	}
	e = CreateErr("std/let", 0)
	if e.Error() != "LET/WHERE: left child is not EQUAL" {
		t.Fatalf("unexpected rendering %q", e.Error())
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		id   string
		want Kind
	}{
		{"lex/ill", ParseError},
		{"parse/expected", ParseError},
		{"std/rec", StandardizeError},
		{"eval/aug", EvaluationError},
	}
	for _, tt := range tests {
		e := &Error{ErrorId: tt.id}
		if e.Kind() != tt.want {
			t.Fatalf("%s: wanted %v, got %v", tt.id, tt.want, e.Kind())
		}
	}
}

func TestEveryErrorExplains(t *testing.T) {
	for id, creator := range ErrorCreatorMap {
		if id == "" {
			continue
		}
		args := []any{"a", "b"}
		errors := Errors{{ErrorId: "lex/ill", Line: 1}, {ErrorId: id, Args: args, Line: 1}}
		if creator.Message(args...) == "" {
			t.Fatalf("%s has an empty message", id)
		}
		if Explain(errors, 1) == "" {
			t.Fatalf("%s has an empty explanation", id)
		}
	}
}

func TestBlame(t *testing.T) {
	errors := Throw("lex/ill", nil, 2, "?")
	errors = Throw("parse/operand", errors, 2, "')'")
	if !strings.Contains(Explain(errors, 1), "very likely a knock-on effect") {
		t.Fatalf("wanted a knock-on explanation, got %q", Explain(errors, 1))
	}
	if _, ok := As(errors); !ok {
		t.Fatalf("As failed to unwrap a list of errors")
	}
}
