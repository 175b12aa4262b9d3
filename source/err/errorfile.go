package err

import (
	"fmt"
	"strconv"
	"strings"
)

// A map from error identifiers to functions that supply the corresponding error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifers.
//
// Major categories are eval, lex, parse, and std.
//
// Two otherwise identical errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.

var ErrorCreatorMap = map[string]ErrorCreator{

	// TEMPLATE
	"": {
		Message: func(args ...any) string {
			return ""
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return ""
		},
	},

	"eval/apply": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Don't know how to evaluate %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Only functions, tuples, the fixpoint operator and the builtins can be applied " +
				"to an argument. The value " + emph(args[0]) + " is none of these."
		},
	},

	"eval/arith": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expected two integers; was given %v, %v", emphStr(args[0]), emphStr(args[1]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The arithmetic operators and the comparisons " + emph("ls") + ", " + emph("le") +
				", " + emph("gr") + " and " + emph("ge") + " only work on integers."
		},
	},

	"eval/arith/zero": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Division of %v by zero", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Integer division by zero has no meaningful result, so it halts the program."
		},
	},

	"eval/aug": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Cannot augment a non-tuple %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The left operand of " + emph("aug") + " must be a tuple (possibly " + emph("nil") +
				"), which gets the right operand added as its last element."
		},
	},

	"eval/bind/size": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expected a tuple of at least %v elements; was given %v", args[0], emphStr(args[1]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "A function whose parameter is a list of names, like " + emph("fn (x, y). x + y") +
				", must be given a tuple with at least that many elements."
		},
	},

	"eval/bind/tuple": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expected a tuple; was given %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "A function whose parameter is a list of names, like " + emph("fn (x, y). x + y") +
				", must be given a tuple to unpack into those names."
		},
	},

	"eval/bool/a": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expecting a truthvalue; was given %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The operators " + emph("or") + ", " + emph("&") + " and " + emph("not") +
				" only work on " + emph("true") + " and " + emph("false") + "."
		},
	},

	"eval/bool/b": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expecting a truthvalue; was given %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The condition to the left of " + emph("->") + " must evaluate to " + emph("true") +
				" or " + emph("false") + "."
		},
	},

	"eval/compare": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Cannot compare dissimilar types; was given %v, %v", emphStr(args[0]), emphStr(args[1]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return emph("eq") + " and " + emph("ne") + " compare integers with integers, strings with " +
				"strings, and truthvalues with truthvalues. Comparing values of two different kinds is an error."
		},
	},

	"eval/conc": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expected two strings; was given %v, %v", emphStr(args[0]), emphStr(args[1]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return emph("Conc") + " joins one string onto another, and so both of its arguments must be strings."
		},
	},

	"eval/eq": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Don't know how to eq %v, %v", emphStr(args[0]), emphStr(args[1]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Only integers, strings and truthvalues can be compared for equality."
		},
	},

	"eval/ident": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Undeclared identifier %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The name " + emph(args[0]) + " isn't bound by any enclosing " + emph("let") + ", " +
				emph("where") + " or function parameter, and it isn't the name of a builtin."
		},
	},

	"eval/int": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Integer literal %v is out of range", args[0])
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Integers are held in a machine word, and " + emph(args[0]) + " doesn't fit into one."
		},
	},

	"eval/itos": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expected an integer; was given %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return emph("ItoS") + " converts an integer to a string of its digits, and so needs an integer."
		},
	},

	"eval/neg": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expecting an integer; was given %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Only integers can be negated."
		},
	},

	"eval/select/range": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Tuple selection index %v out of bounds", args[0])
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Tuples are indexed from 1, and so an index must lie between 1 and the " +
				"order of the tuple inclusive."
		},
	},

	"eval/select/type": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Non-integer tuple selection with %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Applying a tuple to something selects one of its elements, so what it is applied to " +
				"must be an integer."
		},
	},

	"eval/stack": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Value stack exhausted while evaluating %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The machine ran out of operands. This is a bug in the interpreter rather than in your code."
		},
	},

	"eval/string": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expected a string; was given %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return emph("Stem") + " and " + emph("Stern") + " take a string apart, and so they need a string."
		},
	},

	"eval/tuple": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expected a tuple; was given %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return emph("Order") + " and " + emph("Null") + " only make sense for tuples."
		},
	},

	"eval/ystar": {
		Message: func(args ...any) string {
			return fmt.Sprintf("Expected a Delta; was given %v", emphStr(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The fixpoint operator that implements " + emph("rec") + " can only be applied to a function."
		},
	},

	"lex/ill": {
		Message: func(args ...any) string {
			return fmt.Sprintf("illegal character %v", emph(args[0]))
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The character " + emph(args[0]) + " can't appear in an RPAL program outside of a string or comment."
		},
	},

	"lex/string": {
		Message: func(args ...any) string {
			return "unterminated string literal"
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "A string literal was opened with " + emph("'") + " but the program ended before it was closed."
		},
	},

	"parse/db": {
		Message: func(args ...any) string {
			return fmt.Sprintf("expected a definition, found %v", args[0])
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "A definition has the form " + emph("x = E") + ", " + emph("f x y = E") + ", " +
				emph("(x, y) = E") + " or is a parenthesized definition." + blame(errors, pos, "lex/ill", "lex/string")
		},
	},

	"parse/expected": {
		Message: func(args ...any) string {
			return fmt.Sprintf("expected %v, found %v", args[0], args[1])
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "At this point in the program the grammar requires " + fmt.Sprint(args[0]) +
				", but the parser found " + fmt.Sprint(args[1]) + " instead." +
				blame(errors, pos, "lex/ill", "lex/string")
		},
	},

	"parse/extra": {
		Message: func(args ...any) string {
			return fmt.Sprintf("unexpected %v after end of program", args[0])
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "A program is a single expression. The parser reached the end of one but there was still " +
				"input left over." + blame(errors, pos, "lex/ill", "lex/string")
		},
	},

	"parse/operand": {
		Message: func(args ...any) string {
			return fmt.Sprintf("expected an operand, found %v", args[0])
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "An operand is an identifier, an integer, a string, one of " + emph("true") + ", " +
				emph("false") + ", " + emph("nil") + " or " + emph("dummy") + ", or a parenthesized expression." +
				blame(errors, pos, "lex/ill", "lex/string")
		},
	},

	"parse/vb": {
		Message: func(args ...any) string {
			return fmt.Sprintf("expected a variable, found %v", args[0])
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Functions and " + emph("fn") + " bind their parameters to identifiers, " +
				"parenthesized lists of identifiers, or " + emph("()") + "." +
				blame(errors, pos, "lex/ill", "lex/string")
		},
	},

	"std/and": {
		Message: func(args ...any) string {
			return "SIMULTDEF: one of the children is not EQUAL"
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Each definition joined by " + emph("and") + " should have been reduced to the form " +
				emph("x = E") + " before the simultaneous definition was."
		},
	},

	"std/arity": {
		Message: func(args ...any) string {
			return fmt.Sprintf("%v node has %v children", args[0], args[1])
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The parser produced a node of kind " + emph(args[0]) + " with the wrong number of children."
		},
	},

	"std/let": {
		Message: func(args ...any) string {
			return "LET/WHERE: left child is not EQUAL"
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The definition part of a " + emph("let") + " or " + emph("where") + " should have " +
				"been reduced to the form " + emph("x = E") + " before the expression itself was."
		},
	},

	"std/rec": {
		Message: func(args ...any) string {
			return "REC: child is not EQUAL"
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "The definition following " + emph("rec") + " should have been reduced to the form " +
				emph("x = E") + " before the " + emph("rec") + " was."
		},
	},

	"std/within": {
		Message: func(args ...any) string {
			return "WITHIN: one of the children is not EQUAL"
		},
		Explanation: func(errors Errors, pos int, args ...any) string {
			return "Both definitions either side of " + emph("within") + " should have been reduced to the form " +
				emph("x = E") + " before the " + emph("within") + " was."
		},
	},
}

func blame(errors Errors, pos int, args ...string) string {
	if pos == 0 {
		return ""
	}
	for _, v := range args {
		if errors[pos-1].ErrorId == v {
			very := ""
			if (errors[pos].Line - errors[pos-1].Line) <= 1 {
				very = "very "
			}
			return "\n\nIn this case the problem is " + very + "likely a knock-on effect of the previous error ([" +
				strconv.Itoa(pos-1) + "] " + errors[pos-1].Message + ".)"
		}
	}
	return ""
}

func emph(s any) string {
	if t, ok := s.(string); ok {
		s = strings.TrimSpace(t)
	}
	return fmt.Sprintf("'%v'", s)
}

func emphStr(s any) string {
	return fmt.Sprintf("\"%v\"", s)
}
