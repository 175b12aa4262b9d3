package err

import (
	"strconv"
	"strings"
)

type ErrorCreator struct {
	Message     func(args ...any) string
	Explanation func(errors Errors, pos int, args ...any) string
}

// The 'error' type. A Line of zero means that no source position is known.
type Error struct {
	ErrorId string
	Message string
	Args    []any
	Line    int
}

type Errors []*Error

func (e *Error) Error() string {
	if e.Line > 0 {
		return ":" + strconv.Itoa(e.Line) + ": " + e.Message
	}
	return e.Message
}

type Kind int

const (
	ParseError Kind = iota
	StandardizeError
	EvaluationError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case StandardizeError:
		return "StandardizeError"
	}
	return "EvaluationError"
}

// Kind reads the phase that raised the error off the front of its identifier.
func (e *Error) Kind() Kind {
	switch {
	case strings.HasPrefix(e.ErrorId, "lex/"), strings.HasPrefix(e.ErrorId, "parse/"):
		return ParseError
	case strings.HasPrefix(e.ErrorId, "std/"):
		return StandardizeError
	}
	return EvaluationError
}

func CreateErr(errorId string, line int, args ...any) *Error {
	errorCreator, ok := ErrorCreatorMap[errorId]
	if !ok {
		panic("Error creator '" + errorId + "' doesn't exist.")
	}
	return &Error{ErrorId: errorId, Message: errorCreator.Message(args...), Args: args, Line: line}
}

// Throw adds an error to a list, for the phases which carry on after the first one.
func Throw(errorId string, errors Errors, line int, args ...any) Errors {
	return append(errors, CreateErr(errorId, line, args...))
}

func (errors Errors) Error() string {
	if len(errors) == 0 {
		return ""
	}
	return errors[0].Error()
}

func Explain(errors Errors, pos int) string {
	e := errors[pos]
	return ErrorCreatorMap[e.ErrorId].Explanation(errors, pos, e.Args...)
}

// As extracts the catalogued error from an error returned by any phase.
func As(e error) (*Error, bool) {
	switch e := e.(type) {
	case *Error:
		return e, true
	case Errors:
		if len(e) > 0 {
			return e[0], true
		}
	}
	return nil, false
}
