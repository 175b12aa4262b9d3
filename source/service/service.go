package service

import (
	"io"
	"os"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/ast"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/lexer"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/parser"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/settings"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/standardizer"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/text"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/vm"
)

// A Service is what the hub talks to: the whole pipeline from source code to value, configured
// once. It keeps no state between calls, so each program it is given runs from scratch.
type Service struct {
	Config *settings.Config
	Trace  io.Writer // Where the stages write what they're doing, if the config says they should.
}

func NewService(cfg *settings.Config, trace io.Writer) *Service {
	if cfg == nil {
		cfg = settings.Default()
	}
	if trace == nil || !cfg.Trace.Any() {
		trace = io.Discard
	}
	return &Service{Config: cfg, Trace: trace}
}

func (sv *Service) heading(s string) {
	io.WriteString(sv.Trace, "\n"+text.Cyan(s)+"\n\n")
}

// Parse lexes and parses source code into an abstract syntax tree.
func (sv *Service) Parse(source string) (*ast.Node, error) {
	l := lexer.NewLexer(source)
	if sv.Config.Trace.Lexer {
		sv.heading("Lexing:")
		l.Trace = sv.Trace
	}
	toks := l.Tokens()
	if len(l.Ers) > 0 {
		return nil, l.Ers
	}
	tree, e := parser.ParseTokens(toks)
	if e != nil {
		return nil, e
	}
	if sv.Config.Trace.Parser {
		sv.heading("Parsed tree:")
		tree.Print(sv.Trace)
	}
	return tree, nil
}

// Standardize rewrites the tree in place.
func (sv *Service) Standardize(tree *ast.Node) error {
	if e := standardizer.Standardize(tree); e != nil {
		return e
	}
	if sv.Config.Trace.Standardizer {
		sv.heading("Standardized tree:")
		tree.Print(sv.Trace)
	}
	return nil
}

// Compile takes source code as far as the closures that the machine runs.
func (sv *Service) Compile(source string) (*vm.Program, error) {
	tree, e := sv.Parse(source)
	if e != nil {
		return nil, e
	}
	if e := sv.Standardize(tree); e != nil {
		return nil, e
	}
	return sv.CompileTree(tree), nil
}

// CompileTree partitions a tree which has already been standardized.
func (sv *Service) CompileTree(tree *ast.Node) *vm.Program {
	program := vm.Compile(tree)
	if sv.Config.Trace.Compiler {
		sv.heading("Closures:")
		program.Print(sv.Trace)
	}
	return program
}

// Execute runs a compiled program, with anything it prints going to out.
func (sv *Service) Execute(program *vm.Program, out io.Writer) (vm.Value, error) {
	m := vm.NewMachine(program, out)
	if sv.Config.Trace.Runtime {
		sv.heading("Running:")
		m.Trace = sv.Trace
	}
	return m.Run()
}

// Run does the whole thing.
func (sv *Service) Run(source string, out io.Writer) (vm.Value, error) {
	program, e := sv.Compile(source)
	if e != nil {
		return vm.Value{}, e
	}
	return sv.Execute(program, out)
}

func (sv *Service) RunFile(path string, out io.Writer) (vm.Value, error) {
	source, e := os.ReadFile(path)
	if e != nil {
		return vm.Value{}, e
	}
	return sv.Run(string(source), out)
}
