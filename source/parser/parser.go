package parser

import (
	"github.com/Aravinda-HWK/RPAL-interpreter/source/ast"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/lexer"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/text"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/token"
)

// A recursive descent parser for the phrase structure grammar of RPAL. Each method is named after
// the nonterminal it recognizes. Binary operators build nodes whose line is that of their first
// child.
//
// When the parser meets an error it records it and jumps to the EOF token, so that everything
// unwinds without consuming anything further.
type Parser struct {
	toks []token.Token
	pos  int
	Ers  err.Errors
}

func New(toks []token.Token) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
		toks = append(toks, token.Token{Type: token.EOF, Literal: "EOF"})
	}
	return &Parser{toks: toks, Ers: []*err.Error{}}
}

// Parse lexes and parses a whole program.
func Parse(source string) (*ast.Node, error) {
	l := lexer.NewLexer(source)
	toks := l.Tokens()
	if len(l.Ers) > 0 {
		return nil, l.Ers
	}
	return ParseTokens(toks)
}

func ParseTokens(toks []token.Token) (*ast.Node, error) {
	p := New(toks)
	tree := p.ParseProgram()
	if len(p.Ers) > 0 {
		return nil, p.Ers
	}
	return tree, nil
}

func (p *Parser) ParseProgram() *ast.Node {
	tree := p.e()
	if p.ok() && p.cur().Type != token.EOF {
		p.throw("parse/extra", text.DescribeTok(p.cur()))
	}
	return tree
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) next() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

func (p *Parser) ok() bool {
	return len(p.Ers) == 0
}

func (p *Parser) isKeyword(lit string) bool {
	return p.cur().Is(token.KEYWORD, lit)
}

func (p *Parser) isOperator(lit string) bool {
	return p.cur().Is(token.OPERATOR, lit)
}

func (p *Parser) isType(t token.TokenType) bool {
	return p.cur().Type == t
}

func (p *Parser) throw(errorId string, args ...any) {
	p.Ers = err.Throw(errorId, p.Ers, p.cur().Line, args...)
	p.pos = len(p.toks) - 1
}

// Consumes the expected token or records an error.
func (p *Parser) expect(t token.TokenType, lit string) bool {
	if p.cur().Is(t, lit) {
		p.next()
		return true
	}
	if p.ok() {
		p.throw("parse/expected", text.Emph(lit), text.DescribeTok(p.cur()))
	}
	return false
}

func (p *Parser) build(t ast.NodeType, children ...*ast.Node) *ast.Node {
	line := p.cur().Line
	if len(children) > 0 && children[0] != nil {
		line = children[0].Line
	}
	return ast.New(t, line, children...)
}

// E -> 'let' D 'in' E | 'fn' Vb+ '.' E | Ew
func (p *Parser) e() *ast.Node {
	switch {
	case p.isKeyword("let"):
		p.next()
		d := p.d()
		if !p.expect(token.KEYWORD, "in") {
			return nil
		}
		return p.build(ast.LET, d, p.e())
	case p.isKeyword("fn"):
		p.next()
		children := []*ast.Node{}
		for p.isType(token.IDENT) || p.isType(token.LPAREN) {
			children = append(children, p.vb())
		}
		if len(children) == 0 {
			p.throw("parse/vb", text.DescribeTok(p.cur()))
			return nil
		}
		if !p.expect(token.OPERATOR, ".") {
			return nil
		}
		return p.build(ast.LAMBDA, append(children, p.e())...)
	}
	return p.ew()
}

// Ew -> T 'where' Dr | T
func (p *Parser) ew() *ast.Node {
	t := p.t()
	if p.isKeyword("where") {
		p.next()
		return p.build(ast.WHERE, t, p.dr())
	}
	return t
}

// T -> Ta (',' Ta)+ | Ta
func (p *Parser) t() *ast.Node {
	first := p.ta()
	if !p.isType(token.COMMA) {
		return first
	}
	children := []*ast.Node{first}
	for p.isType(token.COMMA) {
		p.next()
		children = append(children, p.ta())
	}
	return p.build(ast.TAU, children...)
}

// Ta -> Ta 'aug' Tc | Tc
func (p *Parser) ta() *ast.Node {
	left := p.tc()
	for p.isKeyword("aug") {
		p.next()
		left = p.build(ast.AUG, left, p.tc())
	}
	return left
}

// Tc -> B '->' Tc '|' Tc | B
func (p *Parser) tc() *ast.Node {
	cond := p.b()
	if !p.isOperator("->") {
		return cond
	}
	p.next()
	then := p.tc()
	if !p.expect(token.OPERATOR, "|") {
		return nil
	}
	return p.build(ast.CONDITIONAL, cond, then, p.tc())
}

// B -> B 'or' Bt | Bt
func (p *Parser) b() *ast.Node {
	left := p.bt()
	for p.isKeyword("or") {
		p.next()
		left = p.build(ast.OR, left, p.bt())
	}
	return left
}

// Bt -> Bt '&' Bs | Bs
func (p *Parser) bt() *ast.Node {
	left := p.bs()
	for p.isOperator("&") {
		p.next()
		left = p.build(ast.AND, left, p.bs())
	}
	return left
}

// Bs -> 'not' Bp | Bp
func (p *Parser) bs() *ast.Node {
	if p.isKeyword("not") {
		line := p.cur().Line
		p.next()
		bp := p.bp()
		return ast.New(ast.NOT, line, bp)
	}
	return p.bp()
}

var comparisons = []struct {
	keyword, symbol string
	nodeType        ast.NodeType
}{
	{"gr", ">", ast.GR},
	{"ge", ">=", ast.GE},
	{"ls", "<", ast.LS},
	{"le", "<=", ast.LE},
	{"eq", "", ast.EQ},
	{"ne", "", ast.NE},
}

// Bp -> A ('gr' | '>' | 'ge' | '>=' | 'ls' | '<' | 'le' | '<=' | 'eq' | 'ne') A | A
func (p *Parser) bp() *ast.Node {
	left := p.a()
	for _, c := range comparisons {
		if p.isKeyword(c.keyword) || (c.symbol != "" && p.isOperator(c.symbol)) {
			p.next()
			return p.build(c.nodeType, left, p.a())
		}
	}
	return left
}

// A -> A '+' At | A '-' At | '+' At | '-' At | At
func (p *Parser) a() *ast.Node {
	var left *ast.Node
	switch {
	case p.isOperator("+"):
		p.next()
		left = p.at()
	case p.isOperator("-"):
		line := p.cur().Line
		p.next()
		left = ast.New(ast.NEG, line, p.at())
	default:
		left = p.at()
	}
	for p.isOperator("+") || p.isOperator("-") {
		nodeType := ast.PLUS
		if p.isOperator("-") {
			nodeType = ast.MINUS
		}
		p.next()
		left = p.build(nodeType, left, p.at())
	}
	return left
}

// At -> At '*' Af | At '/' Af | Af
func (p *Parser) at() *ast.Node {
	left := p.af()
	for p.isOperator("*") || p.isOperator("/") {
		nodeType := ast.MULT
		if p.isOperator("/") {
			nodeType = ast.DIV
		}
		p.next()
		left = p.build(nodeType, left, p.af())
	}
	return left
}

// Af -> Ap '**' Af | Ap
func (p *Parser) af() *ast.Node {
	left := p.ap()
	if p.isOperator("**") {
		p.next()
		return p.build(ast.EXP, left, p.af())
	}
	return left
}

// Ap -> Ap '@' <IDENTIFIER> R | R
func (p *Parser) ap() *ast.Node {
	left := p.r()
	for p.isOperator("@") {
		p.next()
		if !p.isType(token.IDENT) {
			p.throw("parse/expected", "an identifier", text.DescribeTok(p.cur()))
			return nil
		}
		id := ast.NewLeaf(ast.IDENTIFIER, p.cur().Literal, p.cur().Line)
		p.next()
		left = p.build(ast.AT, left, id, p.r())
	}
	return left
}

func (p *Parser) atRandStart() bool {
	switch p.cur().Type {
	case token.IDENT, token.INT, token.STRING, token.LPAREN:
		return true
	}
	return p.isKeyword("true") || p.isKeyword("false") || p.isKeyword("nil") || p.isKeyword("dummy")
}

// R -> R Rn | Rn
func (p *Parser) r() *ast.Node {
	left := p.rn()
	for p.ok() && p.atRandStart() {
		left = p.build(ast.GAMMA, left, p.rn())
	}
	return left
}

var literalKeywords = map[string]ast.NodeType{
	"true":  ast.TRUE,
	"false": ast.FALSE,
	"nil":   ast.NIL,
	"dummy": ast.DUMMY,
}

// Rn -> <IDENTIFIER> | <INTEGER> | <STRING> | 'true' | 'false' | 'nil' | '(' E ')' | 'dummy'
func (p *Parser) rn() *ast.Node {
	tok := p.cur()
	switch tok.Type {
	case token.IDENT:
		p.next()
		return ast.NewLeaf(ast.IDENTIFIER, tok.Literal, tok.Line)
	case token.INT:
		p.next()
		return ast.NewLeaf(ast.INTEGER, tok.Literal, tok.Line)
	case token.STRING:
		p.next()
		return ast.NewLeaf(ast.STRING, tok.Literal, tok.Line)
	case token.KEYWORD:
		if nodeType, ok := literalKeywords[tok.Literal]; ok {
			p.next()
			return ast.NewLeaf(nodeType, "", tok.Line)
		}
	case token.LPAREN:
		p.next()
		e := p.e()
		if !p.expect(token.RPAREN, ")") {
			return nil
		}
		return e
	}
	if p.ok() {
		p.throw("parse/operand", text.DescribeTok(tok))
	}
	return nil
}

// D -> Da 'within' D | Da
func (p *Parser) d() *ast.Node {
	da := p.da()
	if p.isKeyword("within") {
		p.next()
		return p.build(ast.WITHIN, da, p.d())
	}
	return da
}

// Da -> Dr ('and' Dr)+ | Dr
func (p *Parser) da() *ast.Node {
	first := p.dr()
	if !p.isKeyword("and") {
		return first
	}
	children := []*ast.Node{first}
	for p.isKeyword("and") {
		p.next()
		children = append(children, p.dr())
	}
	return p.build(ast.SIMULTDEF, children...)
}

// Dr -> 'rec' Db | Db
func (p *Parser) dr() *ast.Node {
	if p.isKeyword("rec") {
		line := p.cur().Line
		p.next()
		db := p.db()
		return ast.New(ast.REC, line, db)
	}
	return p.db()
}

// Db -> Vl '=' E | <IDENTIFIER> Vb+ '=' E | '(' D ')'
func (p *Parser) db() *ast.Node {
	switch p.cur().Type {
	case token.LPAREN:
		p.next()
		d := p.d()
		if !p.expect(token.RPAREN, ")") {
			return nil
		}
		return d
	case token.IDENT:
		if p.toks[p.pos+1].Type == token.COMMA || p.toks[p.pos+1].Is(token.OPERATOR, "=") {
			vl := p.vl()
			if !p.expect(token.OPERATOR, "=") {
				return nil
			}
			return p.build(ast.EQUAL, vl, p.e())
		}
		children := []*ast.Node{ast.NewLeaf(ast.IDENTIFIER, p.cur().Literal, p.cur().Line)}
		p.next()
		for p.isType(token.IDENT) || p.isType(token.LPAREN) {
			children = append(children, p.vb())
		}
		if len(children) == 1 {
			p.throw("parse/vb", text.DescribeTok(p.cur()))
			return nil
		}
		if !p.expect(token.OPERATOR, "=") {
			return nil
		}
		return p.build(ast.FCNFORM, append(children, p.e())...)
	}
	p.throw("parse/db", text.DescribeTok(p.cur()))
	return nil
}

// Vb -> <IDENTIFIER> | '(' Vl ')' | '(' ')'
func (p *Parser) vb() *ast.Node {
	tok := p.cur()
	if tok.Type == token.IDENT {
		p.next()
		return ast.NewLeaf(ast.IDENTIFIER, tok.Literal, tok.Line)
	}
	p.next()
	if p.isType(token.RPAREN) {
		p.next()
		return ast.NewLeaf(ast.PAREN, "", tok.Line)
	}
	vl := p.vl()
	if !p.expect(token.RPAREN, ")") {
		return nil
	}
	return vl
}

// Vl -> <IDENTIFIER> (',' <IDENTIFIER>)*
func (p *Parser) vl() *ast.Node {
	ids := []*ast.Node{}
	for {
		if !p.isType(token.IDENT) {
			p.throw("parse/vb", text.DescribeTok(p.cur()))
			return nil
		}
		ids = append(ids, ast.NewLeaf(ast.IDENTIFIER, p.cur().Literal, p.cur().Line))
		p.next()
		if !p.isType(token.COMMA) {
			break
		}
		p.next()
	}
	if len(ids) == 1 {
		return ids[0]
	}
	return p.build(ast.COMMA, ids...)
}
