package lexer

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/token"
)

type Lexer struct {
	runes  *RuneSupplier
	tstart int // the value of char at the start of a token
	lineNo int
	Ers    err.Errors
	Trace  io.Writer // If non-nil, every token is written to it as it is made.
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		runes:  NewRuneSupplier([]rune(input)),
		Ers:    []*err.Error{},
		lineNo: 1,
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	l.lineNo, l.tstart = l.runes.Position()
	switch ch := l.runes.CurrentRune(); {
	case ch == 0:
		return l.MakeToken(token.EOF, "EOF")
	case ch == '(':
		return l.NewToken(token.LPAREN, "(")
	case ch == ')':
		return l.NewToken(token.RPAREN, ")")
	case ch == ';':
		return l.NewToken(token.SEMICOLON, ";")
	case ch == ',':
		return l.NewToken(token.COMMA, ",")
	case ch == '\'':
		s, ok := l.runes.ReadString()
		if !ok {
			return l.Throw("lex/string")
		}
		return l.NewToken(token.STRING, s)
	case IsLetter(ch):
		lit := l.runes.ReadIdentifier()
		return l.NewToken(token.LookupIdent(lit), lit)
	case IsDigit(ch):
		return l.NewToken(token.INT, l.runes.ReadNumber())
	case IsOperatorSymbol(ch):
		return l.NewToken(token.OPERATOR, l.runes.ReadOperator())
	}
	tok := l.Throw("lex/ill", string(l.runes.CurrentRune()))
	l.runes.Next()
	return tok
}

// Tokens lexes the whole of the input, up to and including the EOF token.
func (l *Lexer) Tokens() []token.Token {
	result := []token.Token{}
	for {
		tok := l.NextToken()
		result = append(result, tok)
		if tok.Type == token.EOF {
			return result
		}
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case IsWhitespace(l.runes.CurrentRune()):
			l.runes.Next()
		case l.runes.CurrentRune() == '/' && l.runes.PeekRune() == '/':
			l.runes.ReadComment()
			l.runes.Next()
		default:
			return
		}
	}
}

func IsLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func IsIdentifierRune(ch rune) bool {
	return IsLetter(ch) || IsDigit(ch) || ch == '_'
}

func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

const operatorSymbols = "+-*<>&.@/:=~|$!#%^_[]{}\"?"

func IsOperatorSymbol(ch rune) bool {
	return ch != 0 && strings.ContainsRune(operatorSymbols, ch)
}

func (l *Lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.MakeToken(tokenType, st)
}

func (l *Lexer) MakeToken(tokenType token.TokenType, st string) token.Token {
	if l.Trace != nil {
		fmt.Fprintln(l.Trace, tokenType, st)
	}
	_, chNo := l.runes.Position()
	return token.Token{Type: tokenType, Literal: st, Line: l.lineNo, ChStart: l.tstart, ChEnd: chNo}
}

func (l *Lexer) Throw(errorID string, args ...any) token.Token {
	tok := l.MakeToken(token.ILLEGAL, errorID)
	l.Ers = err.Throw(errorID, l.Ers, tok.Line, args...)
	return tok
}
