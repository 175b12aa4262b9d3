package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"  // x, fact, Print, ...
	INT    = "INT"    // 1343456
	STRING = "STRING" // 'foo'

	KEYWORD  = "KEYWORD"  // let, where, rec, ...
	OPERATOR = "OPERATOR" // +, ->, |, **, @, ...

	LPAREN    = "("
	RPAREN    = ")"
	SEMICOLON = ";"
	COMMA     = ","
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
}

// Is reports whether the token has the given type and literal.
func (t Token) Is(ty TokenType, lit string) bool {
	return t.Type == ty && t.Literal == lit
}

var keywords = map[string]bool{
	"let":    true,
	"in":     true,
	"within": true,
	"fn":     true,
	"where":  true,
	"aug":    true,
	"or":     true,
	"not":    true,
	"gr":     true,
	"ge":     true,
	"ls":     true,
	"le":     true,
	"eq":     true,
	"ne":     true,
	"true":   true,
	"false":  true,
	"nil":    true,
	"dummy":  true,
	"rec":    true,
	"and":    true,
}

func LookupIdent(ident string) TokenType {
	if keywords[ident] {
		return KEYWORD
	}
	return IDENT
}

// Keywords returns the reserved words of the language.
func Keywords() []string {
	result := make([]string, 0, len(keywords))
	for k := range keywords {
		result = append(result, k)
	}
	return result
}
