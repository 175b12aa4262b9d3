package lexer

// The RuneSupplier gives us something simpler than a lexer that we can use both in the REPL's
// tab completion and inside of the lexer. The Read* functions leave the supplier on the last
// rune of what they read, so that making the token moves it on.
type RuneSupplier struct {
	code      []rune
	pos       int
	lineNo    int
	lineStart int
}

func NewRuneSupplier(code []rune) *RuneSupplier {
	return &RuneSupplier{code: code, lineNo: 1}
}

func (rs *RuneSupplier) CurrentRune() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *RuneSupplier) PeekRune() rune {
	if rs.pos+1 < len(rs.code) {
		return rs.code[rs.pos+1]
	}
	return 0
}

func (rs *RuneSupplier) LastRune() rune {
	if rs.pos > 0 {
		return rs.code[rs.pos-1]
	}
	return 0
}

func (rs *RuneSupplier) Next() {
	if rs.pos >= len(rs.code) {
		return
	}
	if rs.code[rs.pos] == '\n' {
		rs.lineNo++
		rs.lineStart = rs.pos + 1
	}
	rs.pos++
}

func (rs *RuneSupplier) Position() (int, int) {
	return rs.lineNo, rs.pos - rs.lineStart
}

func (rs *RuneSupplier) ReadIdentifier() string {
	result := string(rs.CurrentRune())
	for IsIdentifierRune(rs.PeekRune()) {
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	return result
}

func (rs *RuneSupplier) ReadNumber() string {
	result := string(rs.CurrentRune())
	for IsDigit(rs.PeekRune()) {
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	return result
}

// Reads a maximal run of operator symbols, stopping short of a comment.
func (rs *RuneSupplier) ReadOperator() string {
	result := string(rs.CurrentRune())
	for IsOperatorSymbol(rs.PeekRune()) {
		if rs.PeekRune() == '/' && rs.pos+2 < len(rs.code) && rs.code[rs.pos+2] == '/' {
			break
		}
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	return result
}

// Reads a string literal starting at the opening quote. The contents are returned with their
// escape sequences untouched. The boolean is false if the input ends first.
func (rs *RuneSupplier) ReadString() (string, bool) {
	result := ""
	for {
		rs.Next()
		switch rs.CurrentRune() {
		case 0:
			return result, false
		case '\'':
			return result, true
		case '\\':
			result = result + "\\"
			rs.Next()
			if rs.CurrentRune() == 0 {
				return result, false
			}
		}
		result = result + string(rs.CurrentRune())
	}
}

// Reads from the current position up to but not including the end of the line.
func (rs *RuneSupplier) ReadComment() string {
	result := ""
	for rs.PeekRune() != '\n' && rs.PeekRune() != 0 {
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	return result
}
