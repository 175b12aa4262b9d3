package text

// This consists of a bunch of text utilities to help in generating pretty and meaningful
// help messages, error messages, etc.

import (
	"strings"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/token"
)

const (
	VERSION        = "1.0.2"
	BULLET         = "  ▪ "
	BULLET_SPACING = "    " // I.e. whitespace the same width as BULLET.
	PROMPT         = "→ "
)

var (
	RESET     = "\033[0m"
	UNDERLINE = "\033[3m"
	RED       = "\033[31m"
	GREEN     = "\033[32m"
	YELLOW    = "\033[33m"
	BLUE      = "\033[34m"
	PURPLE    = "\033[35m"
	CYAN      = "\033[36m"
	GRAY      = "\033[37m"
	WHITE     = "\033[97m"

	ERROR     = "$Error$"
	HUB_ERROR = "$Hub error$"
)

// Turns off the ANSI escapes, for dumb terminals and for piping output into files.
func DisableColor() {
	RESET, UNDERLINE, RED, GREEN, YELLOW = "", "", "", "", ""
	BLUE, PURPLE, CYAN, GRAY, WHITE = "", "", "", "", ""
}

func Emph(s string) string {
	return "'" + s + "'"
}

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func OK() string {
	return Green("OK")
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 1 {
		padding = ","
	}
	titleText := " RPAL" + padding + " version " + VERSION + " "
	lambda := Yellow("λ")
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + lambda + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + lambda + bar + "╝\n\n"
	return logoString
}

const HELP = "\nUsage: rpal [-ast] [-st] [-deltas] [-config <file>] [<file>]\n\n" +
	"  -ast          Prints the abstract syntax tree of the program.\n" +
	"  -st           Prints the standardized tree of the program.\n" +
	"  -deltas       Prints the closures the program is partitioned into.\n" +
	"  -config       Reads settings from the given YAML file.\n\n" +
	"Without a file, starts the REPL.\n\n"

// Describes a token for the purposes of error messages etc.
func DescribeTok(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.STRING:
		return "<string>"
	case token.INT:
		return "<integer>"
	case token.IDENT:
		return "identifier '" + tok.Literal + "'"
	}
	return "'" + tok.Literal + "'"
}

func HighlightLine(plainLine string, highlighter rune) (string, rune) {
	// Anything enclosed in '   ' is code and is therefore highlighted. Text between $ signs is
	// an error heading and goes red.

	// The ' doesn't trigger the highlighting unless it follows a line beginning or space etc, because it
	// might be an apostrophe.

	highlitLine := ""
	prevCh := ' '
	if highlighter != ' ' {
		highlitLine = CYAN
	}

	for _, ch := range plainLine {
		if highlighter == ' ' && (prevCh == ' ' || prevCh == '\n' || prevCh == '$') &&
			(ch == '\'' || ch == '$') {
			highlighter = ch
			if highlighter == '$' {
				highlitLine = highlitLine + RED
				continue
			}
			highlitLine = highlitLine + CYAN
		} else if ch == highlighter {
			prevCh = ch
			highlighter = ' '
			if ch == '$' {
				highlitLine = highlitLine + RESET + ": "
				continue
			}
			highlitLine = highlitLine + string(ch) + RESET
			continue
		}
		prevCh = ch
		highlitLine = highlitLine + string(ch)
	}
	return highlitLine, highlighter
}

// Wraps the text between the margins, highlighting it as it goes.
func Pretty(s string, lMargin, rMargin int) string {
	LENGTH := rMargin - lMargin
	result := ""
	highlighter := ' '
	for i := 0; i < len(s); {
		result = result + strings.Repeat(" ", lMargin)
		e := i + LENGTH
		j := 0
		if e > len(s) {
			j = len(s) - i
		} else if strings.Contains(s[i:e], "\n") {
			j = strings.Index(s[i:e], "\n")
		} else {
			j = strings.LastIndex(s[i:e], " ")
		}
		if j == -1 {
			j = LENGTH
		}
		if strings.Contains(s[i:i+j], "\n") {
			j = strings.Index(s[i:i+j], "\n")
		}
		var str string
		str, highlighter = HighlightLine(s[i:i+j], highlighter)
		result = result + (str + "\n")
		i = i + j + 1
	}
	return result
}
