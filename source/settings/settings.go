// All this does is contain in one place the constants controlling which bits of the inner workings of the
// lexer/parser/standardizer/compiler/machine are displayed for debugging purposes. In a release they must all
// be set to false. A config file can turn them on for a given run without recompiling: see config.go.

package settings

const (
	// These do what it sounds like.
	SHOW_LEXER        = false
	SHOW_PARSER       = false
	SHOW_STANDARDIZER = false
	SHOW_COMPILER     = false
	SHOW_RUNTIME      = false // One line per control item. Very noisy for anything recursive.

	SHOW_TESTS = true // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.

	HISTORY_DRIVER = "" // No history is kept unless a driver is named.
	COLOR          = true
)
