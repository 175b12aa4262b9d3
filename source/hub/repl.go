package hub

import (
	"sort"
	"strings"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/lexer"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/text"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/token"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/vm"

	"github.com/lmorg/readline"
)

func StartRepl(hub *Hub) {
	rline := readline.NewInstance()
	rline.TabCompleter = Tab
	hub.WriteString(text.Logo())
	for {
		rline.SetPrompt(hub.prompt())
		line, e := rline.Readline()
		if e != nil {
			hub.quit()
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if hub.Do(line) {
			break
		}
	}
}

func (hub *Hub) prompt() string {
	promptText := hub.Service.Config.Repl.Prompt
	if promptText == "" {
		promptText = text.PROMPT
	}
	if len(hub.ers) > 0 {
		return text.Red(promptText)
	}
	return promptText
}

var completions = func() []string {
	words := []string{"hub"}
	for k := range vm.BUILTINS {
		words = append(words, k)
	}
	words = append(words, token.Keywords()...)
	for i := 0; i < len(helpStrings); i = i + 2 {
		words = append(words, strings.Fields(helpStrings[i])[1])
	}
	sort.Strings(words)
	return words
}()

// Tab completes the identifier under the cursor from the keywords, the builtins, and the hub's verbs.
func Tab(line []rune, pos int, dtx readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
	start := pos
	for start > 0 && lexer.IsIdentifierRune(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	var suggestions []string
	if prefix != "" {
		for _, word := range completions {
			if strings.HasPrefix(word, prefix) && word != prefix {
				suggestions = append(suggestions, word[len(prefix):])
			}
		}
	}
	return prefix, suggestions, nil, readline.TabDisplayGrid
}
