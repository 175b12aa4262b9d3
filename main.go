//
// RPAL version 1.0.2
//
// An interpreter for the RPAL language: a lexer and recursive-descent parser, a standardizer
// which rewrites the syntax tree into applications and lambdas, and a CSE machine which runs
// the result.
//

package main

import (
	"fmt"
	"os"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/hub"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/settings"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/text"
)

func main() {
	flags := hub.Flags{}
	configPath := ""
	filepath := ""
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-ast":
			flags.Ast = true
		case "-st":
			flags.St = true
		case "-deltas":
			flags.Deltas = true
		case "-config":
			if i+1 == len(args) {
				fmt.Print(text.HELP)
				os.Exit(2)
			}
			i++
			configPath = args[i]
		case "-h", "-help", "--help":
			fmt.Print(text.HELP)
			return
		default:
			if filepath != "" || (len(args[i]) > 1 && args[i][0] == '-') {
				fmt.Print(text.HELP)
				os.Exit(2)
			}
			filepath = args[i]
		}
	}

	cfg, e := settings.Load(settings.Locate(configPath))
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}

	if filepath == "" {
		hb, e := hub.New(os.Stdin, os.Stdout, cfg, os.Stderr)
		if e != nil {
			fmt.Fprintln(os.Stderr, e)
			os.Exit(1)
		}
		defer hb.Close()
		hub.StartRepl(hb)
		return
	}

	hb, e := hub.New(nil, os.Stdout, cfg, os.Stderr)
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
	e = hb.RunFile(filepath, flags)
	hb.Close()
	if e != nil {
		os.Exit(1)
	}
}
