package hub

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/database"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/service"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/settings"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/text"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/vm"
)

var (
	MARGIN = 84
)

// The hub sits between the user and the service. It runs files and REPL lines, answers the
// commands that begin with 'hub', and keeps the history store if there is one.
type Hub struct {
	Service *service.Service
	Db      *database.Store
	ers     err.Errors // The errors from the last thing that went wrong, for 'hub why'.
	in      io.Reader
	out     io.Writer
}

// What to show of a file besides its output.
type Flags struct {
	Ast    bool
	St     bool
	Deltas bool
}

func New(in io.Reader, out io.Writer, cfg *settings.Config, trace io.Writer) (*Hub, error) {
	if cfg == nil {
		cfg = settings.Default()
	}
	if !cfg.UseColor() {
		text.DisableColor()
	}
	hub := Hub{
		Service: service.NewService(cfg, trace),
		in:      in,
		out:     out,
	}
	if cfg.History.Driver != "" {
		db, e := database.Open(cfg.History.Driver, cfg.History.DSN)
		if e != nil {
			return nil, fmt.Errorf("history: %w", e)
		}
		hub.Db = db
	}
	return &hub, nil
}

func (hub *Hub) Close() error {
	if hub.Db == nil {
		return nil
	}
	return hub.Db.Close()
}

// This takes the input from the REPL, interprets it as a hub command if it begins with 'hub',
// and otherwise as a program to be run. It returns true if the user wants to quit.
func (hub *Hub) Do(line string) bool {
	if match, _ := regexp.MatchString(`^\s*(|\/\/.*)$`, line); match {
		return false
	}
	hubWords := strings.Fields(line)
	if hubWords[0] == "hub" {
		if len(hubWords) == 1 {
			hub.WriteError("you need to say what you want the hub to do.")
			return false
		}
		rest := strings.TrimSpace(strings.TrimSpace(line)[len("hub"):])
		return hub.DoHubCommand(hubWords[1], strings.TrimSpace(rest[len(hubWords[1]):]))
	}
	hub.Evaluate(line)
	return false
}

func (hub *Hub) DoHubCommand(verb string, args string) bool {
	switch verb {
	case "quit":
		hub.quit()
		return true
	case "help":
		hub.help()
	case "why":
		hub.why(args)
	case "ast", "st", "deltas":
		hub.show(verb, args)
	case "history":
		hub.history(args)
	case "drivers":
		hub.WriteString("\n" + database.GetDriverOptions() + "\n")
	default:
		hub.WriteError("the hub doesn't know the command " + text.Emph(verb) + ".")
	}
	return false
}

// Evaluate runs a line of input and shows the REPL user what became of it.
func (hub *Hub) Evaluate(source string) {
	var printed bytes.Buffer
	v, e := hub.Service.Run(source, io.MultiWriter(hub.out, &printed))
	if printed.Len() > 0 && !bytes.HasSuffix(printed.Bytes(), []byte("\n")) {
		hub.WriteString("\n")
	}
	hub.record(source, printed.String(), v, e)
	if e != nil {
		hub.reportError(e)
		return
	}
	hub.ers = nil
	if v.T != vm.DUMMY {
		hub.WriteString(v.Inspect() + "\n")
	}
}

// RunFile is what the command line does with a file: shows what the flags ask for, then runs it,
// ending the output with a newline.
func (hub *Hub) RunFile(path string, flags Flags) error {
	source, e := os.ReadFile(path)
	if e != nil {
		hub.WriteError("can't open " + text.Emph(path) + ".")
		return e
	}
	tree, e := hub.Service.Parse(string(source))
	if e != nil {
		hub.reportError(e)
		hub.record(string(source), "", vm.Value{}, e)
		return e
	}
	if flags.Ast {
		tree.Print(hub.out)
	}
	if e := hub.Service.Standardize(tree); e != nil {
		hub.reportError(e)
		hub.record(string(source), "", vm.Value{}, e)
		return e
	}
	if flags.St {
		tree.Print(hub.out)
	}
	program := hub.Service.CompileTree(tree)
	if flags.Deltas {
		program.Print(hub.out)
	}
	var printed bytes.Buffer
	v, e := hub.Service.Execute(program, io.MultiWriter(hub.out, &printed))
	hub.WriteString("\n")
	hub.record(string(source), printed.String(), v, e)
	if e != nil {
		hub.reportError(e)
		return e
	}
	return nil
}

func (hub *Hub) record(source, output string, v vm.Value, e error) {
	if hub.Db == nil {
		return
	}
	run := database.Run{Source: source, Output: output}
	if e != nil {
		run.Failure = e.Error()
	} else {
		run.Result = v.Inspect()
	}
	if dbErr := hub.Db.Record(run); dbErr != nil {
		hub.WriteError("couldn't record the run in the history: " + dbErr.Error())
	}
}

func (hub *Hub) reportError(e error) {
	var ers err.Errors
	switch e := e.(type) {
	case err.Errors:
		ers = e
	case *err.Error:
		ers = err.Errors{e}
	}
	hub.ers = ers
	if len(ers) == 0 {
		hub.WriteString(text.Red("Error") + ": " + e.Error() + "\n")
		return
	}
	if !hub.interactive() {
		hub.WriteString(ers[0].Error() + "\n")
		return
	}
	for _, anError := range ers {
		hub.WriteString(describeError(anError) + "\n")
	}
	hub.WriteString(text.Cyan("hub why") + " for more information.\n")
}

// A hub with no input is just running a file for the command line.
func (hub *Hub) interactive() bool {
	return hub.in != nil
}

func (hub *Hub) why(args string) {
	if len(hub.ers) == 0 {
		hub.WriteError("there are no recent errors.")
		return
	}
	pos := 0
	if args != "" {
		n, e := strconv.Atoi(args)
		if e != nil || n < 0 || n >= len(hub.ers) {
			hub.WriteError("there is no error number " + text.Emph(args) + ".")
			return
		}
		pos = n
	}
	hub.WritePretty("$" + hub.ers[pos].ErrorId + "$" + hub.ers[pos].Message + "\n\n" + err.Explain(hub.ers, pos) + "\n")
}

// Shows a program at the given stage without running it.
func (hub *Hub) show(stage, source string) {
	if source == "" {
		hub.WriteError("you need to give the hub a program to show.")
		return
	}
	tree, e := hub.Service.Parse(source)
	if e != nil {
		hub.reportError(e)
		return
	}
	if stage == "ast" {
		tree.Print(hub.out)
		return
	}
	if e := hub.Service.Standardize(tree); e != nil {
		hub.reportError(e)
		return
	}
	if stage == "st" {
		tree.Print(hub.out)
		return
	}
	hub.Service.CompileTree(tree).Print(hub.out)
}

func (hub *Hub) history(args string) {
	if hub.Db == nil {
		hub.WriteError("there is no history store. Say which database to use under " +
			text.Emph("history") + " in the config file.")
		return
	}
	n := 10
	if args != "" {
		m, e := strconv.Atoi(args)
		if e != nil || m < 1 {
			hub.WriteError(text.Emph(args) + " isn't a number of runs.")
			return
		}
		n = m
	}
	runs, e := hub.Db.Recent(n)
	if e != nil {
		hub.WriteError(e.Error())
		return
	}
	if len(runs) == 0 {
		hub.WriteString("The history is empty.\n")
		return
	}
	hub.WriteString("\n")
	for i := len(runs) - 1; i >= 0; i-- {
		run := runs[i]
		outcome := text.Green(run.Result)
		if run.Failure != "" {
			outcome = text.Red(run.Failure)
		}
		times := ""
		if n, e := hub.Db.Count(run.Source); e == nil && n > 1 {
			times = fmt.Sprintf(" (run %d times)", n)
		}
		hub.WriteString(text.BULLET + run.Created.Format("15:04:05") + " " + text.Cyan(firstLine(run.Source)) + times + " " + text.PROMPT + outcome + "\n")
	}
	hub.WriteString("\n")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

func (hub *Hub) quit() {
	hub.WriteString(text.OK() + "\n" + text.Logo() + "Thank you for using RPAL. Have a nice day!\n\n")
}

var helpStrings = []string{
	"hub quit", "leaves the REPL",
	"hub why <n>", "explains the nth of the last errors, counting from 0",
	"hub ast <program>", "shows the abstract syntax tree of the program",
	"hub st <program>", "shows the standardized tree of the program",
	"hub deltas <program>", "shows the closures the program is partitioned into",
	"hub history <n>", "lists the last n runs, if there is a history store",
	"hub drivers", "lists the databases the history can be kept in",
	"hub help", "shows this message",
}

func (hub *Hub) help() {
	hub.WriteString("\n")
	hub.WriteString("Anything which isn't a hub command is run as a program. Hub commands are:\n")
	hub.WriteString("\n")
	for i := 0; i < len(helpStrings); i = i + 2 {
		hub.WriteString(text.BULLET + text.Cyan(fmt.Sprintf("%-22s", helpStrings[i])) + helpStrings[i+1] + "\n")
	}
	hub.WriteString("\n")
}

func (hub *Hub) WritePretty(s string) {
	hub.WriteString(text.Pretty(s, 0, MARGIN))
}

func (hub *Hub) WriteError(s string) {
	hub.WritePretty("\n$Hub error$" + s)
	hub.WriteString("\n")
}

func (hub *Hub) WriteString(s string) {
	io.WriteString(hub.out, s)
}

// Errors are shown the way a compiler shows them, with the line number after the kind of error.
func describeError(e *err.Error) string {
	if e.Line > 0 {
		return text.Red(e.Kind().String()) + e.Error()
	}
	return text.Red(e.Kind().String()) + ": " + e.Error()
}
