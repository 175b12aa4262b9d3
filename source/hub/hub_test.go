package hub

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/settings"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/text"

	"github.com/lmorg/readline"
)

func newTestHub(t *testing.T, withHistory bool) (*Hub, *bytes.Buffer) {
	return newHub(t, withHistory, strings.NewReader(""))
}

func newFileHub(t *testing.T, withHistory bool) (*Hub, *bytes.Buffer) {
	return newHub(t, withHistory, nil)
}

func newHub(t *testing.T, withHistory bool, in io.Reader) (*Hub, *bytes.Buffer) {
	text.DisableColor()
	cfg := settings.Default()
	if withHistory {
		cfg.History = settings.History{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "history.db")}
	}
	var out bytes.Buffer
	hub, e := New(in, &out, cfg, nil)
	if e != nil {
		t.Fatal(e)
	}
	t.Cleanup(func() { hub.Close() })
	return hub, &out
}

func TestDo(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`2 + 2`, "4\n"},
		{`Print 'hi'`, "hi\n"},
		{`Print 'hi\n'`, "hi\n"},
		{`(Print 1, 2)`, "1\n(dummy, 2)\n"},
		{`dummy`, ""},
		{`// nothing but a comment`, ""},
		{`   `, ""},
		{`x`, "EvaluationError:1: Undeclared identifier \"x\"\nhub why for more information.\n"},
	}
	for _, test := range tests {
		hub, out := newTestHub(t, false)
		if hub.Do(test.input) {
			t.Fatalf("Input %s made the hub quit", test.input)
		}
		if out.String() != test.want {
			t.Fatalf("Test failed with input %s | Wanted : %q | Got : %q.", test.input, test.want, out.String())
		}
	}
}

func TestQuit(t *testing.T) {
	hub, out := newTestHub(t, false)
	if !hub.Do(`hub quit`) {
		t.Fatal("The hub didn't quit")
	}
	if !strings.Contains(out.String(), "Have a nice day") {
		t.Fatalf("No farewell in %q", out.String())
	}
}

func TestHubCommands(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`hub ast let x = 1 in x`, "let\n.=\n..<ID:x>\n..<INT:1>\n.<ID:x>\n"},
		{`hub st let x = 1 in x`, "gamma\n.lambda\n..<ID:x>\n..<ID:x>\n.<INT:1>\n"},
		{`hub deltas fn x. x`, "delta 0 []: delta 1\ndelta 1 [x]: <ID:x>\n"},
		{`hub help`, "hub history <n>"},
		{`hub drivers`, "SQLite (sqlite)"},
		{`hub zort`, "doesn't know the command 'zort'"},
		{`hub`, "you need to say what you want the hub to do"},
		{`hub why`, "there are no recent errors"},
		{`hub history`, "there is no history store"},
		{`hub ast`, "you need to give the hub a program to show"},
	}
	for _, test := range tests {
		hub, out := newTestHub(t, false)
		hub.Do(test.input)
		if !strings.Contains(out.String(), test.want) {
			t.Fatalf("Test failed with input %s | Wanted : %q | Got : %q.", test.input, test.want, out.String())
		}
	}
}

func TestWhy(t *testing.T) {
	hub, out := newTestHub(t, false)
	hub.Do(`1 / 0`)
	out.Reset()
	hub.Do(`hub why`)
	if !strings.Contains(out.String(), "eval/arith/zero") {
		t.Fatalf("Explanation doesn't name the error: %q", out.String())
	}
	out.Reset()
	hub.Do(`hub why 7`)
	if !strings.Contains(out.String(), "there is no error number '7'") {
		t.Fatalf("Wrong response to a missing error: %q", out.String())
	}
}

func TestHistory(t *testing.T) {
	hub, out := newTestHub(t, true)
	hub.Do(`Print 'a'`)
	hub.Do(`1 + 'b'`)
	hub.Do(`3 * 3`)
	out.Reset()
	hub.Do(`hub history 2`)
	got := out.String()
	if strings.Contains(got, `Print 'a'`) {
		t.Fatalf("History shows more than was asked for:\n%s", got)
	}
	first, second := strings.Index(got, `1 + 'b'`), strings.Index(got, `3 * 3`)
	if first == -1 || second == -1 || first > second {
		t.Fatalf("History is wrong or out of order:\n%s", got)
	}
	if !strings.Contains(got, `Expected two integers`) || !strings.Contains(got, "9") {
		t.Fatalf("History doesn't show outcomes:\n%s", got)
	}
	hub.Do(`3 * 3`)
	out.Reset()
	hub.Do(`hub history 1`)
	if !strings.Contains(out.String(), "(run 2 times)") {
		t.Fatalf("History doesn't count repeated runs:\n%s", out.String())
	}
}

func TestPrompt(t *testing.T) {
	hub, _ := newTestHub(t, false)
	plain := hub.prompt()
	hub.Do(`y`)
	if len(hub.ers) == 0 {
		t.Fatal("The error wasn't kept")
	}
	hub.Do(`1 + 1`)
	if len(hub.ers) != 0 || hub.prompt() != plain {
		t.Fatalf("The prompt still shows an error after a good run: %q", hub.prompt())
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.rpal")
	if e := os.WriteFile(path, []byte("let x = 2 in Print (x * 3)"), 0644); e != nil {
		t.Fatal(e)
	}
	tests := []struct {
		flags Flags
		want  string
	}{
		{Flags{}, "6\n"},
		{Flags{Ast: true}, "let\n.=\n..<ID:x>\n..<INT:2>\n.gamma\n..<ID:Print>\n..*\n...<ID:x>\n...<INT:3>\n6\n"},
		{Flags{St: true}, "gamma\n.lambda\n..<ID:x>\n..gamma\n...<ID:Print>\n...*\n....<ID:x>\n....<INT:3>\n.<INT:2>\n6\n"},
		{Flags{Deltas: true}, "delta 0 []: gamma delta 1 <INT:2>\ndelta 1 [x]: gamma <ID:Print> * <ID:x> <INT:3>\n6\n"},
	}
	for _, test := range tests {
		hub, out := newFileHub(t, false)
		if e := hub.RunFile(path, test.flags); e != nil {
			t.Fatal(e)
		}
		if out.String() != test.want {
			t.Fatalf("Test failed with flags %+v | Wanted : %q | Got : %q.", test.flags, test.want, out.String())
		}
	}
}

func TestRunFileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.rpal")
	os.WriteFile(bad, []byte("let x = 1\nin y"), 0644)
	hub, out := newFileHub(t, true)
	if e := hub.RunFile(bad, Flags{}); e == nil {
		t.Fatal("Running a bad program didn't fail")
	}
	if out.String() != "\n:2: Undeclared identifier \"y\"\n" {
		t.Fatalf("Wrong diagnostic %q", out.String())
	}
	if e := hub.RunFile(filepath.Join(dir, "missing.rpal"), Flags{}); e == nil {
		t.Fatal("Running a missing file didn't fail")
	}
	runs, e := hub.Db.Recent(5)
	if e != nil || len(runs) != 1 || runs[0].Failure == "" {
		t.Fatalf("History of failed run is wrong: %+v, %v", runs, e)
	}
}

func TestTab(t *testing.T) {
	prefix, suggestions, _, _ := Tab([]rune("Print (Ist"), 10, readline.DelayedTabContext{})
	if prefix != "Ist" {
		t.Fatalf("Wrong prefix %q", prefix)
	}
	want := map[string]bool{"uple": true, "ruthvalue": true}
	if len(suggestions) != len(want) {
		t.Fatalf("Wrong suggestions %v", suggestions)
	}
	for _, s := range suggestions {
		if !want[s] {
			t.Fatalf("Unexpected suggestion %q", s)
		}
	}
}
