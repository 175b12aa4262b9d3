package test_helper

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Aravinda-HWK/RPAL-interpreter/source/err"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/service"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/settings"
	"github.com/Aravinda-HWK/RPAL-interpreter/source/text"
)

// Auxiliary types and functions for testing the pipeline end to end.

type TestItem struct {
	Input string
	Want  string
}

func RunTest(t *testing.T, tests []TestItem, F func(sv *service.Service, s string) (string, error)) {
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		sv := service.NewService(settings.Default(), nil)
		got, e := F(sv, test.Input)
		if e != nil {
			t.Fatalf("There were errors running %s : \n%v", test.Input, e)
		}
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.Input, test.Want, got)
		}
	}
}

// Runs each of the files in the test-files directory of the package being tested.
func RunFileTest(t *testing.T, tests []TestItem, F func(sv *service.Service, s string) (string, error)) {
	wd, _ := os.Getwd() // The working directory is the directory containing the package being tested.
	for i := range tests {
		source, e := os.ReadFile(filepath.Join(wd, "test-files", tests[i].Input))
		if e != nil {
			t.Fatal(e)
		}
		tests[i].Input = string(source)
	}
	RunTest(t, tests, F)
}

// The value the program evaluates to, as the REPL would show it.
func TestValues(sv *service.Service, s string) (string, error) {
	v, e := sv.Run(s, &bytes.Buffer{})
	if e != nil {
		return "", e
	}
	return v.Inspect(), nil
}

// What the program prints.
func TestOutput(sv *service.Service, s string) (string, error) {
	var out bytes.Buffer
	_, e := sv.Run(s, &out)
	return out.String(), e
}

// The error the program halts with, rendered as the command line would show it.
func TestErrors(sv *service.Service, s string) (string, error) {
	_, e := sv.Run(s, &bytes.Buffer{})
	if e == nil {
		return "unexpected successful evaluation", nil
	}
	return e.Error(), nil
}

// The identifier of the error the program halts with.
func TestErrorIds(sv *service.Service, s string) (string, error) {
	_, e := sv.Run(s, &bytes.Buffer{})
	if e == nil {
		return "unexpected successful evaluation", nil
	}
	if first, ok := err.As(e); ok {
		return first.ErrorId, nil
	}
	return e.Error(), nil
}
