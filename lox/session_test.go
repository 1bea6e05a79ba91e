package lox

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/programs.yml
var programs []byte

type programCase struct {
	Name            string   `yaml:"name"`
	Source          string   `yaml:"source"`
	Stdout          []string `yaml:"stdout"`
	Errors          []string `yaml:"errors"`
	HadError        bool     `yaml:"had_error"`
	HadRuntimeError bool     `yaml:"had_runtime_error"`
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

func TestPrograms(t *testing.T) {
	var cases []programCase
	if err := yaml.Unmarshal(programs, &cases); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}

	if len(cases) == 0 {
		t.Fatal("no fixtures decoded")
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			var out, errOut strings.Builder
			s := NewSession(&out, &errOut)
			s.Run(c.Source)

			if diff := cmp.Diff(c.Stdout, lines(out.String())); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(c.Errors, lines(errOut.String())); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}

			if s.HadError() != c.HadError {
				t.Errorf("HadError() = %v, want %v", s.HadError(), c.HadError)
			}

			if s.HadRuntimeError() != c.HadRuntimeError {
				t.Errorf("HadRuntimeError() = %v, want %v", s.HadRuntimeError(), c.HadRuntimeError)
			}
		})
	}
}

func TestBindingsPersistAcrossRuns(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, nil)

	s.Run("var a = 1;")
	s.Run("a = a + 1;")
	s.Run("print undefinedThing;")
	s.Reset()
	s.Run("print a;")

	if got := lines(out.String()); !cmp.Equal(got, []string{"2"}) {
		t.Errorf("output = %v, want [2]", got)
	}

	if s.HadRuntimeError() {
		t.Errorf("Reset should clear the runtime flag")
	}
}

func TestSyntaxErrorSkipsExecution(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, nil)

	stmts := s.Run("print 1; print ;")
	if !s.HadError() {
		t.Fatal("expected a syntax error")
	}

	if len(stmts) != 1 {
		t.Errorf("expected the valid statement to still be parsed, got %d", len(stmts))
	}

	if out.Len() != 0 {
		t.Errorf("nothing should run, got %q", out.String())
	}

	if len(s.Diagnostics()) != 1 {
		t.Errorf("expected one diagnostic, got %v", s.Diagnostics())
	}
}

func TestPrintAST(t *testing.T) {
	var out strings.Builder
	s := NewSession(&out, nil)
	s.PrintAST = true

	s.Run("var a = 1 + 2; print a;")

	want := []string{"(var a (+ 1 2))", "(print a)", "3"}
	if diff := cmp.Diff(want, lines(out.String())); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
