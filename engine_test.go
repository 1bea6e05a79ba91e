package main

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

//go:embed testdata/fib_iter.lox
var fibIter []byte

func writeScript(t *testing.T, name, source string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.yml")
}

func TestFibIteration(t *testing.T) {
	path := writeScript(t, "fib.lox", string(fibIter))

	var stdout, stderr strings.Builder
	code := run([]string{"-config", noConfig(t), path}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	want := "0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n"
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		name   string
		source string
		code   int
	}{
		{"ok", "print 1;", 0},
		{"syntax", "print ;", exitData},
		{"runtime", "print -nil;", exitRuntime},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeScript(t, c.name+".lox", c.source)

			var stdout, stderr strings.Builder
			if code := run([]string{"-config", noConfig(t), path}, strings.NewReader(""), &stdout, &stderr); code != c.code {
				t.Errorf("exit code %d, want %d (stderr %q)", code, c.code, stderr.String())
			}
		})
	}
}

func TestUsageAndIOErrors(t *testing.T) {
	var stdout, stderr strings.Builder

	if code := run([]string{"-config", noConfig(t), "a.lox", "b.lox"}, nil, &stdout, &stderr); code != exitUsage {
		t.Errorf("two scripts: exit code %d, want %d", code, exitUsage)
	}

	missing := filepath.Join(t.TempDir(), "missing.lox")
	if code := run([]string{"-config", noConfig(t), missing}, nil, &stdout, &stderr); code != exitIO {
		t.Errorf("missing script: exit code %d, want %d", code, exitIO)
	}

	if code := run([]string{"-no-such-flag"}, nil, &stdout, &stderr); code != exitUsage {
		t.Errorf("bad flag: exit code %d, want %d", code, exitUsage)
	}

	badConfig := writeScript(t, "bad.yml", "log_level: shouting\n")
	if code := run([]string{"-config", badConfig}, strings.NewReader(""), &stdout, &stderr); code != exitUsage {
		t.Errorf("bad config: exit code %d, want %d", code, exitUsage)
	}
}

func TestPromptKeepsStateAndRecovers(t *testing.T) {
	cfg := writeScript(t, "lox.yml", "prompt: \"$ \"\n")
	input := "var a = 1;\nprint ;\nprint a + 1;\nprint b;\nprint a;"

	var stdout, stderr strings.Builder
	code := run([]string{"-config", cfg}, strings.NewReader(input), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	// the last line has no newline, so it arrives together with EOF
	want := "$ $ $ 2\n$ $ 1\n"
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	wantErr := "[line 1] Error at ';': Expect expression.\nUndefined variable 'b'. \n[line 1]\n"
	if diff := cmp.Diff(wantErr, stderr.String()); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}

func TestASTFlag(t *testing.T) {
	path := writeScript(t, "ast.lox", "print 1 + 2;")

	var stdout, stderr strings.Builder
	if code := run([]string{"-config", noConfig(t), "-ast", path}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	if diff := cmp.Diff("(print (+ 1 2))\n3\n", stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}
