package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEvalCmd(t *testing.T) {
	tests := []struct {
		args    []string
		stdin   string
		want    string
		wantErr bool
	}{
		{[]string{"2+3", "2*(3+4)"}, "", "5\n14\n", false},
		{[]string{"10/0"}, "", "Error: Invalid input or operation.\n", true},
		{[]string{"--explain", "10/0"}, "", "Error: division by zero at offset 2\n", true},
		{[]string{"--digits", "3", "1/3"}, "", "0.333\n", false},
		{[]string{"--strict", "2 3"}, "", "Error: Invalid input or operation.\n", true},
		{[]string{}, "1+1\nsin(90)\n", "2\n1\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cmd := newEvalCmd()
			var out strings.Builder
			cmd.SetArgs(tt.args)
			cmd.SetOut(&out)
			cmd.SetErr(&strings.Builder{})
			cmd.SetIn(strings.NewReader(tt.stdin))

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.calc")
	if err := os.WriteFile(path, []byte("# sums\n1 + 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRunCmd()
	var out strings.Builder
	cmd.SetArgs([]string{path})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := out.String(), "2: 1 + 2 = 3\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestGrammarCheckCmd(t *testing.T) {
	cmd := newGrammarCmd()
	cmd.SetArgs([]string{"check"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("built-in grammar does not verify: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.ebnf")
	if err := os.WriteFile(path, []byte(`expression = missing .`), 0644); err != nil {
		t.Fatal(err)
	}
	cmd = newGrammarCmd()
	var stderr strings.Builder
	cmd.SetArgs([]string{"check", path})
	cmd.SetErr(&stderr)
	if err := cmd.Execute(); err == nil {
		t.Fatal("broken grammar verified")
	}
	if !strings.Contains(stderr.String(), "missing") {
		t.Errorf("stderr = %q, want mention of the undefined production", stderr.String())
	}
}

func TestTokensCmd(t *testing.T) {
	cmd := newTokensCmd()
	var out strings.Builder
	cmd.SetArgs([]string{"sin(30)"})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := `1:1 TrigFunc "sin"
1:4 LParen "("
1:5 Number "30"
1:7 RParen ")"
1:8 EOF ""
`
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestTokensCmdBinaryMinus(t *testing.T) {
	cmd := newTokensCmd()
	var out strings.Builder
	cmd.SetArgs([]string{"2-3"})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := `1:1 Number "2"
1:2 AddOp "-"
1:3 Number "3"
1:4 EOF ""
`
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
