// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Tests for the command driver

package tests

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sony-level/ai/internal/assistant"
	"github.com/sony-level/ai/internal/driver"
)

type fakeSuggester struct {
	suggestion *assistant.Suggestion
	err        error
	queries    []string
}

func (f *fakeSuggester) Suggest(ctx context.Context, query string) (*assistant.Suggestion, error) {
	f.queries = append(f.queries, query)
	return f.suggestion, f.err
}

type fakePrompter struct {
	confirm  bool
	inputs   map[string]string
	asked    []string
	confirms int
}

func (f *fakePrompter) Confirm(message string, defaultYes bool) (bool, error) {
	f.confirms++
	return f.confirm, nil
}

func (f *fakePrompter) Input(message string) (string, error) {
	f.asked = append(f.asked, message)
	return f.inputs[message], nil
}

type fakeShell struct {
	code     int
	err      error
	commands []string
}

func (f *fakeShell) Run(ctx context.Context, dir, command string) (int, error) {
	f.commands = append(f.commands, command)
	return f.code, f.err
}

func newDriver(s *assistant.Suggestion, p *fakePrompter, sh *fakeShell) (*driver.Driver, *bytes.Buffer) {
	var out bytes.Buffer
	return &driver.Driver{
		Assistant: &fakeSuggester{suggestion: s},
		Prompter:  p,
		Shell:     sh,
		Out:       &out,
	}, &out
}

func TestRun_ResolvesPlaceholdersAndExecutes(t *testing.T) {
	prompter := &fakePrompter{confirm: true, inputs: map[string]string{"branch-name": "main"}}
	shell := &fakeShell{}
	d, out := newDriver(&assistant.Suggestion{
		Command:     "git switch <branch-name>",
		Explanation: "Switches to a branch",
	}, prompter, shell)

	code, err := d.Run(context.Background(), "switch branch")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d", code)
	}
	if !reflect.DeepEqual(shell.commands, []string{"git switch main"}) {
		t.Errorf("executed %v", shell.commands)
	}
	if !strings.Contains(out.String(), "Switches to a branch") {
		t.Errorf("explanation not shown: %q", out.String())
	}
	if !strings.Contains(out.String(), "\ngit switch main\n") {
		t.Errorf("resolved command not printed: %q", out.String())
	}
}

func TestRun_Declined(t *testing.T) {
	prompter := &fakePrompter{confirm: false}
	shell := &fakeShell{}
	d, _ := newDriver(&assistant.Suggestion{Command: "rm -rf build", Explanation: "Deletes build"}, prompter, shell)

	code, err := d.Run(context.Background(), "clean")
	if err != nil || code != 0 {
		t.Errorf("Run() = %d, %v; want 0, nil", code, err)
	}
	if len(shell.commands) != 0 {
		t.Error("declined command must not run")
	}
	if len(prompter.asked) != 0 {
		t.Error("placeholders must not be prompted after declining")
	}
}

func TestRun_PropagatesExitStatus(t *testing.T) {
	shell := &fakeShell{code: 3}
	d, _ := newDriver(&assistant.Suggestion{Command: "false", Explanation: "Fails"}, &fakePrompter{confirm: true}, shell)

	code, err := d.Run(context.Background(), "fail")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != 3 {
		t.Errorf("code = %d, want 3", code)
	}
}

func TestRun_MalformedResponse(t *testing.T) {
	shell := &fakeShell{}
	d := &driver.Driver{
		Assistant: &fakeSuggester{err: &assistant.MalformedResponseError{Raw: "nope", Reason: "no json"}},
		Prompter:  &fakePrompter{confirm: true},
		Shell:     shell,
		Out:       &bytes.Buffer{},
	}

	_, err := d.Run(context.Background(), "x")
	if !errors.Is(err, assistant.ErrMalformedResponse) {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Error("error should carry the raw response")
	}
	if len(shell.commands) != 0 {
		t.Error("nothing should run")
	}
}

func TestResolve_PromptsOncePerName(t *testing.T) {
	prompter := &fakePrompter{inputs: map[string]string{"x": "1", "y": "2"}}
	d, _ := newDriver(nil, prompter, &fakeShell{})

	got, err := d.Resolve("echo <x>-<y>-<x>")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "echo 1-2-1" {
		t.Errorf("Resolve() = %q", got)
	}
	if !reflect.DeepEqual(prompter.asked, []string{"x", "y"}) {
		t.Errorf("asked %v, want [x y]", prompter.asked)
	}
}

func TestResolve_NoPlaceholders(t *testing.T) {
	prompter := &fakePrompter{}
	d, out := newDriver(nil, prompter, &fakeShell{})

	got, err := d.Resolve("ls -la")
	if err != nil || got != "ls -la" {
		t.Errorf("Resolve() = %q, %v", got, err)
	}
	if len(prompter.asked) != 0 || out.Len() != 0 {
		t.Error("no prompt or output expected")
	}
}

func TestConfirm_ShowsRiskWarnings(t *testing.T) {
	prompter := &fakePrompter{confirm: true}
	d, out := newDriver(nil, prompter, &fakeShell{})

	ok, err := d.Confirm("Installs jq", "sudo apt-get install jq")
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v", ok, err)
	}
	if prompter.confirms != 1 {
		t.Errorf("confirms = %d", prompter.confirms)
	}

	text := out.String()
	for _, want := range []string{"Installs jq", "sudo apt-get install jq", "critical risk", "sudo privileges"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestPresent_UsesHighlighter(t *testing.T) {
	d, out := newDriver(nil, &fakePrompter{}, &fakeShell{})
	d.Highlight = func(s string) string { return "[" + s + "]" }

	d.Present(&assistant.Suggestion{Command: "ls", Explanation: "Lists", Comment: "Use -a for hidden files"})

	if !strings.Contains(out.String(), "[ls]") {
		t.Errorf("highlighter not used: %q", out.String())
	}
	if !strings.Contains(out.String(), "Use -a for hidden files") {
		t.Errorf("comment not shown: %q", out.String())
	}
}

func TestSuggest_ShowsBusyIndicator(t *testing.T) {
	started, stopped := 0, 0
	d := &driver.Driver{
		Assistant: &fakeSuggester{suggestion: &assistant.Suggestion{Command: "pwd", Explanation: "Prints"}},
		Out:       &bytes.Buffer{},
		Busy: func(string) func() {
			started++
			return func() { stopped++ }
		},
	}

	if _, err := d.Suggest(context.Background(), "where am I"); err != nil {
		t.Fatal(err)
	}
	if started != 1 || stopped != 1 {
		t.Errorf("busy started %d stopped %d", started, stopped)
	}
}
