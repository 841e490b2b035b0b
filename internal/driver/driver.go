// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Suggest, confirm, resolve and execute a single shell command

package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/sony-level/ai/internal/assistant"
	"github.com/sony-level/ai/internal/security"
	"github.com/sony-level/ai/internal/template"
	"github.com/sony-level/ai/internal/ui"
	"go.uber.org/zap"
)

// Suggester produces one structured command suggestion for a query
type Suggester interface {
	Suggest(ctx context.Context, query string) (*assistant.Suggestion, error)
}

// Prompter asks the user questions
type Prompter interface {
	Confirm(message string, defaultYes bool) (bool, error)
	Input(message string) (string, error)
}

// CommandRunner runs a command through a shell and reports its exit status
type CommandRunner interface {
	Run(ctx context.Context, dir, command string) (int, error)
}

// Driver turns a natural-language query into an executed shell command
type Driver struct {
	Assistant Suggester
	Prompter  Prompter
	Shell     CommandRunner
	Out       io.Writer
	Dir       string // working directory for Execute; empty is the current one

	// Highlight renders the command for display; nil prints it plain
	Highlight func(command string) string
	// Busy shows progress while the assistant thinks; nil shows nothing
	Busy   func(message string) (stop func())
	Logger *zap.Logger
}

// Suggest asks the assistant for a command
func (d *Driver) Suggest(ctx context.Context, query string) (*assistant.Suggestion, error) {
	stop := func() {}
	if d.Busy != nil {
		stop = d.Busy("Thinking ...")
	}
	s, err := d.Assistant.Suggest(ctx, query)
	stop()
	if err != nil {
		return nil, err
	}

	d.logger().Debug("suggestion received",
		zap.String("command", s.Command),
		zap.Bool("has_comment", s.Comment != ""),
	)
	return s, nil
}

// Present prints the explanation, the optional comment, any risk warnings
// and the command
func (d *Driver) Present(s *assistant.Suggestion) {
	fmt.Fprintln(d.Out)
	fmt.Fprintf(d.Out, "  %s\n", ui.Bold(s.Explanation))
	if s.Comment != "" {
		fmt.Fprintf(d.Out, "  %s\n", ui.Faint(s.Comment))
	}

	analysis := security.Analyze(s.Command)
	if analysis.Risk >= security.RiskHigh {
		ui.Warning(d.Out, "%s risk", analysis.Risk)
	}
	for _, w := range analysis.Warnings {
		ui.Warning(d.Out, "%s", w)
	}

	fmt.Fprintln(d.Out)
	fmt.Fprintf(d.Out, "    %s\n\n", d.render(s.Command))
}

// Confirm presents the suggestion and returns the user's decision
func (d *Driver) Confirm(explanation, command string) (bool, error) {
	d.Present(&assistant.Suggestion{Command: command, Explanation: explanation})
	return d.ask()
}

func (d *Driver) ask() (bool, error) {
	return d.Prompter.Confirm("Execute?", false)
}

// Resolve prompts once for every distinct placeholder in command and
// substitutes the answers. Commands without placeholders are returned
// unchanged.
func (d *Driver) Resolve(command string) (string, error) {
	set, ok := template.Parse(command)
	if !ok {
		return command, nil
	}

	names := set.Distinct()
	values := make(map[string]string, len(names))
	for _, name := range names {
		value, err := d.Prompter.Input(name)
		if err != nil {
			return "", fmt.Errorf("failed to read value for <%s>: %w", name, err)
		}
		values[name] = value
	}

	resolved := set.Apply(values)
	// Printed so the filled-in command can be copied later
	fmt.Fprintf(d.Out, "\n%s\n", resolved)
	return resolved, nil
}

// Execute runs command with the terminal attached and returns its exit
// status. The error is only set when the shell could not run at all.
func (d *Driver) Execute(ctx context.Context, command string) (int, error) {
	d.logger().Debug("executing", zap.String("command", command), zap.String("dir", d.Dir))
	return d.Shell.Run(ctx, d.Dir, command)
}

// Run performs the whole flow for query. Declining the suggestion is not an
// error and yields status 0.
func (d *Driver) Run(ctx context.Context, query string) (int, error) {
	s, err := d.Suggest(ctx, query)
	if err != nil {
		return 1, err
	}

	d.Present(s)
	ok, err := d.ask()
	if err != nil {
		return 1, err
	}
	if !ok {
		return 0, nil
	}

	command, err := d.Resolve(s.Command)
	if err != nil {
		return 1, err
	}

	code, err := d.Execute(ctx, command)
	if err != nil {
		return 1, err
	}
	return code, nil
}

func (d *Driver) render(command string) string {
	if d.Highlight == nil {
		return command
	}
	return d.Highlight(command)
}

func (d *Driver) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
