// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Assistant CLI client

package assistant

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Client invokes the assistant CLI as a one-shot, non-interactive process
type Client struct {
	Binary string
	Model  string
	Runner Runner
	Logger *zap.Logger
}

// NewClient creates a client for binary (DefaultBinary when empty)
func NewClient(binary, model string, logger *zap.Logger) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{
		Binary: binary,
		Model:  model,
		Runner: &ExecRunner{},
		Logger: logger,
	}
}

// Ask sends an open-ended question and returns the plain-text answer
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	return c.print(ctx, AskTools, BuildAskPrompt(query))
}

// Suggest asks for exactly one shell command. The answer is not retried
// when it fails to parse.
func (c *Client) Suggest(ctx context.Context, query string) (*Suggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	out, err := c.print(ctx, SuggestTools, BuildSuggestPrompt(query))
	if err != nil {
		return nil, err
	}
	return ParseSuggestion(out)
}

// InteractiveCommand returns the argv that starts an interactive session,
// optionally seeded with query
func (c *Client) InteractiveCommand(query string) []string {
	argv := []string{c.binary()}
	if c.Model != "" {
		argv = append(argv, "--model="+c.Model)
	}
	if query != "" {
		// A query starting with "-" must not be read as an option
		argv = append(argv, "--", query)
	}
	return argv
}

// PrintArgs returns the arguments of a one-shot invocation
func (c *Client) PrintArgs(tools []string, prompt string) []string {
	toolList := strings.Join(tools, ",")
	args := []string{
		"--print",
		"--no-session-persistence",
		"--tools=" + toolList,
		"--allowedTools=" + toolList,
	}
	if c.Model != "" {
		args = append(args, "--model="+c.Model)
	}
	return append(args, prompt)
}

func (c *Client) print(ctx context.Context, tools []string, prompt string) (string, error) {
	args := c.PrintArgs(tools, prompt)
	c.logger().Debug("querying assistant",
		zap.String("binary", c.binary()),
		zap.Strings("tools", tools),
		zap.String("model", c.Model),
	)

	out, err := c.runner().Run(ctx, c.binary(), args)
	if err != nil {
		return "", &ToolError{Binary: c.binary(), ExitCode: -1, Err: err}
	}
	if out.ExitCode != 0 {
		return "", &ToolError{Binary: c.binary(), ExitCode: out.ExitCode, Stderr: out.Stderr}
	}

	c.logger().Debug("assistant answered", zap.Int("bytes", len(out.Stdout)))
	return out.Stdout, nil
}

func (c *Client) binary() string {
	if c.Binary == "" {
		return DefaultBinary
	}
	return c.Binary
}

func (c *Client) runner() Runner {
	if c.Runner == nil {
		return &ExecRunner{}
	}
	return c.Runner
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
