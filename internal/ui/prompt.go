// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Interactive prompts

package ui

import (
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks questions on the terminal
type Prompter struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err io.Writer
}

// NewPrompter returns a prompter on the process stdio
func NewPrompter() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Confirm asks a yes/no question
func (p *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	answer := false
	prompt := &survey.Confirm{Message: message, Default: defaultYes}
	if err := survey.AskOne(prompt, &answer, p.stdio()); err != nil {
		return false, translate(err)
	}
	return answer, nil
}

// Input asks for one line of free text. Empty answers are allowed.
func (p *Prompter) Input(message string) (string, error) {
	answer := ""
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &answer, p.stdio()); err != nil {
		return "", translate(err)
	}
	return answer, nil
}

func (p *Prompter) stdio() survey.AskOpt {
	return survey.WithStdio(p.In, p.Out, p.Err)
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
