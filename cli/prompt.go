// Package cli holds the interactive helpers used by the booksearch command.
package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

var errEmptyInput = errors.New("you must enter something")

// Prompter asks questions on a terminal.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewPrompter returns a Prompter bound to the process's stdin and stdout.
func NewPrompter() *Prompter {
	return &Prompter{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

func required(s string) error {
	if len(strings.TrimSpace(s)) == 0 {
		return errEmptyInput
	}

	return nil
}

// PromptString asks for a non-blank answer.
func (p *Prompter) PromptString(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: required,
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}

	return prompt.Run()
}

// PromptConfirm asks a yes/no question. An aborted prompt counts as "no".
func (p *Prompter) PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Field is a value the user may not have supplied yet.
type Field struct {
	Label string
	Value *string
	Set   bool
}

// FillMissing calls ask for every field that is not Set and stores the
// answer in its Value. It stops at the first error.
func FillMissing(ask func(label string) (string, error), fields ...Field) error {
	for _, f := range fields {
		if f.Set {
			continue
		}

		answer, err := ask(f.Label)
		if err != nil {
			return err
		}

		*f.Value = answer
	}

	return nil
}
