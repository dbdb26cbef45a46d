package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrPromptAborted is returned when the user cancels a selection (Ctrl-C).
var ErrPromptAborted = errors.New("selection aborted")

// PromptDriver abstracts interactive selection so the run logic can be
// tested without a real terminal.
type PromptDriver interface {
	Select(message string, options []string) (int, error)
}

// surveyDriver implements PromptDriver on top of AlecAivazis/survey.
type surveyDriver struct{}

// Compile-time interface check
var _ PromptDriver = surveyDriver{}

func (surveyDriver) Select(message string, options []string) (int, error) {
	var out string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 10,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, ErrPromptAborted
		}
		return 0, err
	}
	return indexOf(options, out), nil
}

// indexOf returns the position of value in options, or 0 when absent.
func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return 0
}
