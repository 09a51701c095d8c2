package ui

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

type Choice struct {
	Label string
	Value string
}

// Question is one answer to collect from the user. A question with Choices
// is asked as a select list, any other as a text prompt.
type Question struct {
	Name     string
	Message  string
	Default  string
	Secret   bool
	Choices  []Choice
	Validate func(string) error
}

type Prompter interface {
	Ask(q *Question) (string, error)
}

// TerminalPrompter asks questions with promptui. Nil streams mean the
// process stdin and stdout.
type TerminalPrompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (p *TerminalPrompter) Ask(q *Question) (string, error) {
	if len(q.Choices) > 0 {
		return p.choose(q)
	}

	prompt := promptui.Prompt{
		Label:   q.Message,
		Default: q.Default,
		Stdin:   p.Stdin,
		Stdout:  p.Stdout,
	}
	if q.Validate != nil {
		prompt.Validate = promptui.ValidateFunc(q.Validate)
	}
	if q.Secret {
		prompt.Mask = '*'
	}
	return prompt.Run()
}

func (p *TerminalPrompter) choose(q *Question) (string, error) {
	cursor := 0
	for i, c := range q.Choices {
		if c.Value == q.Default {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     q.Message,
		Items:     q.Choices,
		CursorPos: cursor,
		Size:      10,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ .Label | underline }}`,
			Inactive: `{{ .Label }}`,
			Selected: fmt.Sprintf("%s %s: {{ .Label | cyan | bold }} ", GreenText("✔"), q.Name),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return q.Choices[i].Value, nil
}

// Choices builds a select list whose labels are its values.
func Choices(values ...string) []Choice {
	choices := make([]Choice, 0, len(values))
	for _, v := range values {
		choices = append(choices, Choice{Label: v, Value: v})
	}
	return choices
}
