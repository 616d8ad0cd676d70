package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// Prompter collects input from the user. Handlers depend on this
// interface so tests can script answers instead of driving a terminal.
type Prompter interface {
	// Input asks for a single line. An empty answer returns defaultValue.
	Input(label, defaultValue string) (string, error)

	// Secret asks for a single line without echoing it.
	Secret(label string) (string, error)

	// Confirm asks a yes/no question. Only y or Y counts as yes.
	Confirm(label string) (bool, error)

	// Select asks to pick one of items and returns its index.
	Select(label string, items []string) (int, error)

	// Multiline collects lines until two consecutive blank lines.
	Multiline(label string) (string, error)
}

// terminalPrompter implements Prompter on a real terminal via promptui.
type terminalPrompter struct{}

func (terminalPrompter) Input(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	return prompt.Run()
}

func (terminalPrompter) Secret(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}
	return prompt.Run()
}

func (terminalPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if err == promptui.ErrAbort {
		// Any answer other than y/Y lands here; that is a plain "no".
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (terminalPrompter) Select(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  12,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
		},
	}
	idx, _, err := prompt.Run()
	return idx, err
}

func (terminalPrompter) Multiline(label string) (string, error) {
	fmt.Println(StyleHighlight.Render(label+":") + " " + StyleDim.Render("(press Enter twice to finish)"))
	return readMultiline(os.Stdin)
}

// readMultiline collects lines from r until two consecutive blank lines
// arrive. The terminating blank pair is not part of the result; blank
// lines in the middle survive. EOF ends the input early.
func readMultiline(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" && len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
