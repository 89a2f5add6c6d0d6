// Package prompt provides the interactive capability the scaffolder is
// parameterized by. The scaffolder never reads the terminal itself; it only
// calls this interface, so its selection logic stays pure and testable.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/movekit/cli/internal/output"
)

// Prompter asks the user questions during an interactive scaffold.
type Prompter interface {
	// AskYesNo asks a yes/no question, offering def when the answer is empty.
	AskYesNo(question string, def bool) (bool, error)

	// AskChoice asks the user to pick one of options by number, offering
	// options[def] when the answer is empty. Returns the chosen index.
	AskChoice(question string, options []string, def int) (int, error)

	// AskString asks for a free-form answer, offering def when empty.
	AskString(question, def string) (string, error)
}

// Std is a Prompter reading answers line by line from an input stream.
type Std struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStd creates a Prompter on the given streams.
func NewStd(in io.Reader, out io.Writer) *Std {
	return &Std{in: bufio.NewReader(in), out: out}
}

// NewTerminal creates a Prompter on stdin/stdout.
func NewTerminal() *Std {
	return NewStd(os.Stdin, os.Stdout)
}

func (p *Std) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskYesNo implements Prompter. Invalid answers re-ask.
func (p *Std) AskYesNo(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(p.out, "%s [%s]: ", question, hint)

		answer, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, output.Warning("Please answer y or n."))
		}
	}
}

// AskChoice implements Prompter. Answers are 1-based numbers; invalid
// answers re-ask.
func (p *Std) AskChoice(question string, options []string, def int) (int, error) {
	fmt.Fprintln(p.out, question)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %s %s\n", output.Noun(strconv.Itoa(i+1)+"."), opt)
	}

	for {
		fmt.Fprintf(p.out, "Enter the number 1-%d [Default: %d]: ", len(options), def+1)

		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(p.out, output.Warning(fmt.Sprintf("Please select a number 1-%d.", len(options))))
			continue
		}
		return n - 1, nil
	}
}

// AskString implements Prompter.
func (p *Std) AskString(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [Default: %s]: ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
