package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions on w and reads answers line by line from r.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(r), out: w}
}

// Line prints prompt and returns the next trimmed line. It returns io.EOF once
// input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Length asks for a positive integer until one is given. Empty input selects def.
func (p *Prompter) Length(def int) (int, error) {
	for {
		line, err := p.Line(fmt.Sprintf("Password length [%d]: ", def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "%q is not a whole number, try again.\n", line)
			continue
		}
		if n < 1 {
			fmt.Fprintln(p.out, "Length must be a positive number, try again.")
			continue
		}
		return n, nil
	}
}

// YesNo asks a yes/no question until it gets y, yes, n or no. Empty input selects def.
func (p *Prompter) YesNo(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		line, err := p.Line(fmt.Sprintf("%s %s: ", question, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
