// Package prompt implements the interactive command loop offered after
// training: test the model on typed inputs, save it, or quit.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Marker printed before every command.
const Marker = "~> "

// ErrQuit is returned by Step when the user asks to quit.
var ErrQuit = errors.New("manual quit")

// Model is what the prompt needs from a regressor.
type Model interface {
	Predict(input []float64) ([]float64, error)
	Save(path string) error
	Topology() []int
}

// Prompt reads commands from an input stream and writes replies to an
// output stream.
type Prompt struct {
	in    *bufio.Scanner
	out   io.Writer
	model Model
}

// New creates a prompt over r and w serving m.
func New(r io.Reader, w io.Writer, m Model) *Prompt {
	return &Prompt{in: bufio.NewScanner(r), out: w, model: m}
}

// Run handles commands until the user quits or the input ends.
// Both cases return nil.
func (p *Prompt) Run() error {
	for {
		err := p.Step()
		switch {
		case errors.Is(err, ErrQuit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
}

// Step prints the marker, reads one command and executes it.
//
// It returns ErrQuit after "quit" and io.EOF when the input is exhausted.
// Model errors (a bad save path, for example) are reported to the output
// and do not end the session.
func (p *Prompt) Step() error {
	fmt.Fprint(p.out, Marker)
	command, err := p.readLine()
	if err != nil {
		return err
	}

	switch command {
	case "test":
		return p.test()
	case "save":
		return p.save()
	case "quit":
		fmt.Fprintln(p.out, "manual quit")
		return ErrQuit
	default:
		fmt.Fprintf(p.out, "command '%s' not found, commands: {save, test, quit}\n", command)
		return nil
	}
}

func (p *Prompt) test() error {
	n := p.model.Topology()[0]
	input := make([]float64, 0, n)

	for len(input) < n {
		fmt.Fprintf(p.out, "Enter %d. argument: ", len(input))
		line, err := p.readLine()
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(p.out, "not a number: %q\n", line)
			continue
		}
		fmt.Fprintf(p.out, "your arg: %v\n", v)
		input = append(input, v)
	}

	answer, err := p.model.Predict(input)
	if err != nil {
		fmt.Fprintf(p.out, "prediction failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(p.out, "answer: %v\n", answer)
	return nil
}

func (p *Prompt) save() error {
	fmt.Fprint(p.out, "what should the file be called? ", Marker)
	name, err := p.readLine()
	if err != nil {
		return err
	}
	if err := p.model.Save(name); err != nil {
		fmt.Fprintf(p.out, "save failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(p.out, "written to file '%s' successfully\n", name)
	return nil
}

func (p *Prompt) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read command: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}
