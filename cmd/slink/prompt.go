package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/slink/arff"
)

// prompter asks for missing settings, repeating the question until the
// answer is usable or the input ends.
type prompter struct {
	in   *bufio.Scanner
	out  io.Writer
	stat func(string) (os.FileInfo, error)
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out, stat: os.Stat}
}

// errNoAnswer is returned when the input ends before a usable answer.
var errNoAnswer = errors.New("no answer on standard input")

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errNoAnswer
	}

	return strings.TrimSpace(p.in.Text()), nil
}

// clusterCount asks for k until a positive integer is given.
func (p *prompter) clusterCount() (int, error) {
	question := "Please enter the number of clusters you wish to use:"
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		k, err := strconv.Atoi(answer)
		switch {
		case err != nil:
			question = "That's not a number! Number of clusters:"
		case k <= 0:
			question = "The number of clusters must be positive:"
		default:
			return k, nil
		}
	}
}

// arffPath asks for the dataset path until it names an existing .arff file.
func (p *prompter) arffPath() (string, error) {
	question := "Please enter the path to the .arff file you wish to use:"
	for {
		path, err := p.ask(question)
		if err != nil {
			return "", err
		}
		switch info, err := p.stat(path); {
		case err != nil || info.IsDir():
			question = "That's not a file! Path to the .arff file:"
		case !arff.HasExtension(path):
			question = "That's not an .arff file! Path to the .arff file:"
		default:
			return path, nil
		}
	}
}
