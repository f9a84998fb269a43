// Package wordlist reads word lists, one word per line.
//
// Lines are trimmed and lowercased. Blank lines and lines starting with # are
// skipped, anything else must be a 5 letter word.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/frostyshrek/Wordle-Information-theory/wordle"
)

//go:embed answers.txt
var embeddedAnswers string

//go:embed allowed.txt
var embeddedAllowed string

// LineError reports the line of a list that is not a word
type LineError struct {
	Name string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse reads words from r, name is only used in errors
func Parse(name string, r io.Reader) ([]wordle.Word, error) {
	var words []wordle.Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.ToLower(strings.TrimSpace(sc.Text()))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		w, err := wordle.NewWord(text)
		if err != nil {
			return nil, &LineError{Name: name, Line: line, Err: err}
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return words, nil
}

// Load reads the list in the file at path
func Load(path string) ([]wordle.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// Merge appends the words of each list in order, dropping repeats
func Merge(lists ...[]wordle.Word) []wordle.Word {
	seen := make(map[wordle.Word]struct{})
	var ret []wordle.Word
	for _, list := range lists {
		for _, w := range list {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			ret = append(ret, w)
		}
	}
	return ret
}

// Default returns the built in lists. allowed starts with every answer.
func Default() (allowed, answers []wordle.Word) {
	answers, err := Parse("answers.txt", strings.NewReader(embeddedAnswers))
	if err != nil {
		panic(err)
	}
	extra, err := Parse("allowed.txt", strings.NewReader(embeddedAllowed))
	if err != nil {
		panic(err)
	}
	return Merge(answers, extra), answers
}

// Lists resolves the allowed and answer lists. An empty path uses the built in
// list. When only allowedPath is given it is used for the answers as well.
func Lists(allowedPath, answersPath string) (allowed, answers []wordle.Word, err error) {
	defaultAllowed, defaultAnswers := Default()
	switch {
	case allowedPath != "" && answersPath != "":
		if answers, err = Load(answersPath); err != nil {
			return nil, nil, err
		}
		if allowed, err = Load(allowedPath); err != nil {
			return nil, nil, err
		}
		return Merge(answers, allowed), answers, nil
	case allowedPath != "":
		if allowed, err = Load(allowedPath); err != nil {
			return nil, nil, err
		}
		return allowed, allowed, nil
	case answersPath != "":
		if answers, err = Load(answersPath); err != nil {
			return nil, nil, err
		}
		return Merge(answers, defaultAllowed), answers, nil
	default:
		return defaultAllowed, defaultAnswers, nil
	}
}
