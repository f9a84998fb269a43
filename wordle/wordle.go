package wordle

import (
	"fmt"
	"strconv"
)

// WordLen is the number of letters in every word
const WordLen = 5

// Word is a validated 5 letter lowercase word
type Word [WordLen]byte

// Mark is the color given to one letter of a guess
type Mark uint8

const (
	Grey Mark = iota
	Yellow
	Green
)

// Pattern is the marks for each position of a guess, position 0 first
type Pattern [WordLen]Mark

// Code is a Pattern packed as a base 3 number, position 0 is the least significant digit
type Code uint8

const (
	// NumCodes is the number of distinct patterns, 3^5
	NumCodes = 243
	// AllGreen is the code of a solved guess
	AllGreen Code = NumCodes - 1
)

var pow3 = [WordLen]Code{1, 3, 9, 27, 81}

// InvalidWordError is returned when text can not become a Word
type InvalidWordError struct {
	Word   string
	Reason string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid word %q: %s", e.Word, e.Reason)
}

// InvalidFeedbackError is returned for a feedback symbol string that is not usable
type InvalidFeedbackError struct {
	Feedback string
	Reason   string
}

func (e *InvalidFeedbackError) Error() string {
	return fmt.Sprintf("invalid feedback %q: %s", e.Feedback, e.Reason)
}

// InvalidCodeError is returned when decoding a code outside [0,242]
type InvalidCodeError struct {
	Code int
}

func (e *InvalidCodeError) Error() string {
	return "invalid pattern code " + strconv.Itoa(e.Code)
}

// NewWord validates s, it must be exactly 5 letters a-z
func NewWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLen {
		return w, &InvalidWordError{Word: s, Reason: "not " + strconv.Itoa(WordLen) + " letters"}
	}
	for i := 0; i < WordLen; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return w, &InvalidWordError{Word: s, Reason: fmt.Sprintf("letter %d is not a-z", i)}
		}
		w[i] = c
	}
	return w, nil
}

// MustWord is NewWord that panics, for literals known to be good
func MustWord(s string) Word {
	w, err := NewWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func NewWords(strings []string) ([]Word, error) {
	ret := make([]Word, 0, len(strings))
	for _, s := range strings {
		w, err := NewWord(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, w)
	}
	return ret, nil
}

func MustWords(strings ...string) []Word {
	ret, err := NewWords(strings)
	if err != nil {
		panic(err)
	}
	return ret
}

func (w Word) String() string {
	return string(w[:])
}

func WordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, w := range words {
		ret = append(ret, w.String())
	}
	return ret
}

func (m Mark) Symbol() byte {
	switch m {
	case Green:
		return 'g'
	case Yellow:
		return 'y'
	default:
		return 'b'
	}
}

// Encode packs the pattern into its base 3 code
func Encode(p Pattern) Code {
	var code Code
	for i, mark := range p {
		code += Code(mark) * pow3[i]
	}
	return code
}

// Decode is the inverse of Encode
func Decode(code Code) (Pattern, error) {
	var p Pattern
	if code >= NumCodes {
		return p, &InvalidCodeError{Code: int(code)}
	}
	for i := range p {
		p[i] = Mark(code % 3)
		code /= 3
	}
	return p, nil
}

// String is the symbol form of the pattern: b grey, y yellow, g green
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, mark := range p {
		b[i] = mark.Symbol()
	}
	return string(b[:])
}

func (p Pattern) Solved() bool {
	return Encode(p) == AllGreen
}

// FromSymbols decodes a symbol string. g or G is green, y or Y is yellow and any
// other character is grey. Only the length is checked, see ParseSymbols for the
// strict version.
func FromSymbols(s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLen {
		return p, &InvalidFeedbackError{Feedback: s, Reason: "not " + strconv.Itoa(WordLen) + " symbols"}
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'g', 'G':
			p[i] = Green
		case 'y', 'Y':
			p[i] = Yellow
		default:
			p[i] = Grey
		}
	}
	return p, nil
}

// ParseSymbols is FromSymbols but only b, y and g (either case) are accepted
func ParseSymbols(s string) (Pattern, error) {
	p, err := FromSymbols(s)
	if err != nil {
		return p, err
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'g', 'G', 'y', 'Y', 'b', 'B':
		default:
			return p, &InvalidFeedbackError{Feedback: s, Reason: fmt.Sprintf("symbol %q at %d is not one of b,y,g", s[i], i)}
		}
	}
	return p, nil
}
