package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/frostyshrek/Wordle-Information-theory/wordle"
)

func TestRenderRowPlain(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	setColor(false)

	guess := wordle.MustWord("aabbb")
	p := wordle.Match(wordle.MustWord("abcde"), guess)
	assert.Equal(t, "[A] a  B  b  b ", renderRow(guess, p))
}
