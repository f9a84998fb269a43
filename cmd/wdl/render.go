package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/frostyshrek/Wordle-Information-theory/wordle"
)

var markColors = map[wordle.Mark]*color.Color{
	wordle.Grey:   color.New(color.FgWhite, color.BgHiBlack, color.Bold),
	wordle.Yellow: color.New(color.FgBlack, color.BgYellow, color.Bold),
	wordle.Green:  color.New(color.FgBlack, color.BgGreen, color.Bold),
}

func setColor(on bool) {
	color.NoColor = !on || color.NoColor
}

// renderRow draws each letter of guess on its feedback color. Without color
// the letters of grey marks are lowercase, yellow are uppercase and green are
// uppercase inside brackets.
func renderRow(guess wordle.Word, p wordle.Pattern) string {
	var sb strings.Builder
	for i, mark := range p {
		letter := strings.ToUpper(string(guess[i]))
		if color.NoColor {
			switch mark {
			case wordle.Green:
				sb.WriteString("[" + letter + "]")
			case wordle.Yellow:
				sb.WriteString(" " + letter + " ")
			default:
				sb.WriteString(" " + strings.ToLower(letter) + " ")
			}
			continue
		}
		sb.WriteString(markColors[mark].Sprint(" " + letter + " "))
	}
	return sb.String()
}
