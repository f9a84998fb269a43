package wordle

// Match returns the marks for guess when the solution is answer.
//
// Greens are found first and every answer letter that is not green is counted.
// The remaining guess letters then become yellow while a count for that letter
// is left, so a letter repeated in the guess is never colored more times than
// it appears in the answer.
func Match(answer, guess Word) Pattern {
	var p Pattern
	var notGreen [26]uint8
	for i, letter := range answer {
		if letter == guess[i] {
			p[i] = Green
		} else {
			notGreen[letter-'a']++
		}
	}
	// turn the grey to yellow if in the word but not green
	for i, letter := range guess {
		if p[i] == Green {
			continue
		}
		if notGreen[letter-'a'] > 0 {
			p[i] = Yellow
			notGreen[letter-'a']--
		}
	}
	return p
}

// MatchCode is Match with the encoding folded in, used when only the code is needed
func MatchCode(answer, guess Word) Code {
	var code Code
	var notGreen [26]uint8
	for i, letter := range answer {
		if letter == guess[i] {
			code += Code(Green) * pow3[i]
		} else {
			notGreen[letter-'a']++
		}
	}
	for i, letter := range guess {
		if answer[i] == letter {
			continue
		}
		if notGreen[letter-'a'] > 0 {
			code += Code(Yellow) * pow3[i]
			notGreen[letter-'a']--
		}
	}
	return code
}
