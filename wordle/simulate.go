package wordle

// DefaultMaxTurns is the number of guesses in a normal game
const DefaultMaxTurns = 6

type SimConfig struct {
	// Openers are played in order before the advisor is asked
	Openers []Word
	Pool    Pool
	// MaxTurns defaults to DefaultMaxTurns
	MaxTurns int
}

type Turn struct {
	Guess     Word
	Feedback  Pattern
	Remaining int // candidates left after the feedback
}

type Game struct {
	Solution Word
	Turns    []Turn
	Won      bool
}

func (g Game) Guesses() []Word {
	ret := make([]Word, 0, len(g.Turns))
	for _, t := range g.Turns {
		ret = append(ret, t.Guess)
	}
	return ret
}

// Simulate plays one game against solution, feeding the true feedback back
// into the advisor after every guess. The advisor is left narrowed.
func Simulate(a *Advisor, solution Word, cfg SimConfig) Game {
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	game := Game{Solution: solution}
	for turn := 0; turn < maxTurns; turn++ {
		var guess Word
		if turn < len(cfg.Openers) {
			guess = cfg.Openers[turn]
		} else {
			guess = a.Suggest(cfg.Pool)
		}
		feedback := Match(solution, guess)
		a.Filter(guess, feedback)
		game.Turns = append(game.Turns, Turn{Guess: guess, Feedback: feedback, Remaining: a.candidates.Len()})
		if guess == solution {
			game.Won = true
			break
		}
	}
	a.log.Debug().
		Str("solution", solution.String()).
		Int("turns", len(game.Turns)).
		Bool("won", game.Won).
		Msg("simulate")
	return game
}
