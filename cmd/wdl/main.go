package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/frostyshrek/Wordle-Information-theory/wordle"
	"github.com/frostyshrek/Wordle-Information-theory/wordlist"
)

type GlobalConfiguration struct {
	allowed  []wordle.Word
	answers  []wordle.Word
	pool     wordle.Pool
	workers  int
	progress bool
}

func (gc GlobalConfiguration) advisor() *wordle.Advisor {
	return wordle.NewAdvisor(gc.allowed, gc.answers,
		wordle.WithWorkers(gc.workers),
		wordle.WithLogger(log.Logger),
	)
}

type options struct {
	allowedPath string
	answersPath string
	count       int64
	pool        string
	workers     int64
	logLevel    string
	progress    bool
	profile     bool
	noColor     bool
}

func globalConfiguration(opts options) (GlobalConfiguration, error) {
	allowed, answers, err := wordlist.Lists(opts.allowedPath, opts.answersPath)
	if err != nil {
		return GlobalConfiguration{}, cli.Exit("loading word lists: "+err.Error(), 1)
	}
	if opts.count > 0 && opts.count < int64(len(answers)) {
		answers = answers[:opts.count]
	}
	pool, ok := wordle.ParsePool(opts.pool)
	if !ok {
		return GlobalConfiguration{}, cli.Exit("pool must be allowed or candidates, not "+opts.pool, 2)
	}
	log.Debug().Int("allowed", len(allowed)).Int("answers", len(answers)).Str("pool", pool.String()).Msg("word lists loaded")
	return GlobalConfiguration{
		allowed:  allowed,
		answers:  answers,
		pool:     pool,
		workers:  int(opts.workers),
		progress: opts.progress,
	}, nil
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return cli.Exit("bad log level: "+level, 2)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return nil
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func parseWord(s string) (wordle.Word, error) {
	w, err := wordle.NewWord(strings.ToLower(s))
	if err != nil {
		return w, cli.Exit(err.Error(), 2)
	}
	return w, nil
}

// playWordle applies the guess/feedback pairs and prints the next guess
func playWordle(gc GlobalConfiguration, args []string) error {
	a := gc.advisor()
	for i := 0; i < len(args); i += 2 {
		guess, err := parseWord(args[i])
		if err != nil {
			return err
		}
		if !a.IsValidGuess(guess) {
			return cli.Exit("guess not in allowed list: "+guess.String(), 2)
		}
		pattern, err := wordle.ParseSymbols(args[i+1])
		if err != nil {
			return cli.Exit(err.Error()+", use b,y,g like bbygg", 2)
		}
		a.Filter(guess, pattern)
		fmt.Println(renderRow(guess, pattern), " ", len(a.Remaining()))
	}
	remaining := a.Remaining()
	if len(remaining) == 0 {
		fmt.Fprintln(os.Stderr, "no word in the answer list matches the feedback")
	}
	fmt.Print(a.Suggest(gc.pool), ":")
	for _, w := range remaining {
		fmt.Print(" ", w)
	}
	fmt.Println()
	return nil
}

func simulate(gc GlobalConfiguration, openerStrings, solutionStrings []string, verbose bool) error {
	var openers []wordle.Word
	for _, s := range openerStrings {
		w, err := parseWord(s)
		if err != nil {
			return err
		}
		openers = append(openers, w)
	}
	solutions := gc.answers
	if len(solutionStrings) > 0 {
		solutions = nil
		for _, s := range solutionStrings {
			w, err := parseWord(s)
			if err != nil {
				return err
			}
			solutions = append(solutions, w)
		}
	}

	var bar *progressbar.ProgressBar
	if gc.progress {
		bar = progressbar.Default(int64(len(solutions)), "simulating")
	} else {
		bar = progressbar.DefaultSilent(int64(len(solutions)))
	}

	sortedGames := make(map[int][]wordle.Game)
	totalTurns := 0
	lost := 0
	for _, solution := range solutions {
		game := wordle.Simulate(gc.advisor(), solution, wordle.SimConfig{Openers: openers, Pool: gc.pool})
		_ = bar.Add(1)
		if !game.Won {
			lost++
			sortedGames[0] = append(sortedGames[0], game)
			continue
		}
		totalTurns += len(game.Turns)
		sortedGames[len(game.Turns)] = append(sortedGames[len(game.Turns)], game)
	}
	_ = bar.Finish()

	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, turns := range keys {
		games := sortedGames[turns]
		if turns == 0 {
			fmt.Println("lost", len(games), "---------------------")
		} else {
			fmt.Println(turns, len(games), "---------------------")
		}
		for _, game := range games {
			if verbose {
				fmt.Println(game.Solution)
				for _, turn := range game.Turns {
					fmt.Println("  ", renderRow(turn.Guess, turn.Feedback), turn.Remaining)
				}
				continue
			}
			fmt.Print(game.Solution, ":")
			for _, guess := range game.Guesses() {
				fmt.Print(" ", guess)
			}
			fmt.Println()
		}
	}
	won := len(solutions) - lost
	if won > 0 {
		fmt.Printf("won %d/%d, average %.3f guesses\n", won, len(solutions), float64(totalTurns)/float64(won))
	} else {
		fmt.Printf("won 0/%d\n", len(solutions))
	}
	return nil
}

func first(gc GlobalConfiguration, top int) {
	ranked := gc.advisor().Rank(gc.pool)
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	for _, ws := range ranked {
		fmt.Printf("%s %.4f\n", ws.Word, ws.Entropy)
	}
}

func feedback(answerString, guessString string) error {
	answer, err := parseWord(answerString)
	if err != nil {
		return err
	}
	guess, err := parseWord(guessString)
	if err != nil {
		return err
	}
	p := wordle.Match(answer, guess)
	fmt.Println(renderRow(guess, p), p, wordle.Encode(p))
	return nil
}

func main() {
	_ = godotenv.Load()

	opts := options{
		pool:     wordle.PoolAllowed.String(),
		workers:  int64(runtime.GOMAXPROCS(0)),
		logLevel: "info",
	}
	top := int64(20)
	verbose := false

	// setup runs before each command, returns the profile stop function
	setup := func() (GlobalConfiguration, func(), error) {
		if err := setupLogging(opts.logLevel); err != nil {
			return GlobalConfiguration{}, nil, err
		}
		setColor(!opts.noColor)
		stop := func() {}
		if opts.profile {
			def, err := cpuProfile()
			if err != nil {
				return GlobalConfiguration{}, nil, err
			}
			stop = def
		}
		gc, err := globalConfiguration(opts)
		if err != nil {
			stop()
			return GlobalConfiguration{}, nil, err
		}
		return gc, stop, nil
	}

	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle solver, picks the guess with the most expected information",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "allowed",
				Usage:       "file of allowed guesses, one per line, default is the built in list",
				Sources:     cli.EnvVars("WORDS_ALLOWED_FILE"),
				Destination: &opts.allowedPath,
			},
			&cli.StringFlag{
				Name:        "answers",
				Usage:       "file of possible answers, one per line, default is the built in list",
				Sources:     cli.EnvVars("WORDS_ANSWERS_FILE"),
				Destination: &opts.answersPath,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of answers, 0 is all answers",
				Destination: &opts.count,
			},
			&cli.StringFlag{
				Name:        "pool",
				Value:       opts.pool,
				Usage:       "words searched for the next guess: allowed or candidates",
				Destination: &opts.pool,
			},
			&cli.IntFlag{
				Name:        "workers",
				Value:       opts.workers,
				Aliases:     []string{"w"},
				Usage:       "goroutines used to score guesses",
				Destination: &opts.workers,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       opts.logLevel,
				Usage:       "trace, debug, info, warn or error",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Destination: &opts.logLevel,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &opts.progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &opts.profile,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Value:       false,
				Usage:       "print feedback as plain text",
				Destination: &opts.noColor,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "play",
				ArgsUsage: "guess feedback [guess feedback]...",
				Usage: `play a game of wordle by entering pairs of [guess feedback]...
				https://www.nytimes.com/games/wordle/index.html
				feedback is five of b (grey), y (yellow), g (green), like bbygg.
				prints the next guess followed by the words that could still be the answer`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess feedback", 1)
					}
					gc, stop, err := setup()
					if err != nil {
						return err
					}
					defer stop()
					return playWordle(gc, cmd.Args().Slice())
				},
			},
			{
				Name:      "sim",
				ArgsUsage: "[solution]...",
				Usage: `Simulate a game for each solution, or for every answer if none are given.
				The answers can be cut back by using the -count global flag for testing.`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Usage:   "--first first1 --first first2 opening guesses played before the solver is asked",
						Name:    "first",
						Aliases: []string{"f"},
					},
					&cli.BoolFlag{
						Name:        "verbose",
						Aliases:     []string{"v"},
						Usage:       "print every guess with its feedback",
						Destination: &verbose,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					gc, stop, err := setup()
					if err != nil {
						return err
					}
					defer stop()
					return simulate(gc, cmd.StringSlice("first"), cmd.Args().Slice(), verbose)
				},
			},
			{
				Name:  "first",
				Usage: "rank opening guesses by expected information",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Value:       top,
						Aliases:     []string{"n"},
						Usage:       "number of guesses to print, 0 is all",
						Destination: &top,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					gc, stop, err := setup()
					if err != nil {
						return err
					}
					defer stop()
					first(gc, int(top))
					return nil
				},
			},
			{
				Name:      "feedback",
				ArgsUsage: "answer guess",
				Usage:     "print the feedback for guess when the solution is answer",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 2 {
						return cli.Exit("must have answer and guess", 1)
					}
					if err := setupLogging(opts.logLevel); err != nil {
						return err
					}
					setColor(!opts.noColor)
					return feedback(cmd.Args().Get(0), cmd.Args().Get(1))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
