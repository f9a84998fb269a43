package wordle

import (
	"bytes"
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioThreeWords(t *testing.T) {
	answers := MustWords("abcde", "abcdf", "abcdg")
	a := NewAdvisor(nil, answers)
	assert.True(t, a.Unrestricted())

	// all three score the same, first scanned wins
	guess := a.Suggest(PoolCandidates)
	assert.Equal(t, "abcde", guess.String())

	solution := MustWord("abcdf")
	require.NoError(t, a.ApplyFeedback(guess, Match(solution, guess).String()))
	assert.Equal(t, []string{"abcdf", "abcdg"}, WordsToStrings(a.Remaining()))

	guess = a.Suggest(PoolCandidates)
	assert.Equal(t, "abcdf", guess.String())
	require.NoError(t, a.ApplyFeedback(guess, Match(solution, guess).String()))
	assert.Equal(t, []string{"abcdf"}, WordsToStrings(a.Remaining()))

	assert.Equal(t, solution, a.Suggest(PoolCandidates))
	assert.Equal(t, solution, a.Suggest(PoolAllowed))
}

func TestSuggestFallback(t *testing.T) {
	a := NewAdvisor(nil, nil)
	assert.Equal(t, FallbackWord, a.Suggest(PoolAllowed))
	assert.Equal(t, "raise", a.Suggest(PoolCandidates).String())

	a = NewAdvisor(nil, MustWords("abcde", "abcdf"), WithFallback(MustWord("slate")))
	// no candidate gives all grey against abcde
	require.NoError(t, a.ApplyFeedback(MustWord("abcde"), "bbbbb"))
	assert.Empty(t, a.Remaining())
	assert.Equal(t, "slate", a.Suggest(PoolAllowed).String())
	assert.Equal(t, "slate", a.Suggest(PoolAllowed).String())
}

func TestSuggestSingleton(t *testing.T) {
	// the allowed word scores higher but a single candidate is returned directly
	a := NewAdvisor(MustWords("xyzzy", "crane"), MustWords("crane"))
	assert.Equal(t, "crane", a.Suggest(PoolAllowed).String())
}

func TestSuggestTiePrefersCandidate(t *testing.T) {
	allowed := MustWords("xxxxf", "abcdf", "abcdg")
	answers := MustWords("abcdf", "abcdg")
	a := NewAdvisor(allowed, answers)
	ranked := a.Rank(PoolAllowed)
	require.Len(t, ranked, 3)
	assert.InDelta(t, ranked[0].Entropy, ranked[1].Entropy, 1e-12)
	assert.InDelta(t, 1.0, ranked[0].Entropy, 1e-12)
	assert.Equal(t, "abcdf", a.Suggest(PoolAllowed).String())
}

func TestSuggestAllowedBeatsCandidates(t *testing.T) {
	allowed := MustWords("abcde", "abcdf", "abcdg", "fgxxx")
	answers := MustWords("abcde", "abcdf", "abcdg")
	a := NewAdvisor(allowed, answers)
	assert.Equal(t, "fgxxx", a.Suggest(PoolAllowed).String())
	assert.Equal(t, "abcde", a.Suggest(PoolCandidates).String())
}

func TestIsValidGuess(t *testing.T) {
	a := NewAdvisor(nil, MustWords(first20...))
	assert.True(t, a.IsValidGuess(MustWord("zzzzz")))

	a = NewAdvisor(MustWords("crane", "slate"), MustWords("crane"))
	assert.True(t, a.IsValidGuess(MustWord("slate")))
	assert.False(t, a.IsValidGuess(MustWord("zzzzz")))
}

func TestApplyFeedbackNarrows(t *testing.T) {
	words := MustWords(first20...)
	guesses := MustWords("raise", "clout", "heath", "xyzzy")
	for _, solution := range words {
		a := NewAdvisor(nil, words)
		previous := a.Remaining()
		for _, guess := range guesses {
			feedback := Match(solution, guess)
			require.NoError(t, a.ApplyFeedback(guess, feedback.String()))
			remaining := a.Remaining()
			assert.LessOrEqual(t, len(remaining), len(previous))
			assert.Contains(t, remaining, solution)
			for _, w := range remaining {
				assert.Equal(t, Encode(feedback), MatchCode(w, guess))
			}
			// survivors keep their order
			assert.True(t, isSubsequence(remaining, previous), "%s: %v", solution, WordsToStrings(remaining))

			// same feedback again changes nothing
			require.NoError(t, a.ApplyFeedback(guess, feedback.String()))
			if diff := cmp.Diff(WordsToStrings(remaining), WordsToStrings(a.Remaining())); diff != "" {
				t.Errorf("reapplied feedback changed candidates (-before +after):\n%s", diff)
			}
			previous = remaining
		}
	}
}

func isSubsequence(sub, seq []Word) bool {
	i := 0
	for _, w := range seq {
		if i < len(sub) && sub[i] == w {
			i++
		}
	}
	return i == len(sub)
}

func TestApplyFeedbackBadLength(t *testing.T) {
	a := NewAdvisor(nil, MustWords(first20...))
	err := a.ApplyFeedback(MustWord("raise"), "gyb")
	var invalid *InvalidFeedbackError
	assert.True(t, errors.As(err, &invalid))
	assert.Len(t, a.Remaining(), len(first20))
}

func TestRemainingIsCopy(t *testing.T) {
	a := NewAdvisor(nil, MustWords("abcde", "abcdf"))
	remaining := a.Remaining()
	remaining[0] = MustWord("zzzzz")
	assert.Equal(t, []string{"abcde", "abcdf"}, WordsToStrings(a.Remaining()))
}

func TestCandidateSet(t *testing.T) {
	cs := NewCandidateSet(MustWords(first20...))
	assert.Equal(t, len(first20), cs.Len())
	assert.True(t, cs.Contains(MustWord("karma")))
	assert.False(t, cs.Contains(MustWord("xyzzy")))

	narrowed := cs.Filter(MustWord("karma"), AllGreen)
	assert.Equal(t, []string{"karma"}, WordsToStrings(narrowed.Words()))
	assert.False(t, narrowed.Contains(MustWord("cigar")))
	// the original set is untouched
	assert.Equal(t, len(first20), cs.Len())
	assert.True(t, cs.Contains(MustWord("cigar")))
}

func TestParallelMatchesSequential(t *testing.T) {
	allowed := MustWords(append(first20, "raise", "clout", "xyzzy", "eerie", "aabbb")...)
	answers := MustWords(first20...)
	for _, pool := range []Pool{PoolAllowed, PoolCandidates} {
		sequential := NewAdvisor(allowed, answers, WithWorkers(1))
		parallel := NewAdvisor(allowed, answers, WithWorkers(4))
		assert.Equal(t, sequential.Suggest(pool), parallel.Suggest(pool), pool.String())
		assert.Equal(t, sequential.Rank(pool), parallel.Rank(pool), pool.String())
	}
}

func TestRankSorted(t *testing.T) {
	a := NewAdvisor(nil, MustWords(first20...))
	ranked := a.Rank(PoolCandidates)
	require.Len(t, ranked, len(first20))
	assert.True(t, sort.SliceIsSorted(ranked, func(i, j int) bool {
		return ranked[i].Entropy > ranked[j].Entropy
	}))
	assert.InDelta(t, ranked[0].Entropy, Entropy(a.Suggest(PoolCandidates), a.Remaining()), 1e-9)
}

func TestPool(t *testing.T) {
	for _, pool := range []Pool{PoolAllowed, PoolCandidates} {
		parsed, ok := ParsePool(pool.String())
		assert.True(t, ok)
		assert.Equal(t, pool, parsed)
	}
	_, ok := ParsePool("everything")
	assert.False(t, ok)
}

func TestAdvisorLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	a := NewAdvisor(nil, MustWords("abcde", "abcdf", "abcdg"), WithLogger(logger))
	a.Suggest(PoolCandidates)
	a.Filter(MustWord("abcde"), Match(MustWord("abcdf"), MustWord("abcde")))
	assert.Contains(t, buf.String(), `"message":"suggest"`)
	assert.Contains(t, buf.String(), `"after":2`)
}
