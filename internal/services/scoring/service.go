package scoring

import (
	"github.com/yurkki/wordle/internal/model"
)

// Config holds letter comparison settings
type Config struct {
	// Equivalences maps letters treated as the same during comparison.
	// Keys and values are uppercase runes; comparison folds keys to
	// their values before matching.
	Equivalences map[rune]rune
}

// DefaultConfig returns the standard Russian comparison rules
func DefaultConfig() Config {
	return Config{
		Equivalences: map[rune]rune{
			'Ё': 'Е',
		},
	}
}

// Service evaluates a guess against a target word
type Service struct {
	equiv map[rune]rune
}

// New creates a new scoring Service
func New(cfg Config) *Service {
	equiv := make(map[rune]rune, len(cfg.Equivalences))
	for from, to := range cfg.Equivalences {
		equiv[from] = to
	}
	return &Service{equiv: equiv}
}

// fold maps a letter to its canonical comparison form
func (s *Service) fold(r rune) rune {
	if to, ok := s.equiv[r]; ok {
		return to
	}
	return r
}

// Equivalent reports whether two letters compare as equal
func (s *Service) Equivalent(a, b rune) bool {
	return s.fold(a) == s.fold(b)
}

// Score evaluates a guess against the target word and returns a verdict
// per position. Both words must already be validated to the game length.
//
// Correct positions are claimed first; remaining guess letters then
// claim unclaimed target letters left to right, so a letter is never
// marked present more times than it occurs in the target.
func (s *Service) Score(guess, target model.Word) []model.LetterVerdict {
	guessRunes := guess.Runes()
	targetRunes := target.Runes()

	verdicts := make([]model.LetterVerdict, len(guessRunes))
	claimed := make([]bool, len(targetRunes))

	// First pass: exact position matches
	for i, g := range guessRunes {
		if i < len(targetRunes) && s.Equivalent(g, targetRunes[i]) {
			verdicts[i] = model.VerdictCorrect
			claimed[i] = true
		}
	}

	// Second pass: misplaced letters claim leftover target letters
	for i, g := range guessRunes {
		if verdicts[i] == model.VerdictCorrect {
			continue
		}
		verdicts[i] = model.VerdictAbsent
		for j, t := range targetRunes {
			if !claimed[j] && s.Equivalent(g, t) {
				verdicts[i] = model.VerdictPresent
				claimed[j] = true
				break
			}
		}
	}

	return verdicts
}

// ScoreGuess evaluates a guess and packages it as a model.Guess
func (s *Service) ScoreGuess(guess, target model.Word) model.Guess {
	verdicts := s.Score(guess, target)
	runes := guess.Runes()

	letters := make([]model.LetterGuess, len(verdicts))
	for i, v := range verdicts {
		letters[i] = model.LetterGuess{
			Letter:  string(runes[i]),
			Verdict: v,
		}
	}

	return model.Guess{
		Word:    guess,
		Letters: letters,
	}
}

// IsWinning reports whether every position is correct
func (s *Service) IsWinning(verdicts []model.LetterVerdict) bool {
	for _, v := range verdicts {
		if v != model.VerdictCorrect {
			return false
		}
	}
	return len(verdicts) > 0
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(guess, target model.Word) []model.LetterVerdict
	ScoreGuess(guess, target model.Word) model.Guess
	IsWinning(verdicts []model.LetterVerdict) bool
	Equivalent(a, b rune) bool
}

var _ ServiceInterface = (*Service)(nil)
