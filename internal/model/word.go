package model

import "strings"

// WordLength is the fixed length of every playable word.
const WordLength = 5

// Alphabet is the Russian alphabet used by the game, 33 uppercase letters.
const Alphabet = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

// Word is an uppercase word of exactly WordLength alphabet letters.
type Word string

var alphabetSet = func() map[rune]struct{} {
	set := make(map[rune]struct{}, 33)
	for _, r := range Alphabet {
		set[r] = struct{}{}
	}
	return set
}()

// ParseWord validates and canonicalizes raw input into a Word.
// Input is uppercased; length and alphabet membership are checked.
// The Ё/Е distinction is preserved here; equivalence is applied at
// comparison time by the scoring service.
func ParseWord(raw string) (Word, error) {
	upper := strings.ToUpper(strings.TrimSpace(raw))

	runes := []rune(upper)
	if len(runes) != WordLength {
		return "", ErrInvalidWordLength
	}

	for _, r := range runes {
		if _, ok := alphabetSet[r]; !ok {
			return "", ErrInvalidWordFormat
		}
	}

	return Word(upper), nil
}

// Runes returns the word as a rune slice of length WordLength.
func (w Word) Runes() []rune {
	return []rune(string(w))
}

// String implements fmt.Stringer.
func (w Word) String() string {
	return string(w)
}
