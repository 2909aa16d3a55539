package factory

import (
	"time"

	"github.com/yurkki/wordle/internal/dependencies/mocks"
	"github.com/yurkki/wordle/internal/services/dictionary"
	"github.com/yurkki/wordle/internal/storage/memory"
	"github.com/yurkki/wordle/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, dictionary.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWords loads a small answer pool for testing
func (t *TestApp) LoadTestWords() error {
	words := []string{
		"СЛОВО", "ЛАМПА", "КНИГА", "ПЕСНЯ", "ВЕТЕР",
		"ГОРОД", "РУЧКА", "ДОСКА", "МЕСТО", "ТОЧКА",
		"АКТЁР", "КОВЁР", "ПОЛЁТ", "ЩЁТКА", "ВЕСНА",
		"ЗЕМЛЯ", "ОКЕАН", "РЕЧКА", "ТРАВА", "ХОЛОД",
	}
	if err := t.WordsService.LoadWords(words); err != nil {
		return err
	}

	// A few valid guess words outside the answer pool
	return t.DictionaryService.LoadExtended([]string{
		"ГРУДЬ", "АЛМАЗ", "ОКОЛО", "ТОПОТ", "ОТТОК",
	})
}
