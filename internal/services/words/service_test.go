package words

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yurkki/wordle/internal/dependencies/mocks"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage/memory"
)

type WordsSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestWordsSuite(t *testing.T) {
	suite.Run(t, new(WordsSuite))
}

func (s *WordsSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random)
	s.ctx = context.Background()
}

func (s *WordsSuite) TestNotLoaded() {
	s.False(s.service.IsLoaded())

	_, err := s.service.RandomWord()
	s.ErrorIs(err, model.ErrWordPoolNotLoaded)

	_, err = s.service.Words()
	s.ErrorIs(err, model.ErrWordPoolNotLoaded)
}

func (s *WordsSuite) TestLoadWords() {
	err := s.service.LoadWords([]string{"слово", "ЛАМПА", "книга"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.Count())
	s.True(s.service.Contains("СЛОВО"))
	s.True(s.service.Contains("ЛАМПА"))
	s.False(s.service.Contains("ГРУДЬ"))
}

func (s *WordsSuite) TestLoadWordsSkipsInvalid() {
	err := s.service.LoadWords([]string{"СЛОВО", "КОТ", "WORDS", "ДЕРЕВО", ""})
	s.Require().NoError(err)

	s.Equal(1, s.service.Count())
}

func (s *WordsSuite) TestLoadWordsDeduplicates() {
	err := s.service.LoadWords([]string{"СЛОВО", "слово", "СЛОВО"})
	s.Require().NoError(err)

	s.Equal(1, s.service.Count())
}

func (s *WordsSuite) TestRandomWord() {
	_ = s.service.LoadWords([]string{"СЛОВО", "ЛАМПА", "КНИГА"})

	s.random.QueueIntn(2)
	word, err := s.service.RandomWord()
	s.Require().NoError(err)
	s.Equal(model.Word("КНИГА"), word)
}

func (s *WordsSuite) TestRandomWordEmptyPool() {
	_ = s.service.LoadWords(nil)

	_, err := s.service.RandomWord()
	s.ErrorIs(err, model.ErrEmptyWordPool)
}

func (s *WordsSuite) TestLoadFromStorage() {
	_ = s.storage.SavePoolWords(s.ctx, []string{"СЛОВО", "ЛАМПА"})

	err := s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, s.service.Count())
}

func (s *WordsSuite) TestLoadFromStorageNotLoaded() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrWordPoolNotLoaded)
}
