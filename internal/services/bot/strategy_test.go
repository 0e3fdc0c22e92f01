package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Picorims/game-hub/internal/dependencies/mocks"
	"github.com/Picorims/game-hub/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
}

func (s *StrategySuite) TestBotWinsBelowPercent() {
	strategy := bot.NewBasicStrategy(s.mockRandom, 50)

	s.mockRandom.QueueIntn(0, 49, 50, 99)
	s.True(strategy.BotWins())
	s.True(strategy.BotWins())
	s.False(strategy.BotWins())
	s.False(strategy.BotWins())
}

func (s *StrategySuite) TestZeroPercentNeverWins() {
	strategy := bot.NewBasicStrategy(s.mockRandom, 0)

	s.mockRandom.QueueIntn(0)
	s.False(strategy.BotWins())
}

func (s *StrategySuite) TestHundredPercentAlwaysWins() {
	strategy := bot.NewBasicStrategy(s.mockRandom, 100)

	s.mockRandom.QueueIntn(99)
	s.True(strategy.BotWins())
}

func (s *StrategySuite) TestPercentIsClamped() {
	s.Equal(100, bot.NewBasicStrategy(s.mockRandom, 150).WinPercent())
	s.Equal(0, bot.NewBasicStrategy(s.mockRandom, -3).WinPercent())
}
