package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/dependencies/mocks"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/bot"
	"github.com/Picorims/game-hub/internal/services/summary"
	"github.com/Picorims/game-hub/internal/storage/memory"
	"github.com/Picorims/game-hub/internal/testutil"
)

// TestFillerGames is the number of single-platform PC games added to the test catalog
const TestFillerGames = 60

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App with the test catalog, mocked dependencies and
// the administrator already registered
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(
		store,
		catalog.NewMemory(TestGames()),
		mockClock,
		mockRandom,
		bot.DefaultConfig(),
		summary.DefaultConfig(),
		testutil.NopLogger(),
	)
	if _, err := app.AccountService.CreateAdministrator(context.Background()); err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestGames returns a small catalog spread over PC, PS3, PS4 and X360,
// plus filler PC games named "Filler 00" onwards
func TestGames() []model.Game {
	games := []model.Game{
		{Name: "Minecraft", Genre: "Misc", Versions: []model.GameVersion{
			{Game: "Minecraft", Platform: "PC", Year: 2011, Publisher: "Mojang", GlobalSales: 2.7},
			{Game: "Minecraft", Platform: "PS3", Year: 2014, Publisher: "Sony Computer Entertainment", GlobalSales: 5.2},
			{Game: "Minecraft", Platform: "X360", Year: 2013, Publisher: "Microsoft Game Studios", GlobalSales: 9.2},
		}},
		{Name: "Diablo III", Genre: "Role-Playing", Versions: []model.GameVersion{
			{Game: "Diablo III", Platform: "PC", Year: 2012, Publisher: "Activision", GlobalSales: 5.14},
		}},
		{Name: "FIFA 16", Genre: "Sports", Versions: []model.GameVersion{
			{Game: "FIFA 16", Platform: "PS4", Year: 2015, Publisher: "Electronic Arts", GlobalSales: 8.49},
		}},
		{Name: "Grand Theft Auto V", Genre: "Action", Versions: []model.GameVersion{
			{Game: "Grand Theft Auto V", Platform: "PS3", Year: 2013, Publisher: "Take-Two Interactive", GlobalSales: 21.4},
			{Game: "Grand Theft Auto V", Platform: "PS4", Year: 2014, Publisher: "Take-Two Interactive", GlobalSales: 11.98},
			{Game: "Grand Theft Auto V", Platform: "X360", Year: 2013, Publisher: "Take-Two Interactive", GlobalSales: 16.38},
		}},
	}
	for i := range TestFillerGames {
		name := model.GameName(fmt.Sprintf("Filler %02d", i))
		games = append(games, model.Game{Name: name, Genre: "Misc", Versions: []model.GameVersion{
			{Game: name, Platform: "PC", Year: 2012, Publisher: "Filler", GlobalSales: 1},
		}})
	}
	return games
}
