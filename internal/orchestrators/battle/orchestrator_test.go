package battle_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
	"github.com/KirkDiggler/pokemon-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStats *pokeapimock.MockClient
	service   battle.Service
	ctx       context.Context

	bulbasaur  *entities.Creature
	charmander *entities.Creature
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStats = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	service, err := battle.NewOrchestrator(&battle.Config{StatProvider: s.mockStats})
	s.Require().NoError(err)
	s.service = service

	// bulbasaur sums to 318, charmander to 309
	s.bulbasaur = &entities.Creature{ID: 1, Name: "bulbasaur", Stats: []entities.Stat{
		{Name: "hp", BaseStat: 45},
		{Name: "attack", BaseStat: 49},
		{Name: "defense", BaseStat: 49},
		{Name: "special-attack", BaseStat: 65},
		{Name: "special-defense", BaseStat: 65},
		{Name: "speed", BaseStat: 45},
	}}
	s.charmander = &entities.Creature{ID: 4, Name: "charmander", Stats: []entities.Stat{
		{Name: "hp", BaseStat: 39},
		{Name: "attack", BaseStat: 52},
		{Name: "defense", BaseStat: 43},
		{Name: "special-attack", BaseStat: 60},
		{Name: "special-defense", BaseStat: 50},
		{Name: "speed", BaseStat: 65},
	}}
}

func (s *OrchestratorTestSuite) expectCreatures() {
	gomock.InOrder(
		s.mockStats.EXPECT().GetPokemon(gomock.Any(), 1).Return(s.bulbasaur, nil),
		s.mockStats.EXPECT().GetPokemon(gomock.Any(), 4).Return(s.charmander, nil),
	)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresProvider() {
	_, err := battle.NewOrchestrator(&battle.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = battle.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestFirstWins() {
	s.expectCreatures()

	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 1, SecondID: 4})
	s.Require().NoError(err)
	s.Require().NotNil(output.Outcome)
	s.Equal(battle.Winner(1), output.Outcome)
}

func (s *OrchestratorTestSuite) TestSecondWins() {
	gomock.InOrder(
		s.mockStats.EXPECT().GetPokemon(gomock.Any(), 4).Return(s.charmander, nil),
		s.mockStats.EXPECT().GetPokemon(gomock.Any(), 1).Return(s.bulbasaur, nil),
	)

	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 4, SecondID: 1})
	s.Require().NoError(err)
	s.Equal(battle.Winner(1), output.Outcome)
}

func (s *OrchestratorTestSuite) TestSameCreatureDraws() {
	s.mockStats.EXPECT().GetPokemon(gomock.Any(), 1).Return(s.bulbasaur, nil).Times(2)

	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 1, SecondID: 1})
	s.Require().NoError(err)
	s.Equal(battle.DrawOutcome(), output.Outcome)
}

func (s *OrchestratorTestSuite) TestIdempotent() {
	s.mockStats.EXPECT().GetPokemon(gomock.Any(), 1).Return(s.bulbasaur, nil).Times(2)
	s.mockStats.EXPECT().GetPokemon(gomock.Any(), 4).Return(s.charmander, nil).Times(2)

	first, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 1, SecondID: 4})
	s.Require().NoError(err)
	second, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 1, SecondID: 4})
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *OrchestratorTestSuite) TestUnknownFirstShortCircuits() {
	s.mockStats.EXPECT().
		GetPokemon(gomock.Any(), 99999).
		Return(nil, errors.NotFound("pokemon 99999 not found"))

	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 99999, SecondID: 4})
	s.Require().NoError(err)
	s.Nil(output.Outcome)
}

func (s *OrchestratorTestSuite) TestUnknownSecondYieldsNoResult() {
	gomock.InOrder(
		s.mockStats.EXPECT().GetPokemon(gomock.Any(), 1).Return(s.bulbasaur, nil),
		s.mockStats.EXPECT().GetPokemon(gomock.Any(), 99999).Return(nil, errors.NotFound("pokemon 99999 not found")),
	)

	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 1, SecondID: 99999})
	s.Require().NoError(err)
	s.Nil(output.Outcome)
}

func (s *OrchestratorTestSuite) TestProviderUnavailableYieldsNoResult() {
	s.mockStats.EXPECT().
		GetPokemon(gomock.Any(), 1).
		Return(nil, errors.Unavailablef("pokeapi returned status %d", 503))

	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 1, SecondID: 4})
	s.Require().NoError(err)
	s.Nil(output.Outcome)
}

func (s *OrchestratorTestSuite) TestProviderInternalErrorPropagates() {
	s.mockStats.EXPECT().
		GetPokemon(gomock.Any(), 1).
		Return(nil, errors.Internal("failed to build request for pokemon 1"))

	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 1, SecondID: 4})
	s.Nil(output)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestInvalidIDs() {
	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 0, SecondID: -1})
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "first_id")
	s.Contains(err.Error(), "second_id")

	_, err = s.service.Battle(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestMismatchedStatsFail() {
	short := &entities.Creature{ID: 7, Name: "glitch", Stats: []entities.Stat{{Name: "hp", BaseStat: 1}}}
	gomock.InOrder(
		s.mockStats.EXPECT().GetPokemon(gomock.Any(), 1).Return(s.bulbasaur, nil),
		s.mockStats.EXPECT().GetPokemon(gomock.Any(), 7).Return(short, nil),
	)

	output, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: 1, SecondID: 7})
	s.Nil(output)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFixtureRoundRobin() {
	mocks.ExpectCreatureLookups(s.mockStats, testutils.BulbasaurID, testutils.CharmanderID, testutils.PikachuID)
	mocks.ExpectUnknownCreature(s.mockStats, 99999)

	testCases := []struct {
		name   string
		first  int
		second int
		want   *battle.Outcome
	}{
		{name: "bulbasaur beats charmander", first: 1, second: 4, want: battle.Winner(1)},
		{name: "order does not change the winner", first: 4, second: 1, want: battle.Winner(1)},
		{name: "pikachu beats bulbasaur", first: 25, second: 1, want: battle.Winner(25)},
		{name: "pikachu beats charmander as second", first: 4, second: 25, want: battle.Winner(25)},
		{name: "mirror match", first: 25, second: 25, want: battle.DrawOutcome()},
		{name: "unknown creature", first: 25, second: 99999, want: nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.service.Battle(s.ctx, &battle.BattleInput{FirstID: tc.first, SecondID: tc.second})
			s.Require().NoError(err)
			s.Equal(tc.want, out.Outcome)
		})
	}
}

func TestBattleWithUnreadableUpstreamBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":1,"name":"bulbasaur","stats":[{"base_stat":45,"stat":{"name":"hp"}}]}`))
		case "/pokemon/3":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>oops</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := pokeapi.New(&pokeapi.Config{BaseURL: server.URL})
	require.NoError(t, err)
	service, err := battle.NewOrchestrator(&battle.Config{StatProvider: client})
	require.NoError(t, err)

	for _, ids := range [][2]int{{1, 3}, {3, 1}} {
		out, err := service.Battle(context.Background(), &battle.BattleInput{FirstID: ids[0], SecondID: ids[1]})
		require.NoError(t, err)
		assert.Nil(t, out.Outcome, "battle %d vs %d", ids[0], ids[1])
	}
}
