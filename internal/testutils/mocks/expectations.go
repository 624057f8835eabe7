// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"fmt"

	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

// ExpectCreatureLookups makes the mock client answer every given id with its
// test fixture, any number of times
func ExpectCreatureLookups(mockClient *pokeapimock.MockClient, ids ...int) {
	for _, id := range ids {
		mockClient.EXPECT().
			GetPokemon(gomock.Any(), id).
			Return(testutils.CreateTestCreature(id), nil).
			AnyTimes()
	}
}

// ExpectUnknownCreature makes the mock client report id as missing
func ExpectUnknownCreature(mockClient *pokeapimock.MockClient, id int) {
	mockClient.EXPECT().
		GetPokemon(gomock.Any(), id).
		Return(nil, errors.NotFound(fmt.Sprintf("pokemon %d not found", id))).
		AnyTimes()
}
