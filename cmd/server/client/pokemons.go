package client

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/battle"
)

var pokemonID int64

var listItemsCmd = &cobra.Command{
	Use:   "list-items",
	Short: "List items across all trainers",
	RunE:  runListItems,
}

var listPokemonsCmd = &cobra.Command{
	Use:   "list-pokemons",
	Short: "List pokemons across all trainers",
	RunE:  runListPokemons,
}

var getPokemonCmd = &cobra.Command{
	Use:   "get-pokemon",
	Short: "Get an owned pokemon by ID",
	RunE:  runGetPokemon,
}

var battleCmd = &cobra.Command{
	Use:   "battle FIRST_API_ID SECOND_API_ID",
	Short: "Battle two pokemons by their PokeAPI stats",
	Long: `Compare two pokemons by the sum of their base stat differences.
Prints the winning PokeAPI id, Draw, or that no result could be determined.`,
	Args: cobra.ExactArgs(2),
	RunE: runBattle,
}

func init() {
	listItemsCmd.Flags().IntVar(&skip, "skip", 0, "Number of items to skip")
	listItemsCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items (server default when 0)")

	listPokemonsCmd.Flags().IntVar(&skip, "skip", 0, "Number of pokemons to skip")
	listPokemonsCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of pokemons (server default when 0)")

	getPokemonCmd.Flags().Int64Var(&pokemonID, "pokemon-id", 0, "Pokemon ID (required)")
	_ = getPokemonCmd.MarkFlagRequired("pokemon-id") // nolint:errcheck // safe to ignore in init
}

func runListItems(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	var items []item
	if err := doJSON(ctx, http.MethodGet, "/items", pageQuery(), nil, &items); err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), items)
}

func runListPokemons(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	var pokemons []pokemon
	if err := doJSON(ctx, http.MethodGet, "/pokemons", pageQuery(), nil, &pokemons); err != nil {
		return fmt.Errorf("failed to list pokemons: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), pokemons)
}

func runGetPokemon(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	var p pokemon
	if err := doJSON(ctx, http.MethodGet, fmt.Sprintf("/pokemons/%d", pokemonID), nil, nil, &p); err != nil {
		return fmt.Errorf("failed to get pokemon: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), p)
}

func runBattle(cmd *cobra.Command, args []string) error {
	first, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("first id must be an integer: %q", args[0])
	}
	second, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("second id must be an integer: %q", args[1])
	}

	ctx, cancel := requestContext(cmd)
	defer cancel()

	// The server answers null when either pokemon could not be resolved.
	var outcome *battle.Outcome
	path := fmt.Sprintf("/pokemons/battle/%d/%d", first, second)
	if err := doJSON(ctx, http.MethodGet, path, nil, nil, &outcome); err != nil {
		return fmt.Errorf("failed to battle: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case outcome == nil:
		fmt.Fprintf(out, "No result: pokemon %d or %d could not be resolved\n", first, second)
	case outcome.Draw:
		fmt.Fprintln(out, "Draw")
	default:
		fmt.Fprintf(out, "Winner: %d\n", outcome.WinnerID)
	}
	return nil
}
