package client

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	trainerID         int64
	trainerName       string
	trainerBirthdate  string
	itemName          string
	itemDescription   string
	pokemonAPIID      int
	pokemonCustomName string
	filterTrainerName string
)

var createTrainerCmd = &cobra.Command{
	Use:   "create-trainer",
	Short: "Create a trainer",
	RunE:  runCreateTrainer,
}

var getTrainerCmd = &cobra.Command{
	Use:   "get-trainer",
	Short: "Get a trainer with their inventory and pokemons",
	RunE:  runGetTrainer,
}

var listTrainersCmd = &cobra.Command{
	Use:   "list-trainers",
	Short: "List trainers, optionally filtered by exact name",
	RunE:  runListTrainers,
}

var addItemCmd = &cobra.Command{
	Use:   "add-item",
	Short: "Add an item to a trainer's inventory",
	RunE:  runAddItem,
}

var addPokemonCmd = &cobra.Command{
	Use:   "add-pokemon",
	Short: "Add a pokemon to a trainer",
	Long:  `Add a pokemon to a trainer. Its name is looked up on PokeAPI from --api-id.`,
	RunE:  runAddPokemon,
}

func init() {
	createTrainerCmd.Flags().StringVar(&trainerName, "name", "", "Trainer name (required)")
	createTrainerCmd.Flags().StringVar(&trainerBirthdate, "birthdate", "", "Birthdate as YYYY-MM-DD (required)")
	_ = createTrainerCmd.MarkFlagRequired("name")      // nolint:errcheck // safe to ignore in init
	_ = createTrainerCmd.MarkFlagRequired("birthdate") // nolint:errcheck // safe to ignore in init

	getTrainerCmd.Flags().Int64Var(&trainerID, "trainer-id", 0, "Trainer ID (required)")
	_ = getTrainerCmd.MarkFlagRequired("trainer-id") // nolint:errcheck // safe to ignore in init

	listTrainersCmd.Flags().IntVar(&skip, "skip", 0, "Number of trainers to skip")
	listTrainersCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of trainers (server default when 0)")
	listTrainersCmd.Flags().StringVar(&filterTrainerName, "name", "", "Only trainers with this exact name")

	addItemCmd.Flags().Int64Var(&trainerID, "trainer-id", 0, "Trainer ID (required)")
	addItemCmd.Flags().StringVar(&itemName, "name", "", "Item name (required)")
	addItemCmd.Flags().StringVar(&itemDescription, "description", "", "Item description")
	_ = addItemCmd.MarkFlagRequired("trainer-id") // nolint:errcheck // safe to ignore in init
	_ = addItemCmd.MarkFlagRequired("name")       // nolint:errcheck // safe to ignore in init

	addPokemonCmd.Flags().Int64Var(&trainerID, "trainer-id", 0, "Trainer ID (required)")
	addPokemonCmd.Flags().IntVar(&pokemonAPIID, "api-id", 0, "PokeAPI pokemon ID (required)")
	addPokemonCmd.Flags().StringVar(&pokemonCustomName, "custom-name", "", "Nickname")
	_ = addPokemonCmd.MarkFlagRequired("trainer-id") // nolint:errcheck // safe to ignore in init
	_ = addPokemonCmd.MarkFlagRequired("api-id")     // nolint:errcheck // safe to ignore in init
}

func runCreateTrainer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	req := map[string]string{"name": trainerName, "birthdate": trainerBirthdate}

	var created trainer
	if err := doJSON(ctx, http.MethodPost, "/trainers", nil, req, &created); err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created trainer %d: %s (age %d)\n", created.ID, created.Name, created.Age)
	return nil
}

func runGetTrainer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	var t trainer
	if err := doJSON(ctx, http.MethodGet, fmt.Sprintf("/trainers/%d", trainerID), nil, nil, &t); err != nil {
		return fmt.Errorf("failed to get trainer: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Trainer %d: %s\n", t.ID, t.Name)
	fmt.Fprintf(out, "Birthdate: %s (age %d)\n", t.Birthdate, t.Age)

	fmt.Fprintf(out, "\nPokemons (%d):\n", len(t.Pokemons))
	for _, p := range t.Pokemons {
		fmt.Fprintf(out, "  - #%d %s", p.ID, p.Name)
		if p.CustomName != "" {
			fmt.Fprintf(out, " %q", p.CustomName)
		}
		fmt.Fprintf(out, " (api id %d)\n", p.APIID)
	}

	fmt.Fprintf(out, "\nInventory (%d):\n", len(t.Inventory))
	for _, i := range t.Inventory {
		fmt.Fprintf(out, "  - #%d %s: %s\n", i.ID, i.Name, i.Description)
	}
	return nil
}

func runListTrainers(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	q := pageQuery()
	if filterTrainerName != "" {
		q.Set("name", filterTrainerName)
	}

	var trainers []trainer
	if err := doJSON(ctx, http.MethodGet, "/trainers", q, nil, &trainers); err != nil {
		return fmt.Errorf("failed to list trainers: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), trainers)
}

func runAddItem(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	req := map[string]string{"name": itemName, "description": itemDescription}

	var created item
	path := fmt.Sprintf("/trainers/%d/item", trainerID)
	if err := doJSON(ctx, http.MethodPost, path, nil, req, &created); err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added item %d (%s) to trainer %d\n", created.ID, created.Name, created.TrainerID)
	return nil
}

func runAddPokemon(cmd *cobra.Command, _ []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	req := map[string]any{"api_id": pokemonAPIID, "custom_name": pokemonCustomName}

	var created pokemon
	path := fmt.Sprintf("/trainers/%d/pokemon", trainerID)
	if err := doJSON(ctx, http.MethodPost, path, nil, req, &created); err != nil {
		return fmt.Errorf("failed to add pokemon: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added pokemon %d (%s) to trainer %d\n", created.ID, created.Name, created.TrainerID)
	return nil
}
