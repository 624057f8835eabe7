// Package main is the entry point for the pokemon-api server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-api/cmd/server/client"
)

const serviceName = "pokemon-api"

var rootCmd = &cobra.Command{
	Use:   "pokemon-api",
	Short: "Pokemon trainer API server",
	Long:  `pokemon-api tracks trainers with their pokemons and items, and battles pokemons by their PokeAPI stats.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
