// Package main is the entry point for the Gokemon client CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gokemon-client",
	Short: "Headless Gokemon client",
	Long:  `Browse catalogs and collections, manage friends, and trade creatures against a Gokemon server.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(friendsCmd)
	rootCmd.AddCommand(tradesCmd)
}
