package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"susie.mx/gokemon-client/internal/orchestrators/catalog"
)

var collectionProfileID int64

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "List a profile's owned items",
	RunE:  runCollection,
}

func init() {
	collectionCmd.Flags().Int64Var(&collectionProfileID, "profile", 0, "profile account ID (defaults to your own)")
}

func runCollection(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	if _, err := a.catalog.RefreshSession(ctx, &catalog.RefreshSessionInput{
		ProfileID: collectionProfileID,
	}); err != nil {
		return err
	}

	session := a.catalog.Session()
	if session.Profile == nil {
		return fmt.Errorf("no profile to show; log in or pass --profile")
	}

	fmt.Printf("%s owns %d items:\n", session.Profile.Username, len(session.Profile.OwnedItems))
	for _, item := range session.Profile.OwnedItems {
		shiny := ""
		if item.IsShiny {
			shiny = "  shiny"
		}
		fmt.Printf("  item %d  species %d  form %d%s\n", item.ID, item.SpeciesID, item.FormIndex, shiny)
	}
	return nil
}
