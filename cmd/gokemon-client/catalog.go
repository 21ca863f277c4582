package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"susie.mx/gokemon-client/internal/collection"
	"susie.mx/gokemon-client/internal/entities"
	"susie.mx/gokemon-client/internal/orchestrators/catalog"
)

var (
	catalogProfileID int64
	catalogOwned     string
	catalogTheirs    string
	catalogShininess string
	catalogForm      string
	catalogRarity    string
	catalogQuery     string
	catalogSaved     bool
	catalogSave      bool
	catalogReset     bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the species catalog for a profile",
	Long: `Show the filtered species catalog for a profile, annotated with each
species' representative item and its ownership status relative to you.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().Int64Var(&catalogProfileID, "profile", 0, "profile account ID (defaults to your own)")
	catalogCmd.Flags().StringVar(&catalogOwned, "owned", "all", "filter by your ownership: all, owned, unowned")
	catalogCmd.Flags().StringVar(&catalogTheirs, "theirs", "all", "filter by the profile's ownership: all, owned, unowned")
	catalogCmd.Flags().StringVar(&catalogShininess, "shininess", "all", "filter by shininess: all, regular, shiny")
	catalogCmd.Flags().StringVar(&catalogForm, "form", "all", "filter by form: all, default, non-default")
	catalogCmd.Flags().StringVar(&catalogRarity, "rarity", "all", "filter by rarity: all, regular, legendary, mythical")
	catalogCmd.Flags().StringVar(&catalogQuery, "query", "", "name or ID substring to match")
	catalogCmd.Flags().BoolVar(&catalogSaved, "saved", false, "use your saved filter instead of flags")
	catalogCmd.Flags().BoolVar(&catalogSave, "save", false, "persist the given filter flags")
	catalogCmd.Flags().BoolVar(&catalogReset, "reset", false, "drop your saved filter before rendering")

	catalogCmd.AddCommand(preferCmd)
}

var preferCmd = &cobra.Command{
	Use:   "prefer <species-id> <form-index>",
	Short: "Choose which form represents a species in your catalog",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefer,
}

func runPrefer(_ *cobra.Command, args []string) error {
	speciesID, err := parseID(args[0])
	if err != nil {
		return err
	}
	formIndex, err := parseID(args[1])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	if _, err := a.catalog.SetPreferredForm(ctx, &catalog.SetPreferredFormInput{
		SpeciesID: speciesID,
		FormIndex: int(formIndex),
	}); err != nil {
		return err
	}

	fmt.Printf("Preferred form for species %d set to %d.\n", speciesID, formIndex)
	return nil
}

func runCatalog(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	if _, err := a.catalog.RefreshSession(ctx, &catalog.RefreshSessionInput{
		ProfileID: catalogProfileID,
	}); err != nil {
		return err
	}

	filter := &collection.Filter{
		ViewerOwnership:  collection.OwnershipChoice(catalogOwned),
		ProfileOwnership: collection.OwnershipChoice(catalogTheirs),
		Shininess:        collection.ShininessChoice(catalogShininess),
		Form:             collection.FormChoice(catalogForm),
		Rarity:           collection.RarityChoice(catalogRarity),
		Query:            catalogQuery,
	}
	if catalogReset {
		if _, err := a.catalog.ResetFilter(ctx, &catalog.ResetFilterInput{}); err != nil {
			return err
		}
	}
	if catalogSave {
		if _, err := a.catalog.SaveFilter(ctx, &catalog.SaveFilterInput{Filter: *filter}); err != nil {
			return err
		}
	}
	if catalogSaved {
		filter = nil // View falls back to the persisted filter
	}

	out, err := a.catalog.View(ctx, &catalog.ViewInput{Filter: filter})
	if err != nil {
		return err
	}

	session := a.catalog.Session()
	if session.Profile != nil {
		fmt.Printf("%s owns %d of %d species\n\n", session.Profile.Username, out.OwnedSpecies, out.TotalSpecies)
	}

	for _, entry := range out.Entries {
		fmt.Printf("#%04d %s", entry.Species.ID, entry.Species.Name)

		if rarity := entry.Species.Rarity(); rarity != entities.RarityRegular {
			fmt.Printf(" [%s]", rarity)
		}

		if entry.Representative != nil {
			form := ""
			if entry.Representative.FormIndex < len(entry.Species.Forms) {
				form = entry.Species.Forms[entry.Representative.FormIndex].Name
			}
			if form != "" {
				fmt.Printf("  (%s)", form)
			}
			if entry.Representative.IsShiny {
				fmt.Printf("  shiny")
			}
		}

		if entry.Badge != "" {
			fmt.Printf("  %s", entry.Badge)
		}
		fmt.Println()
	}

	return nil
}
