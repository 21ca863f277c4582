package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"susie.mx/gokemon-client/internal/countdown"
	"susie.mx/gokemon-client/internal/orchestrators/catalog"
	"susie.mx/gokemon-client/internal/pkg/clock"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Manage pending creature selections",
}

var pendingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your pending selections",
	RunE:  runPendingList,
}

var pendingConfirmCmd = &cobra.Command{
	Use:   "confirm <index>",
	Short: "Confirm a pending selection by its list index",
	Args:  cobra.ExactArgs(1),
	RunE:  runPendingConfirm,
}

var pendingWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the countdown to your next selection batch",
	Long: `Watch the countdown to the next selection batch and refresh the session
when it elapses. Runs until interrupted.`,
	RunE: runPendingWatch,
}

func init() {
	pendingCmd.AddCommand(pendingListCmd)
	pendingCmd.AddCommand(pendingConfirmCmd)
	pendingCmd.AddCommand(pendingWatchCmd)
}

func runPendingList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	if _, err := a.catalog.RefreshSession(ctx, &catalog.RefreshSessionInput{}); err != nil {
		return err
	}

	session := a.catalog.Session()
	if session.Viewer == nil {
		return fmt.Errorf("pending selections require a session cookie")
	}

	if len(session.Viewer.PendingItems) == 0 {
		fmt.Println("No pending selections.")
		return nil
	}

	for i, item := range session.Viewer.PendingItems {
		shiny := ""
		if item.IsShiny {
			shiny = "  shiny"
		}
		fmt.Printf("[%d] species %d form %d%s\n", i, item.SpeciesID, item.FormIndex, shiny)
	}
	return nil
}

func runPendingConfirm(_ *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	if _, err := a.catalog.RefreshSession(ctx, &catalog.RefreshSessionInput{}); err != nil {
		return err
	}

	out, err := a.catalog.ConfirmPending(ctx, &catalog.ConfirmPendingInput{Index: index})
	if err != nil {
		return err
	}

	fmt.Printf("Confirmed: item %d (species %d)\n", out.Item.ID, out.Item.SpeciesID)
	return nil
}

func runPendingWatch(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	refreshCtx, refreshCancel := context.WithTimeout(ctx, a.cfg.API.HTTPTimeout)
	_, err = a.catalog.RefreshSession(refreshCtx, &catalog.RefreshSessionInput{})
	refreshCancel()
	if err != nil {
		return err
	}
	if a.catalog.Session().Viewer == nil {
		return fmt.Errorf("watching the countdown requires a session cookie")
	}

	coord, err := countdown.New(&countdown.Config{
		Clock:        clock.New(),
		TickInterval: a.cfg.Countdown.TickInterval,
		PendingEmpty: a.catalog.PendingEmpty,
		Refresh: func(ctx context.Context) error {
			_, err := a.catalog.RefreshSession(ctx, &catalog.RefreshSessionInput{})
			return err
		},
	})
	if err != nil {
		return err
	}
	defer coord.Stop()

	coord.Arm(a.catalog.NextSelectionAt())

	go func() {
		for remaining := range coord.Remaining() {
			fmt.Printf("\rNext selection in %ds   ", remaining)
			if remaining == 0 {
				fmt.Println()
			}
		}
	}()

	coord.Run(ctx)
	return nil
}
