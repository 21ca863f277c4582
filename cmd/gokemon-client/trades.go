package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"susie.mx/gokemon-client/internal/entities"
	"susie.mx/gokemon-client/internal/orchestrators/catalog"
	"susie.mx/gokemon-client/internal/orchestrators/trade"
)

var (
	tradeOfferedID int64
	tradeFriendID  int64
	tradeWantedID  int64
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Manage trade requests",
}

var tradesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your outstanding trade requests",
	RunE:  runTradesList,
}

var tradesOfferCmd = &cobra.Command{
	Use:   "offer",
	Short: "Offer one of your items against a friend's item",
	RunE:  runTradesOffer,
}

var tradesAcceptCmd = &cobra.Command{
	Use:   "accept <request-id>",
	Short: "Accept a received trade request",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesAccept,
}

var tradesDenyCmd = &cobra.Command{
	Use:   "deny <request-id>",
	Short: "Deny a received trade request or cancel a sent one",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradesDeny,
}

func init() {
	tradesOfferCmd.Flags().Int64Var(&tradeOfferedID, "offered", 0, "ID of your item to give away")
	tradesOfferCmd.Flags().Int64Var(&tradeFriendID, "friend", 0, "account ID of the friend to trade with")
	tradesOfferCmd.Flags().Int64Var(&tradeWantedID, "wanted", 0, "ID of the friend's item to ask for")
	_ = tradesOfferCmd.MarkFlagRequired("offered")
	_ = tradesOfferCmd.MarkFlagRequired("friend")
	_ = tradesOfferCmd.MarkFlagRequired("wanted")

	tradesCmd.AddCommand(tradesListCmd)
	tradesCmd.AddCommand(tradesOfferCmd)
	tradesCmd.AddCommand(tradesAcceptCmd)
	tradesCmd.AddCommand(tradesDenyCmd)
}

func runTradesList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	out, err := a.inbox.ListRequests(ctx, &trade.ListRequestsInput{})
	if err != nil {
		return err
	}

	fmt.Printf("Sent (%d):\n", len(out.Sent))
	for _, req := range out.Sent {
		fmt.Printf("  [%d] your item %d for %s's item %d\n",
			req.ID, req.OfferedItemID, req.To.Username, req.WantedItemID)
	}
	fmt.Printf("Received (%d):\n", len(out.Received))
	for _, req := range out.Received {
		fmt.Printf("  [%d] %s's item %d for your item %d\n",
			req.ID, req.From.Username, req.OfferedItemID, req.WantedItemID)
	}
	return nil
}

func runTradesOffer(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*a.cfg.API.HTTPTimeout)
	defer cancel()

	if _, err := a.catalog.RefreshSession(ctx, &catalog.RefreshSessionInput{
		ProfileID: tradeFriendID,
	}); err != nil {
		return err
	}

	session := a.catalog.Session()
	if session.Viewer == nil {
		return fmt.Errorf("trading requires a session cookie")
	}

	offered, err := findItem(session.Viewer.OwnedItems, tradeOfferedID)
	if err != nil {
		return fmt.Errorf("offered item: %w", err)
	}
	wanted, err := findItem(session.Profile.OwnedItems, tradeWantedID)
	if err != nil {
		return fmt.Errorf("wanted item: %w", err)
	}

	if err := a.workflow.Begin(session.Viewer.ID, session.Profile.ID, nil); err != nil {
		return err
	}
	if err := a.workflow.SelectOffered(offered); err != nil {
		return err
	}
	if err := a.workflow.SelectWanted(wanted); err != nil {
		return err
	}
	if err := a.workflow.Submit(ctx); err != nil {
		return err
	}

	fmt.Printf("Trade offered: your item %d for %s's item %d.\n",
		offered.ID, session.Profile.Username, wanted.ID)
	return nil
}

func findItem(items []entities.OwnedItem, id int64) (entities.OwnedItem, error) {
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return entities.OwnedItem{}, fmt.Errorf("item %d not found in collection", id)
}

func runTradesAccept(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	if _, err := a.inbox.AcceptRequest(ctx, &trade.AcceptRequestInput{RequestID: id}); err != nil {
		return err
	}
	fmt.Printf("Trade request %d accepted.\n", id)
	return nil
}

func runTradesDeny(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	if _, err := a.inbox.DenyRequest(ctx, &trade.DenyRequestInput{RequestID: id}); err != nil {
		return err
	}
	fmt.Printf("Trade request %d removed.\n", id)
	return nil
}
