package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"susie.mx/gokemon-client/internal/orchestrators/catalog"
	"susie.mx/gokemon-client/internal/orchestrators/friends"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Manage friends and friend requests",
}

var friendsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your friends",
	RunE:  runFriendsList,
}

var friendsRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List your outstanding friend requests",
	RunE:  runFriendsRequests,
}

var friendsAddCmd = &cobra.Command{
	Use:   "add <account-id>",
	Short: "Send a friend request",
	Args:  cobra.ExactArgs(1),
	RunE:  runFriendsAdd,
}

var friendsAcceptCmd = &cobra.Command{
	Use:   "accept <request-id>",
	Short: "Accept a received friend request",
	Args:  cobra.ExactArgs(1),
	RunE:  runFriendsAccept,
}

var friendsDenyCmd = &cobra.Command{
	Use:   "deny <request-id>",
	Short: "Deny a received friend request or cancel a sent one",
	Args:  cobra.ExactArgs(1),
	RunE:  runFriendsDeny,
}

var friendsRemoveCmd = &cobra.Command{
	Use:   "remove <account-id>",
	Short: "Remove a friend",
	Args:  cobra.ExactArgs(1),
	RunE:  runFriendsRemove,
}

func init() {
	friendsCmd.AddCommand(friendsListCmd)
	friendsCmd.AddCommand(friendsRequestsCmd)
	friendsCmd.AddCommand(friendsAddCmd)
	friendsCmd.AddCommand(friendsAcceptCmd)
	friendsCmd.AddCommand(friendsDenyCmd)
	friendsCmd.AddCommand(friendsRemoveCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", arg, err)
	}
	return id, nil
}

func runFriendsList(_ *cobra.Command, _ []string) error {
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
		return fmt.Errorf("listing friends requires a session cookie")
	}

	if len(session.Viewer.Friends) == 0 {
		fmt.Println("No friends yet.")
		return nil
	}
	for _, friend := range session.Viewer.Friends {
		fmt.Printf("%d  %s\n", friend.ID, friend.Username)
	}
	return nil
}

func runFriendsRequests(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.HTTPTimeout)
	defer cancel()

	out, err := a.friends.ListRequests(ctx, &friends.ListRequestsInput{})
	if err != nil {
		return err
	}

	fmt.Printf("Sent (%d):\n", len(out.Sent))
	for _, req := range out.Sent {
		fmt.Printf("  [%d] to %s\n", req.ID, req.To.Username)
	}
	fmt.Printf("Received (%d):\n", len(out.Received))
	for _, req := range out.Received {
		fmt.Printf("  [%d] from %s\n", req.ID, req.From.Username)
	}
	return nil
}

func runFriendsAdd(_ *cobra.Command, args []string) error {
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

	if _, err := a.friends.SendRequest(ctx, &friends.SendRequestInput{FriendID: id}); err != nil {
		return err
	}
	fmt.Printf("Friend request sent to %d.\n", id)
	return nil
}

func runFriendsAccept(_ *cobra.Command, args []string) error {
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

	if _, err := a.friends.AcceptRequest(ctx, &friends.AcceptRequestInput{RequestID: id}); err != nil {
		return err
	}
	fmt.Printf("Friend request %d accepted.\n", id)
	return nil
}

func runFriendsDeny(_ *cobra.Command, args []string) error {
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

	if _, err := a.friends.DenyRequest(ctx, &friends.DenyRequestInput{RequestID: id}); err != nil {
		return err
	}
	fmt.Printf("Friend request %d removed.\n", id)
	return nil
}

func runFriendsRemove(_ *cobra.Command, args []string) error {
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

	if _, err := a.friends.RemoveFriend(ctx, &friends.RemoveFriendInput{FriendID: id}); err != nil {
		return err
	}
	fmt.Printf("Friend %d removed.\n", id)
	return nil
}
