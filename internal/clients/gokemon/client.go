// Package gokemon is the client for the remote Gokemon API, which owns all
// durable state: collections, friendships, trade offers, and the pending
// selection timer. This core never interprets mutation response payloads
// beyond success or failure; after any successful mutation callers re-fetch
// the session rather than patching local state.
package gokemon

//go:generate mockgen -destination=mock/mock_client.go -package=gokemonmock susie.mx/gokemon-client/internal/clients/gokemon Client

import (
	"context"
	"time"

	"susie.mx/gokemon-client/internal/entities"
)

// Client defines the operations the client core consumes from the remote API.
type Client interface {
	// GetCatalog fetches the full species catalog: ids, names, rarity tags,
	// and ordered forms with sprites and types.
	GetCatalog(ctx context.Context) ([]entities.Species, error)

	// GetViewer fetches the authenticated account. Returns an
	// Unauthenticated error when no session cookie is held; callers treat
	// that as the anonymous steady state, not a failure.
	GetViewer(ctx context.Context) (*entities.Account, error)

	// GetAccount fetches any account's public profile by id.
	GetAccount(ctx context.Context, accountID int64) (*entities.Account, error)

	// ListFriendRequests returns the viewer's outstanding friend requests,
	// partitioned into sent and received.
	ListFriendRequests(ctx context.Context) (*FriendRequestList, error)

	// CreateFriendRequest sends a friend request to another account.
	CreateFriendRequest(ctx context.Context, friendID int64) error

	// AcceptFriendRequest accepts a received friend request.
	AcceptFriendRequest(ctx context.Context, requestID int64) error

	// DeleteFriendRequest cancels a sent request or denies a received one.
	DeleteFriendRequest(ctx context.Context, requestID int64) error

	// RemoveFriend dissolves an existing friendship.
	RemoveFriend(ctx context.Context, friendID int64) error

	// ListTradeRequests returns the viewer's outstanding trade requests,
	// partitioned into sent and received.
	ListTradeRequests(ctx context.Context) (*TradeRequestList, error)

	// CreateTradeRequest offers one of the viewer's items against one of a
	// friend's items.
	CreateTradeRequest(ctx context.Context, input *CreateTradeRequestInput) error

	// AcceptTradeRequest accepts a received trade request, executing the swap.
	AcceptTradeRequest(ctx context.Context, requestID int64) error

	// DeleteTradeRequest cancels a sent trade request or denies a received one.
	DeleteTradeRequest(ctx context.Context, requestID int64) error

	// ConfirmPendingSelection confirms one of the viewer's pending items by
	// its index into the pending list, and returns the now-owned item so the
	// caller can append it optimistically before the next full refresh.
	ConfirmPendingSelection(ctx context.Context, index int) (*entities.OwnedItem, error)

	// SetPreferredForm records which form represents a species in the
	// viewer's collapsed catalog view.
	SetPreferredForm(ctx context.Context, speciesID int64, formIndex int) error
}

// FriendRequestList partitions friend requests relative to the viewer.
type FriendRequestList struct {
	Sent     []entities.FriendRequest
	Received []entities.FriendRequest
}

// TradeRequestList partitions trade requests relative to the viewer.
type TradeRequestList struct {
	Sent     []entities.TradeRequest
	Received []entities.TradeRequest
}

// CreateTradeRequestInput identifies both sides of a new trade offer.
type CreateTradeRequestInput struct {
	// OfferedItemID is the viewer-owned instance being given away.
	OfferedItemID int64
	// FriendID is the account on the other side of the trade.
	FriendID int64
	// WantedItemID is the friend-owned instance being asked for.
	WantedItemID int64
}

// Config contains configuration options for the Gokemon API client.
type Config struct {
	// BaseURL of the API, e.g. "http://localhost:8080".
	BaseURL string
	// SessionCookie is the opaque auth cookie value; empty means anonymous.
	SessionCookie string
	// HTTPTimeout for API requests (optional, defaults to 15 seconds).
	HTTPTimeout time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	return nil
}
