// Package friends orchestrates friendship operations: sending, accepting,
// and denying friend requests, and removing existing friends. All durable
// state lives on the remote API; after any successful mutation the owning
// view re-fetches the session rather than patching local lists.
package friends

//go:generate mockgen -destination=mock/mock_service.go -package=friendsmock susie.mx/gokemon-client/internal/orchestrators/friends Service

import (
	"context"
	"log/slog"

	"susie.mx/gokemon-client/internal/clients/gokemon"
	"susie.mx/gokemon-client/internal/errors"
)

// Service defines the interface for friendship operations
type Service interface {
	// ListRequests returns the viewer's outstanding friend requests,
	// partitioned into sent and received.
	ListRequests(ctx context.Context, input *ListRequestsInput) (*ListRequestsOutput, error)

	// SendRequest sends a friend request to another account.
	SendRequest(ctx context.Context, input *SendRequestInput) (*SendRequestOutput, error)

	// AcceptRequest accepts a received friend request.
	AcceptRequest(ctx context.Context, input *AcceptRequestInput) (*AcceptRequestOutput, error)

	// DenyRequest denies a received request or cancels a sent one.
	DenyRequest(ctx context.Context, input *DenyRequestInput) (*DenyRequestOutput, error)

	// RemoveFriend dissolves an existing friendship.
	RemoveFriend(ctx context.Context, input *RemoveFriendInput) (*RemoveFriendOutput, error)
}

// Config holds the dependencies for the friends orchestrator
type Config struct {
	Client gokemon.Client
	// OnChanged is invoked after any successful mutation. The owning view
	// uses it to trigger a session refresh, since friend lists and request
	// lists are stale at that point.
	OnChanged func()
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type orchestrator struct {
	client    gokemon.Client
	onChanged func()
}

// NewOrchestrator creates a friends orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:    cfg.Client,
		onChanged: cfg.OnChanged,
	}, nil
}

// ListRequests returns the viewer's outstanding friend requests
func (o *orchestrator) ListRequests(ctx context.Context, _ *ListRequestsInput) (*ListRequestsOutput, error) {
	list, err := o.client.ListFriendRequests(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing friend requests")
	}

	return &ListRequestsOutput{
		Sent:     list.Sent,
		Received: list.Received,
	}, nil
}

// SendRequest sends a friend request to another account
func (o *orchestrator) SendRequest(ctx context.Context, input *SendRequestInput) (*SendRequestOutput, error) {
	if input.FriendID == 0 {
		return nil, errors.InvalidArgument("friend ID is required")
	}

	if err := o.client.CreateFriendRequest(ctx, input.FriendID); err != nil {
		return nil, errors.Wrapf(err, "sending friend request to %d", input.FriendID)
	}

	slog.Info("friend request sent", "friend_id", input.FriendID)
	o.notify()
	return &SendRequestOutput{}, nil
}

// AcceptRequest accepts a received friend request
func (o *orchestrator) AcceptRequest(ctx context.Context, input *AcceptRequestInput) (*AcceptRequestOutput, error) {
	if input.RequestID == 0 {
		return nil, errors.InvalidArgument("request ID is required")
	}

	if err := o.client.AcceptFriendRequest(ctx, input.RequestID); err != nil {
		return nil, errors.Wrapf(err, "accepting friend request %d", input.RequestID)
	}

	slog.Info("friend request accepted", "request_id", input.RequestID)
	o.notify()
	return &AcceptRequestOutput{}, nil
}

// DenyRequest denies a received request or cancels a sent one
func (o *orchestrator) DenyRequest(ctx context.Context, input *DenyRequestInput) (*DenyRequestOutput, error) {
	if input.RequestID == 0 {
		return nil, errors.InvalidArgument("request ID is required")
	}

	if err := o.client.DeleteFriendRequest(ctx, input.RequestID); err != nil {
		return nil, errors.Wrapf(err, "denying friend request %d", input.RequestID)
	}

	slog.Info("friend request denied", "request_id", input.RequestID)
	o.notify()
	return &DenyRequestOutput{}, nil
}

// RemoveFriend dissolves an existing friendship
func (o *orchestrator) RemoveFriend(ctx context.Context, input *RemoveFriendInput) (*RemoveFriendOutput, error) {
	if input.FriendID == 0 {
		return nil, errors.InvalidArgument("friend ID is required")
	}

	if err := o.client.RemoveFriend(ctx, input.FriendID); err != nil {
		return nil, errors.Wrapf(err, "removing friend %d", input.FriendID)
	}

	slog.Info("friend removed", "friend_id", input.FriendID)
	o.notify()
	return &RemoveFriendOutput{}, nil
}

func (o *orchestrator) notify() {
	if o.onChanged != nil {
		o.onChanged()
	}
}
