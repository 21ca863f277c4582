package trade

//go:generate mockgen -destination=mock/mock_inbox.go -package=trademock susie.mx/gokemon-client/internal/orchestrators/trade Inbox

import (
	"context"
	"log/slog"

	"susie.mx/gokemon-client/internal/clients/gokemon"
	"susie.mx/gokemon-client/internal/entities"
	"susie.mx/gokemon-client/internal/errors"
)

// ListRequestsInput contains parameters for listing trade requests
type ListRequestsInput struct{}

// ListRequestsOutput contains the viewer's outstanding trade requests,
// partitioned relative to the viewer.
type ListRequestsOutput struct {
	Sent     []entities.TradeRequest
	Received []entities.TradeRequest
}

// AcceptRequestInput contains parameters for accepting a received trade
type AcceptRequestInput struct {
	RequestID int64
}

// AcceptRequestOutput contains the result of accepting a trade
type AcceptRequestOutput struct{}

// DenyRequestInput contains parameters for denying a received trade or
// cancelling a sent one; the remote API treats both as deletion.
type DenyRequestInput struct {
	RequestID int64
}

// DenyRequestOutput contains the result of denying a trade
type DenyRequestOutput struct{}

// Inbox defines the interface for the server-side trade request list. It is
// distinct from the Workflow: drafts live only in this process until
// submitted, while the inbox holds offers the server already knows about.
type Inbox interface {
	// ListRequests returns the viewer's outstanding trade requests,
	// partitioned into sent and received.
	ListRequests(ctx context.Context, input *ListRequestsInput) (*ListRequestsOutput, error)

	// AcceptRequest accepts a received trade request, executing the swap.
	AcceptRequest(ctx context.Context, input *AcceptRequestInput) (*AcceptRequestOutput, error)

	// DenyRequest denies a received trade request or cancels a sent one.
	DenyRequest(ctx context.Context, input *DenyRequestInput) (*DenyRequestOutput, error)
}

// InboxConfig holds the dependencies for the trade inbox
type InboxConfig struct {
	Client gokemon.Client
	// OnAccepted is invoked after a successful acceptance. The owning view
	// uses it to trigger a session refresh, since both collections changed.
	OnAccepted func()
}

// Validate ensures all required dependencies are provided
func (c *InboxConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type inbox struct {
	client     gokemon.Client
	onAccepted func()
}

// NewInbox creates a trade inbox with the provided dependencies
func NewInbox(cfg *InboxConfig) (Inbox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &inbox{
		client:     cfg.Client,
		onAccepted: cfg.OnAccepted,
	}, nil
}

// ListRequests returns the viewer's outstanding trade requests
func (i *inbox) ListRequests(ctx context.Context, _ *ListRequestsInput) (*ListRequestsOutput, error) {
	list, err := i.client.ListTradeRequests(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing trade requests")
	}

	return &ListRequestsOutput{
		Sent:     list.Sent,
		Received: list.Received,
	}, nil
}

// AcceptRequest accepts a received trade request, executing the swap
func (i *inbox) AcceptRequest(ctx context.Context, input *AcceptRequestInput) (*AcceptRequestOutput, error) {
	if input.RequestID == 0 {
		return nil, errors.InvalidArgument("request ID is required")
	}

	if err := i.client.AcceptTradeRequest(ctx, input.RequestID); err != nil {
		return nil, errors.Wrapf(err, "accepting trade request %d", input.RequestID)
	}

	slog.Info("trade request accepted", "request_id", input.RequestID)
	if i.onAccepted != nil {
		i.onAccepted()
	}
	return &AcceptRequestOutput{}, nil
}

// DenyRequest denies a received trade request or cancels a sent one
func (i *inbox) DenyRequest(ctx context.Context, input *DenyRequestInput) (*DenyRequestOutput, error) {
	if input.RequestID == 0 {
		return nil, errors.InvalidArgument("request ID is required")
	}

	if err := i.client.DeleteTradeRequest(ctx, input.RequestID); err != nil {
		return nil, errors.Wrapf(err, "denying trade request %d", input.RequestID)
	}

	slog.Info("trade request denied", "request_id", input.RequestID)
	return &DenyRequestOutput{}, nil
}
