package trade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"susie.mx/gokemon-client/internal/clients/gokemon"
	gokemonmock "susie.mx/gokemon-client/internal/clients/gokemon/mock"
	"susie.mx/gokemon-client/internal/entities"
	"susie.mx/gokemon-client/internal/errors"
)

func newInbox(t *testing.T, onAccepted func()) (Inbox, *gokemonmock.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := gokemonmock.NewMockClient(ctrl)

	in, err := NewInbox(&InboxConfig{
		Client:     client,
		OnAccepted: onAccepted,
	})
	require.NoError(t, err)
	return in, client
}

func TestNewInbox_Validation(t *testing.T) {
	_, err := NewInbox(&InboxConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestInboxListRequests(t *testing.T) {
	in, client := newInbox(t, nil)
	ctx := context.Background()

	client.EXPECT().ListTradeRequests(ctx).Return(&gokemon.TradeRequestList{
		Sent: []entities.TradeRequest{
			{ID: 5, From: entities.Friend{ID: 3}, OfferedItemID: 11, To: entities.Friend{ID: 9}, WantedItemID: 40},
		},
		Received: []entities.TradeRequest{
			{ID: 6, From: entities.Friend{ID: 9}, OfferedItemID: 41, To: entities.Friend{ID: 3}, WantedItemID: 12},
		},
	}, nil)

	out, err := in.ListRequests(ctx, &ListRequestsInput{})
	require.NoError(t, err)
	require.Len(t, out.Sent, 1)
	require.Len(t, out.Received, 1)
	assert.Equal(t, int64(40), out.Sent[0].WantedItemID)
	assert.Equal(t, int64(41), out.Received[0].OfferedItemID)
}

func TestInboxAcceptRequest(t *testing.T) {
	accepted := 0
	in, client := newInbox(t, func() { accepted++ })
	ctx := context.Background()

	client.EXPECT().AcceptTradeRequest(ctx, int64(6)).Return(nil)

	_, err := in.AcceptRequest(ctx, &AcceptRequestInput{RequestID: 6})
	require.NoError(t, err)
	assert.Equal(t, 1, accepted)
}

func TestInboxAcceptRequest_FailureSkipsNotify(t *testing.T) {
	accepted := 0
	in, client := newInbox(t, func() { accepted++ })
	ctx := context.Background()

	client.EXPECT().AcceptTradeRequest(ctx, int64(6)).Return(errors.Unavailable("api down"))

	_, err := in.AcceptRequest(ctx, &AcceptRequestInput{RequestID: 6})
	require.Error(t, err)
	assert.Zero(t, accepted)
}

func TestInboxDenyRequest(t *testing.T) {
	in, client := newInbox(t, nil)
	ctx := context.Background()

	client.EXPECT().DeleteTradeRequest(ctx, int64(5)).Return(nil)

	_, err := in.DenyRequest(ctx, &DenyRequestInput{RequestID: 5})
	require.NoError(t, err)

	_, err = in.DenyRequest(ctx, &DenyRequestInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
