package friends

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

func newService(t *testing.T, onChanged func()) (Service, *gokemonmock.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := gokemonmock.NewMockClient(ctrl)

	svc, err := NewOrchestrator(&Config{
		Client:    client,
		OnChanged: onChanged,
	})
	require.NoError(t, err)
	return svc, client
}

func TestNewOrchestrator_Validation(t *testing.T) {
	_, err := NewOrchestrator(&Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestListRequests(t *testing.T) {
	svc, client := newService(t, nil)
	ctx := context.Background()

	client.EXPECT().ListFriendRequests(ctx).Return(&gokemon.FriendRequestList{
		Sent: []entities.FriendRequest{
			{ID: 1, From: entities.Friend{ID: 3}, To: entities.Friend{ID: 9}},
		},
		Received: []entities.FriendRequest{
			{ID: 2, From: entities.Friend{ID: 8}, To: entities.Friend{ID: 3}},
		},
	}, nil)

	out, err := svc.ListRequests(ctx, &ListRequestsInput{})
	require.NoError(t, err)
	require.Len(t, out.Sent, 1)
	require.Len(t, out.Received, 1)
	assert.Equal(t, int64(9), out.Sent[0].To.ID)
	assert.Equal(t, int64(8), out.Received[0].From.ID)
}

func TestSendRequest(t *testing.T) {
	changed := 0
	svc, client := newService(t, func() { changed++ })
	ctx := context.Background()

	client.EXPECT().CreateFriendRequest(ctx, int64(9)).Return(nil)

	_, err := svc.SendRequest(ctx, &SendRequestInput{FriendID: 9})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
}

func TestSendRequest_Validation(t *testing.T) {
	svc, _ := newService(t, nil)

	_, err := svc.SendRequest(context.Background(), &SendRequestInput{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestAcceptRequest(t *testing.T) {
	changed := 0
	svc, client := newService(t, func() { changed++ })
	ctx := context.Background()

	client.EXPECT().AcceptFriendRequest(ctx, int64(2)).Return(nil)

	_, err := svc.AcceptRequest(ctx, &AcceptRequestInput{RequestID: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
}

func TestDenyRequest(t *testing.T) {
	svc, client := newService(t, nil)
	ctx := context.Background()

	client.EXPECT().DeleteFriendRequest(ctx, int64(2)).Return(nil)

	_, err := svc.DenyRequest(ctx, &DenyRequestInput{RequestID: 2})
	require.NoError(t, err)
}

func TestRemoveFriend(t *testing.T) {
	svc, client := newService(t, nil)
	ctx := context.Background()

	client.EXPECT().RemoveFriend(ctx, int64(8)).Return(nil)

	_, err := svc.RemoveFriend(ctx, &RemoveFriendInput{FriendID: 8})
	require.NoError(t, err)
}

func TestMutationFailureSkipsNotify(t *testing.T) {
	changed := 0
	svc, client := newService(t, func() { changed++ })
	ctx := context.Background()

	client.EXPECT().AcceptFriendRequest(ctx, int64(2)).Return(errors.Unavailable("api down"))

	_, err := svc.AcceptRequest(ctx, &AcceptRequestInput{RequestID: 2})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
	assert.Zero(t, changed, "views only refresh after a confirmed mutation")
}
