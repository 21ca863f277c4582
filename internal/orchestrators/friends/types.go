package friends

import (
	"susie.mx/gokemon-client/internal/entities"
)

// ListRequestsInput contains parameters for listing friend requests
type ListRequestsInput struct{}

// ListRequestsOutput contains the viewer's outstanding friend requests,
// partitioned relative to the viewer.
type ListRequestsOutput struct {
	Sent     []entities.FriendRequest
	Received []entities.FriendRequest
}

// SendRequestInput contains parameters for sending a friend request
type SendRequestInput struct {
	FriendID int64
}

// SendRequestOutput contains the result of sending a friend request
type SendRequestOutput struct{}

// AcceptRequestInput contains parameters for accepting a received request
type AcceptRequestInput struct {
	RequestID int64
}

// AcceptRequestOutput contains the result of accepting a request
type AcceptRequestOutput struct{}

// DenyRequestInput contains parameters for denying a received request or
// cancelling a sent one; the remote API treats both as deletion.
type DenyRequestInput struct {
	RequestID int64
}

// DenyRequestOutput contains the result of denying a request
type DenyRequestOutput struct{}

// RemoveFriendInput contains parameters for dissolving a friendship
type RemoveFriendInput struct {
	FriendID int64
}

// RemoveFriendOutput contains the result of removing a friend
type RemoveFriendOutput struct{}
