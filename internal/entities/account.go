package entities

// Account is a user profile as reported by the remote API.
type Account struct {
	ID                int64
	Username          string
	ProfilePictureURL string
	OwnedItems        []OwnedItem
	// PendingItems are generated server-side and wait for the user to
	// confirm one; confirming moves the chosen item into OwnedItems.
	PendingItems []OwnedItem
	Friends      []Friend
	// NextSelectionAt is the ms-since-epoch timestamp at which the server
	// generates the next batch of pending items. Zero when unknown.
	NextSelectionAt int64
	// PreferredForms maps species id to the form index the account wants
	// shown in the collapsed catalog view.
	PreferredForms map[int64]int
}

// Friend is the slim account view embedded in friend lists.
type Friend struct {
	ID                int64
	Username          string
	ProfilePictureURL string
}

// Session pairs the authenticated viewer (nil when logged out) with the
// account whose profile is being viewed (nil on pages with no profile).
type Session struct {
	Viewer  *Account
	Profile *Account
	// Generation increments on every refresh. Consumers use it to drop
	// responses that were issued against a superseded snapshot.
	Generation uint64
}

// SelfView reports whether the viewer is looking at their own profile.
func (s *Session) SelfView() bool {
	return s != nil && s.Viewer != nil && s.Profile != nil && s.Viewer.ID == s.Profile.ID
}

// FriendRequest is a pending friendship between two accounts.
type FriendRequest struct {
	ID   int64
	From Friend
	To   Friend
}

// TradeRequest is an outstanding server-side trade offer: the sender's item
// against the recipient's item.
type TradeRequest struct {
	ID            int64
	From          Friend
	OfferedItemID int64
	To            Friend
	WantedItemID  int64
}
