package roster

// View is which panel sits next to the roster. Exactly one is active, so
// an open add-friend panel and a selected friend cannot coexist.
type View interface {
	isView()
	String() string
}

// RosterOnly shows the friend list alone.
type RosterOnly struct{}

// AddingFriend shows the list plus the add-friend form.
type AddingFriend struct{}

// SplittingWith shows the list plus the split-bill form for FriendID.
type SplittingWith struct {
	FriendID string
}

func (RosterOnly) isView()    {}
func (AddingFriend) isView()  {}
func (SplittingWith) isView() {}

func (RosterOnly) String() string      { return "roster" }
func (AddingFriend) String() string    { return "adding-friend" }
func (v SplittingWith) String() string { return "splitting-with:" + v.FriendID }
