// Package roster owns the friend list and which panel is open next to it.
//
// Every mutation builds a fresh Snapshot and swaps it in whole, then hands it
// to subscribers. A Store is not safe for concurrent use; the TUI drives it
// from its single Update loop.
package roster

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitbill/splitbill/internal/model"
)

// DefaultAvatarTemplate is used when a friend is added without an image.
const DefaultAvatarTemplate = "https://i.pravatar.cc/?={id}"

// maxIDDraws bounds redraws when the provider keeps colliding.
const maxIDDraws = 16

// Snapshot is a read-only view of the store at one point in time.
type Snapshot struct {
	Roster []model.Friend
	View   View
}

// Selected returns the friend the split form is open for.
func (s Snapshot) Selected() (model.Friend, bool) {
	v, ok := s.View.(SplittingWith)
	if !ok {
		return model.Friend{}, false
	}
	return s.Find(v.FriendID)
}

// AddFriendOpen reports whether the add-friend panel is showing.
func (s Snapshot) AddFriendOpen() bool {
	_, ok := s.View.(AddingFriend)
	return ok
}

// Find looks a friend up by id.
func (s Snapshot) Find(id string) (model.Friend, bool) {
	i := slices.IndexFunc(s.Roster, func(f model.Friend) bool { return f.ID == id })
	if i < 0 {
		return model.Friend{}, false
	}
	return s.Roster[i], true
}

// FindByName matches case-insensitively; an exact id match wins.
func (s Snapshot) FindByName(ref string) (model.Friend, bool) {
	if f, ok := s.Find(ref); ok {
		return f, true
	}
	for _, f := range s.Roster {
		if strings.EqualFold(f.Name, strings.TrimSpace(ref)) {
			return f, true
		}
	}
	return model.Friend{}, false
}

type Option func(*Store)

// WithIDProvider replaces the default UUID generator.
func WithIDProvider(p IDProvider) Option {
	return func(s *Store) { s.ids = p }
}

// WithAvatarTemplate sets the image used when AddFriend gets none.
// "{id}" is replaced with the new friend's id.
func WithAvatarTemplate(tmpl string) Option {
	return func(s *Store) {
		if tmpl != "" {
			s.avatar = tmpl
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store is the single source of truth for the roster and the open panel.
type Store struct {
	cur    Snapshot
	ids    IDProvider
	avatar string
	log    *slog.Logger

	subs   map[int]func(Snapshot)
	nextID int
}

// New builds a store over seed. Later seed entries repeating an earlier id are dropped.
func New(seed []model.Friend, opts ...Option) *Store {
	s := &Store{
		ids:    UUIDs{},
		avatar: DefaultAvatarTemplate,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		subs:   map[int]func(Snapshot){},
	}
	for _, o := range opts {
		o(s)
	}

	friends := make([]model.Friend, 0, len(seed))
	seen := make(map[string]bool, len(seed))
	for _, f := range seed {
		if seen[f.ID] {
			s.log.Warn("dropping duplicate seed friend", "id", f.ID, "name", f.Name)
			continue
		}
		seen[f.ID] = true
		friends = append(friends, f)
	}
	s.cur = Snapshot{Roster: friends, View: RosterOnly{}}
	return s
}

// Snapshot returns the current state. The roster slice is a copy.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Roster: slices.Clone(s.cur.Roster), View: s.cur.View}
}

// Subscribe registers fn to receive every published snapshot.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) publish(next Snapshot) {
	s.cur = next
	s.log.Debug("roster updated", "view", next.View.String(), "friends", len(next.Roster))
	for _, fn := range s.subs {
		fn(s.Snapshot())
	}
}

// ToggleAddFriend opens or closes the add-friend panel. Either way no friend
// stays selected.
func (s *Store) ToggleAddFriend() Snapshot {
	var next View = AddingFriend{}
	if s.cur.AddFriendOpen() {
		next = RosterOnly{}
	}
	s.publish(Snapshot{Roster: s.cur.Roster, View: next})
	return s.Snapshot()
}

// AddFriend appends a friend with a zero balance and closes the panel.
// An empty (or blank) name changes nothing and reports false.
func (s *Store) AddFriend(name, image string) (model.Friend, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Friend{}, false
	}
	id := s.newID()
	image = strings.TrimSpace(image)
	if image == "" {
		image = strings.ReplaceAll(s.avatar, "{id}", id)
	}
	f := model.Friend{ID: id, Name: name, Image: image, Balance: decimal.Zero}

	roster := make([]model.Friend, 0, len(s.cur.Roster)+1)
	roster = append(roster, s.cur.Roster...)
	roster = append(roster, f)
	s.log.Info("friend added", "id", id, "name", name)
	s.publish(Snapshot{Roster: roster, View: RosterOnly{}})
	return f, true
}

func (s *Store) newID() string {
	id := s.ids.NewID()
	for i := 1; s.taken(id); i++ {
		if i >= maxIDDraws {
			// provider is stuck; suffix until free
			base := id
			for n := 2; s.taken(id); n++ {
				id = fmt.Sprintf("%s-%d", base, n)
			}
			break
		}
		s.log.Warn("id collision, redrawing", "id", id)
		id = s.ids.NewID()
	}
	return id
}

func (s *Store) taken(id string) bool {
	_, ok := s.cur.Find(id)
	return ok
}

// SelectFriend opens the split form for id, or closes it when id is already
// selected. The add-friend panel is closed in both cases. Unknown ids are
// ignored and report false.
func (s *Store) SelectFriend(id string) (model.Friend, bool) {
	f, ok := s.cur.Find(id)
	if !ok {
		s.log.Debug("select ignored, unknown friend", "id", id)
		return model.Friend{}, false
	}
	if cur, open := s.cur.View.(SplittingWith); open && cur.FriendID == id {
		s.publish(Snapshot{Roster: s.cur.Roster, View: RosterOnly{}})
		return model.Friend{}, false
	}
	s.publish(Snapshot{Roster: s.cur.Roster, View: SplittingWith{FriendID: id}})
	return f, true
}

// SplitBill adds delta to the selected friend's balance and clears the
// selection. Without a selection nothing happens and it reports false.
func (s *Store) SplitBill(delta decimal.Decimal) (Snapshot, bool) {
	v, ok := s.cur.View.(SplittingWith)
	if !ok {
		return s.Snapshot(), false
	}
	roster := make([]model.Friend, len(s.cur.Roster))
	for i, f := range s.cur.Roster {
		if f.ID == v.FriendID {
			before := f.Balance
			f.Balance = f.Balance.Add(delta)
			s.log.Info("bill split", "id", f.ID, "name", f.Name,
				"delta", delta.String(), "from", before.String(), "to", f.Balance.String())
		}
		roster[i] = f
	}
	s.publish(Snapshot{Roster: roster, View: RosterOnly{}})
	return s.Snapshot(), true
}
