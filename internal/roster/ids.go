package roster

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDProvider hands out friend ids. Implementations should not repeat
// themselves; the store still redraws on collision.
type IDProvider interface {
	NewID() string
}

// UUIDs generates random (v4) UUIDs.
type UUIDs struct{}

func (UUIDs) NewID() string { return uuid.NewString() }

// Sequence yields Prefix1, Prefix2, ... in order.
type Sequence struct {
	Prefix string
	n      atomic.Uint64
}

func (s *Sequence) NewID() string {
	return s.Prefix + strconv.FormatUint(s.n.Add(1), 10)
}

// IDFunc adapts a plain function.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }
