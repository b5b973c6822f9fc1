package roster

import (
	"github.com/shopspring/decimal"

	"github.com/splitbill/splitbill/internal/model"
)

// DefaultSeed is the roster used when no seed file is configured.
func DefaultSeed() []model.Friend {
	return []model.Friend{
		{ID: "118836", Name: "Clark", Image: "https://i.pravatar.cc/48?u=118836", Balance: decimal.NewFromInt(-7)},
		{ID: "933372", Name: "Sarah", Image: "https://i.pravatar.cc/48?u=933372", Balance: decimal.NewFromInt(20)},
		{ID: "499476", Name: "Anthony", Image: "https://i.pravatar.cc/48?u=499476", Balance: decimal.Zero},
	}
}
