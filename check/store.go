package check

import (
	"context"

	"github.com/jrh3k5/checkwriter/bank"
	"github.com/jrh3k5/checkwriter/vendors"
)

// Store persists checks and the records they refer to.
// Lookups of unknown IDs return an error wrapping ErrNotFound.
type Store interface {
	GetAccount(ctx context.Context, id string) (*bank.Account, error)
	GetVendor(ctx context.Context, id string) (*vendors.Vendor, error)

	GetCheck(ctx context.Context, id string) (*Check, error)
	ListChecks(ctx context.Context) ([]*Check, error)
	SaveCheck(ctx context.Context, c *Check) error
	DeleteCheck(ctx context.Context, id string) error

	// CreateCheck stores a new check together with the bank account whose check number it consumed.
	CreateCheck(ctx context.Context, c *Check, account *bank.Account) error
}
