package repository

import (
	"context"

	"github.com/saleshoes/storefront/internal/domain/model"
)

// PendingCheckoutStore holds pending checkout records while the buyer is away
// on the hosted payment page. Take consumes the record: a second Take with the
// same reference returns ErrNotFound.
type PendingCheckoutStore interface {
	Put(ctx context.Context, record *model.PendingCheckout) error
	Take(ctx context.Context, txnRef string) (*model.PendingCheckout, error)
}
