package session

import (
	"go.uber.org/fx"

	"github.com/saleshoes/storefront/internal/domain/repository"
)

// Module wires the in-memory pending checkout store.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(func(s *Store) repository.PendingCheckoutStore { return s }),
)
