package gateway

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/saleshoes/storefront/internal/config"
)

// Module exposes gateway client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.GatewayAddress, p.Config.GatewayReturnURL, p.Logger)
}
