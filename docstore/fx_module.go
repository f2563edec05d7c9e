package docstore

import (
	"go.uber.org/fx"

	"docagent/logger"
	"docagent/metrics"
)

// StoreParams collects the store's dependencies for Fx injection.
// Metrics are optional so test and CLI graphs can omit them.
type StoreParams struct {
	fx.In

	Backend  Backend
	Embedder Embedder
	Config   Config
	Logger   *logger.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

// FXModule provides the Store and binds it to the Service interface.
//
// The graph must supply a Backend, an Embedder, a docstore.Config and a
// *logger.Logger.
var FXModule = fx.Module("docstore",
	fx.Provide(
		newStoreFromParams,
		func(s *Store) Service { return s },
	),
)

func newStoreFromParams(p StoreParams) (*Store, error) {
	return NewStore(p.Backend, p.Embedder, p.Config, p.Logger, p.Metrics)
}
