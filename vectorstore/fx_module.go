package vectorstore

import (
	"context"

	"go.uber.org/fx"

	"docagent/docstore"
)

// FXModule wires the Qdrant client into Fx and binds it to the core's
// Backend port. The graph must supply a *vectorstore.Config and a
// *logger.Logger.
var FXModule = fx.Module("vectorstore",
	fx.Provide(
		NewClient,
		func(c *Client) docstore.Backend { return c },
	),
	fx.Invoke(RegisterClientLifecycle),
)

// RegisterClientLifecycle closes the gRPC connection on shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
