package embedding

import (
	"go.uber.org/fx"

	"docagent/docstore"
)

// FXModule wires the embedding client into Fx and binds it to the
// core's Embedder port. The graph must supply an *embedding.Config.
var FXModule = fx.Module("embedding",
	fx.Provide(
		NewClient,
		func(c *Client) docstore.Embedder { return c },
	),
)
