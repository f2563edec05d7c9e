package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"docagent/logger"
)

// FXModule wires the metrics registry into Fx and manages the optional
// /metrics HTTP server through the application lifecycle.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the /metrics server when enabled and
// shuts it down gracefully on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, cfg Config, m *Metrics, log *logger.Logger) {
	if !cfg.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("metrics server failed", err, map[string]interface{}{
						"address": cfg.Address,
					})
				}
			}()
			log.Info("metrics server listening", nil, map[string]interface{}{
				"address": cfg.Address,
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
