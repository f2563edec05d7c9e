package vectorstore

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"docagent/logger"
)

// Client wraps the official Qdrant Go client and implements the core's
// Backend port.
type Client struct {
	api *qdrant.Client
	cfg *Config
	log *logger.Logger
}

// NewClient constructs a Qdrant client and validates connectivity via a
// health check. The SDK's gRPC connections are lightweight, so the
// check is the first real round trip and fails fast when the service is
// unreachable.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.APIKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to initialize client: %v", ErrBackend, err)
	}

	c := &Client{api: api, cfg: cfg, log: log}

	if err := c.healthCheck(); err != nil {
		return nil, err
	}

	log.Info("connected to qdrant", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     port,
	})
	return c, nil
}

// healthCheck verifies availability via the SDK's health endpoint.
func (c *Client) healthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("%w: health check failed: %v", ErrBackend, err)
	}

	c.log.Debug("qdrant health check passed", nil, map[string]interface{}{
		"title":   resp.GetTitle(),
		"version": resp.GetVersion(),
	})
	return nil
}

// API returns the underlying SDK client for low-level access.
func (c *Client) API() *qdrant.Client {
	return c.api
}

// Close shuts down the client's gRPC connection.
func (c *Client) Close() error {
	if c.api == nil {
		return nil
	}
	return c.api.Close()
}
