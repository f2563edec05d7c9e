package embedding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// inferenceProvider talks to an OpenAI-compatible /v1/embeddings
// endpoint.
type inferenceProvider struct {
	http      *resty.Client
	model     string
	dimension int
}

func newInferenceProvider(cfg *Config) (*inferenceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("embedding: missing endpoint")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(time.Duration(cfg.HTTPTimeoutS)*time.Second).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &inferenceProvider{
		http:      client,
		model:     cfg.Model,
		dimension: cfg.Dimension,
	}, nil
}

// embeddingsRequest is the OpenAI-compatible request body.
type embeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embeddingsResponse is the subset of the response the adapter reads.
// Index is used to restore input order: providers are allowed to return
// data entries out of order.
type embeddingsResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// CreateEmbeddings implements Provider. Any transport failure, non-2xx
// status or malformed body is reported as an ErrProvider-wrapped error;
// there is no retry.
func (p *inferenceProvider) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embedding: no texts provided")
	}

	var parsed embeddingsResponse
	resp, err := p.http.R().
		SetContext(ctx).
		SetBody(embeddingsRequest{Model: p.model, Input: texts}).
		SetResult(&parsed).
		Post("/v1/embeddings")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: http %d from %s", ErrProvider, resp.StatusCode(), resp.Request.URL)
	}

	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d texts", ErrProvider, len(parsed.Data), len(texts))
	}

	out := make([][]float32, len(texts))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("%w: embedding index %d out of range", ErrProvider, d.Index)
		}
		if len(d.Embedding) != p.dimension {
			return nil, fmt.Errorf("%w: embedding dimension %d, expected %d", ErrProvider, len(d.Embedding), p.dimension)
		}
		out[d.Index] = d.Embedding
	}
	for i, v := range out {
		if v == nil {
			return nil, fmt.Errorf("%w: missing embedding for input %d", ErrProvider, i)
		}
	}

	return out, nil
}
