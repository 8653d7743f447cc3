// Package analyzer provides the HTTP client for the remote pipeline
// analysis service.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/core/graph"
	"github.com/cpprhtn/Polaris/internal/infrastructure/ctxlog"
)

const defaultTimeout = 10 * time.Second

// Client posts pipeline snapshots to the analyzer's /pipelines/parse
// endpoint. It is safe for concurrent use; overlapping submissions each
// complete independently.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpc = c }
}

// NewClient creates a client for the analyzer at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse submits the full snapshot and returns the analyzer's verdict.
func (c *Client) Parse(ctx context.Context, snap graph.Snapshot) (*dto.ParseResult, error) {
	log := ctxlog.FromContext(ctx)

	body, err := json.Marshal(dto.ParseRequest{Nodes: snap.Nodes, Edges: snap.Edges})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/pipelines/parse", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("posting pipeline snapshot",
		"url", req.URL.String(), "bytes", len(body))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer returned status %d", resp.StatusCode)
	}

	var result dto.ParseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode analyzer response: %w", err)
	}

	log.Debug("analyzer verdict",
		"nodes", result.NumNodes, "edges", result.NumEdges, "is_dag", result.IsDAG)
	return &result, nil
}
