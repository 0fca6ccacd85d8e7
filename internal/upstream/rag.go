// Package upstream holds thin HTTP clients for the hosted services this
// backend delegates to: the AutoRAG search service and the Resend mail API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/motaiot/siteapi/internal/config"
)

// RAGClient asks the retrieval-augmented search index for streamed answers.
type RAGClient struct {
	httpClient *http.Client
	baseURL    string
	accountID  string
	index      string
	apiToken   string
}

// NewRAGClient creates a client from configuration.
func NewRAGClient(cfg config.Config) *RAGClient {
	return &RAGClient{
		httpClient: &http.Client{
			Timeout: 5 * time.Minute, // long timeout for streaming
		},
		baseURL:   cfg.RAGBaseURL,
		accountID: cfg.RAGAccountID,
		index:     cfg.RAGIndex,
		apiToken:  cfg.RAGAPIToken,
	}
}

type aiSearchRequest struct {
	Query        string `json:"query"`
	RewriteQuery bool   `json:"rewrite_query"`
	Stream       bool   `json:"stream"`
}

// AISearch requests a streamed answer for query. The caller owns the response
// body. Non-2xx responses are drained and surfaced as an error carrying the
// upstream body.
func (c *RAGClient) AISearch(ctx context.Context, query string) (*http.Response, error) {
	url := fmt.Sprintf("%s/accounts/%s/autorag/rags/%s/ai-search", c.baseURL, c.accountID, c.index)
	payload, err := json.Marshal(aiSearchRequest{Query: query, RewriteQuery: true, Stream: true})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("ai-search returned %d: %s", resp.StatusCode, body)
	}
	return resp, nil
}
