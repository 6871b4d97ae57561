// Package store persists purchase records through a PostgREST-style HTTP
// endpoint (such as Supabase) authenticated with a service key.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const purchasesTable = "purchases"

// Purchase is the row recorded once per finalized sale. Name is nullable in
// the table, so it is carried as a pointer.
type Purchase struct {
	Email           string  `json:"email"`
	Name            *string `json:"name"`
	PaymentIntentID string  `json:"payment_intent_id"`
	Product         string  `json:"product"`
	AccessToken     string  `json:"access_token"`
}

// Client issues inserts against the REST endpoint of the data store.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a store client for the given endpoint and service key.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// InsertPurchase inserts a purchase row. The request asks the store for no
// response body on success (Prefer: return=minimal).
func (c *Client) InsertPurchase(ctx context.Context, purchase *Purchase) error {
	payload, err := json.Marshal(purchase)
	if err != nil {
		return fmt.Errorf("could not encode purchase: %w", err)
	}
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, purchasesTable)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not insert purchase: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("store rejected purchase insert: status %d: %s", resp.StatusCode, body)
	}
	return nil
}
