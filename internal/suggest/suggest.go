// Package suggest wraps the external item-suggestion service. The service
// is an opaque collaborator: item names go in, suggested names come out,
// strictly best effort.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a remote suggestion call so a slow model can never
// delay checkout.
const DefaultTimeout = 3 * time.Second

// HTTPSuggester calls a remote text-generation endpoint.
type HTTPSuggester struct {
	url    string
	client *http.Client
}

func NewHTTPSuggester(url string) *HTTPSuggester {
	return &HTTPSuggester{
		url:    url,
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

type suggestRequest struct {
	Items []string `json:"items"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Suggest posts the cart item names and returns the suggested names. Every
// failure mode is an error; callers swallow it into an empty list.
func (s *HTTPSuggester) Suggest(ctx context.Context, itemNames []string) ([]string, error) {
	body, err := json.Marshal(suggestRequest{Items: itemNames})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned %d", res.StatusCode)
	}

	var payload suggestResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Suggestions, nil
}
