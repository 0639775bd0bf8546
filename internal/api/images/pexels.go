package images

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

const pexelsSearchURL = "https://api.pexels.com/v1/search"

// pexelsClient talks to the Pexels photo search API. The key is passed raw in
// the Authorization header per their docs.
type pexelsClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func (c *pexelsClient) configured() bool {
	return c.apiKey != "" && c.apiKey != "YOUR_PEXELS_API_KEY_HERE"
}

// search returns the large variant of the first hit, or "" when the query has
// no results. Errors are classified providerErrors for the retry policy.
func (c *pexelsClient) search(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", &providerError{provider: "pexels", err: err}
	}

	q := req.URL.Query()
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")
	// CJK queries need the zh-CN locale or Pexels returns junk.
	locale := "en-US"
	if containsCJK(query) {
		locale = "zh-CN"
	}
	q.Set("locale", locale)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &providerError{provider: "pexels", err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &providerError{provider: "pexels", status: resp.StatusCode}
	}

	var body struct {
		TotalResults int `json:"total_results"`
		Photos       []struct {
			Src struct {
				Original string `json:"original"`
				Large    string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &providerError{provider: "pexels", err: err}
	}

	if len(body.Photos) == 0 {
		return "", nil
	}
	if src := body.Photos[0].Src; src.Large != "" {
		return src.Large, nil
	}
	return body.Photos[0].Src.Original, nil
}
