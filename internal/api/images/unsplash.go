package images

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

const unsplashSearchURL = "https://api.unsplash.com/search/photos"

// unsplashClient talks to the Unsplash search API using a Client-ID access
// key. It is the preferred provider when configured.
type unsplashClient struct {
	accessKey string
	baseURL   string
	http      *http.Client
}

func (c *unsplashClient) configured() bool {
	return c.accessKey != ""
}

// search returns the regular-size variant of the first hit (the largest
// reasonably-sized one), or "" when the query has no results.
func (c *unsplashClient) search(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return "", &providerError{provider: "unsplash", err: err}
	}

	q := req.URL.Query()
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")
	lang := "en"
	if containsCJK(query) {
		lang = "zh"
	}
	q.Set("lang", lang)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &providerError{provider: "unsplash", err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &providerError{provider: "unsplash", status: resp.StatusCode}
	}

	var body struct {
		Results []struct {
			URLs struct {
				Full    string `json:"full"`
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &providerError{provider: "unsplash", err: err}
	}

	if len(body.Results) == 0 {
		return "", nil
	}
	if urls := body.Results[0].URLs; urls.Regular != "" {
		return urls.Regular, nil
	}
	return body.Results[0].URLs.Full, nil
}
