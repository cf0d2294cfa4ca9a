// Package gitapi provides a minimal client for the GitHub commit
// comparison API.
package gitapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.github.com"

// Client is a minimal HTTP client for the GitHub compare endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a new client. Empty baseURL selects api.github.com; a nil
// httpClient gets a default with a 15s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

// Commit is a normalized view of one commit in a comparison.
type Commit struct {
	SHA     string
	Message string
	Author  string
	Date    time.Time
}

type compareResponse struct {
	Commits []struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
			Author  struct {
				Name string    `json:"name"`
				Date time.Time `json:"date"`
			} `json:"author"`
		} `json:"commit"`
	} `json:"commits"`
}

// Compare fetches the commits between two refs of owner/repo. A
// non-empty token is attached verbatim as a bearer credential.
func (c *Client) Compare(ctx context.Context, owner, repo, base, head, token string) ([]Commit, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/compare/%s...%s",
		c.BaseURL, url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(base), url.PathEscape(head))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("github compare status %d for %s/%s %s...%s", resp.StatusCode, owner, repo, base, head)
	}

	var body compareResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode compare response: %w", err)
	}

	out := make([]Commit, 0, len(body.Commits))
	for _, cm := range body.Commits {
		out = append(out, Commit{
			SHA:     cm.SHA,
			Message: cm.Commit.Message,
			Author:  cm.Commit.Author.Name,
			Date:    cm.Commit.Author.Date,
		})
	}
	return out, nil
}
