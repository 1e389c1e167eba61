package gbif

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// RequestError reports a failed HTTP exchange with the GBIF API or an image
// host: transport failures, non-2xx statuses, and undecodable API bodies.
type RequestError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request %s failed: unexpected status %d", e.URL, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client is the GBIF HTTP surface the snapshot service depends on.
type Client interface {
	// Search returns the first page of occurrence records for scientificName
	// that carry still images. The media filtering is done server-side.
	Search(ctx context.Context, scientificName string, limit int) ([]Occurrence, error)
	// FetchImage returns the response body for imageURL after a status
	// check. The caller owns the stream and must close it.
	FetchImage(ctx context.Context, imageURL string) (io.ReadCloser, error)
}

type httpClient struct {
	searchURL string
	http      *http.Client
}

func NewClient(searchURL string, c *http.Client) Client {
	return &httpClient{
		searchURL: searchURL,
		http:      c,
	}
}

func (c *httpClient) Search(ctx context.Context, scientificName string, limit int) ([]Occurrence, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search URL %q: %w", c.searchURL, err)
	}
	q := u.Query()
	q.Set("scientificName", scientificName)
	q.Set("mediaType", "StillImage")
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{URL: u.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{URL: u.String(), StatusCode: resp.StatusCode}
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &RequestError{URL: u.String(), Err: err}
	}
	return out.Results, nil
}

func (c *httpClient) FetchImage(ctx context.Context, imageURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{URL: imageURL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &RequestError{URL: imageURL, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}
