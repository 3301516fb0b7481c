// Package httpcheck verifies that an HTTP endpoint answers GET with a 2xx status.
package httpcheck

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/emperdeon/healthcheck/pkg/check"
)

// DefaultURL is used when --http-url is not set. There is no environment
// fallback for this check.
const DefaultURL = "http://localhost:8080"

// maxDrain bounds how much of the response body is read before closing.
const maxDrain = 64 << 10

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package. Redirects are followed.
type RealHTTPClient struct {
	Timeout time.Duration // zero means no client-side timeout
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	client := &http.Client{
		Timeout: c.Timeout,
	}
	return client.Do(req)
}

// Check verifies HTTP endpoint health.
type Check struct {
	URL    string     // target URL (default: DefaultURL)
	Client HTTPClient // injected for testing
}

// Run executes the HTTP health check.
func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name: "Http",
	}

	target := c.URL
	if target == "" {
		target = DefaultURL
	}
	parsedURL, err := url.Parse(target)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return result.Failf("invalid URL: %s", target)
	}

	client := c.Client
	if client == nil {
		client = &RealHTTPClient{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return result.Failf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return result.Failf("request failed: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result.Failf("%s: status code %d", target, resp.StatusCode)
	}

	result.AddDetailf("status %d", resp.StatusCode)
	return result.Pass()
}
