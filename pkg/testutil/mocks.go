// Package testutil holds test doubles shared by the check packages.
package testutil

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MockHTTPClient is a test double for HTTP clients.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
	Calls  int
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.Calls++
	return m.DoFunc(req)
}

// StatusClient returns a MockHTTPClient that always answers with status.
func StatusClient(status int) *MockHTTPClient {
	return &MockHTTPClient{DoFunc: func(*http.Request) (*http.Response, error) {
		return MockResponse(status, ""), nil
	}}
}

// MockResponse creates an http.Response with given status and body.
func MockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// WriteTempFile writes content to name inside a fresh temp directory and
// returns the path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
