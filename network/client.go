// Package network holds the HTTP client used for the few remote calls tintscan makes.
package network

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tintscan/tintscan/constant"
)

// Client is shared by every outgoing request. Calls are short and rare, so the pool stays small.
var Client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 5 * time.Second
	return t
}

// UserAgent identifies requests made by this build.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", constant.Tintscan, constant.Version)
}

// Get performs a GET request with the tintscan user agent and the given accept header.
// A non-200 response is returned as an error and its body is closed.
func Get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", UserAgent())
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := Client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	return resp, nil
}
