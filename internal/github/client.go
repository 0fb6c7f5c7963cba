// Package github is the outbound boundary to the GitHub REST API. The
// client decodes each response into a weakly-typed value and immediately
// maps only the fields a caller needs into a typed record; the untyped
// shape never leaves this package.
package github

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/dejo1307/ghmcp/internal/config"
	"github.com/dejo1307/ghmcp/internal/shape"
)

// Client issues read-only GitHub API calls with the process-wide
// credentials, TLS trust, and timeout from config. It is safe for
// concurrent use; all state is set at construction.
type Client struct {
	base         string
	token        string
	userAgent    string
	errBodyChars int
	httpClient   *http.Client
}

// NewClient builds a client from cfg. The TLS trust configuration is
// applied once here: a custom CA bundle when ca_cert_file is set, or no
// verification at all when ssl_verify is false.
func NewClient(cfg *config.Config) (*Client, error) {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}

	if !cfg.SSLVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	} else if cfg.CACertFile != "" {
		pem, err := os.ReadFile(cfg.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("reading CA bundle %s: %w", cfg.CACertFile, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.CACertFile)
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	}

	return &Client{
		base:         strings.TrimRight(cfg.APIBase, "/"),
		token:        cfg.Token,
		userAgent:    cfg.UserAgent,
		errBodyChars: cfg.Limits.ErrorBodyChars,
		httpClient: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
			Transport: transport,
		},
	}, nil
}

// APIError is a non-success status from the API, carrying a bounded
// excerpt of the response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error %d: %s", e.StatusCode, e.Body)
}

// get performs one GET against the API and decodes the JSON body into a
// weakly-typed value. Status >= 400 becomes an *APIError; transport
// failures (timeout, DNS, TLS) are returned wrapped.
func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("github read %s: %w", path, err)
	}

	if resp.StatusCode >= 400 {
		excerpt, _ := shape.TruncateText(string(body), c.errBodyChars)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt}
	}

	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("github decode %s: %w", path, err)
	}
	return out, nil
}

// decode maps a weakly-typed API value onto a typed record, matching
// keys against json tags and tolerating the usual JSON number-vs-int
// mismatches.
func decode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
