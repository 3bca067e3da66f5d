// Package pulse implements the client for the Pulse control-plane API,
// the collaborator that serves raw fleet topology.
//
// The client covers exactly one concern: fetching the `{nodes, edges}`
// document the layout engine consumes. Authentication, live status push,
// and every CRUD surface of the control plane live in other clients and
// are out of scope here.
//
//	client, err := pulse.New(pulse.Config{
//	    BaseURL: "https://pulse.example.com",
//	    Token:   os.Getenv("PULSE_TOKEN"),
//	})
//	t, err := client.FetchTopology(ctx)
//
// Transient failures (network errors, 5xx) are retried with exponential
// backoff; 4xx responses fail immediately with a structured error code.
package pulse

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/den3110/pulsemap/pkg/errors"
	"github.com/den3110/pulsemap/pkg/httputil"
	"github.com/den3110/pulsemap/pkg/observability"
	"github.com/den3110/pulsemap/pkg/topology"
)

// topologyPath is the control-plane endpoint serving the fleet graph.
const topologyPath = "/api/topology"

// defaultTimeout bounds a single fetch attempt, not the whole retry loop.
const defaultTimeout = 30 * time.Second

// Config holds connection settings for the Pulse API.
type Config struct {
	// BaseURL is the control-plane root, e.g. "https://pulse.example.com".
	BaseURL string

	// Token is the bearer token attached to every request. Optional for
	// control planes behind network-level auth.
	Token string

	// HTTPClient overrides the default client (mainly for tests).
	HTTPClient *http.Client

	// Retries is the number of attempts for transient failures.
	// Zero means the default of 3.
	Retries int
}

// Client fetches fleet topology from the Pulse control plane.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	retries int
}

// New validates the configuration and creates a client.
func New(cfg Config) (*Client, error) {
	if err := pkgerrors.ValidateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	retries := cfg.Retries
	if retries <= 0 {
		retries = 3
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    httpClient,
		retries: retries,
	}, nil
}

// BaseURL returns the configured control-plane root.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchTopology fetches the raw fleet graph.
//
// Network failures and 5xx responses are retried; 401/403/404/429 and
// other 4xx responses return immediately with a structured error.
func (c *Client) FetchTopology(ctx context.Context) (topology.Topology, error) {
	var t topology.Topology
	err := httputil.Retry(ctx, c.retries, time.Second, func() error {
		fetched, err := c.fetchOnce(ctx)
		if err != nil {
			return err
		}
		t = fetched
		return nil
	})
	if err != nil {
		return topology.Topology{}, err
	}
	return t, nil
}

func (c *Client) fetchOnce(ctx context.Context) (topology.Topology, error) {
	endpoint := c.baseURL + topologyPath
	host := hostOf(endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return topology.Topology{}, pkgerrors.Wrap(pkgerrors.ErrCodeInternal, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	observability.HTTP().OnRequest(ctx, http.MethodGet, host, topologyPath)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, host, topologyPath, err)
		return topology.Topology{}, httputil.Retryable(
			pkgerrors.Wrap(pkgerrors.ErrCodeNetwork, err, "fetch topology from %s", endpoint))
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, host, topologyPath, resp.StatusCode, time.Since(start))

	if err := statusError(resp); err != nil {
		return topology.Topology{}, err
	}

	t, err := topology.ReadTopology(resp.Body)
	if err != nil {
		return topology.Topology{}, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidTopology, err, "decode topology from %s", endpoint)
	}
	return t, nil
}

// statusError maps a non-2xx response to an error. 5xx is retryable;
// everything else fails fast.
func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return pkgerrors.New(pkgerrors.ErrCodeUnauthorized, "control plane rejected token")
	case resp.StatusCode == http.StatusForbidden:
		return pkgerrors.New(pkgerrors.ErrCodeForbidden, "access to topology denied")
	case resp.StatusCode == http.StatusNotFound:
		return pkgerrors.New(pkgerrors.ErrCodeNotFound, "topology endpoint not found")
	case resp.StatusCode == http.StatusTooManyRequests:
		return pkgerrors.New(pkgerrors.ErrCodeRateLimited, "control plane rate limited the request")
	case resp.StatusCode >= 500:
		// Drain so the connection can be reused across retries.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return httputil.Retryable(
			pkgerrors.New(pkgerrors.ErrCodeNetwork, "control plane returned %d", resp.StatusCode))
	default:
		return pkgerrors.New(pkgerrors.ErrCodeInternal, "unexpected status %d", resp.StatusCode)
	}
}

func hostOf(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	return u.Host
}
