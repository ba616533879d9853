package bundleapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/bnema/bundle-deploy-cli/internal/ports"
)

const (
	bundlesPath         = "/framework/bundles"
	bundlePathPrefix    = "/framework/bundle/"
	representationsPath = "/framework/bundles/representations"

	bundleContentType = "application/vnd.osgi.bundle"
	jsonContentType   = "application/json"

	// OverrideHeader asks the runtime to replace a bundle that has the same
	// symbolic name as the upload.
	OverrideHeader = "X-Bundle-Override"

	maxResponseBytes = 1 << 20
)

// Client talks to the bundle management API of one runtime.
type Client struct {
	session   *Session
	baseURL   *url.URL
	closeOnce sync.Once
}

var _ ports.BundleManager = (*Client)(nil)

func NewClient(session *Session) *Client {
	return &Client{
		session: session,
		baseURL: session.Target().BaseURL(),
	}
}

// ConfiguredTarget returns the base URL the client sends requests to.
func (c *Client) ConfiguredTarget() string {
	return c.baseURL.String()
}

func (c *Client) Install(ctx context.Context, archive domain.Archive, opts ports.InstallOptions) (string, error) {
	const op = "install bundle"

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL.JoinPath(bundlesPath), bytes.NewReader(archive.Data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", bundleContentType)
	req.Header.Set("Content-Location", archive.Name)
	if opts.Override {
		req.Header.Set(OverrideHeader, "true")
	}

	body, err := c.call(op, req, http.StatusOK)
	if err != nil {
		return "", err
	}

	location := strings.TrimSpace(string(body))
	if location == "" {
		return "", &domain.DecodingError{Op: op, Err: errors.New("empty bundle location")}
	}
	return location, nil
}

func (c *Client) Uninstall(ctx context.Context, id domain.BundleID) error {
	const op = "uninstall bundle"

	endpoint := c.baseURL.JoinPath(bundlePathPrefix + strconv.FormatInt(int64(id), 10))
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}

	_, err = c.call(op, req, http.StatusOK)
	return err
}

// Activate moves the bundle at location to ACTIVE. location is the value
// returned by Install: a path on the runtime or an absolute URL.
func (c *Client) Activate(ctx context.Context, location string) error {
	const op = "activate bundle"

	payload, err := encodeStatus(domain.ActivateRequest)
	if err != nil {
		return &domain.EncodingError{Op: op, Err: err}
	}

	endpoint, err := c.stateURL(location)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", jsonContentType)

	_, err = c.call(op, req, http.StatusOK)
	return err
}

func (c *Client) ListInstalled(ctx context.Context) ([]domain.BundleRecord, error) {
	const op = "list bundles"

	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL.JoinPath(representationsPath), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", jsonContentType)

	body, err := c.call(op, req, http.StatusOK)
	if err != nil {
		return nil, err
	}

	records, err := decodeRepresentations(body)
	if err != nil {
		return nil, &domain.DecodingError{Op: op, Err: err}
	}
	return records, nil
}

// Close releases the connections held by the session. Calling it more than
// once is a no-op.
func (c *Client) Close() error {
	c.closeOnce.Do(c.session.Close)
	return nil
}

func (c *Client) stateURL(location string) (*url.URL, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, errors.New("bundle location is required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse bundle location %q: %w", location, err)
	}
	if parsed.IsAbs() {
		return parsed.JoinPath("state"), nil
	}
	return c.baseURL.JoinPath(parsed.Path, "state"), nil
}

func (c *Client) newRequest(ctx context.Context, method string, endpoint *url.URL, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", strings.ToLower(method), err)
	}
	return req, nil
}

// call performs one exchange and accepts exactly one status code.
func (c *Client) call(op string, req *http.Request, expected int) ([]byte, error) {
	resp, err := c.session.HTTPClient().Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode != expected {
		return nil, &domain.RemoteCallError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
			Body:       string(body),
		}
	}
	if readErr != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("read response: %w", readErr)}
	}

	return body, nil
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		return http.StatusText(resp.StatusCode)
	}
	return reason
}
