package bundleapi

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/sirupsen/logrus"
)

// Config describes one management session. The target is copied into the
// session and never changes afterwards.
type Config struct {
	Target   domain.Target
	Password string
	Logger   logrus.FieldLogger

	// Transport replaces the default transport. TLS and proxy settings of the
	// target are not applied to a replaced transport.
	Transport http.RoundTripper
}

// Session owns the HTTP client used to talk to one runtime.
type Session struct {
	target     domain.Target
	httpClient *http.Client
}

func NewSession(cfg Config) (*Session, error) {
	target := cfg.Target
	if target.TLS == "" {
		target.TLS = domain.TLSModeNone
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("invalid target: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("target", target.String())

	base := cfg.Transport
	if base == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if target.TLS == domain.TLSModeInsecure {
			logger.Warn("trusting any server certificate, TLS verification is disabled")
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // requested by the target configuration
		}
		if target.Proxy != nil {
			logger.WithField("proxy", target.Proxy.URL().Host).Info("using proxy")
			transport.Proxy = http.ProxyURL(target.Proxy.URL())
		}
		base = transport
	}

	client := &http.Client{
		Transport: &basicAuthTransport{
			host:     target.HostPort(),
			username: target.Username,
			password: cfg.Password,
			next:     base,
		},
		Timeout: target.Timeout,
	}

	return &Session{target: target, httpClient: client}, nil
}

func (s *Session) Target() domain.Target {
	return s.target
}

func (s *Session) HTTPClient() *http.Client {
	return s.httpClient
}

func (s *Session) Close() {
	s.httpClient.CloseIdleConnections()
}

// basicAuthTransport pre-seeds basic credentials for the configured host so
// requests never wait for an authentication challenge.
type basicAuthTransport struct {
	host     string
	username string
	password string
	next     http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.username == "" || req.URL.Host != t.host || req.Header.Get("Authorization") != "" {
		return t.next.RoundTrip(req)
	}

	authed := req.Clone(req.Context())
	authed.SetBasicAuth(t.username, t.password)
	return t.next.RoundTrip(authed)
}

func (t *basicAuthTransport) CloseIdleConnections() {
	if closer, ok := t.next.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}
