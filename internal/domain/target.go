package domain

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultHost     = "localhost"
	DefaultPort     = 8080
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)

type TargetID string

type TLSMode string

const (
	TLSModeNone TLSMode = "none"

	// TLSModeVerify uses HTTPS with standard certificate validation.
	TLSModeVerify TLSMode = "verify"

	// TLSModeInsecure uses HTTPS and trusts any certificate.
	TLSModeInsecure TLSMode = "insecure"
)

func (m TLSMode) Valid() bool {
	switch m {
	case TLSModeNone, TLSModeVerify, TLSModeInsecure:
		return true
	default:
		return false
	}
}

func (m TLSMode) Scheme() string {
	if m == TLSModeVerify || m == TLSModeInsecure {
		return "https"
	}
	return "http"
}

type Proxy struct {
	Host string
	Port int
}

func (p Proxy) URL() *url.URL {
	return &url.URL{Scheme: "http", Host: net.JoinHostPort(p.Host, strconv.Itoa(p.Port))}
}

// Target is the destination of a deployment. A client built from a Target
// keeps its own copy.
type Target struct {
	ID        TargetID
	Host      string
	Port      int
	TLS       TLSMode
	Username  string
	SecretRef string
	Proxy     *Proxy
	Timeout   time.Duration
}

func DefaultTarget() Target {
	return Target{
		Host:     DefaultHost,
		Port:     DefaultPort,
		TLS:      TLSModeNone,
		Username: DefaultUsername,
	}
}

func (t Target) Validate() error {
	if strings.TrimSpace(t.Host) == "" {
		return fmt.Errorf("host is required")
	}
	if t.Port <= 0 || t.Port > 65535 {
		return fmt.Errorf("port %d out of range", t.Port)
	}
	if t.TLS != "" && !t.TLS.Valid() {
		return fmt.Errorf("unsupported tls mode %q", t.TLS)
	}
	if t.Proxy != nil {
		if strings.TrimSpace(t.Proxy.Host) == "" {
			return fmt.Errorf("proxy host is required")
		}
		if t.Proxy.Port <= 0 || t.Proxy.Port > 65535 {
			return fmt.Errorf("proxy port %d out of range", t.Proxy.Port)
		}
	}
	if t.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	return nil
}

func (t Target) HostPort() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

func (t Target) BaseURL() *url.URL {
	return &url.URL{Scheme: t.TLS.Scheme(), Host: t.HostPort()}
}

func (t Target) String() string {
	return t.BaseURL().String()
}

// ParseProxy accepts "host:port".
func ParseProxy(raw string) (*Proxy, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	host, portRaw, err := net.SplitHostPort(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse proxy %q: %w", raw, err)
	}
	port, err := strconv.Atoi(portRaw)
	if err != nil {
		return nil, fmt.Errorf("parse proxy port %q: %w", portRaw, err)
	}

	return &Proxy{Host: host, Port: port}, nil
}
