package bundleapi

import (
	"time"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/sirupsen/logrus"
)

// Builder assembles a Client from optional settings. A zero Builder is not
// usable; start from NewBuilder.
type Builder struct {
	target   domain.Target
	password string
	logger   logrus.FieldLogger
}

// NewBuilder starts from localhost:8080 over plain HTTP with the runtime's
// default admin credentials.
func NewBuilder() *Builder {
	return &Builder{
		target:   domain.DefaultTarget(),
		password: domain.DefaultPassword,
	}
}

// FromTarget starts from an existing target definition.
func FromTarget(target domain.Target, password string) *Builder {
	return &Builder{target: target, password: password}
}

func (b *Builder) WithHost(host string) *Builder {
	b.target.Host = host
	return b
}

func (b *Builder) WithPort(port int) *Builder {
	b.target.Port = port
	return b
}

func (b *Builder) EnableHTTPS() *Builder {
	b.target.TLS = domain.TLSModeVerify
	return b
}

// EnableInsecureHTTPS switches to HTTPS and accepts any server certificate,
// including self-signed ones.
func (b *Builder) EnableInsecureHTTPS() *Builder {
	b.target.TLS = domain.TLSModeInsecure
	return b
}

func (b *Builder) WithProxy(host string, port int) *Builder {
	b.target.Proxy = &domain.Proxy{Host: host, Port: port}
	return b
}

func (b *Builder) WithCredentials(username string, password string) *Builder {
	b.target.Username = username
	b.password = password
	return b
}

func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.target.Timeout = timeout
	return b
}

func (b *Builder) WithLogger(logger logrus.FieldLogger) *Builder {
	b.logger = logger
	return b
}

func (b *Builder) Target() domain.Target {
	return b.target
}

func (b *Builder) Build() (*Client, error) {
	session, err := NewSession(Config{
		Target:   b.target,
		Password: b.password,
		Logger:   b.logger,
	})
	if err != nil {
		return nil, err
	}
	return NewClient(session), nil
}
