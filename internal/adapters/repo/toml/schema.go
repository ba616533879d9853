package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Targets []targetSchema `toml:"targets"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported targets schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type targetSchema struct {
	ID        string       `toml:"id"`
	Host      string       `toml:"host"`
	Port      int          `toml:"port"`
	TLS       string       `toml:"tls"`
	Username  string       `toml:"username"`
	SecretRef string       `toml:"secret_ref"`
	Timeout   string       `toml:"timeout,omitempty"`
	Proxy     *proxySchema `toml:"proxy,omitempty"`
}

type proxySchema struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}
