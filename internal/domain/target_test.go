package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  Target
		wantErr string
	}{
		{
			name:   "defaults",
			target: DefaultTarget(),
		},
		{
			name:    "missing host",
			target:  Target{Port: 8080},
			wantErr: "host is required",
		},
		{
			name:    "port out of range",
			target:  Target{Host: "runtime", Port: 70000},
			wantErr: "port 70000 out of range",
		},
		{
			name:    "unsupported tls mode",
			target:  Target{Host: "runtime", Port: 8443, TLS: "maybe"},
			wantErr: "unsupported tls mode",
		},
		{
			name:    "proxy without host",
			target:  Target{Host: "runtime", Port: 8080, Proxy: &Proxy{Port: 3128}},
			wantErr: "proxy host is required",
		},
		{
			name:    "negative timeout",
			target:  Target{Host: "runtime", Port: 8080, Timeout: -time.Second},
			wantErr: "timeout must not be negative",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.target.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestTargetBaseURLFollowsTLSMode(t *testing.T) {
	t.Parallel()

	target := Target{Host: "runtime.internal", Port: 8443, TLS: TLSModeInsecure}
	assert.Equal(t, "https://runtime.internal:8443", target.BaseURL().String())

	target.TLS = TLSModeNone
	assert.Equal(t, "http://runtime.internal:8443", target.String())
}

func TestParseProxy(t *testing.T) {
	t.Parallel()

	proxy, err := ParseProxy("proxy.corp:3128")
	require.NoError(t, err)
	assert.Equal(t, &Proxy{Host: "proxy.corp", Port: 3128}, proxy)
	assert.Equal(t, "http://proxy.corp:3128", proxy.URL().String())

	proxy, err = ParseProxy("")
	require.NoError(t, err)
	assert.Nil(t, proxy)

	_, err = ParseProxy("proxy.corp")
	assert.Error(t, err)
}
