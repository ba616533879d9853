package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// targetFlags selects the runtime a command talks to: a named target from the
// registry, ad hoc connection flags, or both, with flags taking precedence.
type targetFlags struct {
	name     string
	host     string
	port     int
	https    bool
	insecure bool
	user     string
	password string
	proxy    string
	timeout  time.Duration
}

func (f *targetFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.name, "target", envOrDefault("BD_TARGET", ""), "Named target from the registry")
	f.registerConnection(flags)
	flags.StringVar(&f.password, "password", "", "Password (default: BD_PASSWORD, stored password, or admin123)")
}

func (f *targetFlags) registerConnection(flags *pflag.FlagSet) {
	flags.StringVar(&f.host, "host", domain.DefaultHost, "Runtime host")
	flags.IntVar(&f.port, "port", domain.DefaultPort, "Runtime port")
	flags.BoolVar(&f.https, "https", false, "Use HTTPS with certificate verification")
	flags.BoolVar(&f.insecure, "insecure", false, "Use HTTPS and trust any server certificate")
	flags.StringVar(&f.user, "user", domain.DefaultUsername, "Username")
	flags.StringVar(&f.proxy, "proxy", "", "HTTP proxy as host:port")
	flags.DurationVar(&f.timeout, "timeout", 0, "Per-request timeout (0 disables)")
}

// resolve returns the target and password for cmd. Explicit flags override a
// named target field by field. The password comes from --password, then
// BD_PASSWORD, then the secret store, then the runtime default.
func (f *targetFlags) resolve(cmd *cobra.Command, app *app, fallbackName domain.TargetID) (domain.Target, string, error) {
	target := domain.DefaultTarget()
	password := domain.DefaultPassword

	name := domain.TargetID(strings.TrimSpace(f.name))
	if name == "" {
		name = fallbackName
	}
	if name != "" {
		stored, storedPassword, err := app.targets.ResolveTarget(cmd.Context(), name)
		if err != nil {
			return domain.Target{}, "", err
		}
		target = stored
		if storedPassword != "" {
			password = storedPassword
		}
	}

	if err := f.apply(cmd.Flags(), &target, name == ""); err != nil {
		return domain.Target{}, "", err
	}

	if value := envOrDefault("BD_PASSWORD", ""); value != "" {
		password = value
	}
	if cmd.Flags().Changed("password") {
		password = f.password
	}

	return target, password, nil
}

// apply copies connection flags onto target. With all set, every flag is
// applied; otherwise only flags given on the command line are.
func (f *targetFlags) apply(flags *pflag.FlagSet, target *domain.Target, all bool) error {
	changed := func(name string) bool {
		return all || flags.Changed(name)
	}

	if changed("host") {
		target.Host = f.host
	}
	if changed("port") {
		target.Port = f.port
	}
	if changed("user") {
		target.Username = f.user
	}
	if changed("timeout") {
		target.Timeout = f.timeout
	}
	if f.https && f.insecure {
		return fmt.Errorf("--https and --insecure are mutually exclusive")
	}
	switch {
	case f.insecure:
		target.TLS = domain.TLSModeInsecure
	case f.https:
		target.TLS = domain.TLSModeVerify
	case all:
		target.TLS = domain.TLSModeNone
	}
	if changed("proxy") && strings.TrimSpace(f.proxy) != "" {
		proxy, err := domain.ParseProxy(f.proxy)
		if err != nil {
			return err
		}
		target.Proxy = proxy
	}

	return nil
}
