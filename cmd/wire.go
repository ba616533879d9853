package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/bundle-deploy-cli/internal/adapters/archive"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/bundleapi"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/history"
	tomlrepo "github.com/bnema/bundle-deploy-cli/internal/adapters/repo/toml"
	"github.com/bnema/bundle-deploy-cli/internal/adapters/resolver"
	chainstore "github.com/bnema/bundle-deploy-cli/internal/adapters/secrets/chain"
	"github.com/bnema/bundle-deploy-cli/internal/application"
	"github.com/bnema/bundle-deploy-cli/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configDirName = ".bundle-deploy"

	historyPathKey    = "history.path"
	repositoryPathKey = "repository.path"
	secretsPathKey    = "secrets.path"
	logLevelKey       = "log.level"
)

type app struct {
	config      *viper.Viper
	logger      *logrus.Logger
	targets     *application.TargetService
	inspector   archive.ManifestInspector
	resolver    resolver.LocalRepository
	historyPath string
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	repositoryRoot, err := resolver.DefaultRoot()
	if err != nil {
		return nil, fmt.Errorf("resolve artifact repository: %w", err)
	}

	cfg := viper.New()
	cfg.SetDefault(historyPathKey, filepath.Join(configDir, "history.db"))
	cfg.SetDefault(secretsPathKey, filepath.Join(configDir, "secrets"))
	cfg.SetDefault(repositoryPathKey, repositoryRoot)
	cfg.SetDefault(logLevelKey, logrus.InfoLevel.String())

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire target repository: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	secretStore, err := chainstore.NewPassFirstWithFileFallback(envOrDefault("BD_SECRETS_PATH", cfg.GetString(secretsPathKey)), logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		config:      cfg,
		logger:      logger,
		targets:     application.NewTargetService(repo, secretStore),
		inspector:   archive.ManifestInspector{},
		resolver:    resolver.LocalRepository{Root: envOrDefault("BD_REPOSITORY_PATH", cfg.GetString(repositoryPathKey))},
		historyPath: envOrDefault("BD_HISTORY_PATH", cfg.GetString(historyPathKey)),
	}, nil
}

// configureLogging applies --log-level and --log-format. An empty level falls
// back to BD_LOG_LEVEL, then to log.level from the config file.
func (a *app) configureLogging(output io.Writer, level string, format string) error {
	if level == "" {
		level = envOrDefault("BD_LOG_LEVEL", a.config.GetString(logLevelKey))
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}

	switch strings.ToLower(format) {
	case "", "text":
		a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		a.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format %q", format)
	}

	a.logger.SetLevel(parsed)
	a.logger.SetOutput(output)
	return nil
}

// newClient builds a management client for the resolved target. The caller
// closes it.
func (a *app) newClient(target domain.Target, password string) (*bundleapi.Client, error) {
	client, err := bundleapi.FromTarget(target, password).WithLogger(a.logger).Build()
	if err != nil {
		return nil, fmt.Errorf("build client for %s: %w", target, err)
	}
	return client, nil
}

// openLedger opens the deployment history. History is best effort: a ledger
// that cannot be opened is logged and deployments go on without it.
func (a *app) openLedger() (*history.Ledger, func()) {
	ledger, err := history.Open(a.historyPath)
	if err != nil {
		a.logger.WithError(err).WithField("path", a.historyPath).Warn("deployment history unavailable")
		return nil, func() {}
	}

	return ledger, func() {
		if err := ledger.Close(); err != nil {
			a.logger.WithError(err).Warn("close deployment history")
		}
	}
}

func (a *app) newDeployer(client *bundleapi.Client, ledger *history.Ledger) *application.Deployer {
	opts := []application.DeployerOption{
		application.WithLogger(a.logger),
		application.WithTarget(client.ConfiguredTarget()),
	}
	if ledger != nil {
		opts = append(opts, application.WithLedger(ledger))
	}
	return application.NewDeployer(client, a.inspector, a.resolver, opts...)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
