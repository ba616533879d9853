package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:           "bd",
		Short:         "Bundle deploy CLI (bd): push bundles to a running module runtime",
		Long:          "bd (Bundle deploy CLI) force-installs bundle archives on a remote module runtime over its REST management API, starts them, deploys their declared dependencies and keeps a local deployment history.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error), default from log.level or info")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text|json)")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.configureLogging(cmd.ErrOrStderr(), logLevel, logFormat)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInstallCmd(app),
		newDeployCmd(app),
		newBundlesCmd(app),
		newTargetCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
