// Package main is the entry point for the slackkit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flemzord/slackkit/internal/config"
	"github.com/flemzord/slackkit/internal/core"
	"github.com/flemzord/slackkit/pkg/app"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "slackkit",
		Short:         "Build Slack messages and deliver them over webhooks or the Web API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindEnv("log_level", "SLACKKIT_LOG_LEVEL")

	root.AddCommand(versionCmd(), startCmd(v), sendCmd(v), renderCmd(v), configCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and compiled modules",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "slackkit %s (commit: %s, built: %s)\n", version, commit, date)
			mods := core.GetModules()
			if len(mods) == 0 {
				fmt.Fprintln(out, "\nNo compiled modules.")
				return
			}
			fmt.Fprintln(out, "\nCompiled modules:")
			for _, mod := range mods {
				fmt.Fprintf(out, "  %s\n", mod.ID)
			}
		},
	}
}

func startCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start slackkit with all configured modules",
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.Run(app.RunParams{
				ConfigPath: v.GetString("config"),
				Version:    version,
				Commit:     commit,
				Date:       date,
				LogLevel:   v.GetString("log_level"),
			})
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to configuration file")
	_ = v.BindPFlag("config", cmd.Flags().Lookup("config"))
	_ = v.BindEnv("config", "SLACKKIT_CONFIG")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check [path]",
		Short: "Validate configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				resolved, err := app.ResolveConfigPath()
				if err != nil {
					return err
				}
				path = resolved
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			rt, err := app.NewRuntime(cmd.ErrOrStderr(), "warn", cfg.Log.Format)
			if err != nil {
				return err
			}
			appCtx := rt.AppContext()
			appCtx.ConfigPath = path

			application := core.NewApp(appCtx.WithModuleConfigs(cfg.Modules))
			ids := config.Resolve(cfg)
			if err := application.LoadModules(ids); err != nil {
				return err
			}
			defer application.Stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration OK (%d modules)\n", len(ids))
			for _, id := range ids {
				fmt.Fprintf(out, "  %s\n", id)
			}
			return nil
		},
	})
	return cmd
}
