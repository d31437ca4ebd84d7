package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"passvault/internal/buildinfo"
	"passvault/internal/cli"
	"passvault/internal/config"
	"passvault/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp loads configuration and wires the interactive app. Config flags
// (-d, -t, -c/-config) are parsed by the config package itself, so cobra is
// told to ignore flags it does not know.
func newApp() (*cli.App, error) {
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	return cli.NewApp(cfg, log)
}

var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "Single-user local credential vault",
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		UnknownFlags: true,
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the vault administrator",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.Init(context.Background())
	},
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Unlock the vault and start the interactive shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		buildinfo.PrintBuildData(os.Stdout)
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.Run(context.Background())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		buildinfo.PrintBuildData(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(initCmd, openCmd, versionCmd)
}
