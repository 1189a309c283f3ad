package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"heroes-service/internal/config"
)

const (
	appName    = "heroes-service"
	appVersion = "dev"
)

var envFiles []string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Serve the hero roster and progression API",
		Version:           appVersion,
		SilenceUsage:      true,
		PersistentPreRunE: preRun,
		RunE:              runServe,
	}
	root.PersistentFlags().StringSliceVarP(&envFiles, "envfile", "e", nil, "env files")
	root.AddCommand(serveCommand())
	return root
}

func preRun(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		return fmt.Errorf("read env files: %w", err)
	}
	return nil
}

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
