package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func Run() error {
	var logLevel string
	var logFormat string
	// replaced once the flags are parsed
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	rootCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Status dashboard backend",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			*logger = *buildLogger(logLevel, logFormat)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to the YAML configuration file")
	err := rootCmd.MarkPersistentFlagRequired("config")
	if err != nil {
		return err
	}
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "info", "Logger log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Logger logs format (text, json)")

	serverCmd := buildServerCmd(logger)
	rootCmd.AddCommand(serverCmd)
	return rootCmd.Execute()
}
