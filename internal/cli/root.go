package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"assistant-client/internal/app"
	"assistant-client/internal/infrastructure/config"
	"assistant-client/internal/infrastructure/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flags struct {
	ConfigPath string
	Mock       bool
	Verbose    bool
	JSON       bool
}

var (
	Flags flags
	// TheApp is set up by the root command before any subcommand runs.
	TheApp *app.App
)

var rootCmd = &cobra.Command{
	Use:           "assistant",
	Short:         "Smart-home assistant client with an offline cache",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(Flags.ConfigPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("mock") {
			cfg.Mock.Enabled = Flags.Mock
		}
		level := cfg.Log.Level
		if Flags.Verbose {
			level = "debug"
		}
		log, err := logging.New(level, cfg.Log.Format)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		TheApp, err = app.New(cfg, log)
		if err != nil {
			log.Error("failed to start", zap.Error(err))
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		// Finalizers also run when RunE fails, unlike PersistentPostRun.
		cobra.OnFinalize(func() {
			cancel()
			if err := TheApp.Close(); err != nil {
				log.Warn("failed to close", zap.Error(err))
			}
		})
		cmd.SetContext(ctx)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&Flags.ConfigPath, "config", "c", "", "path to a YAML config `file`")
	rootCmd.PersistentFlags().BoolVar(&Flags.Mock, "mock", false, "answer requests from built-in fixtures instead of the server")
	rootCmd.PersistentFlags().BoolVarP(&Flags.Verbose, "verbose", "v", false, "debug output")
	rootCmd.PersistentFlags().BoolVarP(&Flags.JSON, "json", "j", false, "output in json format")

	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(thingsCmd)
	rootCmd.AddCommand(actionCmd)
	rootCmd.AddCommand(serveCmd)
}

func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
