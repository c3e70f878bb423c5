package main

import (
	"context"
	"os"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	_ "github.com/base23gmbh/proxmox-firewall-updater/adapters/drivers/firewall/proxmox"
	"github.com/base23gmbh/proxmox-firewall-updater/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pfwupdater",
		Short:   "Proxmox firewall updater CLI",
		Long:    "Keeps Proxmox cluster firewall IPSets and aliases in sync with DNS.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Configuration file (env PFW_CONFIG)")
	cmd.PersistentFlags().String("log-format", "", "Log format (human|text|json) (env PFW_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		bindFlagEnv(c.Flags())
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		format, _ := c.Flags().GetString("log-format")
		if format == "" {
			format = cfg.Logging.Format
		}
		l, err := logging.New(format, parseLevel(cfg.Logging.Level))
		if err != nil {
			return err
		}
		l = l.With("runId", uuid.NewString())
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdSync())
	return cmd
}

// bindFlagEnv fills unset flags from PFW_<NAME> environment variables,
// with dashes mapped to underscores. Flags given on the command line
// win over the environment.
func bindFlagEnv(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		env := "PFW_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if v, ok := os.LookupEnv(env); ok && v != "" {
			_ = f.Value.Set(v)
		}
	})
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Error(ctx, "failed", "error", err)
		os.Exit(1)
	}
}
