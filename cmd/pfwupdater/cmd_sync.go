package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/base23gmbh/proxmox-firewall-updater/domain/model"
	"github.com/base23gmbh/proxmox-firewall-updater/internal/logging"
	syncuc "github.com/base23gmbh/proxmox-firewall-updater/usecase/sync"
)

func newCmdSync() *cobra.Command {
	var ipsetsOnly bool
	var aliasesOnly bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:                "sync",
		Short:              "Reconcile firewall IPSets and aliases against DNS",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ipsetsOnly && aliasesOnly {
				return fmt.Errorf("--ipsets and --aliases cannot be specified together")
			}

			uc, err := buildSyncUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
			defer cancel()
			logger := logging.FromContext(ctx)

			var kinds []model.ObjectKind
			if ipsetsOnly {
				kinds = []model.ObjectKind{model.KindSet}
			}
			if aliasesOnly {
				kinds = []model.ObjectKind{model.KindAlias}
			}

			logger.Info(ctx, "sync start", "dry_run", dryRun)

			out, err := uc.Sync(ctx, &syncuc.SyncInput{Kinds: kinds, DryRun: dryRun})
			if out != nil {
				for _, r := range out.Results {
					switch r.Action {
					case syncuc.ActionPlanned:
						logger.Info(ctx, "would update object", "name", r.Name, "kind", r.Kind,
							"added", strings.Join(r.Added, ","), "removed", strings.Join(r.Removed, ","))
					case syncuc.ActionUpdated:
						logger.Info(ctx, "updated object", "name", r.Name, "kind", r.Kind,
							"added", strings.Join(r.Added, ","), "removed", strings.Join(r.Removed, ","))
					case syncuc.ActionUnchanged:
						logger.Debug(ctx, "object unchanged", "name", r.Name, "kind", r.Kind)
					case syncuc.ActionSkipped:
						logger.Warn(ctx, "skipped object", "name", r.Name, "kind", r.Kind, "message", r.Message)
					case syncuc.ActionFailed:
						logger.Error(ctx, "failed to update object", "name", r.Name, "kind", r.Kind, "error", r.Message)
					}
				}
			}
			if err != nil {
				return fmt.Errorf("failed to sync: %w", err)
			}

			logger.Info(ctx, "sync complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&ipsetsOnly, "ipsets", false, "Sync IPSets only")
	cmd.Flags().BoolVar(&aliasesOnly, "aliases", false, "Sync aliases only")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be changed without applying")

	return cmd
}
