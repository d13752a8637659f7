package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"photoaudit/internal/audit"
	"photoaudit/internal/catalog"
	"photoaudit/internal/logging"
	"photoaudit/internal/preflight"
)

func newAuditCommand(cmdCtx *commandContext) *cobra.Command {
	var setFlag string
	var fixSingles bool
	var brief bool
	var noDeep bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Reconcile publish links against the Flickr account",
		Long: `Audit fetches the full Flickr photo inventory, walks every published
set in the catalog, and classifies each photo: still linked, matched by
capture timestamp, matched by file name, matched by XMP document ID, or
orphaned. With --fix-singles, unambiguous matches are written back to the
catalog so Lightroom republishes against the surviving Flickr photo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			ctx := logging.WithRunID(cmd.Context(), uuid.NewString())
			log := logging.WithContext(ctx, logging.NewComponentLogger(logger, "audit"))
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			results := preflight.RunAll(ctx, cfg, logger)
			if !preflight.AllPassed(results) {
				for _, line := range renderCheckLines(results, colorize) {
					fmt.Fprintln(out, line)
				}
				return errors.New("preflight checks failed; run `photoaudit doctor` for details")
			}

			client, err := cmdCtx.flickrClient()
			if err != nil {
				return err
			}
			log.Info("fetching account inventory")
			remotes, err := client.AllPhotos(ctx)
			if err != nil {
				return fmt.Errorf("fetch Flickr inventory: %w", err)
			}
			log.Info("fetched account inventory", logging.Int("photos", len(remotes)))

			deepScan := cfg.Audit.DeepScan && !noDeep
			brief := brief || cfg.Audit.Brief

			return cmdCtx.openStore(ctx, func(store *catalog.Store) error {
				sets, err := store.Sets(ctx)
				if err != nil {
					return err
				}
				if setFlag != "" {
					sets, err = filterSets(sets, setFlag)
					if err != nil {
						return err
					}
				}
				if len(sets) == 0 {
					fmt.Fprintln(out, "No published Flickr sets found in the catalog.")
					return nil
				}

				var release func()
				if fixSingles {
					timeout := time.Duration(cfg.Repoint.LockTimeout) * time.Second
					release, err = store.AcquireWriteLock(ctx, timeout)
					if err != nil {
						return err
					}
					defer release()
				}

				var totals audit.ApplyOutcome
				for _, set := range sets {
					setCtx := logging.WithSetID(ctx, set.ID)
					setLog := logging.WithContext(setCtx, log)

					photos, err := store.Photos(setCtx, set.ID, deepScan)
					if err != nil {
						return fmt.Errorf("load set %s: %w", set.ID, err)
					}
					report := audit.Run(photos, remotes, deepScan)
					setLog.Info("classified set",
						logging.Int("photos", report.TotalPhotos()),
						logging.Int("linked", len(report.Linked)),
						logging.Int("unlinked", len(report.Unlinked)),
					)
					renderReport(out, set.ID, report, brief, colorize)

					if fixSingles {
						outcome := audit.ApplySingles(setCtx, store, report, logger)
						renderApplyOutcome(out, outcome, colorize)
						totals = sumOutcomes(totals, outcome)
					}
				}

				if fixSingles && len(sets) > 1 {
					fmt.Fprintln(out)
					fmt.Fprintf(out, "Across all sets: %s\n", describeOutcome(totals))
				}

				renderQuotedTitles(out, audit.QuotedTitles(remotes), colorize)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&setFlag, "set", "", "Audit only the given Flickr set ID")
	cmd.Flags().BoolVar(&fixSingles, "fix-singles", false, "Repoint photos whose audit found exactly one candidate")
	cmd.Flags().BoolVar(&brief, "brief", false, "Print per-set counts only, without per-photo detail")
	cmd.Flags().BoolVar(&noDeep, "no-deep", false, "Skip the XMP document ID strategy even when configured on")
	return cmd
}

func filterSets(sets []catalog.Set, id string) ([]catalog.Set, error) {
	id = strings.TrimSpace(id)
	for _, set := range sets {
		if set.ID == id {
			return []catalog.Set{set}, nil
		}
	}
	return nil, fmt.Errorf("set %s has no published photos in the catalog", id)
}

func sumOutcomes(a, b audit.ApplyOutcome) audit.ApplyOutcome {
	return audit.ApplyOutcome{
		Applied:        a.Applied + b.Applied,
		AlreadyApplied: a.AlreadyApplied + b.AlreadyApplied,
		Ambiguous:      a.Ambiguous + b.Ambiguous,
		Skipped:        a.Skipped + b.Skipped,
		Failed:         a.Failed + b.Failed,
	}
}
