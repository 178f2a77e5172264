package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/siteaudit/internal/adapters/outbound/tui"
	"github.com/abdidvp/siteaudit/internal/domain"
)

func newAuditCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
		badge      bool
		fullSite   bool
		file       string
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Audit a web page",
		Long: "Fetch a page and score it across performance, SEO, UI/UX, accessibility and copy.\n" +
			"With --file the markup is read from disk and scored as if served at <url>.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, cmd, opts, !noSave)
			if err != nil {
				return err
			}
			defer a.close()

			svc := a.auditService()
			var report domain.AuditReport
			if file != "" {
				report, err = svc.AnalyzeFile(ctx, args[0], file)
			} else {
				report, err = svc.Audit(ctx, domain.AuditRequest{URL: args[0], FullSite: fullSite})
			}
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, a.cfg.Product, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !ciMode {
				return nil
			}
			failures := a.cfg.ThresholdFailures(report)
			if report.OverallScore < minScore {
				failures = append([]string{fmt.Sprintf("score %d is below minimum %d", report.OverallScore, minScore)}, failures...)
			}
			if len(failures) > 0 {
				return errors.New(strings.Join(failures, "; "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min or a configured min_threshold")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum overall score for CI mode")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output a shields.io badge URL")
	cmd.Flags().BoolVar(&fullSite, "full-site", false, "Accepted for compatibility; only the given page is audited")
	cmd.Flags().StringVar(&file, "file", "", "Score markup from a local file instead of fetching <url>")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the audit in the event store")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, product string, report domain.AuditReport) {
	color := domain.BadgeColor(report.OverallScore)
	label := strings.ReplaceAll(strings.ToLower(product), "-", "--") + "--audit"
	fmt.Fprintf(cmd.OutOrStdout(), "https://img.shields.io/badge/%s-%d%%2F100-%s\n", label, report.OverallScore, color)
}
