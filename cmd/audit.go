package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harborwatch/route-risk/internal/model"
	"github.com/harborwatch/route-risk/internal/store"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the assessment audit log",
}

var auditListFlags struct {
	provenance string
	port       string
	limit      int
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent assessments, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openAuditStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.List(cmd.Context(), store.Filter{
			Provenance: model.Provenance(auditListFlags.provenance),
			Port:       auditListFlags.port,
			Limit:      auditListFlags.limit,
		})
		if err != nil {
			return err
		}

		for _, a := range entries {
			dep, dest := "?", "?"
			if a.Departure != nil {
				dep = a.Departure.Key
			}
			if a.Destination != nil {
				dest = a.Destination.Key
			}
			fmt.Printf("%s  %s  %-18s -> %-18s score=%-2d %s\n",
				a.AssessedAt.Format(time.RFC3339), a.ID, dep, dest, a.RiskScore, a.Provenance)
		}
		return nil
	},
}

var auditShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one audited assessment as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openAuditStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		a, err := st.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	},
}

var auditStatsHours int

var auditStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate stats over a lookback window",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openAuditStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.CollectStats(cmd.Context(), time.Duration(auditStatsHours)*time.Hour)
		if err != nil {
			return err
		}
		fmt.Printf("last %dh: %d assessments, %d fallback, avg score %.1f, max score %d\n",
			auditStatsHours, stats.Total, stats.FallbackCount, stats.AvgRiskScore, stats.MaxRiskScore)
		return nil
	},
}

var auditPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete audit entries older than the configured retention",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openAuditStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cutoff := time.Now().UTC().AddDate(0, 0, -cfg.Store.RetentionDays)
		n, err := st.DeleteBefore(cmd.Context(), cutoff)
		if err != nil {
			return err
		}
		fmt.Printf("pruned %d entries older than %s\n", n, cutoff.Format("2006-01-02"))
		return nil
	},
}

func openAuditStore(cmd *cobra.Command) (*store.SQLiteStore, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(cmd.Context()); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

func init() {
	auditListCmd.Flags().StringVar(&auditListFlags.provenance, "provenance", "", "filter by provenance (assessor|fallback)")
	auditListCmd.Flags().StringVar(&auditListFlags.port, "port", "", "filter by departure or destination port key")
	auditListCmd.Flags().IntVar(&auditListFlags.limit, "limit", 20, "max entries")
	auditStatsCmd.Flags().IntVar(&auditStatsHours, "hours", 24, "lookback window in hours")
	auditCmd.AddCommand(auditListCmd, auditShowCmd, auditStatsCmd, auditPruneCmd)
	rootCmd.AddCommand(auditCmd)
}
