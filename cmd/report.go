package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathpath/internal/attempt"
	"github.com/abhisek/mathpath/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show readiness for a user and subtopic",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		subtopic, _ := cmd.Flags().GetString("subtopic")
		width, _ := cmd.Flags().GetInt("width")

		cfg, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		r, err := report.Build(cmd.Context(), report.Sources{
			Evaluator: attempt.NewEvaluator(st.Exercises(), st.Attempts(), attempt.WithLookback(cfg.Engine.Lookback)),
			Progress:  st.Progress(),
			Sessions:  st.Sessions(),
			Attempts:  st.Attempts(),
		}, user, subtopic)
		if err != nil {
			return err
		}

		_, err = lipgloss.Fprintln(cmd.OutOrStdout(), report.Render(r, width))
		return err
	},
}

func init() {
	reportCmd.Flags().String("user", "", "User ID")
	reportCmd.Flags().String("subtopic", "", "Subtopic ID")
	reportCmd.Flags().Int("width", report.DefaultWidth, "Report width in columns")
	_ = reportCmd.MarkFlagRequired("user")
	_ = reportCmd.MarkFlagRequired("subtopic")
}
