package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpath/internal/difficulty"
	"github.com/abhisek/mathpath/internal/oracle"
	"github.com/abhisek/mathpath/internal/problemgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store exercises through the content oracle",
	RunE: func(cmd *cobra.Command, args []string) error {
		subtopic, _ := cmd.Flags().GetString("subtopic")
		name, _ := cmd.Flags().GetString("name")
		desc, _ := cmd.Flags().GetString("description")
		tierFlag, _ := cmd.Flags().GetString("tier")
		subLevel, _ := cmd.Flags().GetInt("sublevel")
		count, _ := cmd.Flags().GetInt("count")

		tier, err := difficulty.ParseTier(tierFlag)
		if err != nil {
			return err
		}
		if count <= 0 {
			return fmt.Errorf("--count must be positive")
		}

		cfg, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		logger := newLogger(cfg)

		if !cfg.OracleEnabled() {
			return errors.New("no content oracle configured: set oracle.provider or an API key env var")
		}
		ctx := cmd.Context()
		o, err := oracle.New(ctx, cfg.Oracle, st.OracleEvents(), logger)
		if err != nil {
			return fmt.Errorf("create oracle: %w", err)
		}
		gen := problemgen.NewOracleGenerator(o, st.Exercises(), problemgen.DefaultConfig())

		existing, err := st.Exercises().ListExercises(ctx, subtopic, "", 0)
		if err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
		prior := make([]string, 0, len(existing)+count)
		for _, ex := range existing {
			prior = append(prior, ex.Question)
		}

		out := cmd.OutOrStdout()
		for i := 0; i < count; i++ {
			ex, err := gen.Generate(ctx, problemgen.GenerateInput{
				SubtopicID:     subtopic,
				SubtopicName:   name,
				Description:    desc,
				Tier:           tier,
				SubLevel:       subLevel,
				PriorQuestions: prior,
			})
			if err != nil {
				if oracle.IsDegraded(err) {
					return fmt.Errorf("oracle unavailable after %d of %d exercises: %w", i, count, err)
				}
				logger.Warn("discarding exercise", "error", err)
				continue
			}
			prior = append(prior, ex.Question)
			fmt.Fprintf(out, "%s  %-6s  %s\n", ex.ID, ex.Difficulty, ex.Question)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("subtopic", "", "Subtopic ID")
	generateCmd.Flags().String("name", "", "Subtopic display name")
	generateCmd.Flags().String("description", "", "Curriculum context for the subtopic")
	generateCmd.Flags().String("tier", "easy", "Difficulty tier: easy, medium or hard")
	generateCmd.Flags().Int("sublevel", 1, "Sub-level within the tier (1-3)")
	generateCmd.Flags().Int("count", 5, "Number of exercises to generate")
	_ = generateCmd.MarkFlagRequired("subtopic")
}
