package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/config"
	"github.com/mklettner/ledsmith/pkg/outline"
	"github.com/mklettner/ledsmith/pkg/place/quality"
	"github.com/mklettner/ledsmith/pkg/plan"
)

// gradeCommand creates the grade command.
func (c *CLI) gradeCommand() *cobra.Command {
	var (
		preset      string
		presetsFile string
	)

	cmd := &cobra.Command{
		Use:   "grade <plan.json>",
		Short: "Re-grade an exported plan against thresholds",
		Long: `Grade re-evaluates the placement quality of an exported plan and
checks it against a preset's thresholds. The plan's stored report is
ignored; metrics are recomputed from the outline and module positions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.ImportJSON(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.Resolve(preset, presetsFile)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			o := outline.FromPath(p.Path)
			report := quality.Evaluate(nil, o, p.Modules)
			pass, failures := report.Grade(cfg.Grade)
			prog.done(fmt.Sprintf("Graded %d modules", report.Count))

			printKeyValue("modules", StyleNumber.Render(fmt.Sprintf("%d", report.Count)))
			printKeyValue("inside rate", fmt.Sprintf("%.3f", report.InsideRate))
			printKeyValue("min clearance", fmt.Sprintf("%.3f", report.MinClearance))
			printKeyValue("mean clearance", fmt.Sprintf("%.3f", report.MeanClearance))
			printKeyValue("symmetry", fmt.Sprintf("%.3f", report.SymmetryMean))
			printKeyValue("pitch mean", fmt.Sprintf("%.3f", report.NNMean))
			printKeyValue("pitch CV", fmt.Sprintf("%.3f", report.NNCV))

			if pass {
				printSuccess("plan passes %q thresholds", preset)
				return nil
			}
			printWarning("plan fails %q thresholds", preset)
			for _, f := range failures {
				printDetail("%s", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "flood", "preset whose thresholds to grade against")
	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "TOML file with additional presets")

	return cmd
}
