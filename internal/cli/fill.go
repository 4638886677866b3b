package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/config"
	"github.com/mklettner/ledsmith/pkg/pipeline"
	"github.com/mklettner/ledsmith/pkg/place"
)

// fillCommand creates the fill command.
func (c *CLI) fillCommand() *cobra.Command {
	var (
		file        string
		letter      string
		frame       string
		preset      string
		presetsFile string
		strategy    string
		orientation string
		scale       float64
		spacing     float64
		inset       float64
		formats     string
		outDir      string
		noCache     bool
		refresh     bool
		skipGrade   bool
	)

	cmd := &cobra.Command{
		Use:   "fill [path]",
		Short: "Fill an outline with LED modules and export the plan",
		Long: `Fill runs the complete pipeline: validate the outline, place modules
with the chosen strategy, grade the result, and write the plan.

Placement settings come from a preset, individually overridable by flag:

  ledsmith fill --file letter-R.path --preset border
  ledsmith fill "M 0 0 L 100 0 L 100 100 L 0 100 Z" --strategy grid --spacing 2
  ledsmith fill --file logo.path --preset flood --format svg,json -o out/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readPathArg(args, file)
			if err != nil {
				return err
			}
			bounds, err := parseFrame(frame)
			if err != nil {
				return err
			}

			p, err := config.Resolve(preset, presetsFile)
			if err != nil {
				return err
			}
			applyPlaceFlags(cmd, &p.Place, strategy, orientation, scale, spacing, inset)

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Path:      d,
				Letter:    letter,
				Bounds:    bounds,
				Place:     p.Place,
				Grade:     p.Grade,
				Formats:   parseFormats(formats),
				Refresh:   refresh,
				SkipGrade: skipGrade,
				Logger:    c.Logger,
			}

			spinner := newSpinnerWithContext(cmd.Context(), "Filling outline...")
			spinner.Start()
			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				spinner.StopWithError(fmt.Sprintf("fill failed: %v", err))
				return err
			}
			spinner.StopWithSuccess(fmt.Sprintf("placed %d modules", result.Stats.ModuleCount))

			printStats(result.Stats.ModuleCount, result.Stats.ContourCount, result.CacheInfo.PlanHit)
			if !skipGrade {
				printGradeSummary(result)
			}

			for format, data := range result.Artifacts {
				name := fmt.Sprintf("%s.%s", planBaseName(letter, result.RunID), format)
				path := filepath.Join(outDir, name)
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the outline path from a file")
	cmd.Flags().StringVarP(&letter, "letter", "l", "", "letter or glyph label stored in the plan")
	cmd.Flags().StringVar(&frame, "frame", "", "design frame as x,y,width,height for the escape check")
	cmd.Flags().StringVarP(&preset, "preset", "p", "flood", "module-style preset")
	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "TOML file with additional presets")
	cmd.Flags().StringVar(&strategy, "strategy", "", "override strategy: stroke or grid")
	cmd.Flags().StringVar(&orientation, "orientation", "", "override orientation: horizontal or vertical")
	cmd.Flags().Float64Var(&scale, "scale", 0, "override module scale")
	cmd.Flags().Float64Var(&spacing, "spacing", 0, "override module spacing")
	cmd.Flags().Float64Var(&inset, "inset", 0, "override stroke inset")
	cmd.Flags().StringVar(&formats, "format", "json", "output formats (comma-separated: json,svg)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the placement cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&skipGrade, "skip-grade", false, "skip quality grading")

	return cmd
}

// applyPlaceFlags overrides preset fields with explicitly set flags.
func applyPlaceFlags(cmd *cobra.Command, cfg *place.Config, strategy, orientation string, scale, spacing, inset float64) {
	if strategy != "" {
		cfg.Strategy = place.Strategy(strategy)
	}
	if orientation != "" {
		cfg.Orientation = place.Orientation(orientation)
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("spacing") {
		cfg.Spacing = spacing
	}
	if cmd.Flags().Changed("inset") {
		cfg.Inset = inset
	}
}

// printGradeSummary prints the grading verdict for a pipeline result.
func printGradeSummary(result *pipeline.Result) {
	report := result.Plan.Report
	if report == nil {
		return
	}
	if result.Pass {
		printSuccess("grade: pass")
	} else {
		printWarning("grade: fail")
		for _, f := range result.Failures {
			printDetail("%s", f)
		}
	}
	printDetail("inside rate: %.3f · min clearance: %.2f · symmetry: %.2f · pitch CV: %.2f",
		report.InsideRate, report.MinClearance, report.SymmetryMean, report.NNCV)
}

// planBaseName derives an output file base name from the letter label or
// the run ID.
func planBaseName(letter, runID string) string {
	if letter != "" {
		return "plan-" + letter
	}
	if len(runID) >= 8 {
		return "plan-" + runID[:8]
	}
	return "plan"
}
