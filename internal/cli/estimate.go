package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/config"
	"github.com/mklettner/ledsmith/pkg/outline"
	"github.com/mklettner/ledsmith/pkg/place"
)

// estimateCommand creates the estimate command.
func (c *CLI) estimateCommand() *cobra.Command {
	var (
		file        string
		preset      string
		presetsFile string
		strategy    string
		orientation string
		scale       float64
		spacing     float64
		inset       float64
	)

	cmd := &cobra.Command{
		Use:   "estimate [path]",
		Short: "Dry-pass module count for a configuration",
		Long: `Estimate runs the cheap counting pass of the placement engine without
constructing modules. Use it to sanity-check a preset before a fill, or
to budget LED stock for a letter set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readPathArg(args, file)
			if err != nil {
				return err
			}
			p, err := config.Resolve(preset, presetsFile)
			if err != nil {
				return err
			}
			applyPlaceFlags(cmd, &p.Place, strategy, orientation, scale, spacing, inset)

			o := outline.FromPath(d)
			n := place.New(nil).EstimateCount(o, p.Place)

			printInfo("estimated modules: %s", StyleNumber.Render(fmt.Sprintf("%d", n)))
			if n > place.MaxModules {
				printWarning("estimate exceeds the hard cap of %d; fill will refuse this configuration", place.MaxModules)
			}
			printDetail("strategy: %s · scale: %.2f · spacing: %.2f", p.Place.Strategy, p.Place.Scale, p.Place.Spacing)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the outline path from a file")
	cmd.Flags().StringVarP(&preset, "preset", "p", "flood", "module-style preset")
	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "TOML file with additional presets")
	cmd.Flags().StringVar(&strategy, "strategy", "", "override strategy: stroke or grid")
	cmd.Flags().StringVar(&orientation, "orientation", "", "override orientation: horizontal or vertical")
	cmd.Flags().Float64Var(&scale, "scale", 0, "override module scale")
	cmd.Flags().Float64Var(&spacing, "spacing", 0, "override module spacing")
	cmd.Flags().Float64Var(&inset, "inset", 0, "override stroke inset")

	return cmd
}
