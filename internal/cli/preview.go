package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/export"
	"github.com/mklettner/ledsmith/pkg/plan"
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		out     string
		margin  float64
		scale   float64
		centers bool
	)

	cmd := &cobra.Command{
		Use:   "preview <plan.json>",
		Short: "Render an exported plan as SVG",
		Long: `Preview renders an exported plan file as an SVG image showing the
letter outline and the placed modules. The output file defaults to the
plan's name with an .svg extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.ImportJSON(args[0])
			if err != nil {
				return err
			}

			opts := []export.SVGOption{
				export.WithMargin(margin),
				export.WithScale(scale),
			}
			if centers {
				opts = append(opts, export.WithCenters())
			}
			svg := export.RenderSVG(p, opts...)

			target := out
			if target == "" {
				target = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			if err := os.WriteFile(target, svg, 0o644); err != nil {
				return err
			}

			printSuccess("rendered %d modules", len(p.Modules))
			printFile(target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output SVG file (default: plan name with .svg)")
	cmd.Flags().Float64Var(&margin, "margin", 2, "whitespace around the outline in path units")
	cmd.Flags().Float64Var(&scale, "scale", 10, "pixels per path unit")
	cmd.Flags().BoolVar(&centers, "centers", false, "mark module centers")

	return cmd
}
