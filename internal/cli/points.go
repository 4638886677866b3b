package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/outline/anchor"
)

// pointsCommand creates the points command.
func (c *CLI) pointsCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "points [path]",
		Short: "List the editable anchor and control points of a path",
		Long: `Points enumerates every editable point of an outline path with its
stable ID, kind, and position. IDs are what the nudge command and the
move API address; they stay valid as long as the path's segment
structure is unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readPathArg(args, file)
			if err != nil {
				return err
			}

			pts := anchor.BuildPoints(d)
			printInfo("%d editable points", len(pts))
			for _, p := range pts {
				id := StyleHighlight.Render(fmt.Sprintf("%-8s", p.ID))
				kind := StyleDim.Render(fmt.Sprintf("%-9s", string(p.Kind)))
				pos := StyleValue.Render(fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y))
				contour := StyleDim.Render(fmt.Sprintf("contour %d", p.Contour))
				fmt.Println("  " + id + " " + kind + " " + pos + "  " + contour)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the outline path from a file")

	return cmd
}
