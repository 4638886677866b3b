package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/errors"
	"github.com/mklettner/ledsmith/pkg/geom"
	"github.com/mklettner/ledsmith/pkg/outline"
	"github.com/mklettner/ledsmith/pkg/outline/validate"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		file  string
		frame string
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check an outline path against the fabrication rules",
		Long: `Validate checks an outline path string for the defects that make a
letter unfabricatable: degenerate geometry, self-intersecting contours,
and escape from the design frame.

The path can be given inline or read from a file:

  ledsmith validate "M 0 0 L 100 0 L 100 100 L 0 100 Z"
  ledsmith validate --file letter-R.path --frame 0,0,200,200`,
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

			res := validate.Check(d, bounds)
			if !res.OK {
				printError("outline rejected: %s", string(res.Code))
				printDetail("%s", res.Message)
				return res.Err()
			}

			o := outline.FromPath(d)
			bbox := o.BBox()
			printSuccess("outline is valid")
			printDetail("contours: %d", len(o.Contours))
			printDetail("perimeter: %.2f", o.Perimeter())
			printDetail("bbox: %.2f x %.2f at (%.2f, %.2f)", bbox.Width, bbox.Height, bbox.X, bbox.Y)
			printNextStep("Fill it", fmt.Sprintf("ledsmith fill %q", d))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the outline path from a file")
	cmd.Flags().StringVar(&frame, "frame", "", "design frame as x,y,width,height for the escape check")

	return cmd
}

// parseFrame parses a "x,y,w,h" flag value into a rectangle. An empty value
// means no frame constraint.
func parseFrame(s string) (*geom.Rect, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "frame must be x,y,width,height, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "frame component %q is not a number", p)
		}
		vals[i] = v
	}
	return &geom.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
