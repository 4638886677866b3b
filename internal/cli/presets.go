package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mklettner/ledsmith/pkg/config"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	var presetsFile string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available module-style presets",
		Long: `Presets lists the built-in module-style presets plus any loaded from a
TOML file. File presets override built-ins with the same name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.Builtin()
			if presetsFile != "" {
				loaded, err := config.Load(presetsFile)
				if err != nil {
					return err
				}
				for name, p := range loaded {
					presets[name] = p
				}
			}

			for _, name := range config.Names(presets) {
				p := presets[name]
				fmt.Println(StyleHighlight.Render(name) + "  " + StyleDim.Render(p.Description))
				printDetail("strategy: %s, orientation: %s", p.Place.Strategy, p.Place.Orientation)
				printDetail("scale: %g, spacing: %g, inset: %g", p.Place.Scale, p.Place.Spacing, p.Place.Inset)
			}

			printNextStep("Use one", "ledsmith fill --preset border <path>")
			return nil
		},
	}

	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "TOML file with additional presets")

	return cmd
}
