package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kmarchant/chromat/internal/colour"
)

var (
	// Shades command flags
	shadesCount   int
	shadesPreview bool
)

// shadesCmd represents the shades command
var shadesCmd = &cobra.Command{
	Use:   "shades <hex>",
	Short: "Derive a shade ramp from a base colour",
	Long: `Derive progressively darker shades of a base colour, holding hue and
saturation fixed.

Examples:
  # Five shades of steel blue
  chromat shades "#336699"

  # Three shades with terminal preview
  chromat shades --count 3 --preview "#e07020"`,
	Args: cobra.ExactArgs(1),
	RunE: runShades,
}

func init() {
	shadesCmd.Flags().IntVarP(&shadesCount, "count", "c", colour.DefaultShadeCount, "number of shades to derive")
	shadesCmd.Flags().BoolVar(&shadesPreview, "preview", false, "show colour swatches in the terminal")
}

// runShades executes the shades command.
func runShades(cmd *cobra.Command, args []string) error {
	base, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}
	if shadesCount <= 0 {
		return fmt.Errorf("invalid shade count: %d", shadesCount)
	}

	preview := shadesPreview && stdoutIsTerminal()

	table := NewTable([]string{"#", "Hex", "HSL"})
	for i, hex := range colour.ShadeRamp(colour.RGBToHSL(base), shadesCount) {
		shade, err := colour.ParseHex(hex)
		if err != nil {
			return fmt.Errorf("shade %d: %w", i, err)
		}

		if preview {
			fmt.Println(colour.SwatchWithText(shade, " "+hex, 10))
		}
		table.AddRow([]string{
			strconv.Itoa(i),
			hex,
			colour.RGBToHSL(shade).String(),
		})
	}

	if preview {
		fmt.Println()
	}
	fmt.Print(table.Render())
	return nil
}
