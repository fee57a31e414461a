package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmarchant/chromat/internal/colour"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <hex>",
	Short: "Print a colour in HEX, RGB, and HSL text forms",
	Long: `Print the three copyable text representations of a colour: the hex
string, decimal RGB channels, and rounded HSL values.

Example:
  chromat convert "#336699"
  HEX  #336699
  RGB  51, 102, 153
  HSL  210, 50%, 40%`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	c, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", infoStyle.Sprint("HEX"), c.Hex())
	fmt.Printf("%s  %s\n", infoStyle.Sprint("RGB"), c.Decimal())
	fmt.Printf("%s  %s\n", infoStyle.Sprint("HSL"), colour.RGBToHSL(c).String())
	return nil
}
