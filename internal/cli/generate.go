package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kmarchant/chromat/internal/colour"
	"github.com/kmarchant/chromat/internal/config"
	img "github.com/kmarchant/chromat/internal/image"
	"github.com/kmarchant/chromat/internal/palette"
)

var (
	// Generate command flags
	generateSize         int
	generateSeed         uint64
	generateMode         string
	generateImage        string
	generatePreview      bool
	generateSave         string
	generateAdjustHue    float64
	generateAdjustSat    float64
	generateAdjustBright float64
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a colour palette",
	Long: `Generate a palette of named colour swatches.

By default each slot is an independent uniformly random colour. Harmonious
mode instead rotates a base hue evenly around the colour wheel; the base
hue can be random, seeded, or derived from an image.

Adjustment flags shift the displayed colours in HSL space. They never
affect the saved palette, which always carries the base colours.

Examples:
  # Five random colours
  chromat generate

  # Reproducible palette
  chromat generate --seed 12345

  # Eight hue-rotated colours with terminal preview
  chromat generate -n 8 -m harmonious --preview

  # Base hue taken from a wallpaper
  chromat generate --from-image wallpaper.jpg --preview

  # Save to palette.json
  chromat generate --save

  # Save to a custom file
  chromat generate --save theme.json

  # Preview a warmer, brighter rendition
  chromat generate --preview --adjust-hue 20 --adjust-brightness 10`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&generateSize, "size", "n", 0, "number of colours (default 5)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "random seed for reproducible palettes")
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "", "generation mode (random, harmonious)")
	generateCmd.Flags().StringVar(&generateImage, "from-image", "", "derive the base hue from an image (implies harmonious mode)")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "show colour swatches in the terminal")
	generateCmd.Flags().StringVar(&generateSave, "save", "", "save the palette to a file (JSON)")
	generateCmd.Flags().Lookup("save").NoOptDefVal = palette.ExportFile
	generateCmd.Flags().Float64Var(&generateAdjustHue, "adjust-hue", 0, "hue offset for displayed colours [-180,180]")
	generateCmd.Flags().Float64Var(&generateAdjustSat, "adjust-saturation", 0, "saturation offset for displayed colours [-100,100]")
	generateCmd.Flags().Float64Var(&generateAdjustBright, "adjust-brightness", 0, "brightness offset for displayed colours [-100,100]")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	logFlags(log, cmd.Flags())

	cfg := config.Load()

	genCfg, err := buildGeneratorConfig(cmd, cfg, log)
	if err != nil {
		return err
	}

	size := cfg.Size
	if cmd.Flags().Changed("size") {
		if generateSize <= 0 {
			return fmt.Errorf("invalid palette size: %d", generateSize)
		}
		size = generateSize
	}

	gen := palette.New(genCfg)
	log.Debug("generator ready", "seed", gen.Seed(), "mode", gen.Mode(), "size", size)

	sess := palette.NewSession(gen, size)
	if err := applyAdjustments(cmd, sess); err != nil {
		return err
	}

	printSession(sess)

	if cmd.Flags().Changed("save") {
		path := generateSave
		if path == palette.ExportFile {
			// Bare --save honors the environment's default export path.
			path = cfg.Output
		}
		if err := sess.Export(path); err != nil {
			return err
		}
		successf("Palette written to %s", path)
	}

	return nil
}

// buildGeneratorConfig resolves seed, mode, and base hue from flags and
// environment defaults.
func buildGeneratorConfig(cmd *cobra.Command, cfg config.Config, log hclog.Logger) (palette.Config, error) {
	genCfg := palette.Config{Seed: cfg.Seed, Mode: cfg.Mode}

	if cmd.Flags().Changed("seed") {
		seed := generateSeed
		genCfg.Seed = &seed
	}

	if cmd.Flags().Changed("mode") {
		mode, err := palette.ParseMode(generateMode)
		if err != nil {
			return palette.Config{}, err
		}
		genCfg.Mode = mode
	}

	if generateImage != "" {
		loader := img.NewFileLoader(log)
		picture, err := loader.Load(generateImage)
		if err != nil {
			return palette.Config{}, fmt.Errorf("failed to load image: %w", err)
		}

		mean := img.MeanColour(picture)
		hue := colour.RGBToHSL(mean).H
		log.Debug("image base colour", "colour", mean.Hex(), "hue", hue)

		genCfg.Mode = palette.ModeHarmonious
		genCfg.BaseHue = &hue
	}

	return genCfg, nil
}

// applyAdjustments feeds the adjustment flags into the session.
func applyAdjustments(cmd *cobra.Command, sess *palette.Session) error {
	fields := []struct {
		flag  string
		field palette.AdjustmentField
		value float64
	}{
		{flag: "adjust-hue", field: palette.AdjustHue, value: generateAdjustHue},
		{flag: "adjust-saturation", field: palette.AdjustSaturation, value: generateAdjustSat},
		{flag: "adjust-brightness", field: palette.AdjustBrightness, value: generateAdjustBright},
	}

	for _, f := range fields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		if err := sess.SetAdjustment(f.field, f.value); err != nil {
			return err
		}
	}
	return nil
}

// printSession renders the session as a table, with an optional swatch
// strip when previewing on a terminal.
func printSession(sess *palette.Session) {
	adjusted := sess.AdjustedColours()

	if generatePreview && stdoutIsTerminal() {
		var strip strings.Builder
		for _, c := range adjusted {
			strip.WriteString(colour.SwatchWithText(c, " "+c.Hex(), 9))
			strip.WriteString(" ")
		}
		fmt.Println(strip.String())
		fmt.Println()
	}

	table := NewTable([]string{"#", "Hex", "RGB", "HSL", "Name"})
	for i, e := range sess.Entries() {
		c := adjusted[i]
		hsl := colour.RGBToHSL(c)
		table.AddRow([]string{
			strconv.Itoa(i),
			c.Hex(),
			c.Decimal(),
			hsl.String(),
			e.Name,
		})
	}
	fmt.Print(table.Render())

	if adj := sess.Adjustments(); adj != (palette.Adjustments{}) {
		infof("Displayed with adjustments: hue %+.0f, saturation %+.0f, brightness %+.0f",
			adj.Hue, adj.Saturation, adj.Brightness)
	}
}
