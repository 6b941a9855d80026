package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/amitmaish/tinycolor"
	"github.com/amitmaish/tinycolor/internal/palette"
)

var (
	flagFrom    string
	flagTo      string
	flagSwatch  bool
	flagCheck   bool
	flagVerbose bool
	version     = "dev" // Injected at build time via ldflags
)

var log = commonlog.GetLogger("tinycolor")

var rootCmd = &cobra.Command{
	Use:     "tinycolor",
	Short:   "Convert colors between sRGB, linear RGB, Oklab, Okhsl, Okhsv, HSL and HSV",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity := 0
		if flagVerbose {
			verbosity = 2
		}
		commonlog.Configure(verbosity, nil)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a single color between two color spaces",
	Long: `Convert a single color between two color spaces.

The input is either a hex string like "#eb6f92" (srgb only) or three
comma-separated components like "0.5,0.1,0.8".`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var paletteCmd = &cobra.Command{
	Use:   "palette <file>",
	Short: "Convert every color in an HCL palette file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette files",
	Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	convertCmd.Flags().StringVar(&flagFrom, "from", "srgb", "input color space")
	convertCmd.Flags().StringVar(&flagTo, "to", "oklab", "output color space")
	convertCmd.Flags().BoolVar(&flagSwatch, "swatch", false, "print a terminal color swatch")
	paletteCmd.Flags().StringVar(&flagTo, "to", "okhsl", "output color space")
	paletteCmd.Flags().BoolVar(&flagSwatch, "swatch", false, "print terminal color swatches")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// spaceNames lists the accepted --from/--to values.
var spaceNames = []string{"srgb", "rgb", "oklab", "okhsl", "okhsv", "hsl", "hsv"}

// parseColor reads a color in the given space. srgb additionally accepts
// hex strings.
func parseColor(space, input string) (tinycolor.Color, error) {
	if space == "srgb" && strings.HasPrefix(input, "#") {
		c, err := tinycolor.ParseHex(input)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected three comma-separated components, got %q", input)
	}

	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
		v[i] = float32(f)
	}

	switch space {
	case "srgb":
		return tinycolor.SRGBFromValues(v), nil
	case "rgb":
		return tinycolor.RGBFromValues(v), nil
	case "oklab":
		return tinycolor.OklabFromValues(v), nil
	case "okhsl":
		return tinycolor.OkhslFromValues(v), nil
	case "okhsv":
		return tinycolor.OkhsvFromValues(v), nil
	case "hsl":
		return tinycolor.HSLFromValues(v), nil
	case "hsv":
		return tinycolor.HSVFromValues(v), nil
	}
	return nil, fmt.Errorf("unknown color space %q (valid: %s)", space, strings.Join(spaceNames, ", "))
}

// formatColor renders a color in the given space. srgb output includes the
// hex form.
func formatColor(space string, c tinycolor.Color) (string, error) {
	switch space {
	case "srgb":
		s := c.SRGB()
		return fmt.Sprintf("%.6g, %.6g, %.6g (%s)", s.R, s.G, s.B, s.Hex()), nil
	case "rgb":
		v := c.RGB().Values()
		return fmt.Sprintf("%.6g, %.6g, %.6g", v[0], v[1], v[2]), nil
	case "oklab":
		v := c.Oklab().Values()
		return fmt.Sprintf("%.6g, %.6g, %.6g", v[0], v[1], v[2]), nil
	case "okhsl":
		v := c.Okhsl().Values()
		return fmt.Sprintf("%.6g, %.6g, %.6g", v[0], v[1], v[2]), nil
	case "okhsv":
		v := c.Okhsv().Values()
		return fmt.Sprintf("%.6g, %.6g, %.6g", v[0], v[1], v[2]), nil
	case "hsl":
		v := c.HSL().Values()
		return fmt.Sprintf("%.6g, %.6g, %.6g", v[0], v[1], v[2]), nil
	case "hsv":
		v := c.HSV().Values()
		return fmt.Sprintf("%.6g, %.6g, %.6g", v[0], v[1], v[2]), nil
	}
	return "", fmt.Errorf("unknown color space %q (valid: %s)", space, strings.Join(spaceNames, ", "))
}

// swatch renders a terminal background swatch for the color.
func swatch(c tinycolor.Color) string {
	profile := termenv.ColorProfile()
	return termenv.String("    ").Background(profile.Color(c.SRGB().Hex())).String()
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := parseColor(flagFrom, args[0])
	if err != nil {
		return fmt.Errorf("parsing input color: %w", err)
	}

	log.Infof("converting %s from %s to %s", args[0], flagFrom, flagTo)

	out, err := formatColor(flagTo, c)
	if err != nil {
		return err
	}

	if flagSwatch {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", swatch(c), out)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	log.Infof("loaded %d colors from %s", len(p.Entries), args[0])

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, e := range p.Entries {
		out, err := formatColor(flagTo, e.Color)
		if err != nil {
			return err
		}
		if flagSwatch {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", swatch(e.Color), e.Name, e.Color.Hex(), out)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Color.Hex(), out)
		}
	}
	return w.Flush()
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted := palette.Format(content)
		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
