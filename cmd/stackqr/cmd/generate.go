package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stackqr/stackqr/internal/geometry"
	"github.com/stackqr/stackqr/internal/layers"
	"github.com/stackqr/stackqr/internal/render"
	"github.com/stackqr/stackqr/internal/symbol"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate <text>",
	Short: "Generate stackable QR layer images for a text payload",
	Long: `Encode text as a QR code and write n transparent PNG layers, any k of
which restore the code when stacked.

Examples:
  stackqr generate "https://example.com" -n 5 -k 3
  stackqr generate "secret" -n 3 -k 2 -o shares --prefix share_ --seed 42
  stackqr generate "secret" -n 4 -k 4 --verify`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := args[0]
		if text == "" {
			return errors.New("no text provided")
		}

		cfg := GetConfig()

		total := cfg.Layers.Total
		if cmd.Flags().Changed("layers") {
			total, _ = cmd.Flags().GetInt("layers")
		}
		required := cfg.Layers.Required
		if cmd.Flags().Changed("required") {
			required, _ = cmd.Flags().GetInt("required")
		}
		seed := cfg.Layers.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetUint64("seed")
		}
		workers := cfg.Layers.Workers
		if cmd.Flags().Changed("workers") {
			workers, _ = cmd.Flags().GetInt("workers")
		}
		verify := cfg.Layers.Verify
		if cmd.Flags().Changed("verify") {
			verify, _ = cmd.Flags().GetBool("verify")
		}

		outputDir := cfg.Output.Dir
		if cmd.Flags().Changed("output-dir") {
			outputDir, _ = cmd.Flags().GetString("output-dir")
		}
		prefix := cfg.Output.Prefix
		if cmd.Flags().Changed("prefix") {
			prefix, _ = cmd.Flags().GetString("prefix")
		}
		boxSize := cfg.Output.BoxSize
		if cmd.Flags().Changed("box-size") {
			boxSize, _ = cmd.Flags().GetInt("box-size")
		}
		border := cfg.Output.Border
		if cmd.Flags().Changed("border") {
			border, _ = cmd.Flags().GetInt("border")
		}

		if required < 1 || required > total {
			return fmt.Errorf("%w: k=%d, n=%d", layers.ErrInvalidThreshold, required, total)
		}
		if boxSize < 1 {
			return fmt.Errorf("invalid box size: %d (must be at least 1)", boxSize)
		}
		if border < 0 {
			return fmt.Errorf("invalid border: %d (must not be negative)", border)
		}

		sym, err := symbol.Encode(text)
		if err != nil {
			if errors.Is(err, symbol.ErrEncodingTooLarge) {
				return fmt.Errorf("text does not fit in any QR version: %w", err)
			}
			return err
		}
		slog.Info("Encoded symbol",
			"version", int(sym.Version),
			"size", sym.Matrix.Size(),
			"ec_level", sym.Level)

		ls, err := layers.Distribute(sym.Matrix, sym.Version, total, required, layers.Options{
			Seed:    seed,
			Workers: workers,
		})
		if err != nil {
			return err
		}
		if ls.ApproxGeometry {
			slog.Warn("Layers may misclassify a few structural modules",
				"version", int(sym.Version),
				"cause", geometry.ErrApproximateGeometry.Error())
		}
		slog.Info("Distributed modules",
			"structural", ls.StructuralModules,
			"data", ls.DataModules,
			"per_data_module_layers", total-required+1)

		if verify {
			if err := layers.Verify(ls, sym.Matrix, required); err != nil {
				return fmt.Errorf("layer verification failed: %w", err)
			}
			slog.Info("Verified reconstruction for every layer subset", "subset_size", required)
		}

		written, err := render.WriteLayers(ls, outputDir, prefix, boxSize, border)
		if err != nil {
			slog.Error("Some layers could not be written", "written", written, "total", total)
			return fmt.Errorf("wrote %d of %d layers: %w", written, total, err)
		}

		slog.Info("Layer generation complete", "written", written, "dir", outputDir)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d layer images to %s (stack any %d to restore the code)\n",
			written, outputDir, required)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("layers", "n", 5, "total number of layer images to generate")
	generateCmd.Flags().IntP("required", "k", 3, "number of layers that must be stacked to restore the code")
	generateCmd.Flags().StringP("output-dir", "o", "layers", "directory for the generated layer images")
	generateCmd.Flags().String("prefix", "qr_layer_", "filename prefix for the layer images")
	generateCmd.Flags().Int("box-size", 10, "size of each QR module in pixels")
	generateCmd.Flags().Int("border", 4, "quiet zone width around the code, in modules")
	generateCmd.Flags().Uint64("seed", 0, "random seed for layer assignment (0 picks a fresh seed)")
	generateCmd.Flags().Int("workers", 1, "goroutines distributing matrix rows")
	generateCmd.Flags().Bool("verify", false, "exhaustively check every k-subset reconstruction before writing")
}
