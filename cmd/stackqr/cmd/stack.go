package cmd

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stackqr/stackqr/internal/render"
)

// stackCmd represents the stack command.
var stackCmd = &cobra.Command{
	Use:   "stack <layer.png> [<layer.png>...]",
	Short: "Stack layer images into a single preview PNG",
	Long: `Overlay previously generated layer images in order and write the
flattened result, simulating a physical stack of printed transparencies.
With at least k of the n layers, the output is the restored QR code.

Examples:
  stackqr stack layers/qr_layer_1_of_5.png layers/qr_layer_2_of_5.png layers/qr_layer_5_of_5.png
  stackqr stack layers/*.png -o restored.png`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return errors.New("no output path provided")
		}

		imgs := make([]image.Image, 0, len(args))
		for _, path := range args {
			img, err := render.LoadImage(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			imgs = append(imgs, img)
		}

		flat, err := render.Flatten(imgs)
		if err != nil {
			return err
		}
		if err := render.WriteImage(flat, output); err != nil {
			return err
		}

		slog.Info("Stacked layers", "count", len(imgs), "output", output)
		fmt.Fprintf(cmd.OutOrStdout(), "Stacked %d layers into %s\n", len(imgs), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stackCmd)

	stackCmd.Flags().StringP("output", "o", "stacked.png", "path for the flattened output image")
}
