package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jpfielding/pngen.go/pkg/logging"
	"github.com/jpfielding/pngen.go/pkg/pattern"
	"github.com/jpfielding/pngen.go/pkg/png"
	"github.com/spf13/cobra"
)

// NewCheckerboardCmd renders a checkerboard
func NewCheckerboardCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkerboard",
		Short: "write a checkerboard PNG",
		Long:  "Renders a two colour checkerboard with --squares squares stacked vertically and writes it as PNG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			squares, _ := cmd.Flags().GetInt("squares")
			onName, _ := cmd.Flags().GetString("on")
			offName, _ := cmd.Flags().GetString("off")

			ct, out, err := outputFlags(cmd)
			if err != nil {
				return err
			}
			on, err := pattern.ParseColor(onName)
			if err != nil {
				return err
			}
			off, err := pattern.ParseColor(offName)
			if err != nil {
				return err
			}

			img, err := pattern.Checkerboard(width, height, squares, ct, on, off)
			if err != nil {
				return err
			}
			return save(ctx, cmd, out, ct, img)
		},
	}
	addOutputFlags(cmd, "checkboard_example.png")
	pf := cmd.Flags()
	pf.Int("width", 1024, "image width in pixels")
	pf.Int("height", 768, "image height in pixels")
	pf.Int("squares", 10, "number of squares stacked vertically")
	pf.String("on", "white", "colour of the on squares (name, #rrggbb or #rrggbbaa)")
	pf.String("off", "black", "colour of the off squares, including the top left one")
	return cmd
}

// NewSolidCmd renders a single colour image
func NewSolidCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solid",
		Short: "write a single colour PNG",
		Long:  "Fills a width x height image with one colour and writes it as PNG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			colorName, _ := cmd.Flags().GetString("color")

			ct, out, err := outputFlags(cmd)
			if err != nil {
				return err
			}
			c, err := pattern.ParseColor(colorName)
			if err != nil {
				return err
			}
			img, err := pattern.Solid(width, height, ct, c)
			if err != nil {
				return err
			}
			return save(ctx, cmd, out, ct, img)
		},
	}
	addOutputFlags(cmd, "solid.png")
	pf := cmd.Flags()
	pf.Int("width", 4, "image width in pixels")
	pf.Int("height", 2, "image height in pixels")
	pf.String("color", "black", "fill colour (name, #rrggbb or #rrggbbaa)")
	return cmd
}

func addOutputFlags(cmd *cobra.Command, name string) {
	pf := cmd.Flags()
	pf.StringP("out", "o", filepath.Join("out", name), "output path, parent directories are created")
	pf.StringP("color-type", "c", "rgb", "PNG colour type (rgb|rgba)")
}

func outputFlags(cmd *cobra.Command) (png.ColorType, string, error) {
	ctName, _ := cmd.Flags().GetString("color-type")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return 0, "", fmt.Errorf("--out is required")
	}
	ct, err := png.ParseColorType(ctName)
	if err != nil {
		return 0, "", err
	}
	return ct, out, nil
}

func save(ctx context.Context, cmd *cobra.Command, out string, ct png.ColorType, img png.Image) error {
	ctx = logging.AppendCtx(ctx, slog.String("cmd", cmd.Name()), slog.String("out", out))
	slog.DebugContext(ctx, "generating", "width", img.Width(), "height", img.Height(), "colorType", ct.String())

	n, err := png.WriteFile(out, ct, img)
	if err != nil {
		slog.ErrorContext(ctx, "generation failed", "error", err)
		return fmt.Errorf("writing %s: %w", out, err)
	}
	slog.InfoContext(ctx, "generation done", "bytes", n)
	fmt.Fprintf(cmd.OutOrStdout(), "generation of %s done (%d bytes)\n", out, n)
	return nil
}
