package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jpfielding/pngen.go/pkg/png"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect cobra command
func NewInspectCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Analyze PNG chunk structure",
		Long:  "Reads a PNG file, verifies every chunk CRC and prints the header and image data sizes.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			return runInspect(cmd.OutOrStdout(), filePath)
		},
	}
	pf := cmd.Flags()
	pf.StringP("file", "f", "", "PNG file path to inspect")
	return cmd
}

// runInspect prints the structure of a PNG file
func runInspect(w io.Writer, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := png.Inspect(f)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	fmt.Fprintln(w, "=== Header ===")
	fmt.Fprintf(w, "Width: %d\n", info.Header.Width)
	fmt.Fprintf(w, "Height: %d\n", info.Header.Height)
	fmt.Fprintf(w, "BitDepth: %d\n", info.Header.BitDepth)
	fmt.Fprintf(w, "ColorType: %d (%s)\n", uint8(info.Header.ColorType), info.Header.ColorType)
	fmt.Fprintf(w, "Compression/Filter/Interlace: %d/%d/%d\n", info.Header.Compression, info.Header.Filter, info.Header.Interlace)

	fmt.Fprintln(w, "\n=== Chunks ===")
	for _, c := range info.Chunks {
		fmt.Fprintf(w, "%s length=%d crc=%08x ok\n", c.Type, len(c.Data), c.CRC)
	}

	fmt.Fprintln(w, "\n=== Image Data ===")
	fmt.Fprintf(w, "Scanline bytes: %d\n", info.RawLen)
	if info.ExpectedRawLen > 0 {
		fmt.Fprintf(w, "Expected: %d (match=%v)\n", info.ExpectedRawLen, info.RawLen == info.ExpectedRawLen)
	}
	return nil
}
