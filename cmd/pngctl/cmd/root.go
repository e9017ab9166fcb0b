package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jpfielding/pngen.go/pkg/logging"
	"github.com/spf13/cobra"
)

// Execute runs the CLI and closes the log file it opened, also when a
// command or its flag handling failed
func Execute(ctx context.Context, gitsha string) error {
	root, sink := newRoot(ctx, gitsha)
	return execute(root, sink)
}

func execute(root *cobra.Command, sink *logSink) error {
	defer sink.Close()
	return root.Execute()
}

// logSink holds the rotated log file opened by --log-file
type logSink struct {
	w io.WriteCloser
}

func (s *logSink) Close() error {
	if s.w == nil {
		return nil
	}
	slog.SetDefault(logging.Logger(io.Discard, false, slog.LevelInfo))
	err := s.w.Close()
	s.w = nil
	return err
}

func newRoot(ctx context.Context, gitsha string) (*cobra.Command, *logSink) {
	sink := &logSink{}
	cmd := &cobra.Command{
		Use:          "pngctl",
		Short:        "a CLI to generate and inspect PNG files",
		Long:         "pngctl renders test patterns into truecolour PNG files and inspects the chunk layout of PNG files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")
			logPath, _ := cmd.Flags().GetString("log-file")

			// Parse log level
			var level slog.Level
			levelErr := level.UnmarshalText([]byte(strings.ToUpper(logLevel)))
			if levelErr != nil {
				level = slog.LevelInfo
			}

			switch logFormat {
			case "text", "json":
			default:
				return fmt.Errorf("unknown log format %q (text|json)", logFormat)
			}

			var out io.Writer = cmd.ErrOrStderr()
			if logPath != "" {
				sink.Close()
				sink.w = logging.FileWriter(logPath, 10, 3)
				out = sink.w
			}
			slog.SetDefault(logging.Logger(out, logFormat == "json", level))

			if levelErr != nil {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", logLevel, "error", levelErr)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd.OutOrStdout(), cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewCheckerboardCmd(ctx),
		NewSolidCmd(ctx),
		NewInspectCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-format", "text", "Log format (text|json)")
	pf.String("log-file", "", "Write logs to a rotated file instead of stderr")
	return cmd, sink
}

func printCommandTree(w io.Writer, cmd *cobra.Command, indent int) {
	fmt.Fprintln(w, strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(w, subCmd, indent+1)
	}
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Long:  "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitsha)
		},
	}
	return cmd
}
