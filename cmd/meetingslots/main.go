package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/TudorHulban/meetingslots"
	"github.com/TudorHulban/meetingslots/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "meetingslots",
	Short:         "Find common meeting slots for two persons",
	Long:          "meetingslots reads groups of busy slots, work hours and a meeting duration and writes the time slots both persons have free.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every record of the input stream",
	RunE:  runRun,
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Compute the meeting slots of a single record given as flags",
	RunE:  runSlots,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().Bool("normalize-busy", false, "Sort and merge busy slots before computing gaps")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	runCmd.Flags().String("input", "", "Input file, - for stdin")
	runCmd.Flags().String("output", "", "Output file, - for stdout")

	slotsCmd.Flags().String("busy-a", "", "Busy slots of person A, ex. ['09:00':'10:00']")
	slotsCmd.Flags().String("work-a", "", "Work hours of person A, ex. ['08:00','17:00']")
	slotsCmd.Flags().String("busy-b", "", "Busy slots of person B")
	slotsCmd.Flags().String("work-b", "", "Work hours of person B")
	slotsCmd.Flags().String("duration", "", "Meeting duration in minutes")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("normalize-busy") {
		cfg.NormalizeBusy, _ = cmd.Flags().GetBool("normalize-busy")
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	if cmd.Flags().Lookup("input") != nil {
		if v, _ := cmd.Flags().GetString("input"); v != "" {
			cfg.Input = v
		}

		if v, _ := cmd.Flags().GetString("output"); v != "" {
			cfg.Output = v
		}
	}

	if err := cfg.IsValid(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == config.StdStream {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}

	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == config.StdStream {
		return nopWriteCloser{Writer: os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}

	return f, nil
}

func runRun(cmd *cobra.Command, _ []string) (errRun error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	input, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if errClose := output.Close(); errClose != nil && errRun == nil {
			errRun = fmt.Errorf("closing output: %w", errClose)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	processor := meetingslots.NewProcessor(
		&meetingslots.ParamsNewProcessor{
			Logger:        logger,
			NormalizeBusy: cfg.NormalizeBusy,
		},
	)

	stats, err := processor.Run(ctx, input, output)
	if err != nil {
		return err
	}

	logger.Debug(
		"done",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.Int("records", stats.RecordsRead),
	)

	return nil
}

func runSlots(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var lines [meetingslots.LinesPerRecord]string

	for ix, name := range []string{"busy-a", "work-a", "busy-b", "work-b", "duration"} {
		lines[ix], _ = cmd.Flags().GetString(name)
	}

	record, err := meetingslots.ParseRecord(lines)
	if err != nil {
		_, errWrite := fmt.Fprint(cmd.OutOrStdout(), meetingslots.FormatError(err))

		return errWrite
	}

	return meetingslots.WriteSlots(
		cmd.OutOrStdout(),
		record.MeetingSlots(cfg.NormalizeBusy),
	)
}
