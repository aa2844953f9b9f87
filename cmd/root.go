package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jostho/quest/internal/config"
	"github.com/jostho/quest/internal/dataset"
	"github.com/jostho/quest/internal/quiz"
)

// maxCount bounds the number of questions per session (exclusive).
const maxCount = 100

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quest",
		Short: "Country trivia quiz for the terminal",
		Long: `quest turns a country dataset into a pipe-delimited flat file (--generate)
and runs a multiple-choice quiz over it.

Variants:
  capital  which country's capital is X ?   (countries.json from mledoze/countries)
  code     which country's code is X ?      (iso_3166-1.json from iso-codes)`,
		SilenceUsage: true,
		PreRunE:      validateFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	f := root.Flags()
	f.BoolP("generate", "g", false, "Generate the flat file from source JSON")
	f.BoolP("list", "l", false, "List the valid records of the flat file")
	f.StringP("input", "i", "", "Input file path (required)")
	f.StringP("output", "o", "", "Output file path (default: input path with .csv extension)")
	f.IntP("count", "c", 10, "Number of questions (1-99)")
	f.String("variant", "capital", "Quiz variant: capital or code")
	f.Bool("tui", false, "Answer questions in an interactive prompt")
	f.Bool("no-color", false, "Disable coloured output")
	f.Uint64("seed", 0, "Random seed (0 = time-based)")
	f.String("log-level", "warn", "Log level: debug, info, warn or error")
	_ = root.MarkFlagRequired("input")
	root.MarkFlagsMutuallyExclusive("generate", "list")

	root.PersistentFlags().String("config", "", "Path to config file (default: ./quest.yaml)")

	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, quiz.ErrNotEnoughRecords):
		return 2
	default:
		return 1
	}
}

// validateFlags rejects bad arguments before any file is read.
func validateFlags(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	if err := dataset.IsFile(input); err != nil {
		return fmt.Errorf("invalid value %q for '--input': %w", input, err)
	}
	if cmd.Flags().Changed("count") {
		count, _ := cmd.Flags().GetInt("count")
		if err := validCount(count); err != nil {
			return fmt.Errorf("invalid value '%d' for '--count': %w", count, err)
		}
	}
	return nil
}

// validCount checks a question count against the allowed range.
func validCount(n int) error {
	if n < 1 {
		return fmt.Errorf("value should be at least 1")
	}
	if n >= maxCount {
		return fmt.Errorf("value should be less than %d", maxCount)
	}
	return nil
}

// loadConfig resolves configuration for cmd, honouring --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := validCount(cfg.Count); err != nil {
		return nil, fmt.Errorf("invalid count %d: %w", cfg.Count, err)
	}
	return cfg, nil
}
