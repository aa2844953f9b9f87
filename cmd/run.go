package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jostho/quest/internal/config"
	"github.com/jostho/quest/internal/country"
	"github.com/jostho/quest/internal/dataset"
	"github.com/jostho/quest/internal/logger"
	"github.com/jostho/quest/internal/quiz"
	"github.com/jostho/quest/internal/ui/console"
	"github.com/jostho/quest/internal/ui/prompt"
)

// sessionPresenter is a quiz presenter that can also announce the session.
type sessionPresenter interface {
	quiz.Presenter
	ShowHeader(source string, total int)
}

// run resolves configuration and dispatches to generate, list or quiz.
func run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	variant, err := country.Lookup(cfg.Variant)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	generate, _ := cmd.Flags().GetBool("generate")
	list, _ := cmd.Flags().GetBool("list")

	switch {
	case generate:
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = dataset.OutputPath(input)
		}
		return runGenerate(ctx, cmd.OutOrStdout(), variant, input, output, log)
	case list:
		return runList(ctx, cmd.OutOrStdout(), variant, input)
	default:
		return runQuiz(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg, variant, input, log)
	}
}

// runGenerate converts source JSON at input into a flat file (or SQLite
// table) at output.
func runGenerate(ctx context.Context, out io.Writer, variant country.Variant, input, output string, log *zap.Logger) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	tbl, err := variant.DecodeSource(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	if err := dataset.Save(ctx, output, string(variant.Kind()), tbl); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	log.Info("generated flat file",
		zap.String("variant", string(variant.Kind())),
		zap.String("output", output),
		zap.Int("records", tbl.Len()))
	fmt.Fprintf(out, "Generating content from %s into %s\n", input, output)
	return nil
}

// loadStore reads the flat file at input and builds the filtered store.
func loadStore(ctx context.Context, variant country.Variant, input string) (*quiz.Store, error) {
	tbl, err := dataset.Load(ctx, input, string(variant.Kind()))
	if err != nil {
		return nil, err
	}
	subjects, err := variant.Subjects(tbl)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", input, err)
	}
	return quiz.NewStore(subjects), nil
}

// runList prints the records that survive the validity filter.
func runList(ctx context.Context, out io.Writer, variant country.Variant, input string) error {
	store, err := loadStore(ctx, variant, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-8s  %-40s  %s\n", "KEY", "NAME", "PROMPT")
	fmt.Fprintln(out, strings.Repeat("─", 72))
	for _, s := range store.Subjects() {
		fmt.Fprintf(out, "%-8s  %-40s  %s\n", s.Key(), truncate(s.DisplayName(), 40), s.PromptAttribute())
	}
	fmt.Fprintf(out, "\n%d records\n", store.Len())
	return nil
}

// truncate shortens s to at most width characters, marking the cut with
// an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// runQuiz asks cfg.Count questions over the flat file at input.
func runQuiz(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, variant country.Variant, input string, log *zap.Logger) error {
	store, err := loadStore(ctx, variant, input)
	if err != nil {
		return err
	}

	if err := store.CanServe(cfg.Count); err != nil {
		return fmt.Errorf("%w in %s (total: %d)", quiz.ErrNotEnoughRecords, input, store.Len())
	}

	var presenter sessionPresenter
	if cfg.TUI {
		presenter = prompt.New(in, out, !cfg.NoColor)
	} else {
		presenter = console.New(in, out, !cfg.NoColor)
	}
	presenter.ShowHeader(input, store.Len())

	engine := quiz.NewEngine(store, variant, presenter,
		quiz.WithRand(quiz.NewRand(cfg.Seed)),
		quiz.WithLogger(log.With(zap.String("variant", string(variant.Kind())))))

	if _, err := engine.Run(ctx, cfg.Count); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	return nil
}
