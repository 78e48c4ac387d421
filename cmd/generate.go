package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Rorical/storenamer/internal/clipboard"
	"github.com/Rorical/storenamer/internal/core"
	"github.com/Rorical/storenamer/internal/llm"
)

var copyFlag int

var generateCmd = &cobra.Command{
	Use:   "generate [description...]",
	Short: "Generate store names once and print them",
	Long: `Generate store names for a description and print them one per line.
The description is read from stdin when no arguments are given.`,
	Example: `  storenamer generate handmade soy candles for eco-conscious millennials
  echo "vintage vinyl and coffee bar" | storenamer generate --copy 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		description, err := readDescription(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, logger, closer, err := loadRuntime()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		defer closer.Close()

		var generator llm.Generator
		gen, err := llm.New(cfg.Current())
		switch {
		case err == nil:
			generator = gen
		case errors.Is(err, llm.ErrNotConfigured):
			// the pipeline reports the missing configuration
		default:
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cmd.SilenceUsage = true
		return runGenerate(ctx, generateOptions{
			out:         cmd.OutOrStdout(),
			clipboard:   clipboard.NewOSC52(cmd.ErrOrStderr()),
			generator:   generator,
			model:       cfg.GetModel(),
			description: description,
			copyIndex:   copyFlag,
			logger:      logger,
		})
	},
}

type generateOptions struct {
	out         io.Writer
	clipboard   clipboard.Clipboard
	generator   llm.Generator
	model       string
	description string
	copyIndex   int // 1-based, 0 disables copying
	logger      *logrus.Logger
}

// readDescription joins args, or reads in when there are none. Line endings
// left by the terminal or a pipe are dropped; args are kept as typed.
func readDescription(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read description: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func runGenerate(ctx context.Context, opts generateOptions) error {
	pipeline := core.NewPipeline(opts.generator, opts.model, opts.logger)

	result, err := pipeline.Generate(ctx, opts.description)
	if errors.Is(err, core.ErrEmptyDescription) {
		return errors.New("description is empty")
	}
	if err != nil {
		return err
	}

	for _, name := range result.Names {
		fmt.Fprintln(opts.out, name)
	}

	if opts.copyIndex == 0 {
		return nil
	}
	if opts.copyIndex < 1 || opts.copyIndex > len(result.Names) {
		return fmt.Errorf("--copy %d is out of range (got %d names)", opts.copyIndex, len(result.Names))
	}
	if err := opts.clipboard.Copy(result.Names[opts.copyIndex-1]); err != nil {
		opts.logger.WithError(err).Warn("Clipboard write failed")
	}
	return nil
}

func init() {
	generateCmd.Flags().IntVarP(&copyFlag, "copy", "c", 0, "copy the N-th name (1-based) to the clipboard")
	rootCmd.AddCommand(generateCmd)
}
