package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"pkg.jsn.cam/datgen/internal/generator"
	"pkg.jsn.cam/datgen/internal/output"
)

/*generates random integer arrays as initializer blocks into datgen.dat*/

func newApp(log *slog.Logger, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "datgen",
		Usage:           "Generate random integer array fixtures into " + generator.OutputFile,
		ArgsUsage:       "<count>",
		HideHelpCommand: true,
		ErrWriter:       stderr,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", generator.ErrInvalidCount, err)
		},
		Action: func(c *cli.Context) error {
			return run(log, stderr, c.Args().Slice())
		},
	}
}

func run(log *slog.Logger, stderr io.Writer, args []string) error {
	// Validate before the output file is touched
	n, err := generator.ParseCount(args)
	if err != nil {
		return err
	}

	log = log.With("run", uuid.NewString())
	log.Info("[DATGEN] Generating arrays", "count", n, "output", generator.OutputFile)

	bar := progressbar.NewOptions(n,
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("[DATGEN] arrays"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	g := generator.New(generator.NewEntropyRand())
	g.OnBlock = func(generator.Block) {
		_ = bar.Add(1)
	}

	size, err := output.WriteFile(generator.OutputFile, func(w io.Writer) error {
		return g.Stream(w, n)
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	log.Info("[DATGEN] Wrote arrays",
		"count", n,
		"output", generator.OutputFile,
		"size", humanize.Bytes(uint64(size)))
	return nil
}

// exitCode maps argument errors to 2 and everything else to 1
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, generator.ErrMissingCount),
		errors.Is(err, generator.ErrTooManyArguments),
		errors.Is(err, generator.ErrInvalidCount):
		return 2
	default:
		return 1
	}
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := newApp(log, os.Stderr).Run(os.Args); err != nil {
		log.Error("[DATGEN] Error running datgen", "error", err)
		os.Exit(exitCode(err))
	}
}
