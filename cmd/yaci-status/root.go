package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmagro/yaci-status/internal/config"
	"github.com/dmagro/yaci-status/internal/format"
	"github.com/dmagro/yaci-status/internal/logging"
	"github.com/dmagro/yaci-status/internal/status"
	"github.com/dmagro/yaci-status/internal/yaci"
)

// exitError carries a non-zero exit code out of RunE without an extra message;
// the renderer has already reported the problem.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type options struct {
	output  string
	envFile string
	debug   bool
	noColor bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "yaci-status",
		Short: "Check that Yaci DevKit is running and show chain status",
		Long: `Query the Yaci DevKit REST API and print the current epoch,
the latest block and the configured network identifiers.

Environment:
  YACI_DEVKIT_URL   DevKit API root (default ` + config.DefaultBaseURL + `)
  NETWORK_MAGIC     Network magic, displayed as-is
  NETWORK_ID        Network id, displayed as-is

Variables are also read from a .env file in the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&opts.output, "output", "o", format.OutputTerminal, "Output format: terminal|json|yaml")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "Path of the .env file to load")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log requests to stderr")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runStatus(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	if opts.noColor {
		format.DisableColors()
	}

	logger := logging.New(stderr, opts.debug, color.NoColor)

	if err := config.LoadEnv(opts.envFile); err != nil {
		logger.Warn("ignoring env file", "path", opts.envFile, "error", err)
	}
	cfg := config.Load()

	out, err := format.New(opts.output, stdout)
	if err != nil {
		return err
	}

	logger.Debug("checking devkit", "url", cfg.BaseURL, "output", opts.output)

	client := yaci.NewClient(cfg.BaseURL, logger)
	if code := status.NewReporter(cfg, client, out, logger).Run(ctx); code != status.ExitOK {
		return &exitError{code: code}
	}
	return nil
}

// execute runs the command and maps its outcome to a process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return status.ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return status.ExitFailure
}
