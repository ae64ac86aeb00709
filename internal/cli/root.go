package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/dseq/internal/config"
	"github.com/roach88/dseq/internal/dateseq"
)

// Options holds the flag values for the dseq command.
type Options struct {
	Header      string
	Limit       int
	DateFormat  string
	Business    bool
	NoBusiness  bool
	Business6   bool
	NoBusiness6 bool
	Reverse     bool
	ConfigPath  string
	Verbose     bool

	// Now allows tests to pin "today"; nil means time.Now.
	Now func() time.Time
}

// NewRootCommand creates the dseq command.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "dseq [flags] [<from> [<to>] [<increment>]]",
		Short: "Generate sequences of dates",
		Long: `dseq generates a sequence of dates, like seq for the date domain.

With <to> or --limit the sequence is printed in one shot. With neither,
dates stream forever, one line at a time, until interrupted or the
downstream pipe closes. <from> defaults to today and the increment to
one day.

Examples:
  dseq 2015-01-01 2015-01-31
  dseq 2015-01-01 2015-12-31 "1 month"
  dseq --business -n 20 2015-01-01
  dseq -r 2015-01-31 2015-01-01
  dseq --header date -f "%a %Y-%m-%d" -n 5`,
		Args:          cobra.RangeArgs(0, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeq(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Header, "header", "", "emit this string as the first output row")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "stop after this many rows (header included)")
	cmd.Flags().StringVarP(&opts.DateFormat, "date-format", "f", "", "strftime output pattern (default %Y-%m-%d, or %Y-%m-%dT%H:%M:%S with time components)")
	cmd.Flags().BoolVar(&opts.Business, "business", false, "keep Monday through Friday only")
	cmd.Flags().BoolVar(&opts.NoBusiness, "no-business", false, "keep Saturday and Sunday only")
	cmd.Flags().BoolVar(&opts.Business6, "business6", false, "keep Monday through Saturday only")
	cmd.Flags().BoolVar(&opts.NoBusiness6, "no-business6", false, "keep Sunday only")
	cmd.Flags().BoolVarP(&opts.Reverse, "reverse", "r", false, "step backwards from <from>")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to a dseq defaults file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")

	cmd.MarkFlagsMutuallyExclusive("business", "no-business", "business6", "no-business6")

	return cmd
}

func runSeq(opts *Options, args []string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot load config", err)
	}

	req, err := buildRequest(opts, args, cfg, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}
	logger.Debug("request resolved",
		"from", req.From, "reverse", req.Reverse,
		"filter", req.Filter.String(), "limit", req.Limit,
		"bounded", req.Bounded())

	engine := dateseq.New()
	if req.Bounded() {
		lines, err := engine.Generate(*req)
		if err != nil {
			if dateseq.IsConfigError(err) {
				return WrapExitError(ExitCommandError, "invalid request", err)
			}
			return WrapExitError(ExitFailure, "generation failed", err)
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		return w.Flush()
	}

	return streamSeq(engine, *req, cmd, logger)
}

// buildRequest resolves positional arguments, flags and config defaults
// into an engine request. Precedence: flag > environment/config > built-in.
func buildRequest(opts *Options, args []string, cfg *config.Config, cmd *cobra.Command) (*dateseq.Request, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	req := &dateseq.Request{Reverse: opts.Reverse}

	fromArg := ""
	if len(args) > 0 {
		fromArg = args[0]
	}
	from, err := ParseDate(fromArg, now())
	if err != nil {
		return nil, err
	}
	req.From = from

	if len(args) > 1 {
		to, err := ParseDate(args[1], now())
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	if len(args) > 2 {
		inc, err := ParseIncrement(args[2])
		if err != nil {
			return nil, err
		}
		req.Increment = inc
	}

	filter, err := resolveFilter(opts)
	if err != nil {
		return nil, err
	}
	req.Filter = filter

	// An explicitly set limit must be positive; the zero flag default
	// means "no limit".
	if cmd.Flags().Changed("limit") && opts.Limit <= 0 {
		return nil, &dateseq.ConfigError{
			Code:    dateseq.ErrCodeInvalidLimit,
			Message: "limit must be positive",
			Field:   "limit",
		}
	}
	req.Limit = opts.Limit

	req.Header = opts.Header
	if req.Header == "" {
		req.Header = cfg.Header
	}
	req.Format = opts.DateFormat
	if req.Format == "" {
		req.Format = cfg.DateFormat
	}

	return req, req.Validate()
}

// resolveFilter maps the four mutually exclusive flags onto the filter
// enum. Cobra already rejects flag conflicts; this re-checks for
// programmatic callers.
func resolveFilter(opts *Options) (dateseq.BusinessFilter, error) {
	set := 0
	filter := dateseq.FilterNone
	if opts.Business {
		set, filter = set+1, dateseq.FilterBusiness
	}
	if opts.NoBusiness {
		set, filter = set+1, dateseq.FilterNonBusiness
	}
	if opts.Business6 {
		set, filter = set+1, dateseq.FilterBusiness6
	}
	if opts.NoBusiness6 {
		set, filter = set+1, dateseq.FilterNonBusiness6
	}
	if set > 1 {
		return dateseq.FilterNone, &dateseq.ConfigError{
			Code:    dateseq.ErrCodeConflictingFilters,
			Message: "at most one business-day flag may be set",
		}
	}
	return filter, nil
}

// streamSeq runs the unbounded mode: one line per pull, flushed
// immediately so the stream is usable in a pipeline. The loop stops on
// SIGINT/SIGTERM, on context cancellation, or when the downstream writer
// fails (closed pipe) - stopping is entirely the consumer's call.
func streamSeq(engine *dateseq.Engine, req dateseq.Request, cmd *cobra.Command, logger *slog.Logger) error {
	it, err := engine.Iterator(req)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid request", err)
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := bufio.NewWriter(cmd.OutOrStdout())
	for {
		select {
		case <-ctx.Done():
			logger.Debug("stream interrupted")
			return nil
		default:
		}

		line, err := it.Next()
		if err != nil {
			return WrapExitError(ExitFailure, "sequence failed", err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			logger.Debug("downstream closed", "error", err)
			return nil
		}
		if err := w.Flush(); err != nil {
			logger.Debug("downstream closed", "error", err)
			return nil
		}
	}
}
