package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/dial"
	"github.com/aretw0/dial/internal/config"
	"github.com/aretw0/dial/internal/presentation/tui"
	"github.com/aretw0/dial/pkg/runner"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ConfigPath string
	InputPath  string         // "" or "-" reads Stdin
	Overrides  map[string]any // config keys set by flags
	Quiet      bool
	Pretty     bool // render the summary as Markdown (glamour on a terminal)
	Banner     bool
	Debug      bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute handles the 'run' command: load config, simulate, print the report.
func Execute(ctx context.Context, opts RunOptions) (*runner.Report, error) {
	opts.setDefaults()

	cfg, err := loadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}

	logger, err := createLogger(opts.Stderr, cfg.LogLevel, opts.Debug)
	if err != nil {
		return nil, err
	}

	engineOpts := []dial.Option{
		dial.WithPerimeter(cfg.Perimeter),
		dial.WithStart(cfg.Start),
		dial.WithLogger(logger),
		dial.WithHandler(createHandler(cfg, opts)),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, dial.WithLifecycleHooks(createDebugHooks(logger)))
	}

	engine, err := dial.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing dial: %w", err)
	}

	src, err := openInput(opts.InputPath, opts.Stdin)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if opts.Banner && cfg.Format == config.FormatText {
		tui.PrintBanner(opts.Stdout, dial.Version)
	}

	report, err := engine.Simulate(ctx, src)
	if err != nil {
		return report, handleExecutionError(err)
	}
	return report, nil
}

func (o *RunOptions) setDefaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

func createHandler(cfg config.Config, opts RunOptions) runner.OutputHandler {
	if cfg.Format == config.FormatJSON {
		return runner.NewJSONHandler(opts.Stdout)
	}
	text := runner.NewTextHandler(opts.Stdout, runner.WithQuiet(opts.Quiet))
	if opts.Pretty {
		return &markdownHandler{TextHandler: text, pretty: isTerminal(opts.Stdout)}
	}
	return text
}

// markdownHandler prints steps as text and the summary as a Markdown table.
type markdownHandler struct {
	*runner.TextHandler
	pretty bool
}

func (h *markdownHandler) Summary(ctx context.Context, report *runner.Report) error {
	out, err := tui.RenderSummary(report, h.pretty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(h.Writer, out)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}
