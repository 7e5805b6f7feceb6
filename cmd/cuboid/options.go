package main

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/chazu/cuboid/pkg/config"
	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/diag"
	"github.com/chazu/cuboid/pkg/engine"
)

// options are the flags shared by every subcommand. Flags given on the
// command line override the config file, which overrides the defaults.
type options struct {
	configPath  string
	width       string
	height      string
	depth       float64
	unit        string
	perspective string
	target      string
	id          string
	logLevel    string
	out         string
	strict      bool

	diags diag.Collector
}

func (o *options) bind(root *cobra.Command) {
	f := root.PersistentFlags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML or YAML config file")
	f.StringVar(&o.width, "width", "", "width: a number in --unit, or a CSS size such as auto")
	f.StringVar(&o.height, "height", "", "height: a number in --unit, or a CSS size")
	f.Float64Var(&o.depth, "depth", 0, "depth in --unit")
	f.StringVar(&o.unit, "unit", "", "CSS unit for numeric sizes (default px)")
	f.StringVar(&o.perspective, "perspective", "", "perspective value for the target, empty disables")
	f.StringVar(&o.target, "target", "", "CSS selector of the perspective target (default body)")
	f.StringVar(&o.id, "id", "", "id for the container")
	f.StringVar(&o.logLevel, "log-level", "", "log level (debug, verbose, info, warning, error)")
	f.StringVarP(&o.out, "out", "o", "-", "output file, - for stdout")
	f.BoolVar(&o.strict, "strict", false, "fail when the builder reports an error diagnostic")
}

func (o *options) setupLogging() error {
	level := o.logLevel
	if level == "" && o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		level = cfg.LogLevel
	}
	if level == "" {
		return nil
	}
	lvl, err := log.ValidateLevel(level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	log.SetLogLevel(lvl)
	return nil
}

// load resolves the effective config.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = cuboid.ParseSize(o.width)
	}
	if flags.Changed("height") {
		cfg.Height = cuboid.ParseSize(o.height)
	}
	if flags.Changed("depth") {
		cfg.Depth = o.depth
	}
	if flags.Changed("unit") {
		cfg.Unit = o.unit
	}
	if flags.Changed("perspective") {
		cfg.Perspective.Value = o.perspective
	}
	if flags.Changed("target") {
		cfg.Perspective.Target = o.target
	}
	if flags.Changed("id") {
		cfg.ID = o.id
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// request turns a config into a single build request.
func request(cfg config.Config) engine.Request {
	r := engine.Request{ID: cfg.ID, Dimensions: cfg.Dimensions()}
	if cfg.Perspective.Enabled() {
		target := cfg.Perspective.Target
		if target == "" {
			target = engine.DefaultTarget
		}
		r.Perspective = &engine.PerspectiveRequest{Target: target, Value: cfg.Perspective.Value}
	}
	return r
}

// sink logs diagnostics and keeps them for the --strict check.
func (o *options) sink() diag.Sink {
	return diag.Tee(diag.LogSink{}, &o.diags)
}

func (o *options) checkStrict() error {
	if !o.strict {
		return nil
	}
	if errs := o.diags.Errors(); len(errs) > 0 {
		return fmt.Errorf("%d error diagnostic(s), first: %s", len(errs), errs[0])
	}
	return nil
}

// output opens the --out destination.
func (o *options) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if o.out == "" || o.out == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(o.out)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
