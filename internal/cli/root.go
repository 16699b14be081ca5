package cli

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-twmerge/internal/observability/exporter"
	"github.com/FACorreiaa/go-twmerge/internal/pkg/config"
	"github.com/FACorreiaa/go-twmerge/pkg/logger"
	"github.com/FACorreiaa/go-twmerge/pkg/twmerge"
)

const (
	serviceName = "twmerge"
	version     = "1.0.0"
)

type options struct {
	configFile string
	prefix     string
	separator  string
	cacheSize  int
	logLevel   string
	stats      bool
}

// app carries state shared by all subcommands. It is filled in by the root PersistentPreRunE.
type app struct {
	cfg    *config.Config
	opts   options
	logger *zap.Logger
	merger *twmerge.Merger
	stats  *exporter.Provider
}

// Execute runs the twmerge command line with flag defaults taken from cfg.
func Execute(ctx context.Context, cfg *config.Config) error {
	a := &app{cfg: cfg}
	err := newRootCommand(a).ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "twmerge",
		Short: "Merge Tailwind CSS class lists without style conflicts",
		Long: `twmerge removes utility classes that are overridden by later classes of the same
class group, e.g. "p-2 p-4" becomes "p-4" while "p-2 hover:p-4" is kept as is.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configFile, "config", a.cfg.Merge.ExtensionFile, "YAML file extending the default class groups")
	flags.StringVar(&a.opts.prefix, "prefix", a.cfg.Merge.Prefix, "prefix every utility class carries, e.g. tw-")
	flags.StringVar(&a.opts.separator, "separator", a.cfg.Merge.Separator, "separator between modifiers and the class")
	flags.IntVar(&a.opts.cacheSize, "cache-size", a.cfg.Merge.CacheSize, "entries per cache generation, 0 disables the cache")
	flags.StringVar(&a.opts.logLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&a.opts.stats, "stats", false, "print merge metrics in Prometheus text format to stderr")

	root.AddCommand(newMergeCommand(a), newHTMLCommand(a), newGroupCommand(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level, err := logger.ParseLevel(a.opts.logLevel)
	if err != nil {
		return err
	}
	if a.logger == nil {
		if err := logger.Init(level, zap.String("service", serviceName)); err != nil {
			return err
		}
		a.logger = logger.Log
	}

	cfg, err := a.mergeConfig(cmd)
	if err != nil {
		return err
	}

	opts := []twmerge.Option{twmerge.WithLogger(a.logger), twmerge.WithName(cmd.Name())}
	if a.opts.stats {
		a.stats, err = exporter.New(serviceName, version, a.logger)
		if err != nil {
			return err
		}
		opts = append(opts, twmerge.WithMeter(a.stats.Meter()))
	}

	a.merger, err = twmerge.New(cfg, opts...)
	if err != nil {
		return err
	}
	return nil
}

// mergeConfig layers the environment, the extension file and explicitly set flags, in that
// order, over the default class groups.
func (a *app) mergeConfig(cmd *cobra.Command) (twmerge.Config, error) {
	cfg := twmerge.DefaultConfig()
	cfg.Separator = a.cfg.Merge.Separator
	cfg.Prefix = a.cfg.Merge.Prefix
	cfg.CacheSize = a.cfg.Merge.CacheSize

	if a.opts.configFile != "" {
		ext, err := loadExtensionFile(a.opts.configFile)
		if err != nil {
			return twmerge.Config{}, err
		}
		cfg = cfg.Extend(ext)
		a.logger.Debug("Loaded class group extension", zap.String("file", a.opts.configFile))
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.Prefix = a.opts.prefix
	}
	if flags.Changed("separator") {
		cfg.Separator = a.opts.separator
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = a.opts.cacheSize
	}
	return cfg, nil
}

func loadExtensionFile(path string) (*twmerge.Extension, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open extension file")
	}
	defer f.Close()

	ext, err := twmerge.LoadExtension(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return ext, nil
}

func (a *app) teardown(cmd *cobra.Command) error {
	if a.stats == nil {
		return nil
	}
	if err := a.stats.WriteText(cmd.ErrOrStderr()); err != nil {
		return err
	}
	return a.stats.Shutdown(cmd.Context())
}
