package isotodo

import (
	iofs "io/fs"

	"github.com/3-lines-studio/isotodo/internal/adapters/fs"
	"github.com/3-lines-studio/isotodo/internal/config"
	"github.com/3-lines-studio/isotodo/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type options struct {
	routes       []Route
	fs           fs.FileSystem
	osFS         bool
	templatePath string
	publicDir    string
	title        string
	dev          bool
	watch        bool
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

func defaultOptions() options {
	return options{
		routes:       DefaultRoutes(),
		fs:           fs.NewOSFileSystem(),
		osFS:         true,
		templatePath: config.DefaultTemplatePath,
		publicDir:    config.DefaultPublicDir,
		logger:       zerolog.Nop(),
	}
}

type Option func(*options)

func WithRoutes(routes ...Route) Option {
	return func(o *options) {
		o.routes = routes
	}
}

// WithFS reads the layout and public files from fsys instead of the working
// directory.
func WithFS(fsys iofs.FS) Option {
	return func(o *options) {
		o.fs = fs.NewIOFileSystem(fsys)
		o.osFS = false
	}
}

func WithTemplatePath(path string) Option {
	return func(o *options) {
		o.templatePath = path
	}
}

func WithPublicDir(dir string) Option {
	return func(o *options) {
		o.publicDir = dir
	}
}

// WithDev shows error details on error pages and, together with WithWatch,
// reloads open browsers when the layout changes.
func WithDev(dev bool) Option {
	return func(o *options) {
		o.dev = dev
	}
}

func WithWatch(watch bool) Option {
	return func(o *options) {
		o.watch = watch
	}
}

// WithDefaultTitle sets the title of routes that do not set their own.
func WithDefaultTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(reg *prometheus.Registry) Option {
	return func(o *options) {
		o.metrics = metrics.New(reg)
	}
}

// WithConfig applies a loaded configuration file.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.templatePath = cfg.TemplatePath
		o.publicDir = cfg.PublicDir
		o.dev = cfg.Dev
		o.watch = cfg.Watch
		o.title = cfg.Title
	}
}
