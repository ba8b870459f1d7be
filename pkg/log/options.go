package log

import "github.com/spf13/pflag"

// Options configures the logger.
type Options struct {
	Name          string
	Level         string // debug, info, warn, error
	Format        string // json or console
	EnableColor   bool
	DisableCaller bool
	// CallerSkip is 2 for calls through the package-level helpers.
	CallerSkip  int
	OutputPaths []string
}

// NewOptions returns the defaults.
func NewOptions() *Options {
	return &Options{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
		CallerSkip:  2,
		OutputPaths: []string{"stdout"},
	}
}

// AddFlags binds the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log.level", o.Level, "Minimum log level: debug, info, warn, error.")
	fs.StringVar(&o.Format, "log.format", o.Format, "Log format: json or console.")
	fs.BoolVar(&o.EnableColor, "log.enable-color", o.EnableColor, "Colorize console output.")
	fs.BoolVar(&o.DisableCaller, "log.disable-caller", o.DisableCaller, "Omit the caller field.")
	fs.StringSliceVar(&o.OutputPaths, "log.output-paths", o.OutputPaths, "Log output paths, e.g. stdout or a file.")
}
