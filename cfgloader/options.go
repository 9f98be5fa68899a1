package cfgloader

// Options holds configuration options for Load.
type Options struct {
	dir         string
	environment string
	envFiles    []string
	silent      bool
}

// Option is a functional option for configuring Load behavior.
type Option func(*Options)

func newOptions(opts ...Option) Options {
	o := Options{dir: "./config"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDir sets the directory holding the ${ENVIRONMENT}.yaml files.
func WithDir(dir string) Option {
	return func(o *Options) {
		o.dir = dir
	}
}

// WithEnvironment overrides the ENVIRONMENT variable.
func WithEnvironment(env string) Option {
	return func(o *Options) {
		o.environment = env
	}
}

// WithEnvFiles sets the dotenv files loaded before reading the config. Defaults to .env.
func WithEnvFiles(files ...string) Option {
	return func(o *Options) {
		o.envFiles = files
	}
}

// WithSilent disables config logging to stdout.
func WithSilent() Option {
	return func(o *Options) {
		o.silent = true
	}
}
