package app

import (
	"github.com/caarlos0/env/v11"
)

// Options are environment-supplied defaults. Flags override them; there is
// no config file.
type Options struct {
	Repeat   int    `env:"RAND_STR_GEN_REPEAT" envDefault:"1"`
	LogLevel string `env:"RAND_STR_GEN_LOG_LEVEL" envDefault:"warn"`
	NoColor  bool   `env:"NO_COLOR"`
}

func envDefaults() (Options, error) {
	var opts Options

	if err := env.Parse(&opts); err != nil {
		return Options{Repeat: 1, LogLevel: "warn"}, err
	}

	return opts, nil
}
