// Package app implements the rand-str-gen command.
package app

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rand-str-gen/rand-str-gen/internal/charset"
	"github.com/rand-str-gen/rand-str-gen/internal/clip"
	"github.com/rand-str-gen/rand-str-gen/internal/logger"
	"github.com/rand-str-gen/rand-str-gen/internal/sampler"
)

func init() { //nolint: gochecknoinits
	// Entries such as "-m" after the length argument are positionals, not
	// flags, so interspersed parsing stays off.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(ErrInvalidFlag, err.Error())
	})

	rootCmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "put the generated string in the OS clipboard")
	rootCmd.Flags().IntVarP(&repeat, "repeat", "r", defaults.Repeat, "number of strings to generate")
	rootCmd.Flags().BoolVar(&showPool, "show-pool", false, "print the character pool before generating")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaults.LogLevel, "console log level")
	rootCmd.Flags().BoolVar(&noColor, "no-color", defaults.NoColor, "disable colored output")
}

var (
	defaults, defaultsErr = envDefaults()

	copyToClipboard bool
	repeat          int
	showPool        bool
	logLevel        string
	noColor         bool

	// Swapped for a fake in tests.
	clipWriter = clip.System()

	rootCmd = &cobra.Command{
		Use:   "rand-str-gen [flags] length [entry ...]",
		Short: "Generate random strings from a configurable character pool",
		Long: `rand-str-gen generates random strings of the given length, drawing every
character uniformly at random from a pool of characters.

The pool starts from five predefined sets, all enabled by default:
  d  decimal digits, 0-9
  l  lowercase english alphabet, a-z
  u  uppercase english alphabet, A-Z
  s  separators: - . _
  m  misc symbols: ! * & #

Entries after the length adjust the pool. An entry is '+' (add) or '-'
(remove) followed by set letters and/or a custom set:
  d, l, u, s, m   one of the predefined sets
  A               all predefined sets
  [characters]    a custom set of the literal characters between the
                  brackets (']' cannot be a member); quote the argument
                  if the shell would interpret it`,
		Example: `  # 10 random characters from the full default pool
  rand-str-gen 10

  # without misc symbols
  rand-str-gen 10 -m

  # with a custom set of characters: % $ ^ @
  rand-str-gen 10 -m "+[%$^@]"

  # with default sets, but without '.'
  rand-str-gen 10 "-[.]"`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrMissingLength
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

// Execute runs the root command and reports failures on stderr.
func Execute() error {
	// Console logger with environment defaults, so errors raised before run
	// (bad flags, missing length) share the same output format. run re-inits
	// with the flag-resolved level.
	if err := logger.Init(logger.Options{LogLevel: defaults.LogLevel, NoColor: defaults.NoColor}); err != nil {
		return err
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error().Msg(err.Error())

		// The hint must survive any log level.
		if isUsageError(err) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "use --help for valid args")
		}

		return err
	}

	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logger.Options{LogLevel: logLevel, NoColor: noColor}); err != nil {
		return err
	}

	if defaultsErr != nil {
		log.Warn().Err(defaultsErr).Msg("ignoring invalid environment defaults")
	}

	length, err := strconv.Atoi(args[0])
	if err != nil || length <= 0 {
		return errors.Wrapf(ErrInvalidLength, "%q", args[0])
	}

	if repeat <= 0 {
		return errors.Wrapf(ErrInvalidRepeat, "%d", repeat)
	}

	req := charset.DefaultRequest()

	for _, entry := range args[1:] {
		if err := req.ParseEntry(entry); err != nil {
			return err
		}
	}

	pool, err := charset.Build(req)
	if err != nil {
		return err
	}

	log.Debug().Int("size", pool.Len()).Msg("character pool built")

	if showPool {
		fmt.Fprintf(cmd.OutOrStdout(), "pool: %s\n", pool)
	}

	s := sampler.New()

	var last string

	for i := 0; i < repeat; i++ {
		last, err = s.String(pool.Runes(), length)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), last)
	}

	if copyToClipboard {
		if err := clipWriter.Write(last); err != nil {
			return err
		}

		log.Debug().Msg("copied last string to clipboard")
	}

	return nil
}
