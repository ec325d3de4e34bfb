package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/malusev998/currency"
	"github.com/malusev998/currency/currencies"
	"github.com/malusev998/currency/services"
)

type (
	// Config carries the collaborators of a run. Fetcher and Storage replace
	// the configured provider and storage when set.
	Config struct {
		Ctx     context.Context
		Fetcher currency.Fetcher
		Storage currency.Storage
		Catalog *currencies.Catalog
		Now     func() time.Time

		// Args defaults to os.Args[1:].
		Args []string
		Out  io.Writer
		Err  io.Writer
	}

	session struct {
		config   *Config
		viper    *viper.Viper
		settings *Settings
		logger   *log.Logger
	}
)

func Execute(config *Config) error {
	rootCmd := NewRootCommand(config)
	args := config.Args

	if args == nil {
		args = os.Args[1:]
	}

	if config.Out != nil {
		rootCmd.SetOut(config.Out)
	}

	if config.Err != nil {
		rootCmd.SetErr(config.Err)
	}

	rootCmd.SetArgs(negativePriceArgs(rootCmd, args))

	return rootCmd.Execute()
}

// negativePriceArgs puts "--" in front of the first negative price so it is
// not parsed as a shorthand flag. Everything after it is positional.
func negativePriceArgs(rootCmd *cobra.Command, args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}

		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		if _, ok := parsePrice(arg); !ok {
			continue
		}

		if i > 0 && takesValue(rootCmd, args[i-1]) {
			continue
		}

		rewritten := make([]string, 0, len(args)+1)
		rewritten = append(rewritten, args[:i]...)
		rewritten = append(rewritten, "--")

		return append(rewritten, args[i:]...)
	}

	return args
}

// takesValue reports whether arg is a "--name" flag that consumes the next argument.
func takesValue(rootCmd *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "--") || strings.Contains(arg, "=") {
		return false
	}

	flag := rootCmd.PersistentFlags().Lookup(strings.TrimPrefix(arg, "--"))

	return flag != nil && flag.NoOptDefVal == ""
}

func NewRootCommand(config *Config) *cobra.Command {
	if config.Ctx == nil {
		config.Ctx = context.Background()
	}

	if config.Catalog == nil {
		config.Catalog = currencies.New()
	}

	s := &session{config: config, viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "curr [flags] CURRENCY... [PRICE...]",
		Short: "Convert prices between currencies",
		Long: `curr prints a table converting every PRICE from the first CURRENCY into
each CURRENCY given. Without a PRICE it converts 1. Rates are cached and reused
for a week. Flags go before a negative PRICE.

  curr USD EUR GBP 10 25.5
  curr USD EUR -5`,
		Version:       "v2.0.0",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return s.convert(cmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default $HOME/.config/curr/config.yml)")
	flags.BoolP("debug", "d", false, "Debug flag")
	flags.String("provider", "exchangeratesapi", "Rate provider: exchangeratesapi or freecurrconv")
	flags.String("storage", "file", "Rate cache storage: file, badger, mysql, mongodb or none")
	flags.String("cache-file", "", "Rate cache file (default $HOME/.curr-cache)")
	flags.Bool("check-freshness", true, "Reuse cached rates younger than --max-age")
	flags.Duration("max-age", services.DefaultMaxAge, "How long a cached rate is reused")
	flags.String("metrics-file", "", "Write prometheus metrics to this file on exit")

	for key, flag := range map[string]string{
		"debug":           "debug",
		"provider":        "provider",
		"storage":         "storage",
		"cache.file":      "cache-file",
		"cache.freshness": "check-freshness",
		"cache.maxage":    "max-age",
		"metrics.file":    "metrics-file",
	} {
		_ = s.viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(cacheCommand(s), currenciesCommand(s))

	return rootCmd
}

func (s *session) init(cmd *cobra.Command) error {
	v := s.viper
	setDefaults(v)

	v.SetEnvPrefix("CURR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile, _ := cmd.Flags().GetString("config")

	if configFile != "" {
		absolutePath, err := filepath.Abs(configFile)
		if err != nil {
			return err
		}

		v.SetConfigFile(absolutePath)

		if err := v.ReadInConfig(); err != nil {
			return err
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, ".config", "curr"))

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return err
		}
	}

	settings, err := getConfig(s.config, v)

	if err != nil {
		return err
	}

	s.settings = settings
	s.logger = newLogger(cmd.ErrOrStderr(), settings.Debug)
	s.logger.Debug("configuration loaded", "file", v.ConfigFileUsed(), "provider", settings.Provider, "storage", settings.Storage)

	return nil
}

func (s *session) now() time.Time {
	if s.config.Now == nil {
		return time.Now().UTC()
	}

	return s.config.Now().UTC()
}
